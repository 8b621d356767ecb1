package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/cellux/batterm"
)

type scene func() (scene, error)

type app struct {
	io      *batterm.IO
	swatch  batterm.Swatch
	atlases *batterm.Atlases

	roster  *batterm.ListDisplay
	visitor string
	status  string
}

func newApp(swatch batterm.Swatch, atlases *batterm.Atlases) *app {
	a := &app{
		swatch:  swatch,
		atlases: atlases,
		roster:  batterm.CreateListDisplay(),
	}
	a.roster.SetEntries(bats)
	return a
}

func (a *app) run() error {
	next := scene(a.welcome)
	for next != nil {
		var err error
		next, err = next()
		if err != nil {
			return err
		}
	}
	return nil
}

const blurb = "the premier convention for all the bats " +
	"and all the big bats and all the little " +
	"bats and the bats and the bats"

func (a *app) welcome() (scene, error) {
	var next scene
	err := a.io.Menu(func(io *batterm.IO, m *batterm.Menu) {
		a.drawWelcome(io.Brush(), m, &next)
	})
	return next, err
}

// drawWelcome draws the title screen, registering its actions in m.
// Activating one stores the scene to continue with in next.
func (a *app) drawWelcome(b batterm.Brush, m *batterm.Menu, next *scene) {
	rampBg, rampFg := batterm.Purple, batterm.Yellow

	content := b.Inset(2)
	content.Fill(batterm.FSem{}.WithBg(rampBg[1]))
	content.BevelW95Sleek(rampBg[0], rampBg[3])

	one := m.On(batterm.KeyB, func(batterm.InputEvent) { *next = a.pleaseWait })
	two := m.On(batterm.KeyC, func(batterm.InputEvent) { *next = a.showRoster })
	m.OnKey(batterm.KeyN, func(batterm.KeyEvent) { *next = a.askName })
	m.OnKey(batterm.KeyY, func(batterm.KeyEvent) {
		a.copyScreen()
		*next = a.welcome
	})
	m.OnKey(batterm.KeyQ, func(batterm.KeyEvent) { *next = a.confirmQuit })
	m.OnKey(batterm.KeyEscape, func(batterm.KeyEvent) { *next = nil })

	out := content.At(batterm.Point{}).
		Color(rampBg[2], rampFg[2]).Font(batterm.FontSet).Putfs("WELCOME TO ").
		Bg(rampBg[3]).Font(batterm.FontFat).
		Interactor(one, batterm.Some(rampFg[2]), batterm.Some(rampBg[3])).Putfs("BATCON").NoInteractor().
		Font(batterm.FontSmall).Putfs("TM").Font(batterm.FontFat)

	out.Color(rampBg[0], rampFg[3]).OnNewline().Font(batterm.FontNormal).
		Interactor(two, batterm.Some(rampFg[3]), batterm.Some(rampBg[0])).Putfs(blurb)

	_, footer := content.SplitVertically(content.Size().Y - 4)
	footer = footer.Font(batterm.FontNormal).Color(rampBg[1], rampFg[3])
	greeting := "hello, stranger"
	if a.visitor != "" {
		greeting = "hello, " + a.visitor
	}
	footer.At(batterm.Point{X: 1}).Putfs(greeting + "  " + a.status)
	hot := func(k string) string {
		return batterm.FormatColor(batterm.FormatFg, rampFg[3]) + k + batterm.FormatReset(batterm.FormatFg)
	}
	footer.At(batterm.Point{X: 1, Y: 2}).Fg(rampFg[2]).
		Putfs(hot("B") + " wait  " + hot("C") + " roster  " + hot("N") + " name  " + hot("Y") + " copy  " + hot("Q") + " quit")
}

func (a *app) pleaseWait() (scene, error) {
	err := a.io.Sleep(1.0, func(io *batterm.IO) {
		io.Brush().Inset(2).At(batterm.Point{}).
			Color(batterm.Yellow0, batterm.Fuchsia0).
			Font(batterm.FontSet).Putfs("PLEASE WAIT")
	})
	return a.welcome, err
}

func (a *app) copyScreen() {
	text := batterm.ScreenText(a.io.Screen())
	if err := clipboard.WriteAll(text); err != nil {
		batterm.Logger().Warn("copy screen", "err", err)
		a.status = "(no clipboard)"
		return
	}
	a.status = "(copied)"
}

// interact redraws with draw until done holds. Events the menu built by
// the last redraw does not take are passed to keys when they are keys.
func (a *app) interact(draw func(batterm.Brush, *batterm.Menu), keys func(batterm.KeyEvent), done func() bool) error {
	menu := batterm.NewMenu()
	for !done() {
		e, err := a.io.Getch(func(io *batterm.IO) {
			menu = batterm.NewMenu()
			draw(io.Brush(), menu)
		})
		if err != nil {
			return err
		}
		if menu.Handle(e) {
			continue
		}
		if k, ok := e.(batterm.KeyEvent); ok {
			keys(k)
		}
	}
	return nil
}

func (a *app) askName() (scene, error) {
	done := false
	p := batterm.CreateTextPrompt("name:", batterm.PromptCallbacks{
		OnConfirm: func(s string) {
			a.visitor = strings.TrimSpace(s)
			done = true
		},
		OnCancel: func() { done = true },
	})
	p.SetText(a.visitor)
	err := a.interact(
		func(b batterm.Brush, m *batterm.Menu) { a.drawPrompt(b, "WHO ARE YOU?", p) },
		func(k batterm.KeyEvent) { p.HandleKey(k) },
		func() bool { return done },
	)
	return a.welcome, err
}

func (a *app) confirmQuit() (scene, error) {
	var next scene = a.welcome
	done := false
	p := batterm.CreateCharPrompt("leave the convention?", "yn", batterm.PromptCallbacks{
		OnConfirm: func(s string) {
			if s == "y" {
				next = nil
			}
			done = true
		},
		OnCancel: func() { done = true },
	})
	err := a.interact(
		func(b batterm.Brush, m *batterm.Menu) { a.drawPrompt(b, "QUIT", p) },
		func(k batterm.KeyEvent) { p.HandleKey(k) },
		func() bool { return done },
	)
	return next, err
}

func (a *app) drawPrompt(b batterm.Brush, title string, p *batterm.Prompt) {
	box := b.Inset(4)
	box.Fill(batterm.FSem{}.WithBg(batterm.Blue0))
	box.BevelW95(batterm.Blue2, batterm.DkGray0)
	box.Color(batterm.Blue0, batterm.White).DrawBox(true)
	inner := box.Inset(2).Color(batterm.Blue0, batterm.Yellow3)
	inner.Font(batterm.FontSet).Putfs(title)
	_, rest := inner.SplitVertically(4)
	line, _ := rest.SplitVertically(2)
	p.Render(line)
}

func (a *app) showRoster() (scene, error) {
	done := false
	search := batterm.CreateInputField(batterm.InputFieldCallbacks{
		OnConfirm: func(string) {
			if e := a.roster.SelectedEntry(); e != nil {
				a.status = fmt.Sprintf("(picked %s)", e.(bat).name)
			}
			done = true
		},
		OnCancel: func() { done = true },
	})
	a.roster.OnActivate = func(e batterm.ListEntry) {
		a.status = fmt.Sprintf("(picked %s)", e.(bat).name)
		done = true
	}
	nav := a.roster.Keymap()
	err := a.interact(
		func(b batterm.Brush, m *batterm.Menu) { a.drawRoster(b, m, search) },
		func(k batterm.KeyEvent) {
			if nav.HandleKey(k) {
				return
			}
			search.HandleKey(k)
			a.roster.SetSearchText(search.Text())
		},
		func() bool { return done },
	)
	a.roster.SetSearchText("")
	return a.welcome, err
}

func (a *app) drawRoster(b batterm.Brush, m *batterm.Menu, search *batterm.InputField) {
	frame := b.Inset(1)
	frame.Fill(batterm.FSem{}.WithBg(batterm.Dark[1]))
	frame.Color(batterm.Dark[1], batterm.Green3).DrawBox(false)
	body := frame.Inset(1).Color(batterm.Dark[1], batterm.Light[2])
	head, rest := body.SplitVertically(2)
	head.At(batterm.Point{X: 1}).Fg(batterm.Green3).Putfs("bat roster: type to search, enter to pick")
	list, foot := rest.SplitVertically(rest.Size().Y - 2)
	a.roster.Render(list.Inset(1), m)
	label := foot.At(batterm.Point{X: 1}).Fg(batterm.Green2).Putfs("search: ")
	_, fieldArea := foot.SplitHorizontally(label.Cursor().X)
	search.Render(fieldArea.Color(batterm.Dark[2], batterm.White))
}

// screenshot draws the welcome screen at the given terminal size and
// writes it as PNG.
func (a *app) screenshot(path string, term batterm.Size, scale int) error {
	s := batterm.NewScreen(a.swatch.DefaultBg, a.swatch.DefaultFg)
	s.Resize(term)
	var next scene
	a.drawWelcome(s.Brush(), batterm.NewMenu(), &next)
	buf, size := batterm.RenderScreen(s, a.atlases, a.swatch)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := batterm.WriteSnapshotPNG(f, buf, size, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
