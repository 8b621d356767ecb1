// Package termhost previews batterm screens inside a terminal. Every
// terminal cell shows two pixels of the buffer with a half block, each
// pixel averaging the buffer area it covers.
package termhost

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/cellux/batterm"
)

// pixels one terminal cell stands for when sizing the buffer
var cellPixels = batterm.Size{X: 8, Y: 16}

var _ batterm.Host = (*Host)(nil)

type Host struct {
	newScreen func() (tcell.Screen, error)
	screen    tcell.Screen
	events    chan tcell.Event
	quit      chan struct{}
	open      bool

	pointer    batterm.Point
	hasPointer bool
	down       [2]bool
	scrollY    float64
}

// New returns a host drawing on the controlling terminal.
func New() *Host {
	return &Host{newScreen: tcell.NewScreen}
}

// NewWithScreen returns a host drawing on s, which Open initializes.
func NewWithScreen(s tcell.Screen) *Host {
	return &Host{newScreen: func() (tcell.Screen, error) { return s, nil }}
}

// Open takes over the terminal. The requested size is ignored, the
// terminal decides.
func (h *Host) Open(windowPx batterm.Size, title string) error {
	s, err := h.newScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.SetTitle(title)
	s.EnableMouse()
	s.HideCursor()
	s.Clear()
	h.screen = s
	h.events = make(chan tcell.Event, 64)
	h.quit = make(chan struct{})
	h.open = true
	go h.poll(s, h.events, h.quit)
	return nil
}

func (h *Host) poll(s tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

func (h *Host) IsOpen() bool {
	return h.open
}

func (h *Host) PixelSize() batterm.Size {
	if h.screen == nil {
		return batterm.Size{}
	}
	cols, rows := h.screen.Size()
	return batterm.Size{X: cols * cellPixels.X, Y: rows * cellPixels.Y}
}

// Pump waits for the first event, then takes every event already queued.
func (h *Host) Pump(in *batterm.HostInput, timeout time.Duration) error {
	if h.screen == nil {
		return fmt.Errorf("terminal is not open")
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ev := <-h.events:
		h.handle(in, ev)
	case <-timer.C:
	}
drain:
	for {
		select {
		case ev := <-h.events:
			h.handle(in, ev)
		default:
			break drain
		}
	}

	size := h.PixelSize()
	p := batterm.PointerState{
		Inside:     h.hasPointer,
		PosX:       float64(h.pointer.X*cellPixels.X + cellPixels.X/2),
		PosY:       float64(h.pointer.Y*cellPixels.Y + cellPixels.Y/2),
		WindowSize: size,
		ScrollY:    in.Pointer.ScrollY + h.scrollY,
	}
	copy(p.Down[:], h.down[:])
	in.Pointer = p
	h.scrollY = 0
	return nil
}

func (h *Host) handle(in *batterm.HostInput, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventKey:
		if isQuit(ev) {
			h.open = false
			return
		}
		k := translateKey(ev)
		in.Keyboard.Press(k.press)
		if r, ok := k.typed.Get(); ok {
			in.Keyboard.Type(r)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.pointer = batterm.Point{X: x, Y: y}
		h.hasPointer = true
		buttons := ev.Buttons()
		h.down[batterm.MouseLeft] = buttons&tcell.Button1 != 0
		h.down[batterm.MouseRight] = buttons&tcell.Button2 != 0
		if buttons&tcell.WheelUp != 0 {
			h.scrollY++
		}
		if buttons&tcell.WheelDown != 0 {
			h.scrollY--
		}
	}
}

// average blends the pixels of r in linear light.
func average(buf []uint32, stride int, r batterm.Rect) tcell.Color {
	var sr, sg, sb float64
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := buf[y*stride+x]
			lr, lg, lb := colorful.Color{
				R: float64(uint8(c>>16)) / 255,
				G: float64(uint8(c>>8)) / 255,
				B: float64(uint8(c)) / 255,
			}.LinearRgb()
			sr += lr
			sg += lg
			sb += lb
			n++
		}
	}
	if n == 0 {
		return tcell.ColorBlack
	}
	avg := colorful.LinearRgb(sr/float64(n), sg/float64(n), sb/float64(n))
	cr, cg, cb := avg.Clamped().RGB255()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}

// span is the part of [0,total) covered by slot i of n.
func span(i, n, total int) (int, int) {
	lo := i * total / n
	hi := (i + 1) * total / n
	if hi <= lo {
		hi = min(lo+1, total)
	}
	return lo, hi
}

func (h *Host) Present(buf []uint32, bufSize batterm.Size) error {
	if h.screen == nil {
		return fmt.Errorf("terminal is not open")
	}
	if len(buf) != bufSize.X*bufSize.Y {
		return fmt.Errorf("buffer holds %d pixels, want %d", len(buf), bufSize.X*bufSize.Y)
	}
	cols, rows := h.screen.Size()
	if bufSize.X == 0 || bufSize.Y == 0 || cols == 0 || rows == 0 {
		return nil
	}
	for cy := range rows {
		for cx := range cols {
			x0, x1 := span(cx, cols, bufSize.X)
			ty0, ty1 := span(cy*2, rows*2, bufSize.Y)
			by0, by1 := span(cy*2+1, rows*2, bufSize.Y)
			top := average(buf, bufSize.X, batterm.Rect{Min: batterm.Point{X: x0, Y: ty0}, Max: batterm.Point{X: x1, Y: ty1}})
			bottom := average(buf, bufSize.X, batterm.Rect{Min: batterm.Point{X: x0, Y: by0}, Max: batterm.Point{X: x1, Y: by1}})
			if top == bottom {
				h.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(bottom))
				continue
			}
			h.screen.SetContent(cx, cy, '▀', nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
	h.screen.Show()
	return nil
}

func (h *Host) Close() error {
	if h.screen == nil {
		return nil
	}
	close(h.quit)
	h.screen.Fini()
	h.screen = nil
	h.open = false
	return nil
}
