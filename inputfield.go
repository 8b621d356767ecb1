package batterm

import (
	"slices"
	"unicode"
)

type InputFieldCallbacks struct {
	OnConfirm func(text string)
	OnCancel  func()
}

// InputField is a single line text editor drawn one glyph per character.
type InputField struct {
	runes     []rune
	point     int
	left      int
	keymap    KeyMap
	callbacks InputFieldCallbacks
	undo      UndoList

	// CursorBg colors the character under the point.
	CursorBg uint8
}

func CreateInputField(callbacks InputFieldCallbacks) *InputField {
	f := &InputField{callbacks: callbacks, CursorBg: LtGray1}
	f.initKeymap()
	return f
}

func (f *InputField) SetCallbacks(callbacks InputFieldCallbacks) {
	f.callbacks = callbacks
}

func (f *InputField) initKeymap() {
	f.keymap = CreateKeyMap()

	f.keymap.BindFunc("Left", func() { f.AdvanceColumn(-1) })
	f.keymap.BindFunc("Right", func() { f.AdvanceColumn(1) })
	f.keymap.BindFunc("Home", f.MoveToBOL)
	f.keymap.BindFunc("End", f.MoveToEOL)

	f.keymap.BindFunc("C-Left", f.WordLeft)
	f.keymap.BindFunc("C-Right", f.WordRight)
	f.keymap.BindFunc("M-b", f.WordLeft)
	f.keymap.BindFunc("M-f", f.WordRight)
	f.keymap.BindFunc("C-a", f.MoveToBOL)
	f.keymap.BindFunc("C-e", f.MoveToEOL)

	f.keymap.BindFunc("Backspace", func() { f.Backspace() })
	f.keymap.BindFunc("Delete", func() { f.DeleteRune() })
	f.keymap.BindFunc("C-k", func() { f.KillToEnd() })
	f.keymap.BindFunc("C-z", f.Undo)
	f.keymap.BindFunc("C-/", f.Undo)
	f.keymap.BindFunc("Enter", func() {
		if f.callbacks.OnConfirm != nil {
			f.callbacks.OnConfirm(f.Text())
		}
	})
	cancel := func() {
		if f.callbacks.OnCancel != nil {
			f.callbacks.OnCancel()
		}
	}
	f.keymap.BindFunc("Escape", cancel)
	f.keymap.BindFunc("C-g", cancel)
}

// HandleKey runs the binding of e, or inserts the character e typed.
func (f *InputField) HandleKey(e KeyEvent) bool {
	if f.keymap.HandleKey(e) {
		return true
	}
	if r, ok := e.Char.Get(); ok && !e.Control && !e.Alt {
		return f.OnChar(r)
	}
	return false
}

func (f *InputField) Keymap() KeyMap {
	return f.keymap
}

func (f *InputField) SetText(text string) {
	f.runes = []rune(text)
	f.point = len(f.runes)
	f.left = 0
	f.undo.Clear()
}

func (f *InputField) Text() string {
	return string(f.runes)
}

func (f *InputField) Length() int {
	return len(f.runes)
}

func (f *InputField) Point() int {
	return f.point
}

func (f *InputField) AtBOL() bool {
	return f.point == 0
}

func (f *InputField) AtEOL() bool {
	return f.point == len(f.runes)
}

func (f *InputField) CurrentRune() rune {
	if f.AtEOL() {
		return 0
	}
	return f.runes[f.point]
}

func (f *InputField) AdvanceColumn(amount int) {
	f.point = max(0, min(len(f.runes), f.point+amount))
}

func (f *InputField) MoveToBOL() {
	f.point = 0
}

func (f *InputField) MoveToEOL() {
	f.point = len(f.runes)
}

func isWordConstituent(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

func (f *InputField) WordLeft() {
	if !f.AtBOL() {
		f.AdvanceColumn(-1)
	}
	for !f.AtBOL() && !isWordConstituent(f.CurrentRune()) {
		f.AdvanceColumn(-1)
	}
	m := f.point
	for !f.AtBOL() && isWordConstituent(f.CurrentRune()) {
		f.AdvanceColumn(-1)
	}
	if f.point != m && !isWordConstituent(f.CurrentRune()) {
		f.AdvanceColumn(1)
	}
}

func (f *InputField) WordRight() {
	for !f.AtEOL() && !isWordConstituent(f.CurrentRune()) {
		f.AdvanceColumn(1)
	}
	for !f.AtEOL() && isWordConstituent(f.CurrentRune()) {
		f.AdvanceColumn(1)
	}
}

// edit runs change as one undoable step.
func (f *InputField) edit(change func()) {
	f.undo.Dispatch(func() UndoFunc {
		runes, point := slices.Clone(f.runes), f.point
		change()
		if slices.Equal(runes, f.runes) {
			return nil
		}
		return func() {
			f.runes, f.point = runes, point
		}
	})
}

func (f *InputField) Undo() {
	f.undo.UndoLastAction()
}

func (f *InputField) InsertRune(r rune) {
	if r == '\n' || r == '\r' {
		return
	}
	f.edit(func() {
		f.runes = slices.Insert(f.runes, f.point, r)
		f.AdvanceColumn(1)
	})
}

func (f *InputField) deleteRune() (deleted rune) {
	if f.AtEOL() {
		return 0
	}
	deleted = f.runes[f.point]
	f.runes = slices.Delete(f.runes, f.point, f.point+1)
	return deleted
}

func (f *InputField) DeleteRune() (deleted rune) {
	f.edit(func() { deleted = f.deleteRune() })
	return deleted
}

func (f *InputField) Backspace() (deleted rune) {
	if f.AtBOL() {
		return 0
	}
	f.edit(func() {
		f.AdvanceColumn(-1)
		deleted = f.deleteRune()
	})
	return deleted
}

func (f *InputField) KillToEnd() (deleted []rune) {
	if f.AtEOL() {
		return nil
	}
	f.edit(func() {
		deleted = slices.Clone(f.runes[f.point:])
		f.runes = f.runes[:f.point]
	})
	return deleted
}

// OnChar inserts a printable character.
func (f *InputField) OnChar(char rune) bool {
	if char < 32 || char == 0x7f {
		return false
	}
	f.InsertRune(char)
	return true
}

func (f *InputField) Reset() {
	f.runes = nil
	f.point = 0
	f.left = 0
	f.undo.Clear()
}

func (f *InputField) ensureCursorVisible(width int) {
	if f.point < f.left {
		f.left = f.point
	}
	if f.point >= f.left+width {
		f.left = f.point - width + 1
	}
	f.left = max(0, min(f.left, f.point))
}

// Render draws the visible part of the text on the first line of b,
// scrolled so the point stays in view.
func (f *InputField) Render(b Brush) {
	width := b.Size().X / b.FontMode().CharSize().X
	if width <= 0 || b.Size().Y < b.FontMode().CharSize().Y {
		return
	}
	f.ensureCursorVisible(width)

	b = b.At(Point{})
	for x := range width {
		idx := f.left + x
		r := ' '
		if idx < len(f.runes) {
			r = f.runes[idx]
		}
		ch := Char(uint16(EncodeRune(r)))
		if idx == f.point {
			ch = ch.WithBg(f.CursorBg)
		}
		b = b.PutChar(ch)
	}
}
