package batterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(f *InputField, s string) {
	for _, r := range s {
		f.HandleKey(KeyEvent{Code: KeyUnknown, Char: Some(r)})
	}
}

func TestInputFieldEditing(t *testing.T) {
	var confirmed string
	f := CreateInputField(InputFieldCallbacks{OnConfirm: func(s string) { confirmed = s }})
	typeText(f, "hello world")
	assert.Equal(t, "hello world", f.Text())
	assert.True(t, f.AtEOL())

	f.HandleKey(KeyEvent{Code: KeyBackspace})
	assert.Equal(t, "hello worl", f.Text())

	f.HandleKey(KeyEvent{Code: KeyA, Control: true})
	assert.Equal(t, 0, f.Point())
	f.HandleKey(KeyEvent{Code: KeyDelete})
	assert.Equal(t, "ello worl", f.Text())

	f.HandleKey(KeyEvent{Code: KeyRight})
	f.HandleKey(KeyEvent{Code: KeyK, Control: true})
	assert.Equal(t, "e", f.Text())

	f.HandleKey(KeyEvent{Code: KeyEnter, Char: Some('\r')})
	assert.Equal(t, "e", confirmed)
}

func TestInputFieldIgnoresControlChars(t *testing.T) {
	f := CreateInputField(InputFieldCallbacks{})
	assert.False(t, f.HandleKey(KeyEvent{Code: KeyX, Alt: true, Char: Some('x')}))
	assert.False(t, f.HandleKey(KeyEvent{Code: KeyUnknown, Char: Some('\x01')}))
	assert.Equal(t, "", f.Text())
}

func TestInputFieldWordMotion(t *testing.T) {
	f := CreateInputField(InputFieldCallbacks{})
	f.SetText("hello world")
	f.WordLeft()
	assert.Equal(t, 6, f.Point())
	f.WordLeft()
	assert.Equal(t, 0, f.Point())
	f.WordRight()
	assert.Equal(t, 5, f.Point())
	f.WordRight()
	assert.Equal(t, 11, f.Point())
}

func TestInputFieldCancel(t *testing.T) {
	cancelled := 0
	f := CreateInputField(InputFieldCallbacks{OnCancel: func() { cancelled++ }})
	f.HandleKey(KeyEvent{Code: KeyEscape})
	f.HandleKey(KeyEvent{Code: KeyG, Control: true})
	assert.Equal(t, 2, cancelled)
}

func TestInputFieldRender(t *testing.T) {
	s := NewScreen(Black, White)
	s.Resize(Size{8, 2})
	f := CreateInputField(InputFieldCallbacks{})
	f.SetText("abc")
	f.Render(s.Brush())

	assert.Equal(t, "abc\n", ScreenText(s))
	c, ok := s.Cell(Point{3, 0})
	require.True(t, ok)
	assert.Equal(t, f.CursorBg, c.Bg)
	c, _ = s.Cell(Point{0, 1})
	assert.Equal(t, Sem(SemBottomHalf, 'a'), c.Sem)
	assert.Equal(t, uint8(Black), c.Bg)
}

func TestInputFieldScrollsToPoint(t *testing.T) {
	s := NewScreen(Black, White)
	s.Resize(Size{4, 2})
	f := CreateInputField(InputFieldCallbacks{})
	f.SetText("abcdef")
	f.Render(s.Brush())
	assert.Equal(t, "def\n", ScreenText(s))

	f.MoveToBOL()
	f.Render(s.Brush())
	assert.Equal(t, "abcd\n", ScreenText(s))
}

func TestInputFieldUndo(t *testing.T) {
	f := CreateInputField(InputFieldCallbacks{})
	typeText(f, "ab")
	f.HandleKey(KeyEvent{Code: KeyBackspace})
	assert.Equal(t, "a", f.Text())

	f.HandleKey(KeyEvent{Code: KeyZ, Control: true})
	assert.Equal(t, "ab", f.Text())
	assert.Equal(t, 2, f.Point())
	f.HandleKey(KeyEvent{Code: KeySlash, Control: true})
	assert.Equal(t, "a", f.Text())

	f.HandleKey(KeyEvent{Code: KeyDelete})
	f.Undo()
	assert.Equal(t, "", f.Text())
	f.Undo()
	assert.Equal(t, "", f.Text())
}

func TestUndoListLimit(t *testing.T) {
	var u UndoList
	n := 0
	for range MaxUndo + 10 {
		u.Dispatch(func() UndoFunc {
			n++
			return func() { n-- }
		})
	}
	u.Dispatch(func() UndoFunc { return nil })
	assert.Equal(t, MaxUndo, u.Len())
	for u.UndoLastAction() {
	}
	assert.Equal(t, 10, n)
}
