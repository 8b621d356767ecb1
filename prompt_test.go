package batterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextPrompt(t *testing.T) {
	var answer string
	p := CreateTextPrompt("name?", PromptCallbacks{OnConfirm: func(s string) { answer = s }})
	p.SetText("bat")
	assert.True(t, p.HandleKey(KeyEvent{Code: KeyS, Char: Some('s')}))
	assert.Equal(t, "bats", p.Text())
	p.HandleKey(KeyEvent{Code: KeyEnter, Char: Some('\r')})
	assert.Equal(t, "bats", answer)

	s := NewScreen(Black, White)
	s.Resize(Size{16, 4})
	p.Render(s.Brush())
	assert.Equal(t, "name? bats\n", ScreenText(s))
	c, _ := s.Cell(Point{10, 2})
	assert.Equal(t, CreateInputField(InputFieldCallbacks{}).CursorBg, c.Bg)
}

func TestCharPrompt(t *testing.T) {
	var answer string
	cancelled := false
	p := CreateCharPrompt("quit?", "yn", PromptCallbacks{
		OnConfirm: func(s string) { answer = s },
		OnCancel:  func() { cancelled = true },
	})
	assert.False(t, p.HandleKey(KeyEvent{Code: KeyX, Char: Some('x')}))
	assert.True(t, p.HandleKey(KeyEvent{Code: KeyY, Char: Some('y')}))
	assert.Equal(t, "y", answer)
	assert.Equal(t, "", p.Text())

	p.HandleKey(KeyEvent{Code: KeyEscape})
	assert.True(t, cancelled)

	s := NewScreen(Black, White)
	s.Resize(Size{16, 2})
	p.Render(s.Brush())
	assert.Equal(t, "quit? [yn]\n", ScreenText(s))
}
