package batterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(kb *Keyboard) []KeyEvent {
	var out []KeyEvent
	for {
		e, ok := kb.Getch()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

func TestCorrelatePairsPressWithRune(t *testing.T) {
	cases := []struct {
		name  string
		press RawKey
		typed rune
		want  KeyEvent
	}{
		{"letter", RawKey{Code: KeyA}, 'a', KeyEvent{Code: KeyA, Char: Some('a')}},
		{"shifted letter", RawKey{Code: KeyA, Shift: true}, 'A', KeyEvent{Code: KeyA, Shift: true, Char: Some('A')}},
		{"shifted digit", RawKey{Code: Key1, Shift: true}, '!', KeyEvent{Code: KeyExclamation, Char: Some('!')}},
		{"shifted punctuation", RawKey{Code: KeySlash, Shift: true}, '?', KeyEvent{Code: KeyQuestionMark, Char: Some('?')}},
		{"enter", RawKey{Code: KeyEnter}, '\r', KeyEvent{Code: KeyEnter}},
		{"tab", RawKey{Code: KeyTab}, '\t', KeyEvent{Code: KeyTab}},
		{"keypad digit", RawKey{Code: Key5, Keypad: true}, '5', KeyEvent{Code: Key5, Char: Some('5')}},
		{"control letter", RawKey{Code: KeyA, Control: true}, 'a', KeyEvent{Code: KeyA, Control: true, Char: Some('a')}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kb := NewKeyboard()
			kb.Press(tc.press)
			kb.Type(tc.typed)
			kb.Correlate()
			assert.Equal(t, []KeyEvent{tc.want}, drain(kb))
		})
	}
}

func TestCorrelateReportsBarePresses(t *testing.T) {
	kb := NewKeyboard()
	kb.Press(RawKey{Code: KeyF1})
	kb.Press(RawKey{Code: KeyC, Control: true})
	kb.Press(RawKey{Code: Key2, Shift: true})
	kb.Press(RawKey{Code: KeyUnknown})
	kb.Correlate()

	got := drain(kb)
	require.Len(t, got, 3)
	assert.Equal(t, "F1", got[0].Name())
	assert.Equal(t, "C-c", got[1].Name())
	assert.Equal(t, "@", got[2].Name())
	assert.False(t, got[2].Shift)
}

func TestCorrelateGivesUpOnLoneRunes(t *testing.T) {
	kb := NewKeyboard()
	kb.Type('q')
	kb.Correlate()
	assert.Empty(t, drain(kb))
	kb.Correlate()
	assert.Empty(t, drain(kb))
	kb.Correlate()
	assert.Equal(t, []KeyEvent{{Code: KeyQ, Char: Some('q')}}, drain(kb))
}

func TestCorrelateLateRuneMeetsItsPress(t *testing.T) {
	kb := NewKeyboard()
	kb.Type('x')
	kb.Correlate()
	kb.Press(RawKey{Code: KeyX})
	kb.Correlate()
	assert.Equal(t, []KeyEvent{{Code: KeyX, Char: Some('x')}}, drain(kb))
}

func TestCorrelateDropsUnguessableRunes(t *testing.T) {
	kb := NewKeyboard()
	kb.Type('é')
	for range 3 {
		kb.Correlate()
	}
	assert.Empty(t, drain(kb))
}

func TestKeyboardReset(t *testing.T) {
	kb := NewKeyboard()
	kb.Press(RawKey{Code: KeyA})
	kb.Type('b')
	kb.Reset()
	kb.Correlate()
	assert.Empty(t, drain(kb))
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "C-M-S-x", KeyEvent{Code: KeyX, Control: true, Alt: true, Shift: true}.Name())
	assert.Equal(t, "Space", KeyEvent{Code: KeySpace}.Name())
	assert.Equal(t, "[", KeyEvent{Code: KeyLeftBracket}.Name())

	for _, s := range []string{"a", "7", "F12", "PageDown", "?", "Escape"} {
		k, ok := ParseKeycode(s)
		require.True(t, ok, s)
		assert.Equal(t, s, k.String())
	}
	k, ok := ParseKeycode("Q")
	assert.True(t, ok)
	assert.Equal(t, KeyQ, k)
	_, ok = ParseKeycode("Hyper")
	assert.False(t, ok)
}
