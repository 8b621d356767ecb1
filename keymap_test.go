package batterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKeyName(t *testing.T) {
	cases := map[string]string{
		"a":         "a",
		"A":         "a",
		"S-C-A":     "C-S-a",
		"M-C-x":     "C-M-x",
		"F1":        "F1",
		"S-Tab":     "S-Tab",
		"C-M-S-Del": "C-M-S-Del",
		"X-y":       "X-y",
		"-":         "-",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeKeyName(in), in)
	}
}

func TestKeyMapDispatch(t *testing.T) {
	km := CreateKeyMap()
	var got []string
	km.BindFunc("S-C-Left", func() { got = append(got, "left") })
	km.Bind("q", func(e KeyEvent) bool {
		got = append(got, "q")
		return false
	})

	assert.True(t, km.Has(KeyEvent{Code: KeyLeft, Control: true, Shift: true}))
	assert.True(t, km.HandleKey(KeyEvent{Code: KeyLeft, Control: true, Shift: true}))
	assert.False(t, km.HandleKey(KeyEvent{Code: KeyQ}))
	assert.False(t, km.HandleKey(KeyEvent{Code: KeyW}))
	assert.Equal(t, []string{"left", "q"}, got)
}
