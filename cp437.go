package batterm

import (
	"golang.org/x/text/encoding/charmap"
)

// glyphs shown for the control range of the code page
var cp437Controls = [32]rune{
	0x00, '☺', '☻', '♥', '♦', '♣', '♠', '•', '◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨', '↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
}

const cp437House = '⌂'

var cp437ControlIndex = func() map[rune]byte {
	m := make(map[rune]byte, len(cp437Controls))
	for i, r := range cp437Controls[1:] {
		m[r] = byte(i + 1)
	}
	m[cp437House] = 0x7f
	return m
}()

// EncodeRune maps r to its code page 437 byte. Runes outside the code page
// become '?'.
func EncodeRune(r rune) byte {
	if b, ok := cp437ControlIndex[r]; ok {
		return b
	}
	if b, ok := charmap.CodePage437.EncodeRune(r); ok {
		return b
	}
	return '?'
}

func EncodeString(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = append(out, EncodeRune(r))
	}
	return out
}

// DecodeByte returns the rune drawn for b. Control bytes decode to their
// pictorial glyphs.
func DecodeByte(b byte) rune {
	switch {
	case b > 0 && b < 0x20:
		return cp437Controls[b]
	case b == 0x7f:
		return cp437House
	}
	return charmap.CodePage437.DecodeByte(b)
}
