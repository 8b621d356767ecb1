package batterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeRune(t *testing.T) {
	cases := map[rune]byte{
		'A': 0x41,
		'~': 0x7e,
		'─': 0xc4,
		'╬': 0xce,
		'█': 0xdb,
		'☺': 0x01,
		'▼': 0x1f,
		'⌂': 0x7f,
		'é': 0x82,
		'€': '?',
		'日': '?',
	}
	for r, want := range cases {
		assert.Equal(t, want, EncodeRune(r), "%q", r)
	}
}

func TestDecodeByteInvertsEncode(t *testing.T) {
	for b := 1; b < 256; b++ {
		r := DecodeByte(byte(b))
		assert.Equal(t, byte(b), EncodeRune(r), "byte %#x decodes to %q", b, r)
	}
}

func TestEncodeString(t *testing.T) {
	assert.Equal(t, []byte{'h', 0x82, 0xb3}, EncodeString("hé│"))
}
