package batterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func glyphsOf(lay Layout) map[TextPos]rune {
	out := make(map[TextPos]rune)
	for _, p := range lay.Glyphs {
		g, _ := p.Char.Glyph.Get()
		out[TextPos{Col: p.Col, Line: p.Line}] = DecodeByte(byte(g))
	}
	return out
}

func TestToFString(t *testing.T) {
	fs := ToFString("ab")
	require.Len(t, fs, 2)
	assert.Equal(t, Some[uint16]('a'), fs[0].Glyph)
	assert.False(t, fs[0].Fg.IsSome())
	assert.Equal(t, "ab", fs.String())
}

func TestToFStringClusters(t *testing.T) {
	fs := ToFString("e\u0301x")
	require.Len(t, fs, 2)
	assert.Equal(t, "ex", fs.String())
}

func TestToFStringEscapes(t *testing.T) {
	s := FormatColor(FormatBg, Blue1) + "a" + FormatColor(FormatFg, Red3) + "b" + FormatReset(FormatBg) + "c"
	fs := ToFString(s)
	require.Len(t, fs, 3)
	assert.Equal(t, FChar{Glyph: Some[uint16]('a'), Bg: Some(Blue1)}, fs[0])
	assert.Equal(t, FChar{Glyph: Some[uint16]('b'), Bg: Some(Blue1), Fg: Some(Red3)}, fs[1])
	assert.Equal(t, FChar{Glyph: Some[uint16]('c'), Fg: Some(Red3)}, fs[2])
}

func TestLayoutWrapsWords(t *testing.T) {
	lay := Preformatter{Width: Some(10)}.Layout(ToFString("hello world foo"))
	assert.Equal(t, 2, lay.Lines)
	g := glyphsOf(lay)
	assert.Equal(t, 'h', g[TextPos{0, 0}])
	assert.Equal(t, 'o', g[TextPos{4, 0}])
	assert.Equal(t, 'w', g[TextPos{0, 1}])
	assert.Equal(t, 'f', g[TextPos{6, 1}])
	assert.Len(t, lay.Glyphs, 5+9)
	assert.Equal(t, TextPos{Col: 9, Line: 1}, lay.End)
}

func TestLayoutForcedBreaks(t *testing.T) {
	lay := Preformatter{Width: Some(10)}.Layout(ToFString("a\nb"))
	g := glyphsOf(lay)
	assert.Equal(t, 'a', g[TextPos{0, 0}])
	assert.Equal(t, 'b', g[TextPos{0, 1}])
	assert.Equal(t, TextPos{Col: 1, Line: 1}, lay.End)

	lay = Preformatter{Width: Some(10)}.Layout(ToFString("a\n"))
	assert.Equal(t, TextPos{Col: 0, Line: 1}, lay.End)
	assert.Len(t, lay.Glyphs, 1)

	lay = Preformatter{Width: Some(10)}.Layout(ToFString("a\n\nb"))
	assert.Equal(t, 'b', glyphsOf(lay)[TextPos{0, 2}])
}

func TestLayoutSplitsLongWords(t *testing.T) {
	lay := Preformatter{Width: Some(4)}.Layout(ToFString("abcdefghij"))
	assert.Equal(t, 3, lay.Lines)
	g := glyphsOf(lay)
	assert.Equal(t, 'a', g[TextPos{0, 0}])
	assert.Equal(t, 'e', g[TextPos{0, 1}])
	assert.Equal(t, 'i', g[TextPos{0, 2}])
	assert.Equal(t, TextPos{Col: 2, Line: 2}, lay.End)
}

func TestLayoutFirstWidth(t *testing.T) {
	lay := Preformatter{FirstWidth: Some(0), Width: Some(8)}.Layout(ToFString("abc"))
	g := glyphsOf(lay)
	assert.Equal(t, 'a', g[TextPos{0, 1}])
	assert.Equal(t, 2, lay.Lines)
}

func TestLayoutTrailingSpaceMovesCursor(t *testing.T) {
	lay := Preformatter{Width: Some(10)}.Layout(ToFString("ab  "))
	assert.Len(t, lay.Glyphs, 2)
	assert.Equal(t, TextPos{Col: 4, Line: 0}, lay.End)

	lay = Preformatter{Width: Some(3)}.Layout(ToFString("ab  "))
	assert.Equal(t, TextPos{Col: 3, Line: 0}, lay.End)
}

func TestLayoutUnbounded(t *testing.T) {
	lay := Preformatter{}.Layout(ToFString("a very long line of text"))
	assert.Equal(t, 1, lay.Lines)
	assert.Equal(t, TextPos{Col: 24, Line: 0}, lay.End)
}

func TestLayoutJustification(t *testing.T) {
	cols := func(j Justification) []int {
		lay := Preformatter{Width: Some(10), Justification: j}.Layout(ToFString("abc"))
		var out []int
		for _, p := range lay.Glyphs {
			out = append(out, p.Col)
		}
		return out
	}
	assert.Equal(t, []int{0, 1, 2}, cols(JustifyLeft))
	assert.Equal(t, []int{3, 4, 5}, cols(JustifyCenter))
	assert.Equal(t, []int{7, 8, 9}, cols(JustifyRight))
}

func TestLayoutDropsTrailingSpaces(t *testing.T) {
	lay := Preformatter{Width: Some(6)}.Layout(ToFString("ab   cdefg"))
	g := glyphsOf(lay)
	assert.Len(t, lay.Glyphs, 7)
	assert.Equal(t, 'c', g[TextPos{0, 1}])
}
