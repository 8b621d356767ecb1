package batterm

import (
	"github.com/rivo/uniseg"
)

// FormatEscape starts a color escape in formatted text. It is followed by
// a code rune (0 for bg, 1 for fg) and an argument rune holding the
// palette index. Arguments above 255 reset the color.
const FormatEscape = '￿'

const (
	FormatBg rune = 0
	FormatFg rune = 1
)

// FormatColor returns the escape setting bg (code FormatBg) or fg.
func FormatColor(code rune, color uint8) string {
	return string([]rune{FormatEscape, code, rune(color)})
}

// FormatReset returns the escape clearing bg or fg.
func FormatReset(code rune) string {
	return string([]rune{FormatEscape, code, 0x100})
}

type FString []FChar

// ToFString encodes s into code page 437 characters, one per grapheme
// cluster, applying color escapes as it goes.
func ToFString(s string) FString {
	var fs FString
	var bg, fg Opt[uint8]
	escape := 0
	var code rune
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		for _, r := range cluster {
			switch escape {
			case 0:
				if r == FormatEscape {
					escape = 1
					continue
				}
			case 1:
				code = r
				escape = 2
				continue
			case 2:
				arg := None[uint8]()
				if r <= 0xff {
					arg = Some(uint8(r))
				}
				switch code {
				case FormatBg:
					bg = arg
				case FormatFg:
					fg = arg
				}
				escape = 0
				continue
			}
			// the first rune of a cluster stands for the whole cluster
			fs = append(fs, FChar{Glyph: Some(uint16(EncodeRune(r))), Bg: bg, Fg: fg})
			break
		}
	}
	return fs
}

// String decodes the glyphs back into text.
func (fs FString) String() string {
	out := make([]rune, 0, len(fs))
	for _, c := range fs {
		g, ok := c.Glyph.Get()
		switch {
		case !ok:
			out = append(out, ' ')
		case g == '\n':
			out = append(out, '\n')
		default:
			out = append(out, DecodeByte(byte(g)))
		}
	}
	return string(out)
}

type Justification uint8

const (
	JustifyLeft Justification = iota
	JustifyCenter
	JustifyRight
)

// Preformatter breaks an FString into lines. Widths are in characters;
// absent widths never wrap.
type Preformatter struct {
	FirstWidth    Opt[int]
	Width         Opt[int]
	Justification Justification
}

// Placement puts one character at a column of a line. Columns of the first
// line are relative to where the text starts.
type Placement struct {
	Col  int
	Line int
	Char FChar
}

type TextPos struct {
	Col  int
	Line int
}

type Layout struct {
	Glyphs []Placement
	// End is where the next character would go.
	End   TextPos
	Lines int
}

// fword spans lhs..wsLhs (leading whitespace and the word itself) and
// wsLhs..rhs (trailing whitespace).
type fword struct {
	lhs, wsLhs, rhs int
	forceBreak      bool
}

type fline struct {
	lhs, rhs   int
	width      int
	forceBreak bool
}

func isSpace(c FChar) bool {
	g, ok := c.Glyph.Get()
	return ok && g == ' '
}

func isBreak(c FChar) bool {
	g, ok := c.Glyph.Get()
	return ok && g == '\n'
}

func (p Preformatter) width(line int) Opt[int] {
	if line == 0 {
		return p.FirstWidth.Or(p.Width)
	}
	return p.Width
}

func (p Preformatter) breakWords(fs FString) []fword {
	var words []fword
	i := 0
	for i < len(fs) {
		w := fword{lhs: i, wsLhs: i, rhs: i}
		for i < len(fs) && isSpace(fs[i]) {
			i++
		}
		if i < len(fs) && !isBreak(fs[i]) {
			for i < len(fs) && !isSpace(fs[i]) && !isBreak(fs[i]) {
				i++
			}
			w.wsLhs = i
			for i < len(fs) && isSpace(fs[i]) {
				i++
			}
		} else {
			w.wsLhs = i
		}
		w.rhs = i
		if i < len(fs) && isBreak(fs[i]) {
			w.forceBreak = true
			i++
		}
		words = append(words, w)
	}

	var split []fword
	for _, w := range words {
		if mw, ok := p.Width.Get(); ok && mw > 0 {
			for w.wsLhs-w.lhs > mw {
				split = append(split, fword{lhs: w.lhs, wsLhs: w.lhs + mw, rhs: w.lhs + mw})
				w.lhs += mw
			}
		}
		split = append(split, w)
	}

	out := split[:0]
	for _, w := range split {
		if w.rhs != w.lhs || w.forceBreak {
			out = append(out, w)
		}
	}
	return out
}

func (p Preformatter) breakLines(words []fword) []fline {
	var lines []fline
	i := 0
	for y := 0; i < len(words); y++ {
		line := fline{lhs: i, rhs: i}
		additional := 0
		for i < len(words) {
			w := words[i]
			wordLen := w.wsLhs - w.lhs
			if lim, ok := p.width(y).Get(); ok && line.width+additional+wordLen > lim {
				// a word wider than every line still has to go somewhere
				if line.rhs > line.lhs || y == 0 {
					break
				}
			}
			line.rhs++
			line.width += additional + wordLen
			additional = w.rhs - w.wsLhs
			i++
			if w.forceBreak {
				line.forceBreak = true
				break
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// Layout places every character of fs.
func (p Preformatter) Layout(fs FString) Layout {
	words := p.breakWords(fs)
	lines := p.breakLines(words)

	var lay Layout
	lay.Lines = len(lines)
	for y, line := range lines {
		x := 0
		if lim, ok := p.width(y).Get(); ok && lim > line.width {
			switch p.Justification {
			case JustifyRight:
				x = lim - line.width
			case JustifyCenter:
				x = (lim - line.width) / 2
			}
		}
		for wi := line.lhs; wi < line.rhs; wi++ {
			w := words[wi]
			rhs := w.rhs
			if wi == line.rhs-1 {
				rhs = w.wsLhs
			}
			for c := w.lhs; c < rhs; c++ {
				lay.Glyphs = append(lay.Glyphs, Placement{Col: x, Line: y, Char: fs[c]})
				x++
			}
		}
		if line.forceBreak {
			lay.End = TextPos{Col: 0, Line: y + 1}
			continue
		}
		// trailing whitespace is not drawn but still moves the cursor
		end := x
		if line.rhs > line.lhs {
			w := words[line.rhs-1]
			end += w.rhs - w.wsLhs
		}
		if lim, ok := p.width(y).Get(); ok {
			end = max(x, min(end, lim))
		}
		lay.End = TextPos{Col: end, Line: y}
	}
	return lay
}
