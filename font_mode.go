package batterm

import "fmt"

// FontMode selects how a glyph is laid out over screen cells.
type FontMode uint8

const (
	FontNormal FontMode = iota // 1x2 cells, 8x16 glyph
	FontSmall                  // 1x1 cells, 8x8 glyph
	FontSet                    // 2x2 cells, normal glyph centered in a 16x16 block
	FontFat                    // 2x2 cells, 16x16 glyph
)

func (m FontMode) String() string {
	switch m {
	case FontNormal:
		return "normal"
	case FontSmall:
		return "small"
	case FontSet:
		return "set"
	case FontFat:
		return "fat"
	}
	return fmt.Sprintf("FontMode(%d)", m)
}

// ParseFontMode is the inverse of String.
func ParseFontMode(s string) (FontMode, error) {
	for _, m := range []FontMode{FontNormal, FontSmall, FontSet, FontFat} {
		if m.String() == s {
			return m, nil
		}
	}
	return FontNormal, fmt.Errorf("unknown font mode: %q", s)
}

// CharSize is the number of cells one character covers.
func (m FontMode) CharSize() Size {
	switch m {
	case FontSmall:
		return Size{1, 1}
	case FontSet, FontFat:
		return Size{2, 2}
	default:
		return Size{1, 2}
	}
}

type charPart struct {
	offset Point
	kind   SemKind
}

var (
	normalParts = []charPart{{Point{0, 0}, SemTopHalf}, {Point{0, 1}, SemBottomHalf}}
	smallParts  = []charPart{{Point{0, 0}, SemSmall}}
	setParts    = []charPart{
		{Point{0, 0}, SemSetTL}, {Point{1, 0}, SemSetTR},
		{Point{0, 1}, SemSetBL}, {Point{1, 1}, SemSetBR},
	}
	fatParts = []charPart{
		{Point{0, 0}, SemFatTL}, {Point{1, 0}, SemFatTR},
		{Point{0, 1}, SemFatBL}, {Point{1, 1}, SemFatBR},
	}
)

func (m FontMode) parts() []charPart {
	switch m {
	case FontSmall:
		return smallParts
	case FontSet:
		return setParts
	case FontFat:
		return fatParts
	default:
		return normalParts
	}
}

// DrawChar emits the cell draws making up one character at the given point.
func (m FontMode) DrawChar(d Drawable, at Point, f FChar) {
	for _, p := range m.parts() {
		d.Draw(at.Add(p.offset), f.Sem(p.kind))
	}
}
