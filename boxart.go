package batterm

import (
	"cmp"
	"fmt"
	"slices"
)

// A box mask holds two bits per edge, bits 7..0 being N E S W.
// 00 is no line, 01 a single line, 10 and 11 a double line.
var boxChars = map[uint8]uint8{
	0b01_00_01_00: 0xb3,
	0b11_00_01_00: 0xb3,
	0b01_00_11_00: 0xb3,
	0b01_00_01_01: 0xb4,
	0b01_00_01_11: 0xb5,
	0b11_00_11_01: 0xb6,
	0b01_00_11_01: 0xb6,
	0b11_00_01_01: 0xb6,
	0b00_00_11_01: 0xb7,
	0b00_00_01_11: 0xb8,
	0b11_00_11_11: 0xb9,
	0b01_00_11_11: 0xb9,
	0b11_00_01_11: 0xb9,
	0b11_00_11_00: 0xba,
	0b00_00_11_11: 0xbb,
	0b11_00_00_11: 0xbc,
	0b11_00_00_01: 0xbd,
	0b01_00_00_11: 0xbe,
	0b00_00_01_01: 0xbf,
	0b01_01_00_00: 0xc0,
	0b01_01_00_01: 0xc1,
	0b01_11_00_01: 0xc1,
	0b01_01_00_11: 0xc1,
	0b00_01_01_01: 0xc2,
	0b00_11_01_01: 0xc2,
	0b00_01_01_11: 0xc2,
	0b01_01_01_00: 0xc3,
	0b00_01_00_01: 0xc4,
	0b00_11_00_01: 0xc4,
	0b00_01_00_11: 0xc4,
	0b01_01_01_01: 0xc5,
	0b11_01_01_01: 0xc5,
	0b01_11_01_01: 0xc5,
	0b01_01_11_01: 0xc5,
	0b01_01_01_11: 0xc5,
	0b11_11_01_01: 0xc5,
	0b01_11_11_01: 0xc5,
	0b01_01_11_11: 0xc5,
	0b11_01_01_11: 0xc5,
	0b01_11_01_00: 0xc6,
	0b11_01_11_00: 0xc7,
	0b01_01_11_00: 0xc7,
	0b11_01_01_00: 0xc7,
	0b11_11_00_00: 0xc8,
	0b00_11_11_00: 0xc9,
	0b11_11_00_11: 0xca,
	0b11_01_00_11: 0xca,
	0b11_11_00_01: 0xca,
	0b00_11_11_11: 0xcb,
	0b00_01_11_11: 0xcb,
	0b00_11_11_01: 0xcb,
	0b11_11_11_00: 0xcc,
	0b01_11_11_00: 0xcc,
	0b11_11_01_00: 0xcc,
	0b00_11_00_11: 0xcd,
	0b11_11_11_11: 0xce,
	0b01_11_11_11: 0xce,
	0b11_01_11_11: 0xce,
	0b11_11_01_11: 0xce,
	0b11_11_11_01: 0xce,
	0b01_11_00_11: 0xcf,
	0b11_01_00_01: 0xd0,
	0b00_11_01_11: 0xd1,
	0b00_01_11_01: 0xd2,
	0b11_01_00_00: 0xd3,
	0b01_11_00_00: 0xd4,
	0b00_11_01_00: 0xd5,
	0b00_01_11_00: 0xd6,
	0b11_01_11_01: 0xd7,
	0b01_11_01_11: 0xd8,
	0b01_00_00_01: 0xd9,
	0b00_01_01_00: 0xda,
}

// Lone edges have no glyph of their own and borrow the closest one.
var boxApproxChars = map[uint8]uint8{
	0b01_00_00_00: 0xc1,
	0b00_00_01_00: 0xc2,
	0b11_00_00_00: 0xd0,
	0b00_00_11_00: 0xd2,
	0b00_01_00_00: 0xc3,
	0b00_00_00_01: 0xb4,
	0b00_11_00_00: 0xc6,
	0b00_00_00_11: 0xb5,
}

// BoxChar returns the CP437 glyph joining the edges of mask. The empty
// mask has no glyph.
func BoxChar(mask uint8) (uint8, bool) {
	canon := mask | ((mask & 0b10_10_10_10) >> 1)
	if canon == 0 {
		return 0, false
	}
	g, ok := boxChars[canon]
	if !ok {
		g, ok = boxApproxChars[canon]
	}
	if !ok {
		panic(fmt.Sprintf("no box glyph for mask %08b", mask))
	}
	return g, true
}

type BoxSide uint8

const (
	BoxUp BoxSide = iota
	BoxRight
	BoxDown
	BoxLeft
)

// BoxArt accumulates line edges per character cell so that crossing and
// adjoining lines merge into junction glyphs.
type BoxArt struct {
	masks map[Point]uint8
}

func NewBoxArt() *BoxArt {
	return &BoxArt{masks: make(map[Point]uint8)}
}

// Add marks an edge leaving the character cell at the given side.
func (a *BoxArt) Add(at Point, side BoxSide, double bool) {
	norm := 3 - uint8(side)
	bit := 2 * norm
	if double {
		bit++
	}
	a.masks[at] |= 1 << bit
}

func (a *BoxArt) Mask(at Point) uint8 {
	return a.masks[at]
}

// Rect returns the bounds of every touched cell.
func (a *BoxArt) Rect() Rect {
	var r Rect
	for p := range a.masks {
		r = r.Union(Rect{Min: p, Max: p.Add(Point{1, 1})})
	}
	return r
}

// DrawBox walks the perimeter of r. A rectangle one cell wide or high
// becomes a line.
func (a *BoxArt) DrawBox(r Rect, double bool) {
	r = r.Canon()
	if r.Dx() <= 1 {
		for y := r.Min.Y; y < r.Max.Y-1; y++ {
			a.Add(Point{r.Min.X, y}, BoxDown, double)
		}
		for y := r.Min.Y + 1; y < r.Max.Y; y++ {
			a.Add(Point{r.Min.X, y}, BoxUp, double)
		}
		return
	}
	if r.Dy() <= 1 {
		for x := r.Min.X; x < r.Max.X-1; x++ {
			a.Add(Point{x, r.Min.Y}, BoxRight, double)
		}
		for x := r.Min.X + 1; x < r.Max.X; x++ {
			a.Add(Point{x, r.Min.Y}, BoxLeft, double)
		}
		return
	}
	top, bottom := r.Min.Y, r.Max.Y-1
	left, right := r.Min.X, r.Max.X-1
	for x := left; x < right; x++ {
		a.Add(Point{x, top}, BoxRight, double)
		a.Add(Point{x, bottom}, BoxRight, double)
	}
	for x := left + 1; x <= right; x++ {
		a.Add(Point{x, top}, BoxLeft, double)
		a.Add(Point{x, bottom}, BoxLeft, double)
	}
	for y := top; y < bottom; y++ {
		a.Add(Point{left, y}, BoxDown, double)
		a.Add(Point{right, y}, BoxDown, double)
	}
	for y := top + 1; y <= bottom; y++ {
		a.Add(Point{left, y}, BoxUp, double)
		a.Add(Point{right, y}, BoxUp, double)
	}
}

// DrawLine draws a horizontal or vertical line through both end points.
// Diagonal lines are ignored.
func (a *BoxArt) DrawLine(from, to Point, double bool) {
	if from.X != to.X && from.Y != to.Y {
		return
	}
	r := Rect{Min: from, Max: to}.Canon()
	r.Max = r.Max.Add(Point{1, 1})
	a.DrawBox(r, double)
}

// Draw puts the glyphs through b, one character per cell of the art.
func (a *BoxArt) Draw(b Brush) {
	cs := b.FontMode().CharSize()
	points := make([]Point, 0, len(a.masks))
	for p := range a.masks {
		points = append(points, p)
	}
	slices.SortFunc(points, func(p, q Point) int {
		if c := cmp.Compare(p.Y, q.Y); c != 0 {
			return c
		}
		return cmp.Compare(p.X, q.X)
	})
	for _, p := range points {
		if g, ok := BoxChar(a.masks[p]); ok {
			b.At(Point{p.X * cs.X, p.Y * cs.Y}).Putch(uint16(g))
		}
	}
}
