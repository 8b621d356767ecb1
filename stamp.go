package batterm

import (
	"cmp"
	"slices"
)

// Stamp is an unbounded sparse grid accumulating draws so they can be
// replayed onto another drawable later.
type Stamp struct {
	content map[Point]FSem
}

func NewStamp() *Stamp {
	return &Stamp{content: make(map[Point]FSem)}
}

func (s *Stamp) Draw(at Point, f FSem) {
	s.content[at] = f.SuperimposedOn(s.content[at])
}

func (s *Stamp) Len() int {
	return len(s.content)
}

// Bounds returns the smallest rectangle holding every populated point.
func (s *Stamp) Bounds() Rect {
	var r Rect
	first := true
	for p := range s.content {
		cell := Rect{Min: p, Max: p.Add(Point{1, 1})}
		if first {
			r = cell
			first = false
		} else {
			r = r.Union(cell)
		}
	}
	return r
}

// Points returns the populated points in row-major order.
func (s *Stamp) Points() []Point {
	points := make([]Point, 0, len(s.content))
	for p := range s.content {
		points = append(points, p)
	}
	slices.SortFunc(points, func(a, b Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return points
}

func (s *Stamp) Get(at Point) FSem {
	return s.content[at]
}

// StampOnto replays every populated cell onto d, offset by at.
func (s *Stamp) StampOnto(d Drawable, at Point) {
	for _, p := range s.Points() {
		d.Draw(p.Add(at), s.content[p])
	}
}
