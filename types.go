package batterm

import (
	"image"
)

type Point = image.Point
type Size = image.Point
type Rect = image.Rectangle

// pointsIn visits every point of r in row-major order.
func pointsIn(r Rect, f func(Point)) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			f(Point{X: x, Y: y})
		}
	}
}

func rectOfSize(size Size) Rect {
	return Rect{Max: size}
}

func area(size Size) int {
	if size.X <= 0 || size.Y <= 0 {
		return 0
	}
	return size.X * size.Y
}
