package batterm

// SplitVertically cuts the brush at row y into a top and a bottom region.
// y is clamped to the brush height.
func (b Brush) SplitVertically(y int) (Brush, Brush) {
	w, h := b.rect.Dx(), b.rect.Dy()
	y = max(0, min(h, y))
	return b.Region(Rect{Max: Point{w, y}}), b.Region(Rect{Min: Point{0, y}, Max: Point{w, h}})
}

// SplitHorizontally cuts the brush at column x into a left and a right
// region.
func (b Brush) SplitHorizontally(x int) (Brush, Brush) {
	w, h := b.rect.Dx(), b.rect.Dy()
	x = max(0, min(w, x))
	return b.Region(Rect{Max: Point{x, h}}), b.Region(Rect{Min: Point{x, 0}, Max: Point{w, h}})
}

// ReshapeForFont shrinks the brush to a whole number of characters.
func (b Brush) ReshapeForFont() Brush {
	cs := b.font.CharSize()
	sz := b.rect.Size()
	sz.X -= sz.X % cs.X
	sz.Y -= sz.Y % cs.Y
	return b.Region(Rect{Max: sz})
}

// Inset shrinks the brush by n cells on every side.
func (b Brush) Inset(n int) Brush {
	r := b.rect.Inset(n)
	return b.Region(r)
}
