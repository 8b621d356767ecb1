package batterm

func (b Brush) BevelTop(color uint8) {
	if b.rect.Dx() == 0 || b.rect.Dy() == 0 {
		return
	}
	f := FSem{Bevels: FBevels{Top: Some(color)}}
	for x := b.rect.Min.X; x < b.rect.Max.X; x++ {
		b.Draw(Point{x, b.rect.Min.Y}, f)
	}
}

func (b Brush) BevelLeft(color uint8) {
	if b.rect.Dx() == 0 || b.rect.Dy() == 0 {
		return
	}
	f := FSem{Bevels: FBevels{Left: Some(color)}}
	for y := b.rect.Min.Y; y < b.rect.Max.Y; y++ {
		b.Draw(Point{b.rect.Min.X, y}, f)
	}
}

func (b Brush) BevelRight(color uint8) {
	if b.rect.Dx() == 0 || b.rect.Dy() == 0 {
		return
	}
	f := FSem{Bevels: FBevels{Right: Some(color)}}
	for y := b.rect.Min.Y; y < b.rect.Max.Y; y++ {
		b.Draw(Point{b.rect.Max.X - 1, y}, f)
	}
}

func (b Brush) BevelBottom(color uint8) {
	if b.rect.Dx() == 0 || b.rect.Dy() == 0 {
		return
	}
	f := FSem{Bevels: FBevels{Bottom: Some(color)}}
	for x := b.rect.Min.X; x < b.rect.Max.X; x++ {
		b.Draw(Point{x, b.rect.Max.Y - 1}, f)
	}
}

// BevelW95 draws a raised (or sunken, with the colors swapped) frame.
func (b Brush) BevelW95(topLeft, bottomRight uint8) {
	b.BevelTop(topLeft)
	b.BevelLeft(topLeft)
	b.BevelRight(bottomRight)
	b.BevelBottom(bottomRight)
}

// BevelW95Sleek is BevelW95 without top and bottom edges.
func (b Brush) BevelW95Sleek(left, right uint8) {
	b.BevelLeft(left)
	b.BevelRight(right)
}
