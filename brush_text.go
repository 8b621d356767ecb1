package batterm

// Putch draws one glyph at the cursor and advances the cursor by one
// character.
func (b Brush) Putch(glyph uint16) Brush {
	return b.PutChar(Char(glyph))
}

// PutChar is Putch with per character color overrides.
func (b Brush) PutChar(f FChar) Brush {
	b.font.DrawChar(b, b.cursor, f)
	b.cursor.X += b.font.CharSize().X
	return b
}

// Putfs lays s out word wrapped to the brush width, starting at the cursor,
// and returns the brush with the cursor after the text. s may carry color
// escapes, see ToFString.
func (b Brush) Putfs(s string) Brush {
	return b.PutFString(ToFString(s))
}

func (b Brush) PutFString(fs FString) Brush {
	return b.PutFStringJustified(fs, JustifyLeft)
}

func (b Brush) PutFStringJustified(fs FString, j Justification) Brush {
	cs := b.font.CharSize()
	width := b.rect.Dx() / cs.X
	startCol := b.cursor.X / cs.X
	pre := Preformatter{
		FirstWidth:    Some(max(0, width-startCol)),
		Width:         Some(width),
		Justification: j,
	}
	lay := pre.Layout(fs)
	origin := b.cursor
	toCells := func(col, line int) Point {
		if line == 0 {
			return Point{origin.X + col*cs.X, origin.Y}
		}
		return Point{col * cs.X, origin.Y + line*cs.Y}
	}
	for _, pl := range lay.Glyphs {
		b.font.DrawChar(b, toCells(pl.Col, pl.Line), pl.Char)
	}
	b.cursor = toCells(lay.End.Col, lay.End.Line)
	return b
}

// DrawBox frames the brush with box drawing characters in the current font.
func (b Brush) DrawBox(double bool) {
	cs := b.font.CharSize()
	art := NewBoxArt()
	art.DrawBox(Rect{Max: Point{b.rect.Dx() / cs.X, b.rect.Dy() / cs.Y}}, double)
	art.Draw(b)
}

func (b Brush) DrawBoxArt(f func(*BoxArt)) {
	art := NewBoxArt()
	f(art)
	art.Draw(b)
}
