package batterm

// RenderParams are the per-blit inputs of cell resolution.
type RenderParams struct {
	Aspect  Aspect
	Swatch  Swatch
	Hovered Interactor
}

// RenderContent is the fully resolved look of one cell.
type RenderContent struct {
	Tile Tile
	Fg   uint32
	Bg   uint32

	BevelTop    Opt[uint32]
	BevelLeft   Opt[uint32]
	BevelRight  Opt[uint32]
	BevelBottom Opt[uint32]
}

func (p *RenderParams) bevel(c Opt[uint8], hovered bool) Opt[uint32] {
	v, ok := c.Get()
	if !ok || hovered {
		return Opt[uint32]{}
	}
	return Some(p.Swatch.Get(v))
}

// Content resolves the cell of s at the given point.
func (p *RenderParams) Content(s *Screen, atlases *Atlases, at Point) RenderContent {
	c, _ := s.Cell(at)
	hovered := p.Hovered != NoInteractor && c.Interactor.Interactor == p.Hovered
	fg, bg := c.Fg, c.Bg
	if hovered {
		fg = c.Interactor.Fg.ValueOr(c.Bg)
		bg = c.Interactor.Bg.ValueOr(c.Fg)
	}
	return RenderContent{
		Tile:        atlases.Eval(c.Sem),
		Fg:          p.Swatch.Get(fg),
		Bg:          p.Swatch.Get(bg),
		BevelTop:    p.bevel(c.Bevels.Top, hovered),
		BevelLeft:   p.bevel(c.Bevels.Left, hovered),
		BevelRight:  p.bevel(c.Bevels.Right, hovered),
		BevelBottom: p.bevel(c.Bevels.Bottom, hovered),
	}
}

func (rc *RenderContent) hasBevels() bool {
	return rc.BevelTop.IsSome() || rc.BevelLeft.IsSome() || rc.BevelRight.IsSome() || rc.BevelBottom.IsSome()
}

// Draw rasterizes the cell at cell position (x, y) of a buffer that is
// termWidth cells wide.
func (rc *RenderContent) Draw(buf []uint32, x, y, termWidth int) {
	stride := termWidth * TileSize
	base := y*TileSize*stride + x*TileSize

	if !rc.hasBevels() {
		for py, row := range rc.Tile {
			line := buf[base+py*stride : base+py*stride+TileSize]
			for px := range line {
				if row&(0x80>>px) != 0 {
					line[px] = rc.Fg
				} else {
					line[px] = rc.Bg
				}
			}
		}
		return
	}

	for py, row := range rc.Tile {
		for px := range TileSize {
			if row&(0x80>>px) == 0 {
				buf[base+py*stride+px] = rc.Bg
			}
		}
	}
	// top and bottom win at the corners
	if c, ok := rc.BevelLeft.Get(); ok {
		for py := range TileSize {
			buf[base+py*stride] = c
		}
	}
	if c, ok := rc.BevelRight.Get(); ok {
		for py := range TileSize {
			buf[base+py*stride+TileSize-1] = c
		}
	}
	if c, ok := rc.BevelTop.Get(); ok {
		for px := range TileSize {
			buf[base+px] = c
		}
	}
	if c, ok := rc.BevelBottom.Get(); ok {
		for px := range TileSize {
			buf[base+(TileSize-1)*stride+px] = c
		}
	}
	for py, row := range rc.Tile {
		for px := range TileSize {
			if row&(0x80>>px) != 0 {
				buf[base+py*stride+px] = rc.Fg
			}
		}
	}
}
