package batterm

// Screen is a resizable grid of resolved cells.
type Screen struct {
	cells []CellContent
	size  Size
	def   CellContent
}

func NewScreen(defaultBg, defaultFg uint8) *Screen {
	return &Screen{def: DefaultCell(defaultBg, defaultFg)}
}

func (s *Screen) Size() Size {
	return s.size
}

func (s *Screen) Rect() Rect {
	return rectOfSize(s.size)
}

func (s *Screen) DefaultCell() CellContent {
	return s.def
}

// Resize changes the grid dimensions. The content is always cleared.
func (s *Screen) Resize(size Size) {
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	n := area(size)
	if cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]CellContent, n)
	}
	s.size = size
	s.Clear()
}

func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = s.def
	}
}

func (s *Screen) index(at Point) (int, bool) {
	if !at.In(s.Rect()) {
		return 0, false
	}
	return at.Y*s.size.X + at.X, true
}

func (s *Screen) Cell(at Point) (CellContent, bool) {
	i, ok := s.index(at)
	if !ok {
		return CellContent{}, false
	}
	return s.cells[i], true
}

// Draw overlays f onto the cell at the given point. Points outside the
// grid are ignored.
func (s *Screen) Draw(at Point, f FSem) {
	i, ok := s.index(at)
	if !ok {
		return
	}
	f.ApplyTo(&s.cells[i])
}

// InteractorAt returns the interactor of the cell under at.
func (s *Screen) InteractorAt(at Point) Interactor {
	c, ok := s.Cell(at)
	if !ok {
		return NoInteractor
	}
	return c.Interactor.Interactor
}

func (s *Screen) ScrollInteractorAt(at Point) Interactor {
	c, ok := s.Cell(at)
	if !ok {
		return NoInteractor
	}
	return c.ScrollInteractor
}

func (s *Screen) Brush() Brush {
	return NewBrush(s, s.Rect())
}
