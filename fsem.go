package batterm

// FBevels is a partial bevel update.
type FBevels struct {
	Top    Opt[uint8]
	Left   Opt[uint8]
	Right  Opt[uint8]
	Bottom Opt[uint8]
}

func (f FBevels) SuperimposedOn(below FBevels) FBevels {
	return FBevels{
		Top:    f.Top.Or(below.Top),
		Left:   f.Left.Or(below.Left),
		Right:  f.Right.Or(below.Right),
		Bottom: f.Bottom.Or(below.Bottom),
	}
}

func (f FBevels) applyTo(b *Bevels) {
	if f.Top.IsSome() {
		b.Top = f.Top
	}
	if f.Left.IsSome() {
		b.Left = f.Left
	}
	if f.Right.IsSome() {
		b.Right = f.Right
	}
	if f.Bottom.IsSome() {
		b.Bottom = f.Bottom
	}
}

// FSem is a partial cell update: only present fields are written.
type FSem struct {
	Sem              Opt[SemanticContent]
	Bg               Opt[uint8]
	Fg               Opt[uint8]
	Interactor       Opt[InteractorFmt]
	ScrollInteractor Opt[Interactor]
	Bevels           FBevels
}

// SuperimposedOn layers f over below. Fields present in f win.
func (f FSem) SuperimposedOn(below FSem) FSem {
	return FSem{
		Sem:              f.Sem.Or(below.Sem),
		Bg:               f.Bg.Or(below.Bg),
		Fg:               f.Fg.Or(below.Fg),
		Interactor:       f.Interactor.Or(below.Interactor),
		ScrollInteractor: f.ScrollInteractor.Or(below.ScrollInteractor),
		Bevels:           f.Bevels.SuperimposedOn(below.Bevels),
	}
}

func (f FSem) ApplyTo(c *CellContent) {
	if v, ok := f.Sem.Get(); ok {
		c.Sem = v
	}
	if v, ok := f.Bg.Get(); ok {
		c.Bg = v
	}
	if v, ok := f.Fg.Get(); ok {
		c.Fg = v
	}
	if v, ok := f.Interactor.Get(); ok {
		c.Interactor = v
	}
	if v, ok := f.ScrollInteractor.Get(); ok {
		c.ScrollInteractor = v
	}
	f.Bevels.applyTo(&c.Bevels)
}

func (f FSem) IsEmpty() bool {
	return f == FSem{}
}

func (f FSem) WithSem(s SemanticContent) FSem {
	f.Sem = Some(s)
	return f
}

func (f FSem) WithBg(c uint8) FSem {
	f.Bg = Some(c)
	return f
}

func (f FSem) WithFg(c uint8) FSem {
	f.Fg = Some(c)
	return f
}

func (f FSem) WithInteractor(i InteractorFmt) FSem {
	f.Interactor = Some(i)
	return f
}

func (f FSem) WithScrollInteractor(i Interactor) FSem {
	f.ScrollInteractor = Some(i)
	return f
}

func (f FSem) WithBevels(b FBevels) FSem {
	f.Bevels = b
	return f
}

// FChar is a font independent character update.
type FChar struct {
	Glyph Opt[uint16]
	Bg    Opt[uint8]
	Fg    Opt[uint8]
}

func Char(glyph uint16) FChar {
	return FChar{Glyph: Some(glyph)}
}

func (f FChar) SuperimposedOn(below FChar) FChar {
	return FChar{
		Glyph: f.Glyph.Or(below.Glyph),
		Bg:    f.Bg.Or(below.Bg),
		Fg:    f.Fg.Or(below.Fg),
	}
}

func (f FChar) WithBg(c uint8) FChar {
	f.Bg = Some(c)
	return f
}

func (f FChar) WithFg(c uint8) FChar {
	f.Fg = Some(c)
	return f
}

// Sem converts the character into the cell update for one of its cells.
func (f FChar) Sem(kind SemKind) FSem {
	out := FSem{Bg: f.Bg, Fg: f.Fg}
	if g, ok := f.Glyph.Get(); ok {
		out.Sem = Some(Sem(kind, g))
	}
	return out
}
