package batterm

// Drawable accepts partial cell updates.
type Drawable interface {
	Draw(at Point, f FSem)
}

// Brush is a clipped, translated view onto a Drawable. Every method returns
// a modified copy, the receiver is never changed.
type Brush struct {
	target Drawable
	// offset translates brush coordinates into target coordinates
	offset Point
	// clip is enforced in target coordinates
	clip Rect
	// rect is the area seen from outside, always anchored at (0,0)
	rect   Rect
	cursor Point
	font   FontMode

	bg               Opt[uint8]
	fg               Opt[uint8]
	interactor       Opt[InteractorFmt]
	scrollInteractor Opt[Interactor]
}

// NewBrush returns a brush drawing into r of d. Text drawn with it clears
// interactors left by other draws unless told otherwise.
func NewBrush(d Drawable, r Rect) Brush {
	r = r.Canon()
	return Brush{
		target:     d,
		offset:     r.Min,
		clip:       r,
		rect:       Rect{Max: r.Size()},
		font:       FontNormal,
		interactor: Some(InteractorFmt{}),
	}
}

func (b Brush) Size() Size {
	return b.rect.Size()
}

func (b Brush) Rect() Rect {
	return b.rect
}

// Clip returns the clip rectangle in the target's coordinates.
func (b Brush) Clip() Rect {
	return b.clip
}

func (b Brush) Offset() Point {
	return b.offset
}

func (b Brush) Cursor() Point {
	return b.cursor
}

func (b Brush) FontMode() FontMode {
	return b.font
}

func (b Brush) Target() Drawable {
	return b.target
}

// Region narrows the brush to r, given in the brush's coordinates. The
// returned brush has its origin at r.Min and the size of r.
func (b Brush) Region(r Rect) Brush {
	r = r.Canon()
	b.clip = b.clip.Intersect(r.Add(b.offset))
	b.offset = b.offset.Add(r.Min)
	b.rect = Rect{Max: r.Size()}
	b.cursor = Point{}
	return b
}

// Clipped narrows only the clip, keeping the coordinate frame.
func (b Brush) Clipped(r Rect) Brush {
	b.clip = b.clip.Intersect(r.Canon().Add(b.offset))
	return b
}

func (b Brush) At(cursor Point) Brush {
	b.cursor = cursor
	return b
}

func (b Brush) Shift(delta Point) Brush {
	b.cursor = b.cursor.Add(delta)
	return b
}

// OnNewline moves the cursor to the start of the next text line unless it
// is already at the start of one.
func (b Brush) OnNewline() Brush {
	if b.cursor.X != 0 {
		b.cursor.Y += b.font.CharSize().Y
		b.cursor.X = 0
	}
	return b
}

func (b Brush) Font(m FontMode) Brush {
	b.font = m
	return b
}

func (b Brush) Bg(c uint8) Brush {
	b.bg = Some(c)
	return b
}

func (b Brush) Fg(c uint8) Brush {
	b.fg = Some(c)
	return b
}

func (b Brush) Color(bg, fg uint8) Brush {
	return b.Bg(bg).Fg(fg)
}

// Interactor tags every draw with id. Absent hover colors swap fg and bg
// while the interactor is hovered.
func (b Brush) Interactor(id Interactor, bg, fg Opt[uint8]) Brush {
	b.interactor = Some(InteractorFmt{Interactor: id, Bg: bg, Fg: fg})
	return b
}

func (b Brush) NoInteractor() Brush {
	b.interactor = Some(InteractorFmt{})
	return b
}

// DontInterfereWithInteractor leaves the interactor of drawn cells alone.
func (b Brush) DontInterfereWithInteractor() Brush {
	b.interactor = None[InteractorFmt]()
	return b
}

func (b Brush) ScrollInteractor(id Interactor) Brush {
	b.scrollInteractor = Some(id)
	return b
}

func (b Brush) NoScrollInteractor() Brush {
	b.scrollInteractor = Some(NoInteractor)
	return b
}

func (b Brush) Draw(at Point, f FSem) {
	if b.target == nil {
		return
	}
	at = at.Add(b.offset)
	if !at.In(b.clip) {
		return
	}
	f.Bg = f.Bg.Or(b.bg)
	f.Fg = f.Fg.Or(b.fg)
	f.Interactor = f.Interactor.Or(b.interactor)
	f.ScrollInteractor = f.ScrollInteractor.Or(b.scrollInteractor)
	b.target.Draw(at, f)
}

// Fill draws f at every point of the visible rectangle.
func (b Brush) Fill(f FSem) {
	pointsIn(b.rect, func(p Point) {
		b.Draw(p, f)
	})
}
