package batterm

// PointerState is the pointer as a host sees it at the end of a frame.
type PointerState struct {
	// Inside is false while the pointer is outside the window.
	Inside bool
	// Pos is in window pixels, WindowSize the window's size in the same unit.
	PosX, PosY float64
	WindowSize Size
	Down       [numMouseButtons]bool
	// ScrollY is the wheel movement since the last frame in notches,
	// positive away from the user.
	ScrollY float64
}

// InteractorLookup resolves the interactors under a cell.
type InteractorLookup interface {
	InteractorAt(at Point) Interactor
	ScrollInteractorAt(at Point) Interactor
}

type mouseState struct {
	down       [numMouseButtons]bool
	cell       Point
	interactor Interactor
}

type dragMonitor struct {
	active  bool
	start   Point
	old     Point
	pending bool
	last    Point
	now     Point
}

func (d *dragMonitor) down(at Point) {
	d.active = true
	d.start = at
	d.old = at
}

func (d *dragMonitor) at(at Point) {
	if !d.active || d.old == at {
		return
	}
	if d.pending {
		d.now = at
	} else {
		d.pending = true
		d.last = d.old
		d.now = at
	}
	d.old = at
}

func (d *dragMonitor) post(m *Mouse, button MouseButton, lookup InteractorLookup) {
	if !d.pending {
		return
	}
	d.pending = false
	m.events = append(m.events, MouseEvent{
		Kind:            MouseDrag,
		Button:          button,
		Start:           d.start,
		StartInteractor: lookup.InteractorAt(d.start),
		Last:            d.last,
		LastInteractor:  lookup.InteractorAt(d.last),
		Now:             d.now,
		NowInteractor:   lookup.InteractorAt(d.now),
	})
}

func (d *dragMonitor) up(m *Mouse, button MouseButton, lookup InteractorLookup) {
	d.post(m, button, lookup)
	*d = dragMonitor{}
}

type wiggleMonitor struct {
	seen    bool
	old     Point
	pending bool
	last    Point
	now     Point
}

func (w *wiggleMonitor) at(at Point) {
	old, seen := w.old, w.seen
	w.old, w.seen = at, true
	if !seen || old == at {
		return
	}
	if w.pending {
		w.now = at
	} else {
		w.pending = true
		w.last = old
		w.now = at
	}
}

func (w *wiggleMonitor) post(m *Mouse, lookup InteractorLookup) {
	if !w.pending {
		return
	}
	w.pending = false
	m.events = append(m.events, MouseEvent{
		Kind:           MouseWiggle,
		Last:           w.last,
		LastInteractor: lookup.InteractorAt(w.last),
		Now:            w.now,
		NowInteractor:  lookup.InteractorAt(w.now),
	})
}

// Mouse turns pointer snapshots into click, up, drag, wiggle and scroll
// events.
type Mouse struct {
	drag   [numMouseButtons]dragMonitor
	wiggle wiggleMonitor

	old    *mouseState
	new    *mouseState
	events []MouseEvent
}

func NewMouse() *Mouse {
	return &Mouse{}
}

// PointerCell maps a window position to the cell under it.
func PointerCell(p PointerState, aspect Aspect) (Point, bool) {
	if !p.Inside || p.WindowSize.X <= 0 || p.WindowSize.Y <= 0 {
		return Point{}, false
	}
	x := p.PosX / float64(p.WindowSize.X) * float64(aspect.TermSize.X)
	y := p.PosY / float64(p.WindowSize.Y) * float64(aspect.TermSize.Y)
	return Point{floorInt(x), floorInt(y)}, true
}

func floorInt(f float64) int {
	i := int(f)
	if float64(i) > f {
		i--
	}
	return i
}

func (m *Mouse) Update(p PointerState, aspect Aspect, lookup InteractorLookup) {
	cell, ok := PointerCell(p, aspect)
	if !ok {
		return
	}
	m.old = m.new
	m.new = &mouseState{down: p.Down, cell: cell, interactor: lookup.InteractorAt(cell)}
	if m.old == nil {
		m.wiggle.at(cell)
		return
	}
	old, cur := m.old, m.new

	for b := range numMouseButtons {
		if cur.down[b] && !old.down[b] {
			m.events = append(m.events, MouseEvent{Kind: MouseClick, Button: b, Now: cell, NowInteractor: cur.interactor})
			m.drag[b].down(cell)
		}
		m.drag[b].at(cell)
		if !cur.down[b] && old.down[b] {
			m.drag[b].up(m, b, lookup)
			m.events = append(m.events, MouseEvent{Kind: MouseUp, Button: b, Now: cell, NowInteractor: cur.interactor})
		}
	}
	for b := range numMouseButtons {
		m.drag[b].post(m, b, lookup)
	}

	m.wiggle.at(cell)
	m.wiggle.post(m, lookup)

	if p.ScrollY != 0 {
		m.events = append(m.events, MouseEvent{
			Kind:          MouseScroll,
			Now:           cell,
			NowInteractor: lookup.ScrollInteractorAt(cell),
			Scroll:        -p.ScrollY,
		})
	}
}

// Getch pops the next mouse event.
func (m *Mouse) Getch() (MouseEvent, bool) {
	if len(m.events) == 0 {
		return MouseEvent{}, false
	}
	e := m.events[0]
	m.events = m.events[1:]
	return e, true
}

// Interactor is the interactor under the pointer.
func (m *Mouse) Interactor() Interactor {
	if m.new == nil {
		return NoInteractor
	}
	return m.new.interactor
}

func (m *Mouse) InteractorChanged() bool {
	var before Interactor
	if m.old != nil {
		before = m.old.interactor
	}
	return before != m.Interactor()
}

// Cell is the cell under the pointer.
func (m *Mouse) Cell() (Point, bool) {
	if m.new == nil {
		return Point{}, false
	}
	return m.new.cell, true
}
