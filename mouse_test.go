package batterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mouseRig struct {
	mouse  *Mouse
	screen *Screen
	aspect Aspect
}

func newMouseRig() *mouseRig {
	s := NewScreen(Black, White)
	s.Resize(Size{10, 10})
	return &mouseRig{
		mouse:  NewMouse(),
		screen: s,
		aspect: Aspect{TermSize: Size{10, 10}, BufSize: Size{80, 80}, CellSize: Size{8, 8}},
	}
}

// update moves the pointer to the given cell of a 100x100 window.
func (r *mouseRig) update(cell Point, left bool, scroll float64) []MouseEvent {
	p := PointerState{
		Inside:     true,
		PosX:       float64(cell.X*10 + 5),
		PosY:       float64(cell.Y*10 + 5),
		WindowSize: Size{100, 100},
		ScrollY:    scroll,
	}
	p.Down[MouseLeft] = left
	r.mouse.Update(p, r.aspect, r.screen)
	var out []MouseEvent
	for {
		e, ok := r.mouse.Getch()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

func kinds(events []MouseEvent) []MouseEventKind {
	out := make([]MouseEventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestMouseClickDragUp(t *testing.T) {
	r := newMouseRig()
	id := InteractorFromIndex(3)
	r.screen.Brush().Region(Rect{Max: Point{1, 1}}).Interactor(id, None[uint8](), None[uint8]()).Fill(FSem{})

	assert.Empty(t, r.update(Point{0, 0}, false, 0))

	ev := r.update(Point{0, 0}, true, 0)
	require.Equal(t, []MouseEventKind{MouseClick}, kinds(ev))
	assert.Equal(t, id, ev[0].NowInteractor)
	assert.Equal(t, MouseLeft, ev[0].Button)

	ev = r.update(Point{2, 0}, true, 0)
	require.Equal(t, []MouseEventKind{MouseDrag, MouseWiggle}, kinds(ev))
	assert.Equal(t, Point{0, 0}, ev[0].Start)
	assert.Equal(t, id, ev[0].StartInteractor)
	assert.Equal(t, Point{0, 0}, ev[0].Last)
	assert.Equal(t, Point{2, 0}, ev[0].Now)
	assert.Equal(t, NoInteractor, ev[0].NowInteractor)

	ev = r.update(Point{2, 0}, false, 0)
	require.Equal(t, []MouseEventKind{MouseUp}, kinds(ev))
	assert.Equal(t, Point{2, 0}, ev[0].Now)
}

func TestMouseDragIsPostedBeforeUp(t *testing.T) {
	r := newMouseRig()
	r.update(Point{1, 1}, false, 0)
	r.update(Point{1, 1}, true, 0)

	ev := r.update(Point{4, 1}, false, 0)
	require.Equal(t, []MouseEventKind{MouseDrag, MouseUp, MouseWiggle}, kinds(ev))
	assert.Equal(t, Point{1, 1}, ev[0].Start)
	assert.Equal(t, Point{4, 1}, ev[0].Now)
}

func TestMouseWiggleWithoutButtons(t *testing.T) {
	r := newMouseRig()
	r.update(Point{1, 1}, false, 0)
	assert.Empty(t, r.update(Point{1, 1}, false, 0))

	ev := r.update(Point{3, 2}, false, 0)
	require.Equal(t, []MouseEventKind{MouseWiggle}, kinds(ev))
	assert.Equal(t, Point{1, 1}, ev[0].Last)
	assert.Equal(t, Point{3, 2}, ev[0].Now)
}

func TestMouseScroll(t *testing.T) {
	r := newMouseRig()
	id := InteractorFromIndex(0)
	r.screen.Brush().ScrollInteractor(id).Fill(FSem{})
	r.update(Point{5, 5}, false, 0)

	ev := r.update(Point{5, 5}, false, 1.5)
	require.Equal(t, []MouseEventKind{MouseScroll}, kinds(ev))
	assert.Equal(t, -1.5, ev[0].Scroll)
	assert.Equal(t, id, ev[0].NowInteractor)
}

func TestMouseInteractorTracking(t *testing.T) {
	r := newMouseRig()
	id := InteractorFromIndex(1)
	r.screen.Brush().Region(Rect{Min: Point{5, 5}, Max: Point{6, 6}}).
		Interactor(id, None[uint8](), None[uint8]()).Fill(FSem{})

	r.update(Point{0, 0}, false, 0)
	assert.Equal(t, NoInteractor, r.mouse.Interactor())
	r.update(Point{5, 5}, false, 0)
	assert.Equal(t, id, r.mouse.Interactor())
	assert.True(t, r.mouse.InteractorChanged())
	cell, ok := r.mouse.Cell()
	assert.True(t, ok)
	assert.Equal(t, Point{5, 5}, cell)
}

func TestPointerCell(t *testing.T) {
	aspect := Aspect{TermSize: Size{64, 48}}
	p := PointerState{Inside: true, PosX: 1023.9, PosY: 0, WindowSize: Size{1024, 768}}
	cell, ok := PointerCell(p, aspect)
	assert.True(t, ok)
	assert.Equal(t, Point{63, 0}, cell)

	p.Inside = false
	_, ok = PointerCell(p, aspect)
	assert.False(t, ok)
}
