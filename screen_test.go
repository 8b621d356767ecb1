package batterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(Blue0, White)
	s.Resize(Size{4, 3})
	s.Brush().Fill(FSem{}.WithBg(Red0).WithSem(Sem(SemSmall, 'z')))

	s.Resize(Size{6, 2})
	assert.Equal(t, Size{6, 2}, s.Size())
	pointsIn(s.Rect(), func(p Point) {
		c, ok := s.Cell(p)
		require.True(t, ok)
		assert.Equal(t, s.DefaultCell(), c)
	})

	s.Brush().Fill(FSem{}.WithFg(Black))
	s.Resize(Size{6, 2})
	c, _ := s.Cell(Point{5, 1})
	assert.Equal(t, DefaultCell(Blue0, White), c)
}

func TestScreenDrawOutsideIsIgnored(t *testing.T) {
	s := NewScreen(0, 7)
	s.Resize(Size{2, 2})
	s.Draw(Point{-1, 0}, FSem{}.WithBg(Red0))
	s.Draw(Point{2, 1}, FSem{}.WithBg(Red0))
	pointsIn(s.Rect(), func(p Point) {
		c, _ := s.Cell(p)
		assert.Equal(t, s.DefaultCell(), c)
	})
	_, ok := s.Cell(Point{2, 1})
	assert.False(t, ok)
}

func TestScreenClearAndInteractorLookup(t *testing.T) {
	s := NewScreen(0, 7)
	s.Resize(Size{3, 1})
	id := InteractorFromIndex(4)
	s.Brush().Interactor(id, None[uint8](), None[uint8]()).ScrollInteractor(id).Fill(FSem{})
	assert.Equal(t, id, s.InteractorAt(Point{1, 0}))
	assert.Equal(t, id, s.ScrollInteractorAt(Point{2, 0}))
	assert.Equal(t, NoInteractor, s.InteractorAt(Point{5, 0}))

	s.Clear()
	assert.Equal(t, NoInteractor, s.InteractorAt(Point{1, 0}))
}

func TestStampReplay(t *testing.T) {
	st := NewStamp()
	b := NewBrush(st, Rect{Max: Point{100, 100}}).Font(FontSmall)
	b.Putch('a').Putch('b')
	b.Fg(Red0).At(Point{0, 0}).Putch('c')
	assert.Equal(t, 2, st.Len())
	assert.Equal(t, Rect{Max: Point{2, 1}}, st.Bounds())
	assert.Equal(t, []Point{{0, 0}, {1, 0}}, st.Points())

	s := NewScreen(0, 7)
	s.Resize(Size{5, 5})
	st.StampOnto(s, Point{2, 3})
	c, _ := s.Cell(Point{2, 3})
	assert.Equal(t, Sem(SemSmall, 'c'), c.Sem)
	assert.Equal(t, Red0, c.Fg)
	c, _ = s.Cell(Point{3, 3})
	assert.Equal(t, Sem(SemSmall, 'b'), c.Sem)
}
