package batterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pixelAt(buf []uint32, termWidth, x, y int) uint32 {
	return buf[y*termWidth*TileSize+x]
}

func TestRenderContentFastPath(t *testing.T) {
	buf := make([]uint32, 2*TileSize*TileSize)
	rc := RenderContent{Tile: Tile{0xf0}, Fg: 1, Bg: 2}
	rc.Draw(buf, 1, 0, 2)

	for x := range 8 {
		assert.Equal(t, uint32(0), pixelAt(buf, 2, x, 0))
	}
	for x := 8; x < 12; x++ {
		assert.Equal(t, uint32(1), pixelAt(buf, 2, x, 0))
	}
	for x := 12; x < 16; x++ {
		assert.Equal(t, uint32(2), pixelAt(buf, 2, x, 0))
	}
	assert.Equal(t, uint32(2), pixelAt(buf, 2, 8, 1))
}

func TestRenderContentBevels(t *testing.T) {
	buf := make([]uint32, TileSize*TileSize)
	rc := RenderContent{
		Tile:        Tile{0x80},
		Fg:          1,
		Bg:          2,
		BevelTop:    Some[uint32](3),
		BevelLeft:   Some[uint32](4),
		BevelBottom: Some[uint32](5),
	}
	rc.Draw(buf, 0, 0, 1)

	assert.Equal(t, uint32(1), pixelAt(buf, 1, 0, 0), "glyph over bevel")
	assert.Equal(t, uint32(3), pixelAt(buf, 1, 1, 0))
	assert.Equal(t, uint32(3), pixelAt(buf, 1, 7, 0))
	assert.Equal(t, uint32(4), pixelAt(buf, 1, 0, 1))
	assert.Equal(t, uint32(5), pixelAt(buf, 1, 0, 7), "bottom wins the corner")
	assert.Equal(t, uint32(2), pixelAt(buf, 1, 7, 3))
	assert.Equal(t, uint32(2), pixelAt(buf, 1, 3, 3))
}

func TestContentHover(t *testing.T) {
	s := NewScreen(Black, White)
	s.Resize(Size{3, 1})
	id := InteractorFromIndex(0)
	b := s.Brush().Color(Blue0, White)
	b.Region(Rect{Max: Point{1, 1}}).Interactor(id, None[uint8](), None[uint8]()).
		Fill(FSem{Bevels: FBevels{Top: Some(Red0)}})
	b.Region(Rect{Min: Point{1, 0}, Max: Point{2, 1}}).Interactor(id, None[uint8](), Some(Red0)).Fill(FSem{})
	b.Region(Rect{Min: Point{2, 0}, Max: Point{3, 1}}).Fill(FSem{})

	atlases := testAtlases()
	p := testParams(Size{3, 1})

	rc := p.Content(s, atlases, Point{0, 0})
	assert.Equal(t, uint32(White), rc.Fg)
	assert.Equal(t, uint32(Blue0), rc.Bg)
	assert.Equal(t, Some(uint32(Red0)), rc.BevelTop)

	p.Hovered = id
	rc = p.Content(s, atlases, Point{0, 0})
	assert.Equal(t, uint32(Blue0), rc.Fg)
	assert.Equal(t, uint32(White), rc.Bg)
	assert.False(t, rc.BevelTop.IsSome())

	rc = p.Content(s, atlases, Point{1, 0})
	assert.Equal(t, uint32(Red0), rc.Fg)
	assert.Equal(t, uint32(White), rc.Bg)

	rc = p.Content(s, atlases, Point{2, 0})
	assert.Equal(t, uint32(White), rc.Fg)
	assert.Equal(t, uint32(Blue0), rc.Bg)
}

func TestNoInteractorIsNeverHovered(t *testing.T) {
	s := NewScreen(Black, White)
	s.Resize(Size{1, 1})
	p := testParams(Size{1, 1})
	rc := p.Content(s, testAtlases(), Point{})
	assert.Equal(t, uint32(White), rc.Fg)
	assert.Equal(t, uint32(Black), rc.Bg)
}
