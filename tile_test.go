package batterm

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpreadNibble(t *testing.T) {
	assert.Equal(t, byte(0b11001100), SpreadNibble(0b1010))
	assert.Equal(t, byte(0xff), SpreadNibble(0xf))
	assert.Equal(t, byte(0b00000011), SpreadNibble(0b0001))
	assert.Equal(t, byte(0), SpreadNibble(0xf0))
}

func TestDouble(t *testing.T) {
	var src Tile
	src[0] = 0b1010_0000
	src[4] = 0b0000_0001

	tl := src.Double(TopLeft)
	assert.Equal(t, byte(0b11001100), tl[0])
	assert.Equal(t, byte(0b11001100), tl[1])
	assert.Equal(t, byte(0), tl[2])

	assert.Equal(t, Tile{}, src.Double(TopRight))
	br := src.Double(BottomRight)
	assert.Equal(t, byte(0b00000011), br[0])
	assert.Equal(t, byte(0b00000011), br[1])
	assert.Equal(t, Tile{}, src.Double(BottomLeft))
}

func TestHalves(t *testing.T) {
	src := Tile{0b1100_0011}
	assert.Equal(t, byte(0b0000_1100), src.Left()[0])
	assert.Equal(t, byte(0b0011_0000), src.Right()[0])
	assert.True(t, src.Pixel(0, 0))
	assert.False(t, src.Pixel(2, 0))
	assert.True(t, src.Pixel(7, 0))
}

func TestTileSetBounds(t *testing.T) {
	ts := TileSet{{1}, {2}}
	assert.Equal(t, Tile{2}, ts.Tile(1))
	assert.Equal(t, Tile{}, ts.Tile(2))
	assert.Equal(t, Tile{}, ts.Tile(-1))
}

func TestLoadTileSet(t *testing.T) {
	_, err := LoadTileSet(make([]byte, 9))
	assert.Error(t, err)

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	ts, err := LoadTileSet(data)
	require.NoError(t, err)
	require.Len(t, ts, 2)
	assert.Equal(t, Tile{9, 10, 11, 12, 13, 14, 15, 16}, ts[1])
	assert.Equal(t, data, ts.Bytes())
}

func TestTileSetFromImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	// glyph 0 is 8x16: mark its top-left pixel and the first pixel of its
	// second tile
	img.Set(0, 0, color.White)
	img.Set(0, 8, color.White)
	img.Set(9, 0, color.Gray{Y: 0x40})

	ts, err := TileSetFromImage(img, Size{1, 2})
	require.NoError(t, err)
	require.Len(t, ts, 4)
	assert.Equal(t, byte(0x80), ts[0][0])
	assert.Equal(t, byte(0x80), ts[1][0])
	assert.Equal(t, Tile{}, ts[2])

	_, err = TileSetFromImage(img, Size{4, 4})
	assert.Error(t, err)
}
