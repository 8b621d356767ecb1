package batterm

import (
	"fmt"
	"image"
	"image/color"
)

const TileSize = 8

// Tile is an 8x8 1-bit bitmap, one byte per row, the most significant bit
// being the leftmost pixel.
type Tile [TileSize]byte

func (t Tile) Pixel(x, y int) bool {
	return t[y]&(0x80>>x) != 0
}

// Left moves the left half of every row into the right half.
func (t Tile) Left() Tile {
	var out Tile
	for y, row := range t {
		out[y] = row >> 4
	}
	return out
}

// Right moves the right half of every row into the left half.
func (t Tile) Right() Tile {
	var out Tile
	for y, row := range t {
		out[y] = row << 4
	}
	return out
}

type Quadrant uint8

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

// SpreadNibble doubles every bit of the low nibble of x: bit i becomes
// bits 2i and 2i+1.
func SpreadNibble(x byte) byte {
	v := uint16(x) & 0x0f
	v = (v | v<<4) & 0x0f0f
	v = (v | v<<2) & 0x3333
	v = (v | v<<1) & 0x5555
	v |= v << 1
	return byte(v)
}

// Double returns one quadrant of t scaled up by two.
func (t Tile) Double(q Quadrant) Tile {
	var out Tile
	base := 0
	if q == BottomLeft || q == BottomRight {
		base = TileSize / 2
	}
	for y := range out {
		row := t[base+y/2]
		if q == TopLeft || q == BottomLeft {
			out[y] = SpreadNibble(row >> 4)
		} else {
			out[y] = SpreadNibble(row)
		}
	}
	return out
}

// TileSet is an atlas of tiles addressed by index.
type TileSet []Tile

// Tile returns tile i, or a blank tile when i is out of range.
func (ts TileSet) Tile(i int) Tile {
	if i < 0 || i >= len(ts) {
		return Tile{}
	}
	return ts[i]
}

// LoadTileSet decodes packed tiles, eight bytes each.
func LoadTileSet(data []byte) (TileSet, error) {
	if len(data)%TileSize != 0 {
		return nil, fmt.Errorf("tile data length %d is not a multiple of %d", len(data), TileSize)
	}
	ts := make(TileSet, len(data)/TileSize)
	for i := range ts {
		copy(ts[i][:], data[i*TileSize:])
	}
	return ts, nil
}

// Bytes is the inverse of LoadTileSet.
func (ts TileSet) Bytes() []byte {
	out := make([]byte, 0, len(ts)*TileSize)
	for _, t := range ts {
		out = append(out, t[:]...)
	}
	return out
}

func pixelSet(c color.Color) bool {
	_, _, _, a := c.RGBA()
	if a < 0x8000 {
		return false
	}
	g := color.Gray16Model.Convert(c).(color.Gray16)
	return g.Y >= 0x8000
}

func tileAt(img image.Image, origin image.Point) Tile {
	var t Tile
	for y := range TileSize {
		for x := range TileSize {
			if pixelSet(img.At(origin.X+x, origin.Y+y)) {
				t[y] |= 0x80 >> x
			}
		}
	}
	return t
}

// TileSetFromImage cuts a glyph sheet into tiles. The sheet holds glyphs
// in row-major order, each glyph spanning glyphCells tiles which are
// emitted row-major. A pixel is set when it is bright and opaque.
func TileSetFromImage(img image.Image, glyphCells Size) (TileSet, error) {
	if glyphCells.X <= 0 || glyphCells.Y <= 0 {
		return nil, fmt.Errorf("glyph size must be positive, got %v", glyphCells)
	}
	b := img.Bounds()
	gw, gh := glyphCells.X*TileSize, glyphCells.Y*TileSize
	cols, rows := b.Dx()/gw, b.Dy()/gh
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("image %v is smaller than one glyph", b.Size())
	}
	ts := make(TileSet, 0, cols*rows*glyphCells.X*glyphCells.Y)
	for gy := range rows {
		for gx := range cols {
			for ty := range glyphCells.Y {
				for tx := range glyphCells.X {
					origin := b.Min.Add(image.Pt(gx*gw+tx*TileSize, gy*gh+ty*TileSize))
					ts = append(ts, tileAt(img, origin))
				}
			}
		}
	}
	return ts, nil
}
