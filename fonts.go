package batterm

import (
	"fmt"
	"image"
	"os"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type FontSizeInPixels = float64

// Font is an opentype font with a cache of faces by size.
type Font struct {
	font  *opentype.Font
	faces map[FontSizeInPixels]font.Face
}

func (f *Font) GetFace(size FontSizeInPixels) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	faceOpts := &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}
	face, err := opentype.NewFace(f.font, faceOpts)
	if err != nil {
		return nil, err
	}
	f.faces[size] = face
	return face, nil
}

// FitFace returns the largest face whose glyphs fit a box of the given
// pixel size.
func (f *Font) FitFace(box Size) (font.Face, error) {
	if box.X <= 0 || box.Y <= 0 {
		return nil, fmt.Errorf("box must be positive, got %v", box)
	}
	probe, err := f.GetFace(FontSizeInPixels(box.Y))
	if err != nil {
		return nil, err
	}
	metrics := probe.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	adv, ok := probe.GlyphAdvance('M')
	if !ok || height <= 0 || adv.Ceil() <= 0 {
		return nil, fmt.Errorf("font face does not provide a glyph for rune 'M'")
	}
	scale := min(float64(box.Y)/float64(height), float64(box.X)/float64(adv.Ceil()))
	size := float64(int(float64(box.Y)*scale*4)) / 4
	return f.GetFace(size)
}

// TileSet rasterizes the code page into tiles, each glyph covering
// glyphCells tiles.
func (f *Font) TileSet(glyphCells Size) (TileSet, error) {
	face, err := f.FitFace(glyphCells.Mul(TileSize))
	if err != nil {
		return nil, err
	}
	return RasterizeTileSet(face, glyphCells)
}

// glyphImage draws one code page glyph centered in a box.
func glyphImage(face font.Face, code byte, box Size) *image.Alpha {
	img := image.NewAlpha(image.Rectangle{Max: box})
	if synthGlyph(img, code) {
		return img
	}
	r := DecodeByte(code)
	if code == 0 || r == ' ' {
		return img
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return img
	}
	dot := fixed.Point26_6{
		X: fixed.I(box.X-adv.Ceil()) / 2,
		Y: fixed.I((box.Y-height)/2 + ascent),
	}
	dstRect, mask, maskPt, _, ok := face.Glyph(dot, r)
	if !ok || mask == nil {
		return img
	}
	draw.Draw(img, dstRect, mask, maskPt, draw.Over)
	return img
}

// RasterizeTileSet renders all 256 code page glyphs with face. Every glyph
// covers glyphCells tiles, emitted row-major, so glyph c of a 1x2 set
// lives at tiles 2c and 2c+1.
func RasterizeTileSet(face font.Face, glyphCells Size) (TileSet, error) {
	if glyphCells.X <= 0 || glyphCells.Y <= 0 {
		return nil, fmt.Errorf("glyph size must be positive, got %v", glyphCells)
	}
	box := glyphCells.Mul(TileSize)
	ts := make(TileSet, 0, 256*glyphCells.X*glyphCells.Y)
	for code := range 256 {
		img := glyphImage(face, byte(code), box)
		for ty := range glyphCells.Y {
			for tx := range glyphCells.X {
				ts = append(ts, tileAt(img, image.Pt(tx*TileSize, ty*TileSize)))
			}
		}
	}
	return ts, nil
}

// Atlases holds the glyph tiles of every font mode. A missing Fat atlas
// is synthesized by doubling the small glyphs.
type Atlases struct {
	Normal TileSet
	Small  TileSet
	Fat    TileSet
}

// Eval resolves the tile shown by a cell.
func (a *Atlases) Eval(s SemanticContent) Tile {
	code := int(s.Code)
	switch s.Kind {
	case SemSmall:
		return a.Small.Tile(code)
	case SemTopHalf:
		return a.Normal.Tile(code * 2)
	case SemBottomHalf:
		return a.Normal.Tile(code*2 + 1)
	case SemSetTL:
		return a.Normal.Tile(code * 2).Left()
	case SemSetTR:
		return a.Normal.Tile(code * 2).Right()
	case SemSetBL:
		return a.Normal.Tile(code*2 + 1).Left()
	case SemSetBR:
		return a.Normal.Tile(code*2 + 1).Right()
	case SemFatTL, SemFatTR, SemFatBL, SemFatBR:
		q := Quadrant(s.Kind - SemFatTL)
		if len(a.Fat) > 0 {
			return a.Fat.Tile(code*4 + int(q))
		}
		return a.Small.Tile(code).Double(q)
	}
	return Tile{}
}

func LoadFontFromBytes(bytes []byte) (*Font, error) {
	f, err := opentype.Parse(bytes)
	if err != nil {
		return nil, err
	}
	return &Font{
		font:  f,
		faces: make(map[FontSizeInPixels]font.Face),
	}, nil
}

func LoadFontFromFile(name string) (*Font, error) {
	bytes, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return LoadFontFromBytes(bytes)
}

// AtlasesFromFont rasterizes the normal and small atlases from f.
func AtlasesFromFont(f *Font) (*Atlases, error) {
	normal, err := f.TileSet(Size{1, 2})
	if err != nil {
		return nil, fmt.Errorf("rasterize normal font: %w", err)
	}
	small, err := f.TileSet(Size{1, 1})
	if err != nil {
		return nil, fmt.Errorf("rasterize small font: %w", err)
	}
	return &Atlases{Normal: normal, Small: small}, nil
}

var defaultAtlases = sync.OnceValues(func() (*Atlases, error) {
	f, err := LoadFontFromBytes(gomono.TTF)
	if err != nil {
		return nil, err
	}
	a, err := AtlasesFromFont(f)
	if err != nil {
		return nil, err
	}
	logger.Debug("rasterized default atlases", "normal", len(a.Normal), "small", len(a.Small))
	return a, nil
})

// DefaultAtlases returns the built-in Go Mono atlases. They are built on
// first use and shared afterwards.
func DefaultAtlases() *Atlases {
	a, err := defaultAtlases()
	if err != nil {
		panic(fmt.Sprintf("default font: %v", err))
	}
	return a
}
