package batterm

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Snapshot copies a pixel buffer into an RGBA image.
func Snapshot(buf []uint32, size Size) (*image.RGBA, error) {
	if len(buf) != area(size) {
		return nil, fmt.Errorf("buffer holds %d pixels, want %d for %v", len(buf), area(size), size)
	}
	img := image.NewRGBA(rectOfSize(size))
	for i, c := range buf {
		p := img.Pix[i*4 : i*4+4]
		p[0] = uint8(c >> 16)
		p[1] = uint8(c >> 8)
		p[2] = uint8(c)
		p[3] = 0xff
	}
	return img, nil
}

// ScaleImage enlarges img by an integer factor without smoothing.
func ScaleImage(img image.Image, scale int) *image.RGBA {
	scale = max(scale, 1)
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WriteSnapshotPNG encodes a scaled snapshot of buf as PNG.
func WriteSnapshotPNG(w io.Writer, buf []uint32, size Size, scale int) error {
	img, err := Snapshot(buf, size)
	if err != nil {
		return err
	}
	if err := png.Encode(w, ScaleImage(img, scale)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// RenderScreen rasterizes s in full into a fresh buffer.
func RenderScreen(s *Screen, atlases *Atlases, swatch Swatch) ([]uint32, Size) {
	term := s.Size()
	size := Size{term.X * TileSize, term.Y * TileSize}
	buf := make([]uint32, area(size))
	params := RenderParams{Aspect: Aspect{BufSize: size, TermSize: term, CellSize: Size{TileSize, TileSize}}, Swatch: swatch}
	pointsIn(s.Rect(), func(p Point) {
		rc := params.Content(s, atlases, p)
		rc.Draw(buf, p.X, p.Y, term.X)
	})
	return buf, size
}

// ScreenText returns the characters on s as text. Rows holding no
// character tops are skipped.
func ScreenText(s *Screen) string {
	var out []rune
	size := s.Size()
	for y := 0; y < size.Y; y++ {
		var line []rune
		lead := false
		for x := 0; x < size.X; x++ {
			c, _ := s.Cell(Point{x, y})
			switch c.Sem.Kind {
			case SemTopHalf, SemSmall, SemSetTL, SemFatTL:
				line = append(line, DecodeByte(byte(c.Sem.Code)))
				lead = true
			case SemBlank:
				line = append(line, ' ')
			}
		}
		if !lead {
			continue
		}
		for len(line) > 0 && line[len(line)-1] == ' ' {
			line = line[:len(line)-1]
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return string(out)
}
