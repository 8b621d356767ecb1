package batterm

// testAtlases returns atlases whose glyph c is drawn with every row set
// to byte c, in every font.
func testAtlases() *Atlases {
	a := &Atlases{
		Normal: make(TileSet, 512),
		Small:  make(TileSet, 256),
	}
	for c := range 256 {
		var t Tile
		for y := range t {
			t[y] = byte(c)
		}
		a.Normal[c*2] = t
		a.Normal[c*2+1] = t
		a.Small[c] = t
	}
	return a
}

// recorder is a Drawable remembering every draw in order.
type recorder struct {
	draws []recordedDraw
}

type recordedDraw struct {
	at Point
	f  FSem
}

func (r *recorder) Draw(at Point, f FSem) {
	r.draws = append(r.draws, recordedDraw{at, f})
}

func (r *recorder) points() []Point {
	out := make([]Point, len(r.draws))
	for i, d := range r.draws {
		out[i] = d.at
	}
	return out
}

// testSwatch maps palette index i to pixel value i.
func testSwatch() Swatch {
	s := Swatch{DefaultBg: Black, DefaultFg: White}
	for i := range s.Colors {
		s.Colors[i] = uint32(i)
	}
	return s
}

func testParams(term Size) RenderParams {
	return RenderParams{
		Aspect: Aspect{
			BufSize:  Size{term.X * TileSize, term.Y * TileSize},
			TermSize: term,
			CellSize: Size{TileSize, TileSize},
		},
		Swatch: testSwatch(),
	}
}
