package batterm

// AspectConfig bounds the terminal size chosen for a window.
type AspectConfig struct {
	PrefMinTermSize Size
	PrefMaxTermSize Size
	CellSize        Size
}

var DefaultAspectConfig = AspectConfig{
	PrefMinTermSize: Size{64, 48},
	PrefMaxTermSize: Size{256, 192},
	CellSize:        Size{TileSize, TileSize},
}

// Aspect relates the window to the cell grid and the pixel buffer.
type Aspect struct {
	BufSize  Size
	TermSize Size
	CellSize Size
}

func (a Aspect) TermRect() Rect {
	return rectOfSize(a.TermSize)
}

func (a Aspect) IsZero() bool {
	return a == Aspect{}
}

// BufLen is the number of pixels in a buffer for this aspect.
func (a Aspect) BufLen() int {
	return area(a.BufSize)
}

func DefaultWindowSize(cfg AspectConfig) Size {
	return Size{
		cfg.PrefMinTermSize.X * cfg.CellSize.X,
		cfg.PrefMinTermSize.Y * cfg.CellSize.Y,
	}
}

const maxScale = 64

// CalculateAspect picks the terminal size for a window of windowPx pixels.
// Windows too small for the preferred minimum get a downscaled buffer;
// otherwise the largest integer scale keeping the preferred minimum wins.
func CalculateAspect(cfg AspectConfig, windowPx Size) Aspect {
	if windowPx.X <= 0 || windowPx.Y <= 0 || cfg.CellSize.X <= 0 || cfg.CellSize.Y <= 0 {
		return Aspect{}
	}

	prefMinBuf := DefaultWindowSize(cfg)
	downscale := 1.0
	if prefMinBuf.X > 0 && prefMinBuf.Y > 0 {
		downscale = min(downscale,
			float64(windowPx.X)/float64(prefMinBuf.X),
			float64(windowPx.Y)/float64(prefMinBuf.Y))
	}

	if downscale < 1.0 {
		bufW := float64(windowPx.X) / downscale
		bufH := float64(windowPx.Y) / downscale
		term := Size{
			ceilInt(bufW / float64(cfg.CellSize.X)),
			ceilInt(bufH / float64(cfg.CellSize.Y)),
		}
		term.X = min(term.X, cfg.PrefMaxTermSize.X)
		term.Y = min(term.Y, cfg.PrefMaxTermSize.Y)
		return Aspect{
			BufSize:  Size{term.X * cfg.CellSize.X, term.Y * cfg.CellSize.Y},
			TermSize: term,
			CellSize: cfg.CellSize,
		}
	}

	scale := 0
	for scale < maxScale {
		next := scale + 1
		termW := windowPx.X / (next * cfg.CellSize.X)
		termH := windowPx.Y / (next * cfg.CellSize.Y)
		if termW < cfg.PrefMinTermSize.X || termH < cfg.PrefMinTermSize.Y {
			break
		}
		scale = next
	}
	scale = max(scale, 1)

	term := Size{
		windowPx.X / (scale * cfg.CellSize.X),
		windowPx.Y / (scale * cfg.CellSize.Y),
	}
	return Aspect{
		BufSize:  Size{term.X * cfg.CellSize.X, term.Y * cfg.CellSize.Y},
		TermSize: term,
		CellSize: cfg.CellSize,
	}
}

func ceilInt(f float64) int {
	i := int(f)
	if float64(i) < f {
		i++
	}
	return i
}
