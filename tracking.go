package batterm

import "fmt"

// TrackingScreen double buffers screens and blits only what changed since
// the last physical draw.
type TrackingScreen struct {
	old      *Screen
	new      *Screen
	newFrame uint64

	lastFrameDrawn uint64
	lastRender     *RenderParams

	atlases *Atlases
}

func NewTrackingScreen(defaultBg, defaultFg uint8) *TrackingScreen {
	return &TrackingScreen{
		old:      NewScreen(defaultBg, defaultFg),
		new:      NewScreen(defaultBg, defaultFg),
		newFrame: 1,
	}
}

// Target is the screen the next frame is drawn into.
func (t *TrackingScreen) Target() *Screen {
	return t.new
}

// Previous is the screen of the last completed frame.
func (t *TrackingScreen) Previous() *Screen {
	return t.old
}

func (t *TrackingScreen) Frame() uint64 {
	return t.newFrame
}

func (t *TrackingScreen) SetAtlases(a *Atlases) {
	t.atlases = a
	// tiles may differ for unchanged cells
	t.lastRender = nil
}

func (t *TrackingScreen) Atlases() *Atlases {
	if t.atlases == nil {
		t.atlases = DefaultAtlases()
	}
	return t.atlases
}

func (t *TrackingScreen) Resize(size Size) {
	if t.new.Size() == size {
		return
	}
	logger.Debug("resize screen", "from", t.new.Size(), "to", size)
	t.new.Resize(size)
}

// Switch retires the current frame and starts a cleared one of the same
// size.
func (t *TrackingScreen) Switch() {
	size := t.new.Size()
	t.old, t.new = t.new, t.old
	t.newFrame++
	t.new.Resize(size)
}

// Draw brings buf up to date with the current frame. It reports whether
// any pixel was written.
func (t *TrackingScreen) Draw(params RenderParams, buf []uint32) bool {
	var last, next *Screen
	switch t.lastFrameDrawn {
	case t.newFrame - 1:
		last, next = t.old, t.new
	case t.newFrame:
		if t.lastRender != nil && *t.lastRender == params {
			return false
		}
		last, next = t.new, t.new
	default:
		t.redraw(params, buf)
		t.remember(params)
		return true
	}

	touched := true
	if t.lastRender != nil && t.lastRender.Aspect == params.Aspect {
		touched = t.drawDifferences(buf, t.lastRender, last, &params, next)
	} else {
		t.redraw(params, buf)
	}
	t.remember(params)
	return touched
}

func (t *TrackingScreen) remember(params RenderParams) {
	t.lastFrameDrawn = t.newFrame
	t.lastRender = &params
}

func (t *TrackingScreen) check(params *RenderParams, s *Screen, buf []uint32) {
	if s.Size() != params.Aspect.TermSize {
		panic(fmt.Sprintf("screen size %v does not match terminal size %v", s.Size(), params.Aspect.TermSize))
	}
	if want := area(params.Aspect.TermSize) * TileSize * TileSize; len(buf) != want {
		panic(fmt.Sprintf("buffer holds %d pixels, want %d", len(buf), want))
	}
}

func (t *TrackingScreen) drawDifferences(buf []uint32, lastParams *RenderParams, last *Screen, params *RenderParams, next *Screen) bool {
	t.check(params, next, buf)
	atlases := t.Atlases()
	width := params.Aspect.TermSize.X
	touched := false
	pointsIn(params.Aspect.TermRect(), func(p Point) {
		before := lastParams.Content(last, atlases, p)
		after := params.Content(next, atlases, p)
		if before != after {
			after.Draw(buf, p.X, p.Y, width)
			touched = true
		}
	})
	return touched
}

func (t *TrackingScreen) redraw(params RenderParams, buf []uint32) {
	t.check(&params, t.new, buf)
	logger.Debug("full redraw", "frame", t.newFrame, "size", params.Aspect.TermSize)
	atlases := t.Atlases()
	width := params.Aspect.TermSize.X
	pointsIn(params.Aspect.TermRect(), func(p Point) {
		rc := params.Content(t.new, atlases, p)
		rc.Draw(buf, p.X, p.Y, width)
	})
}
