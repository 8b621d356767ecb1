package batterm

import (
	"errors"
	"fmt"
	"time"
)

var ErrClosed = errors.New("window closed")

// HostInput receives what a host observed during one pump.
type HostInput struct {
	Keyboard *Keyboard
	Pointer  PointerState
}

// Host owns a window: it pumps events and shows pixel buffers.
type Host interface {
	Open(windowPx Size, title string) error
	IsOpen() bool
	// PixelSize is the drawable size of the window.
	PixelSize() Size
	// Pump waits at most timeout for events and records them in in.
	Pump(in *HostInput, timeout time.Duration) error
	// Present shows buf, a row-major 0xRRGGBB image of bufSize pixels.
	Present(buf []uint32, bufSize Size) error
	Close() error
}

type IOConfig struct {
	Title       string
	Aspect      AspectConfig
	Swatch      Swatch
	Atlases     *Atlases
	FPS         int
	RedrawEvery uint64
}

func DefaultIOConfig() IOConfig {
	return IOConfig{
		Title:       "batterm",
		Aspect:      DefaultAspectConfig,
		Swatch:      DefaultSwatch(),
		FPS:         30,
		RedrawEvery: 20,
	}
}

// IO runs the frame loop against a host.
type IO struct {
	host     Host
	cfg      IOConfig
	input    HostInput
	mouse    *Mouse
	tracking *TrackingScreen
	buf      []uint32
	aspect   Aspect
	frame    uint64
	dirty    bool
}

func NewIO(host Host, cfg IOConfig) *IO {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	if cfg.RedrawEvery == 0 {
		cfg.RedrawEvery = 20
	}
	io := &IO{
		host:     host,
		cfg:      cfg,
		input:    HostInput{Keyboard: NewKeyboard()},
		mouse:    NewMouse(),
		tracking: NewTrackingScreen(cfg.Swatch.DefaultBg, cfg.Swatch.DefaultFg),
	}
	if cfg.Atlases != nil {
		io.tracking.SetAtlases(cfg.Atlases)
	}
	return io
}

// Screen is the screen being drawn by the current redraw.
func (io *IO) Screen() *Screen {
	return io.tracking.Target()
}

func (io *IO) Brush() Brush {
	return io.Screen().Brush()
}

func (io *IO) Aspect() Aspect {
	return io.aspect
}

func (io *IO) Frame() uint64 {
	return io.frame
}

func (io *IO) Buffer() []uint32 {
	return io.buf
}

func (io *IO) Mouse() *Mouse {
	return io.mouse
}

// Invalidate asks for a redraw on the next frame.
func (io *IO) Invalidate() {
	io.dirty = true
}

func (io *IO) SetSwatch(s Swatch) {
	io.cfg.Swatch = s
}

func (io *IO) SetAtlases(a *Atlases) {
	io.tracking.SetAtlases(a)
}

// Close releases the host, also after the user closed the window.
func (io *IO) Close() error {
	return io.host.Close()
}

// Getch redraws with onRedraw until an input event arrives.
func (io *IO) Getch(onRedraw func(*IO)) (InputEvent, error) {
	var got InputEvent
	err := io.wait(eventLoop{
		onRedraw: onRedraw,
		onInput: func(e InputEvent) bool {
			got = e
			return true
		},
	})
	return got, err
}

// Menu redraws with onRedraw until an input event is handled by the menu
// the redraw populated.
func (io *IO) Menu(onRedraw func(*IO, *Menu)) error {
	menu := NewMenu()
	return io.wait(eventLoop{
		onRedraw: func(io *IO) {
			menu = NewMenu()
			onRedraw(io, menu)
		},
		onInput: func(e InputEvent) bool {
			return menu.Handle(e)
		},
	})
}

// Sleep redraws with onRedraw for the given number of seconds, swallowing
// input.
func (io *IO) Sleep(seconds float64, onRedraw func(*IO)) error {
	frames := 0
	err := io.wait(eventLoop{
		onRedraw: onRedraw,
		onInput:  func(InputEvent) bool { return false },
		onFrame: func() bool {
			if float64(frames)/float64(io.cfg.FPS) > seconds {
				return true
			}
			frames++
			return false
		},
	})
	io.input.Keyboard.Reset()
	return err
}

type eventLoop struct {
	onRedraw func(*IO)
	onInput  func(InputEvent) bool
	onFrame  func() bool
}

func (io *IO) open() error {
	if io.host.IsOpen() {
		return nil
	}
	if err := io.host.Open(DefaultWindowSize(io.cfg.Aspect), io.cfg.Title); err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	logger.Debug("window opened", "title", io.cfg.Title)
	return nil
}

func (io *IO) reconstituteBuffer() Aspect {
	aspect := CalculateAspect(io.cfg.Aspect, io.host.PixelSize())
	if n := aspect.BufLen(); len(io.buf) != n {
		io.buf = make([]uint32, n)
	}
	return aspect
}

func (io *IO) wait(evt eventLoop) error {
	windowChanged := false
	if !io.host.IsOpen() {
		if err := io.open(); err != nil {
			return err
		}
		windowChanged = true
	}
	frameTime := time.Second / time.Duration(io.cfg.FPS)
	var oldAspect Opt[Aspect]

	for iteration := uint64(0); ; iteration++ {
		if err := io.host.Pump(&io.input, frameTime); err != nil {
			return fmt.Errorf("pump events: %w", err)
		}
		if !io.host.IsOpen() {
			logger.Debug("window closed")
			return ErrClosed
		}
		aspect := io.reconstituteBuffer()
		aspectChanged := oldAspect != Some(aspect)
		oldAspect = Some(aspect)
		io.aspect = aspect

		if evt.onFrame != nil && evt.onFrame() {
			return nil
		}

		io.input.Keyboard.Correlate()
		io.mouse.Update(io.input.Pointer, aspect, io.tracking.Target())
		io.input.Pointer.ScrollY = 0

		for {
			k, ok := io.input.Keyboard.Getch()
			if !ok {
				break
			}
			if evt.onInput(k) {
				io.dirty = true
				return nil
			}
		}
		for {
			m, ok := io.mouse.Getch()
			if !ok {
				break
			}
			if evt.onInput(m) {
				io.dirty = true
				return nil
			}
		}

		needsVirtualRedraw := iteration == 0 || aspectChanged || io.dirty
		if needsVirtualRedraw {
			io.dirty = false
			io.tracking.Switch()
			io.tracking.Resize(aspect.TermSize)
			io.tracking.Target().Clear()
			if evt.onRedraw != nil {
				evt.onRedraw(io)
			}
		}

		io.frame++
		params := RenderParams{Aspect: aspect, Swatch: io.cfg.Swatch, Hovered: io.mouse.Interactor()}
		touched := io.tracking.Draw(params, io.buf)
		if touched || windowChanged || iteration%io.cfg.RedrawEvery == 0 {
			if err := io.host.Present(io.buf, aspect.BufSize); err != nil {
				return fmt.Errorf("present: %w", err)
			}
			windowChanged = false
		}
	}
}
