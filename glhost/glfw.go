// Package glhost shows batterm screens in an OpenGL ES 2 window.
package glhost

import (
	"fmt"
	"runtime"
	"time"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/cellux/batterm"
)

func init() {
	runtime.LockOSThread()
}

// Host is a resizable glfw window. All methods must be called from the
// main goroutine.
var _ batterm.Host = (*Host)(nil)

type Host struct {
	window    *glfw.Window
	presenter *presenter
	fbSize    batterm.Size

	// input being filled by the callbacks of the current pump
	in      *batterm.HostInput
	down    [2]bool
	scrollY float64
}

func New() *Host {
	return &Host{}
}

func (h *Host) Open(windowPx batterm.Size, title string) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	window, err := glfw.CreateWindow(windowPx.X, windowPx.Y, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return err
	}
	h.window = window
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		h.destroy()
		return fmt.Errorf("init gl: %w", err)
	}
	glfw.SwapInterval(1)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		h.fbSize = batterm.Size{X: width, Y: height}
	})
	window.SetKeyCallback(h.onKey)
	window.SetCharCallback(h.onChar)
	window.SetMouseButtonCallback(h.onMouseButton)
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		h.scrollY += yoff
	})
	width, height := window.GetFramebufferSize()
	h.fbSize = batterm.Size{X: width, Y: height}

	p, err := newPresenter()
	if err != nil {
		h.destroy()
		return err
	}
	h.presenter = p
	return nil
}

func (h *Host) IsOpen() bool {
	return h.window != nil && !h.window.ShouldClose()
}

func (h *Host) PixelSize() batterm.Size {
	return h.fbSize
}

func (h *Host) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if h.in == nil || (action != glfw.Press && action != glfw.Repeat) {
		return
	}
	if k, ok := rawKey(key, mods); ok {
		h.in.Keyboard.Press(k)
	}
}

func (h *Host) onChar(w *glfw.Window, char rune) {
	if h.in == nil {
		return
	}
	h.in.Keyboard.Type(char)
}

func (h *Host) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := mouseButton(button)
	if !ok {
		return
	}
	h.down[b] = action == glfw.Press
}

// Pump waits for events and records the pointer as it stands afterwards.
func (h *Host) Pump(in *batterm.HostInput, timeout time.Duration) error {
	if h.window == nil {
		return fmt.Errorf("window is not open")
	}
	h.in = in
	defer func() { h.in = nil }()
	glfw.WaitEventsTimeout(timeout.Seconds())

	x, y := h.window.GetCursorPos()
	ww, wh := h.window.GetSize()
	p := batterm.PointerState{
		PosX:       x,
		PosY:       y,
		WindowSize: batterm.Size{X: ww, Y: wh},
		ScrollY:    in.Pointer.ScrollY + h.scrollY,
	}
	p.Inside = x >= 0 && y >= 0 && x < float64(ww) && y < float64(wh) &&
		h.window.GetAttrib(glfw.Hovered) == glfw.True
	copy(p.Down[:], h.down[:])
	in.Pointer = p
	h.scrollY = 0
	return nil
}

func (h *Host) Present(buf []uint32, bufSize batterm.Size) error {
	if h.window == nil {
		return fmt.Errorf("window is not open")
	}
	if err := h.presenter.present(buf, bufSize, h.fbSize); err != nil {
		return err
	}
	h.window.SwapBuffers()
	return nil
}

func (h *Host) destroy() {
	if h.window != nil {
		h.window.Destroy()
		h.window = nil
	}
	glfw.Terminate()
}

func (h *Host) Close() error {
	if h.window == nil {
		return nil
	}
	if h.presenter != nil {
		h.presenter.Close()
		h.presenter = nil
	}
	h.destroy()
	return nil
}
