package glhost

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/cellux/batterm"
)

func TestRawKey(t *testing.T) {
	cases := []struct {
		key  glfw.Key
		mods glfw.ModifierKey
		want batterm.RawKey
	}{
		{glfw.KeyQ, 0, batterm.RawKey{Code: batterm.KeyQ}},
		{glfw.Key7, glfw.ModShift, batterm.RawKey{Code: batterm.Key7, Shift: true}},
		{glfw.KeyKP3, 0, batterm.RawKey{Code: batterm.Key3, Keypad: true}},
		{glfw.KeyKPAdd, 0, batterm.RawKey{Code: batterm.KeyPlus, Keypad: true}},
		{glfw.KeyF12, glfw.ModControl | glfw.ModAlt, batterm.RawKey{Code: batterm.KeyF12, Control: true, Alt: true}},
		{glfw.KeyGraveAccent, 0, batterm.RawKey{Code: batterm.KeyBackquote}},
		{glfw.KeyF20, 0, batterm.RawKey{Code: batterm.KeyUnknown}},
	}
	for _, tc := range cases {
		got, ok := rawKey(tc.key, tc.mods)
		assert.True(t, ok)
		assert.Equal(t, tc.want, got, "key %d", tc.key)
	}
	_, ok := rawKey(glfw.KeyLeftShift, glfw.ModShift)
	assert.False(t, ok)
}

func TestMouseButton(t *testing.T) {
	b, ok := mouseButton(glfw.MouseButtonRight)
	assert.True(t, ok)
	assert.Equal(t, batterm.MouseRight, b)
	_, ok = mouseButton(glfw.MouseButtonMiddle)
	assert.False(t, ok)
}

func TestQuadTransform(t *testing.T) {
	m := quadTransform(batterm.Size{X: 640, Y: 480})
	topLeft := m.Mul4x1(mgl.Vec4{0, 0, 0, 1})
	bottomRight := m.Mul4x1(mgl.Vec4{640, 480, 0, 1})
	assert.InDelta(t, -1, topLeft[0], 1e-6)
	assert.InDelta(t, 1, topLeft[1], 1e-6)
	assert.InDelta(t, 1, bottomRight[0], 1e-6)
	assert.InDelta(t, -1, bottomRight[1], 1e-6)
}

func TestPackRGBA(t *testing.T) {
	got := packRGBA(nil, []uint32{0x123456, 0xabcdef})
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0xff, 0xab, 0xcd, 0xef, 0xff}, got)
}
