package batterm

import (
	"image"
	"image/color"
	"math/bits"
)

// boxGlyphMasks maps every box drawing glyph to the simplest mask drawing it.
var boxGlyphMasks = func() map[byte]uint8 {
	m := make(map[byte]uint8)
	for mask, g := range boxChars {
		old, ok := m[g]
		if !ok || bits.OnesCount8(mask) < bits.OnesCount8(old) ||
			(bits.OnesCount8(mask) == bits.OnesCount8(old) && mask < old) {
			m[g] = mask
		}
	}
	return m
}()

var opaque = color.Alpha{A: 0xff}

func fillRect(img *image.Alpha, r image.Rectangle) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetAlpha(x, y, opaque)
		}
	}
}

// synthGlyph draws the line and block glyphs of the code page directly so
// that they join seamlessly across cells. It reports whether code was one
// of them.
func synthGlyph(img *image.Alpha, code byte) bool {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	switch code {
	case 0xdb:
		fillRect(img, b)
		return true
	case 0xdc:
		fillRect(img, image.Rect(0, h/2, w, h))
		return true
	case 0xdd:
		fillRect(img, image.Rect(0, 0, w/2, h))
		return true
	case 0xde:
		fillRect(img, image.Rect(w/2, 0, w, h))
		return true
	case 0xdf:
		fillRect(img, image.Rect(0, 0, w, h/2))
		return true
	case 0xb0, 0xb1, 0xb2:
		shade(img, code-0xb0)
		return true
	}
	mask, ok := boxGlyphMasks[code]
	if !ok {
		return false
	}
	cx, cy := w/2-1, h/2-1
	edge := func(shift uint) uint8 { return (mask >> shift) & 0b11 }
	lines := func(e uint8) []int {
		if e == 0b01 {
			return []int{0}
		}
		return []int{-1, 1}
	}
	if e := edge(6); e != 0 {
		for _, d := range lines(e) {
			fillRect(img, image.Rect(cx+d, 0, cx+d+1, cy+2))
		}
	}
	if e := edge(4); e != 0 {
		for _, d := range lines(e) {
			fillRect(img, image.Rect(cx-1, cy+d, w, cy+d+1))
		}
	}
	if e := edge(2); e != 0 {
		for _, d := range lines(e) {
			fillRect(img, image.Rect(cx+d, cy-1, cx+d+1, h))
		}
	}
	if e := edge(0); e != 0 {
		for _, d := range lines(e) {
			fillRect(img, image.Rect(0, cy+d, cx+2, cy+d+1))
		}
	}
	return true
}

// shade fills one in four, two in four or three in four pixels.
func shade(img *image.Alpha, level byte) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var on bool
			switch level {
			case 0:
				on = x%2 == 0 && y%2 == 0
			case 1:
				on = (x+y)%2 == 0
			default:
				on = x%2 == 1 || y%2 == 1
			}
			if on {
				img.SetAlpha(x, y, opaque)
			}
		}
	}
}
