package batterm

// Palette indices of the default swatch. Hued colors come in four ramps,
// 0 darkest, 3 lightest.
const (
	Black   uint8 = 0
	DkGray0 uint8 = 1
	DkGray1 uint8 = 2
	DkGray2 uint8 = 3
	LtGray0 uint8 = 4
	LtGray1 uint8 = 5
	LtGray2 uint8 = 6
	White   uint8 = 7

	Red0     uint8 = 8
	Orange0  uint8 = 9
	Yellow0  uint8 = 10
	Green0   uint8 = 11
	Cyan0    uint8 = 12
	Blue0    uint8 = 13
	Purple0  uint8 = 14
	Fuchsia0 uint8 = 15

	Red1     uint8 = 16
	Orange1  uint8 = 17
	Yellow1  uint8 = 18
	Green1   uint8 = 19
	Cyan1    uint8 = 20
	Blue1    uint8 = 21
	Purple1  uint8 = 22
	Fuchsia1 uint8 = 23

	Red2     uint8 = 24
	Orange2  uint8 = 25
	Yellow2  uint8 = 26
	Green2   uint8 = 27
	Cyan2    uint8 = 28
	Blue2    uint8 = 29
	Purple2  uint8 = 30
	Fuchsia2 uint8 = 31

	Red3     uint8 = 32
	Orange3  uint8 = 33
	Yellow3  uint8 = 34
	Green3   uint8 = 35
	Cyan3    uint8 = 36
	Blue3    uint8 = 37
	Purple3  uint8 = 38
	Fuchsia3 uint8 = 39

	// first entry of the 6x6x6 color cube filling the rest of the swatch
	CubeBase uint8 = 40
)

type Ramp [4]uint8

var (
	Dark    = Ramp{Black, DkGray0, DkGray1, DkGray2}
	Light   = Ramp{LtGray0, LtGray1, LtGray2, White}
	Red     = Ramp{Red0, Red1, Red2, Red3}
	Orange  = Ramp{Orange0, Orange1, Orange2, Orange3}
	Yellow  = Ramp{Yellow0, Yellow1, Yellow2, Yellow3}
	Green   = Ramp{Green0, Green1, Green2, Green3}
	Cyan    = Ramp{Cyan0, Cyan1, Cyan2, Cyan3}
	Blue    = Ramp{Blue0, Blue1, Blue2, Blue3}
	Purple  = Ramp{Purple0, Purple1, Purple2, Purple3}
	Fuchsia = Ramp{Fuchsia0, Fuchsia1, Fuchsia2, Fuchsia3}
)

// CubeColor returns the palette index of a color cube entry, each channel in 0..5.
func CubeColor(r, g, b int) uint8 {
	clamp := func(v int) int { return max(0, min(5, v)) }
	return CubeBase + uint8(clamp(r)*36+clamp(g)*6+clamp(b))
}
