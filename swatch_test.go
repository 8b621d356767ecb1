package batterm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSwatch(t *testing.T) {
	s := DefaultSwatch()
	assert.Equal(t, Black, s.DefaultBg)
	assert.Equal(t, LtGray1, s.DefaultFg)
	assert.Equal(t, uint32(0x000000), s.Get(Black))
	assert.Equal(t, uint32(0xffffff), s.Get(White))
	assert.Equal(t, uint32(0xff0000), s.Get(CubeColor(5, 0, 0)))
	assert.Equal(t, uint32(0x0000ff), s.Get(CubeColor(0, 0, 5)))
	assert.Equal(t, uint8(255), CubeColor(9, 9, 9))

	for i := Black; i < White; i++ {
		assert.Less(t, s.Get(i)&0xff, s.Get(i+1)&0xff, "gray ramp rises at %d", i)
	}
	for _, ramp := range []Ramp{Red, Green, Blue} {
		assert.NotEqual(t, s.Get(ramp[0]), s.Get(ramp[3]))
	}
}

func TestLoadSwatch(t *testing.T) {
	data := make([]byte, SwatchDataSize)
	data[3], data[4], data[5] = 0x12, 0x34, 0x56
	s, err := LoadSwatch(bytes.NewReader(data), 0, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x123456), s.Get(1))
	assert.Equal(t, uint8(1), s.DefaultFg)

	_, err = LoadSwatch(bytes.NewReader(data[:100]), 0, 1)
	assert.ErrorIs(t, err, ErrBadSwatch)

	_, err = SwatchFromBytes(data[:SwatchDataSize-1], 0, 1)
	assert.ErrorIs(t, err, ErrBadSwatch)
}
