package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toroid/pkg/sims/life"
)

func TestPaletteColor(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, p.Dead, p.Color(life.Dead))
	assert.Equal(t, p.Living, p.Color(life.Living))
	assert.Equal(t, p.Dying, p.Color(life.Dying))
	assert.Equal(t, p.Live, p.Color(life.Live))
	assert.Equal(t, p.Dead, p.Color(life.CellState(9)))
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#a6e3a1")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xa6, G: 0xe3, B: 0xa1, A: 0xff}, c)

	c, err = ParseHex(" 10203040 ")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)

	for _, bad := range []string{"", "#fff", "#gggggg", "#1234567"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestHexRoundTrip(t *testing.T) {
	p := DefaultPalette()
	for _, c := range []color.RGBA{p.Dead, p.Living, {R: 1, G: 2, B: 3, A: 4}} {
		parsed, err := ParseHex(Hex(c))
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}
