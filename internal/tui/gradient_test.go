package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB(t *testing.T) {
	c, err := hexToRGB("#ff79c6")
	require.NoError(t, err)
	assert.Equal(t, rgb{r: 0xff, g: 0x79, b: 0xc6}, c)

	c, err = hexToRGB("FFF")
	require.NoError(t, err)
	assert.Equal(t, rgb{r: 0xff, g: 0xff, b: 0xff}, c)

	_, err = hexToRGB("#12345")
	assert.Error(t, err)

	_, err = hexToRGB("zzzzzz")
	assert.Error(t, err)
}

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "#0a0b0c", rgb{r: 10, g: 11, b: 12}.hex())
}

func TestApplyGradient_KeepsText(t *testing.T) {
	out := stripANSI(ApplyGradient("one\ntwo\nthree", "#000000", "#ffffff"))
	assert.Equal(t, "one\ntwo\nthree", out)
}

func TestApplyGradient_InvalidColorReturnsInput(t *testing.T) {
	assert.Equal(t, "logo", ApplyGradient("logo", "nope", "#ffffff"))
}

func TestRenderLogo(t *testing.T) {
	assert.Equal(t, logoText, stripANSI(RenderLogo()))
}
