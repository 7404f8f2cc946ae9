package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/regexcat/regexcat/internal/tui/colors"
)

const logoText = `┬─┐┌─┐┌─┐┌─┐─┐ ┬┌─┐┌─┐┌┬┐
├┬┘├┤ │ ┬├┤ ┌┴┬┘│  ├─┤ │
┴└─└─┘└─┘└─┘┴ └─└─┘┴ ┴ ┴`

// RenderLogo draws the header with a gradient matched to the background.
func RenderLogo() string {
	if lipgloss.HasDarkBackground() {
		return ApplyGradient(logoText, colors.GradientStartDark, colors.GradientEndDark)
	}
	return ApplyGradient(logoText, colors.GradientStartLight, colors.GradientEndLight)
}

// ApplyGradient colors each line of text, interpolating from startHex on
// the first line to endHex on the last. Invalid colors leave text unstyled.
func ApplyGradient(text, startHex, endHex string) string {
	lines := strings.Split(text, "\n")
	height := len(lines)

	startRGB, err := hexToRGB(startHex)
	if err != nil {
		return text
	}
	endRGB, err := hexToRGB(endHex)
	if err != nil {
		return text
	}

	coloredLines := make([]string, 0, height)
	for i, line := range lines {
		t := 0.0
		if height > 1 {
			t = float64(i) / float64(height-1)
		}

		c := rgb{
			r: uint8(math.Round(lerp(float64(startRGB.r), float64(endRGB.r), t))),
			g: uint8(math.Round(lerp(float64(startRGB.g), float64(endRGB.g), t))),
			b: uint8(math.Round(lerp(float64(startRGB.b), float64(endRGB.b), t))),
		}

		coloredLines = append(coloredLines, lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.hex())).
			Bold(true).
			Render(line))
	}

	return strings.Join(coloredLines, "\n")
}

type rgb struct {
	r, g, b uint8
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

func hexToRGB(hex string) (rgb, error) {
	hex = strings.TrimPrefix(hex, "#")

	// Short form, e.g. "FFF"
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		return rgb{}, fmt.Errorf("invalid hex color: %s", hex)
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rgb{}, err
	}

	return rgb{
		r: uint8(val >> 16),
		g: uint8((val >> 8) & 0xFF),
		b: uint8(val & 0xFF),
	}, nil
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
