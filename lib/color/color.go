// Package color converts palette strings into raster colors.
package color

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Parse accepts any CSS color: hex, rgb(), hsl() or a named color.
func Parse(colorString string) (color.RGBA, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", colorString, err)
	}
	return color.RGBA{
		R: channel(c.R * c.A),
		G: channel(c.G * c.A),
		B: channel(c.B * c.A),
		A: channel(c.A),
	}, nil
}

// MustParse is Parse for compile time palette constants.
func MustParse(colorString string) color.RGBA {
	c, err := Parse(colorString)
	if err != nil {
		panic(err)
	}
	return c
}

func channel(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, f)) * 255))
}

func Darken(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	// decrease luminance by 10%
	return colorful.Hsl(h, s, l-.1).Clamped().Hex(), nil
}

func Luminance(colorString string) (float64, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, err
	}

	l := float64(
		float64(0.299)*float64(c.R) +
			float64(0.587)*float64(c.G) +
			float64(0.114)*float64(c.B),
	)
	return l, nil
}

func LuminanceCategory(colorString string) (string, error) {
	l, err := Luminance(colorString)
	if err != nil {
		return "", err
	}

	switch {
	case l >= .88:
		return "bright", nil
	case l >= .55:
		return "normal", nil
	case l >= .30:
		return "dark", nil
	default:
		return "darker", nil
	}
}

// Contrast picks a readable text color for labels drawn over fill.
func Contrast(fill, light, dark string) string {
	cat, err := LuminanceCategory(fill)
	if err != nil {
		return dark
	}
	switch cat {
	case "dark", "darker":
		return light
	default:
		return dark
	}
}
