package field

import (
	"image/color"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette pairs for the two themes. Particles and links are light on the
// dark background and dark on the light one.
var (
	darkBackground  = color.NRGBA{R: 0x12, G: 0x14, B: 0x1a, A: 0xff}
	lightBackground = color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf2, A: 0xff}
)

// particleColor resolves a particle's fixed color: the theme base with a
// small per-particle lightness wobble and a random alpha. Dark backgrounds
// get a brighter alpha band so the overlay stays visible.
func particleColor(dark bool, rng *rand.Rand) color.NRGBA {
	base := colorful.Color{R: 0.16, G: 0.17, B: 0.20}
	if dark {
		base = colorful.Color{R: 0.92, G: 0.93, B: 0.95}
	}

	h, s, l := base.Hsl()
	l += (rng.Float64() - 0.5) * 0.12
	r, g, b := colorful.Hsl(h, s, clamp01(l)).Clamped().RGB255()

	alpha := 0.2 + rng.Float64()*0.4
	if dark {
		alpha += 0.2
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha * 255)}
}

// lineColor returns the link stroke color for the given alpha in [0,1].
func lineColor(dark bool, alpha float64) color.NRGBA {
	a := uint8(clamp01(alpha) * 255)
	if dark {
		return color.NRGBA{R: 0xeb, G: 0xed, B: 0xf2, A: a}
	}
	return color.NRGBA{R: 0x29, G: 0x2b, B: 0x33, A: a}
}

func background(dark bool) color.NRGBA {
	if dark {
		return darkBackground
	}
	return lightBackground
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
