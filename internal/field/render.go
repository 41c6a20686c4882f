package field

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-field/internal/config"
)

// link is a connecting segment between two particles that sit closer than
// the connect distance.
type link struct {
	i, j  int
	alpha float64 // stroke alpha; fades with distance, may be clamped to 0
}

// links scans all unordered particle pairs and returns the ones within the
// connect distance (strictly below; a pair exactly at the threshold gets no
// line). The scan is quadratic on purpose: the store is capped at 100
// particles, so at most 4950 pairs per frame.
func links(ps []Particle) []link {
	var out []link
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			d := math.Hypot(ps[i].x-ps[j].x, ps[i].y-ps[j].y)
			if d >= config.ConnectDistance {
				continue
			}
			out = append(out, link{i: i, j: j, alpha: config.LineAlphaBase - d/config.LineFadeDivisor})
		}
	}
	return out
}

// Draw paints the current frame: theme background, one filled disc per
// particle, then the proximity links. It draws nothing after Stop or when
// there is no surface to draw on.
func (f *Field) Draw(dst *ebiten.Image) {
	if f.stopped || dst == nil {
		return
	}

	dst.Fill(background(f.dark))

	for i := range f.particles {
		p := &f.particles[i]
		vector.DrawFilledCircle(dst, float32(p.x), float32(p.y), float32(p.size), p.col, true)
	}

	for _, l := range links(f.particles) {
		if l.alpha <= 0 {
			continue
		}
		a, b := &f.particles[l.i], &f.particles[l.j]
		vector.StrokeLine(dst,
			float32(a.x), float32(a.y),
			float32(b.x), float32(b.y),
			config.LineWidth, lineColor(f.dark, l.alpha), true)
	}
}
