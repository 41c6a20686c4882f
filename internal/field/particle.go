package field

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/particle-field/internal/config"
)

// Particle is one point of the field. Position and velocity are mutated by
// the integrator once per tick; everything else is fixed at creation.
type Particle struct {
	x, y     float64
	vx, vy   float64
	bvx, bvy float64 // innate drift the velocity relaxes back to
	size     float64
	density  float64 // scales pointer repulsion per particle
	col      color.NRGBA
}

// newParticles builds a fresh store for a surface of the given size. The
// count scales with width and is capped; a zero or negative surface yields
// an empty store.
func newParticles(w, h float64, dark bool, rng *rand.Rand) []Particle {
	count := int(math.Round(w / config.ParticleSpacing))
	if count > config.MaxParticles {
		count = config.MaxParticles
	}
	if count < 0 || w <= 0 || h <= 0 {
		count = 0
	}

	ps := make([]Particle, count)
	for i := range ps {
		ps[i] = Particle{
			x:       rng.Float64() * w,
			y:       rng.Float64() * h,
			bvx:     (rng.Float64()*2 - 1) * config.DriftRange,
			bvy:     (rng.Float64()*2 - 1) * config.DriftRange,
			size:    config.MinSize + rng.Float64()*config.SizeRange,
			density: config.MinDensity + rng.Float64()*config.DensityRange,
			col:     particleColor(dark, rng),
		}
		ps[i].vx = ps[i].bvx
		ps[i].vy = ps[i].bvy
	}
	return ps
}
