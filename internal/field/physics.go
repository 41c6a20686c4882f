package field

import (
	"math"

	"github.com/iburimskiy/particle-field/internal/config"
)

// step advances every particle by one tick: drift recovery, alarm jitter,
// position update, toroidal wrap, then pointer repulsion.
//
// Drift and bursts live in velocity and decay through the recovery factor;
// pointer repulsion is applied straight to position and recomputed fresh
// every frame, so it vanishes the moment the pointer leaves range. The two
// paths are deliberately kept apart.
func (f *Field) step() {
	for i := range f.particles {
		p := &f.particles[i]

		p.vx = p.vx*config.DriftDecay + p.bvx*(1-config.DriftDecay)
		p.vy = p.vy*config.DriftDecay + p.bvy*(1-config.DriftDecay)

		var jx, jy float64
		if f.alarming {
			// Displacement only; the shake must not feed back into velocity.
			jx = (f.rng.Float64()*2 - 1) * config.JitterAmplitude
			jy = (f.rng.Float64()*2 - 1) * config.JitterAmplitude
		}

		p.x = wrap(p.x+p.vx+jx, f.w)
		p.y = wrap(p.y+p.vy+jy, f.h)

		if f.in.ptr.active {
			repel(p, f.in.ptr.x, f.in.ptr.y)
		}
	}
}

// repel pushes a particle away from the pointer while it is inside the
// force radius. The push scales with the particle's density and linear
// falloff from the pointer. Exact overlap has no direction and is skipped
// so no non-finite value can enter the store.
func repel(p *Particle, px, py float64) {
	dx := p.x - px
	dy := p.y - py
	d := math.Hypot(dx, dy)
	if d == 0 || d >= config.ForceRadius {
		return
	}
	force := (config.ForceRadius - d) / config.ForceRadius
	p.x += dx / d * force * p.density * config.RepelStrength
	p.y += dy / d * force * p.density * config.RepelStrength
}

// wrap folds a coordinate into [0, max). Particles leaving one edge
// reappear on the opposite one.
func wrap(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	for v < 0 {
		v += max
	}
	for v >= max {
		v -= max
	}
	return v
}
