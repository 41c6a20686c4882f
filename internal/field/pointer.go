package field

import (
	"math"
	"time"

	"github.com/iburimskiy/particle-field/internal/config"
)

// pointer is the shared pointer state the integrator reads each tick.
// One instance per Field; never global.
type pointer struct {
	x, y   float64
	active bool
}

// tracker turns polled cursor/touch state into pointer updates, one-shot
// impulses and double-tap detection. The tap timestamp lives here so each
// engine instance debounces independently.
type tracker struct {
	ptr pointer

	lastCursorX, lastCursorY int
	cursorSeen               bool
	touching                 bool

	lastTap time.Time
	now     func() time.Time
}

func newTracker() tracker {
	return tracker{now: time.Now}
}

// move records a pointer move event and marks the pointer active.
func (t *tracker) move(x, y float64) {
	t.ptr.x = x
	t.ptr.y = y
	t.ptr.active = true
}

// release marks the end of an interaction (mouse-up, touch-end).
func (t *tracker) release() {
	t.ptr.active = false
}

// press registers an interaction start and reports whether it completes a
// double tap. Two presses within the tap window count; the third starts
// over.
func (t *tracker) press() bool {
	now := t.now()
	if !t.lastTap.IsZero() && now.Sub(t.lastTap) <= config.DoubleTapWindow {
		t.lastTap = time.Time{}
		return true
	}
	t.lastTap = now
	return false
}

// impulse applies a one-shot velocity kick away from (x, y) to every
// particle inside the burst radius. Falloff is linear: full force at the
// center, zero at the edge. A particle exactly at the center has no
// defined direction and is skipped.
func impulse(ps []Particle, x, y float64) {
	for i := range ps {
		p := &ps[i]
		dx := p.x - x
		dy := p.y - y
		d := math.Hypot(dx, dy)
		if d == 0 || d >= config.BurstRadius {
			continue
		}
		force := (config.BurstRadius - d) / config.BurstRadius
		p.vx += dx / d * force * config.BurstForce
		p.vy += dy / d * force * config.BurstForce
	}
}
