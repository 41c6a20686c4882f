// Package field implements an animated particle-network background: points
// drift across the surface, flee the pointer, fly apart on clicks and taps,
// shake while an alarm is ringing, and are joined by fading lines when they
// come close to each other. A Field renders behind the host's own UI; the
// host drives it from its Update/Draw loop.
package field

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Field is one engine instance. It owns its particle store, its pointer
// state and its random source; two instances never interfere.
type Field struct {
	w, h      float64
	particles []Particle
	in        tracker
	rng       *rand.Rand

	dark     bool
	alarming bool
	onDouble func()

	touchIDs []ebiten.TouchID
	stopped  bool
}

// New creates a field sized to the given surface. The particle count is
// derived from the width; see Resize for what happens when it changes.
func New(w, h int, dark bool) *Field {
	f := &Field{
		w:    float64(w),
		h:    float64(h),
		in:   newTracker(),
		dark: dark,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	f.particles = newParticles(f.w, f.h, f.dark, f.rng)
	return f
}

// Resize recreates the particle store for a new surface size. Particle
// state is intentionally not carried over. Calling it every frame is fine;
// it does nothing unless the size actually changed.
func (f *Field) Resize(w, h int) {
	if f.stopped {
		return
	}
	fw, fh := float64(w), float64(h)
	if fw == f.w && fh == f.h {
		return
	}
	f.w, f.h = fw, fh
	f.particles = newParticles(f.w, f.h, f.dark, f.rng)
}

// SetDark switches the theme. Particle colors are resolved at creation, so
// a change recreates the store.
func (f *Field) SetDark(dark bool) {
	if f.stopped || dark == f.dark {
		return
	}
	f.dark = dark
	f.particles = newParticles(f.w, f.h, f.dark, f.rng)
}

// SetAlarming toggles the alarm shake. Read fresh every tick.
func (f *Field) SetAlarming(alarming bool) {
	f.alarming = alarming
}

// SetDoubleTapHandler installs the callback fired on a double click or
// double tap. The gesture is relayed verbatim; the field does nothing else
// with it.
func (f *Field) SetDoubleTapHandler(fn func()) {
	f.onDouble = fn
}

// Update polls input and advances the simulation by one tick. Integration
// always finishes before the same tick's Draw. No-op after Stop.
func (f *Field) Update() {
	if f.stopped {
		return
	}
	f.pollInput()
	f.step()
}

// Stop tears the field down: every later Update, Draw or Resize is a
// no-op, so the surface is never touched again even if the host keeps
// ticking.
func (f *Field) Stop() {
	f.stopped = true
	f.in.release()
}

// pollInput maps Ebitengine's polled cursor/touch state onto pointer
// events: position deltas become moves, button/touch edges become
// interaction starts and ends. Only the first touch point counts.
func (f *Field) pollInput() {
	cx, cy := ebiten.CursorPosition()
	if f.in.cursorSeen && (cx != f.in.lastCursorX || cy != f.in.lastCursorY) {
		f.in.move(float64(cx), float64(cy))
	}
	// The first poll only establishes a baseline.
	f.in.lastCursorX, f.in.lastCursorY = cx, cy
	f.in.cursorSeen = true

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.interactionStart(float64(cx), float64(cy))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		f.in.release()
	}

	f.touchIDs = ebiten.AppendTouchIDs(f.touchIDs[:0])
	if len(f.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(f.touchIDs[0])
		f.in.move(float64(tx), float64(ty))
		if !f.in.touching {
			f.in.touching = true
			f.interactionStart(float64(tx), float64(ty))
		}
	} else if f.in.touching {
		f.in.touching = false
		f.in.release()
	}
}

// interactionStart fires the one-shot burst and feeds the double-tap
// detector.
func (f *Field) interactionStart(x, y float64) {
	impulse(f.particles, x, y)
	if f.in.press() && f.onDouble != nil {
		f.onDouble()
	}
}
