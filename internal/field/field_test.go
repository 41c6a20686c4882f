package field

import (
	"testing"
	"time"
)

func TestNewDerivesCountFromWidth(t *testing.T) {
	if got := len(New(900, 600, true).particles); got != 60 {
		t.Errorf("Expected 60 particles for a 900px surface, got %d", got)
	}
	if got := len(New(4000, 600, true).particles); got != 100 {
		t.Errorf("Expected the 100-particle cap, got %d", got)
	}
	if got := len(New(-5, 600, true).particles); got != 0 {
		t.Errorf("Expected an empty store for a degenerate surface, got %d", got)
	}
}

func TestResizeRecreatesStore(t *testing.T) {
	f := New(300, 200, true)
	if got := len(f.particles); got != 20 {
		t.Fatalf("Expected 20 particles, got %d", got)
	}

	f.Resize(1500, 800)
	if got := len(f.particles); got != 100 {
		t.Errorf("Expected 100 particles after growing, got %d", got)
	}

	// Same size again: the store must be left alone.
	before := f.particles[0]
	f.Resize(1500, 800)
	if f.particles[0] != before {
		t.Error("Equal-size resize must not recreate the store")
	}
}

func TestSetDarkRecreatesStore(t *testing.T) {
	f := New(600, 400, true)
	before := append([]Particle(nil), f.particles...)

	f.SetDark(true) // no change
	for i := range before {
		if f.particles[i] != before[i] {
			t.Fatal("Setting the same theme must not touch the store")
		}
	}

	f.SetDark(false)
	changed := false
	for i := range before {
		if f.particles[i] != before[i] {
			changed = true
			break
		}
	}
	if !changed {
		t.Error("Theme change should recreate the store")
	}
}

func TestDoubleTapReachesHandler(t *testing.T) {
	f := New(600, 400, true)
	now := time.Unix(2000, 0)
	f.in.now = func() time.Time { return now }

	fired := 0
	f.SetDoubleTapHandler(func() { fired++ })

	f.interactionStart(50, 50)
	now = now.Add(150 * time.Millisecond)
	f.interactionStart(52, 51)

	if fired != 1 {
		t.Errorf("Expected exactly one callback, got %d", fired)
	}
}

func TestInteractionStartBurstsParticles(t *testing.T) {
	f := New(600, 400, true)
	f.particles = []Particle{{x: 100, y: 100}}

	f.interactionStart(50, 100)
	if f.particles[0].vx <= 0 {
		t.Errorf("Expected a rightward kick, got vx=%v", f.particles[0].vx)
	}
}

func TestStopFreezesEverything(t *testing.T) {
	f := New(600, 400, true)
	f.in.move(10, 10)
	f.Stop()

	before := append([]Particle(nil), f.particles...)
	count := len(f.particles)

	// The host keeps ticking; nothing may change.
	for i := 0; i < 5; i++ {
		f.Update()
	}
	f.Resize(50, 50)
	f.SetDark(false)

	if len(f.particles) != count {
		t.Fatalf("Store size changed after Stop: %d -> %d", count, len(f.particles))
	}
	for i := range before {
		if f.particles[i] != before[i] {
			t.Fatalf("Particle %d mutated after Stop", i)
		}
	}
	if f.in.ptr.active {
		t.Error("Stop must clear the pointer")
	}
	// A nil surface is tolerated too.
	f.Draw(nil)
}
