package config

import "time"

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Particle store
	ParticleSpacing = 15 // pixels of surface width per particle
	MaxParticles    = 100
	DriftRange      = 0.15 // base velocity components in [-DriftRange, DriftRange]
	MinSize         = 1.0
	SizeRange       = 2.0 // render radius in [MinSize, MinSize+SizeRange]
	MinDensity      = 1.0
	DensityRange    = 30.0 // repulsion scalar in [MinDensity, MinDensity+DensityRange]

	// Integration
	DriftDecay      = 0.96 // velocity share kept per tick; the rest relaxes toward base drift
	JitterAmplitude = 2.0  // alarm shake per axis, uniform [-JitterAmplitude, JitterAmplitude]

	// Pointer forces
	ForceRadius   = 250.0 // continuous repulsion range
	RepelStrength = 1.5
	BurstRadius   = 300.0 // one-shot impulse range on interaction start
	BurstForce    = 15.0

	// Proximity links
	ConnectDistance = 120.0
	LineAlphaBase   = 0.08
	LineFadeDivisor = 1500.0
	LineWidth       = 0.5

	DoubleTapWindow = 350 * time.Millisecond
)
