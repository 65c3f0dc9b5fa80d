package evergreen

// Config holds the tuned constants that define the scene's look and feel.
// The values are empirical: they were chosen by eye, and "correct" simply
// means reproducing that look. Prefer adjusting them here over deriving
// replacements.
type Config struct {
	// Breakpoint is the drawing-surface width in pixels below which the
	// narrow (mobile) size class applies.
	Breakpoint float64

	// ParticleCountNarrow and ParticleCountWide are the population sizes
	// for the two size classes.
	ParticleCountNarrow int
	ParticleCountWide   int

	// SpiralTurns is the number of full revolutions the tree spiral makes
	// from apex to base.
	SpiralTurns float64
	// TreeHeight and TreeRadius define the cone, per size class.
	TreeHeightNarrow float64
	TreeHeightWide   float64
	TreeRadiusNarrow float64
	TreeRadiusWide   float64
	// RadiusJitter is the maximum radial scatter added to the spiral, per
	// size class.
	RadiusJitterNarrow float64
	RadiusJitterWide   float64

	// ExplodeMinDist and ExplodeSpread bound the shell on which particle
	// explosion targets are sampled, per size class.
	ExplodeMinDistNarrow float64
	ExplodeMinDistWide   float64
	ExplodeSpreadNarrow  float64
	ExplodeSpreadWide    float64

	// PhotoMinDist and PhotoSpread bound the (larger) shell for photo
	// explosion targets.
	PhotoMinDist float64
	PhotoSpread  float64
	// PhotoWidth is the fixed billboard width; height follows the image
	// aspect ratio.
	PhotoWidth float64
	// PhotoZoomScale is the extra scale applied to the zoomed photo.
	PhotoZoomScale float64
	// PhotoPushAway multiplies a non-zoomed photo's explosion target while
	// another photo is zoomed.
	PhotoPushAway float64
	// PhotoZoomOffset is the forward (negative Z) offset of the zoomed photo.
	PhotoZoomOffset float64

	// SparkleChance and GiftChance are the cumulative kind thresholds: a
	// uniform draw below SparkleChance is a sparkle, below
	// SparkleChance+GiftChance a gift, anything else an ornament.
	SparkleChance float64
	GiftChance    float64

	// Damping is the per-tick exponential easing factor for positions and
	// opacities. First-order low-pass: no velocity state, no overshoot.
	Damping float64

	// RotationSpeed and RotationSpeedExploded are the per-tick rotation
	// increments in radians; rotation freezes entirely while a photo is
	// zoomed.
	RotationSpeed         float64
	RotationSpeedExploded float64

	// FocalLength controls perspective strength: scale = focal/(focal+z).
	FocalLength float64

	// HitOpacity is the minimum eased opacity at which a photo is
	// hit-testable.
	HitOpacity float64

	// PinchThreshold, FistThreshold, and PalmThreshold classify hand
	// landmarks: thumb-index distance below PinchThreshold is a pinch;
	// otherwise a mean fingertip-wrist distance below FistThreshold is a
	// fist, above PalmThreshold an open palm, and anything between is
	// pointing.
	PinchThreshold float64
	FistThreshold  float64
	PalmThreshold  float64
}

// DefaultConfig returns the tuned configuration.
func DefaultConfig() Config {
	return Config{
		Breakpoint:          768,
		ParticleCountNarrow: 1200,
		ParticleCountWide:   1500,

		SpiralTurns:        32,
		TreeHeightNarrow:   360,
		TreeHeightWide:     480,
		TreeRadiusNarrow:   130,
		TreeRadiusWide:     180,
		RadiusJitterNarrow: 14,
		RadiusJitterWide:   20,

		ExplodeMinDistNarrow: 260,
		ExplodeMinDistWide:   380,
		ExplodeSpreadNarrow:  180,
		ExplodeSpreadWide:    260,

		PhotoMinDist:    420,
		PhotoSpread:     240,
		PhotoWidth:      150,
		PhotoZoomScale:  1.5,
		PhotoPushAway:   3,
		PhotoZoomOffset: -200,

		SparkleChance: 0.10,
		GiftChance:    0.08,

		Damping: 0.05,

		RotationSpeed:         0.006,
		RotationSpeedExploded: 0.002,

		FocalLength: 450,

		HitOpacity: 0.5,

		PinchThreshold: 0.05,
		FistThreshold:  0.25,
		PalmThreshold:  0.4,
	}
}

// SizeClass is the binary viewport classification derived from the width
// breakpoint.
type SizeClass uint8

const (
	SizeWide   SizeClass = iota // width >= breakpoint
	SizeNarrow                  // width < breakpoint
)

// sizeClassFor returns the class for a surface width.
func (c Config) sizeClassFor(width float64) SizeClass {
	if width < c.Breakpoint {
		return SizeNarrow
	}
	return SizeWide
}

// particleCount returns the population size for a class.
func (c Config) particleCount(sc SizeClass) int {
	if sc == SizeNarrow {
		return c.ParticleCountNarrow
	}
	return c.ParticleCountWide
}

// treeDims returns height, radius, and radial jitter for a class.
func (c Config) treeDims(sc SizeClass) (height, radius, jitter float64) {
	if sc == SizeNarrow {
		return c.TreeHeightNarrow, c.TreeRadiusNarrow, c.RadiusJitterNarrow
	}
	return c.TreeHeightWide, c.TreeRadiusWide, c.RadiusJitterWide
}

// explodeRange returns the explosion shell bounds for a class.
func (c Config) explodeRange(sc SizeClass) (minDist, spread float64) {
	if sc == SizeNarrow {
		return c.ExplodeMinDistNarrow, c.ExplodeSpreadNarrow
	}
	return c.ExplodeMinDistWide, c.ExplodeSpreadWide
}
