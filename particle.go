package evergreen

import (
	"math"
	"math/rand/v2"
)

// Particle is one ambient decorative entity. Rest and Target are fixed at
// creation; only Pos animates, easing toward whichever of the two the
// current interaction mode selects.
type Particle struct {
	ID   int
	Kind Kind

	Pos    Vec3 // current, eased each tick
	Rest   Vec3 // tree-spiral placement
	Target Vec3 // explosion shell placement

	// PaletteIndex selects the ornament color; Variant selects the gift
	// texture. Each is meaningful only for its kind.
	PaletteIndex uint8
	Variant      uint8

	// Size is a per-particle scale factor applied on top of perspective.
	Size float64

	// TwinklePhase and TwinkleSpeed drive the sparkle opacity oscillation.
	TwinklePhase float64
	TwinkleSpeed float64
}

// Range is a min/max interval sampled uniformly.
type Range struct {
	Min, Max float64
}

// Random returns a uniform draw from [Min, Max] using rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Per-kind size factor ranges. Sparkle sizes are in pixels (they are drawn
// as shapes, not sprites).
var (
	ornamentSizeRange = Range{0.35, 0.8}
	giftSizeRange     = Range{0.5, 0.95}
	sparkleSizeRange  = Range{1.5, 3.5}
	twinkleSpeedRange = Range{2, 5}
)

// spherePoint samples a point at a uniform random distance in
// [minDist, minDist+spread] along a direction uniform on the sphere. The
// polar angle comes from the inverse cosine of a uniform value in [-1, 1];
// sampling the angle itself uniformly would cluster points at the poles.
func spherePoint(rng *rand.Rand, minDist, spread float64) Vec3 {
	dist := minDist + rng.Float64()*spread
	azimuth := rng.Float64() * 2 * math.Pi
	cosPolar := rng.Float64()*2 - 1
	sinPolar := math.Sqrt(1 - cosPolar*cosPolar)
	return Vec3{
		X: dist * sinPolar * math.Cos(azimuth),
		Y: dist * cosPolar,
		Z: dist * sinPolar * math.Sin(azimuth),
	}
}

// generateParticles builds a full population for a size class. Particle IDs
// start at firstID and are never reused within a session. Each particle
// starts at its rest position.
func generateParticles(cfg Config, sc SizeClass, rng *rand.Rand, firstID int) []Particle {
	count := cfg.particleCount(sc)
	height, radius, jitter := cfg.treeDims(sc)
	minDist, spread := cfg.explodeRange(sc)

	particles := make([]Particle, count)
	for i := range particles {
		t := float64(i) / float64(count)
		angle := t * cfg.SpiralTurns * 2 * math.Pi
		y := t*height - height/2

		// Sub-linear radius growth keeps the silhouette a cone that
		// narrows quickly toward the apex.
		r := math.Pow(t, 0.9) * radius
		r += (rng.Float64()*2 - 1) * jitter

		rest := Vec3{
			X: math.Cos(angle) * r,
			Y: y,
			Z: math.Sin(angle) * r,
		}

		p := Particle{
			ID:     firstID + i,
			Pos:    rest,
			Rest:   rest,
			Target: spherePoint(rng, minDist, spread),
		}

		switch roll := rng.Float64(); {
		case roll < cfg.SparkleChance:
			p.Kind = KindSparkle
			p.Size = sparkleSizeRange.Random(rng)
			p.TwinklePhase = rng.Float64() * 2 * math.Pi
			p.TwinkleSpeed = twinkleSpeedRange.Random(rng)
		case roll < cfg.SparkleChance+cfg.GiftChance:
			p.Kind = KindGift
			p.Size = giftSizeRange.Random(rng)
			p.Variant = uint8(rng.IntN(len(giftVariants)))
		default:
			p.Kind = KindOrnament
			p.Size = ornamentSizeRange.Random(rng)
			p.PaletteIndex = uint8(rng.IntN(len(ornamentPalette)))
		}

		particles[i] = p
	}
	return particles
}
