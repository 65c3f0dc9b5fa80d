package evergreen

import (
	"image"
	"math/rand/v2"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Scene owns the live entity collections and the per-tick state machine.
// All mutation happens inside Update (the tick); Draw only reads. External
// producers (the gesture tracker, the photo watcher) hand data over through
// the mailbox and the pending-photo queue rather than touching scene state.
type Scene struct {
	cfg     Config
	rng     *rand.Rand
	sprites *SpriteBank

	width, height float64
	sizeClass     SizeClass

	particles []Particle
	photos    []*Photo
	star      *Star

	rotation float64
	elapsed  float64
	exploded bool
	zoomed   bool
	zoomedID uint32

	// Gesture input: latest-wins mailbox written by the tracker goroutine,
	// read once per tick. prevGesture detects the pinch edge.
	mailbox     *GestureMailbox
	prevGesture Gesture
	lastResult  GestureResult

	// Pending photos decoded off-tick, drained at the start of Update.
	pendingMu sync.Mutex
	pending   []image.Image

	// Startup fade-in and click-ripple feedback.
	fade      *gween.Tween
	fadeAlpha float64
	ripple    *rippleAnim

	// Render scratch, reused across frames.
	items   []drawItem
	sortBuf []drawItem

	debug bool
}

// NewScene creates a scene sized to the drawing surface, with a freshly
// seeded particle population at rest.
func NewScene(cfg Config, width, height float64) *Scene {
	return newScene(cfg, width, height, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// newScene is the seedable constructor used by tests.
func newScene(cfg Config, width, height float64, rng *rand.Rand) *Scene {
	s := &Scene{
		cfg:       cfg,
		rng:       rng,
		width:     width,
		height:    height,
		mailbox:   &GestureMailbox{},
		fade:      gween.New(0, 1, 1.5, ease.InOutQuad),
		sizeClass: cfg.sizeClassFor(width),
	}
	s.populate()
	return s
}

// populate regenerates the particle set and star for the current size class.
// Photos are never regenerated, only appended to.
func (s *Scene) populate() {
	firstID := 0
	if n := len(s.particles); n > 0 {
		firstID = s.particles[n-1].ID + 1
	}
	s.particles = generateParticles(s.cfg, s.sizeClass, s.rng, firstID)

	height, radius, _ := s.cfg.treeDims(s.sizeClass)
	outerR := radius * 0.32
	apex := Vec3{Y: -height/2 - outerR*0.7}
	s.star = newStar(apex, outerR, outerR*0.45, outerR*0.3)
}

// Mailbox returns the gesture mailbox external trackers publish into.
func (s *Scene) Mailbox() *GestureMailbox {
	return s.mailbox
}

// SetDebug toggles per-frame stat logging and the FPS overlay.
func (s *Scene) SetDebug(enabled bool) {
	s.debug = enabled
}

// Resize updates the drawing-surface size. Crossing the width breakpoint
// changes the size class and rebuilds the whole particle population;
// in-flight positions are discarded.
func (s *Scene) Resize(width, height float64) {
	s.width = width
	s.height = height
	if sc := s.cfg.sizeClassFor(width); sc != s.sizeClass {
		s.sizeClass = sc
		s.populate()
	}
}

// EnqueuePhoto hands a decoded image to the scene. Safe to call from any
// goroutine; the image joins the photo population on the next tick.
func (s *Scene) EnqueuePhoto(img image.Image) {
	s.pendingMu.Lock()
	s.pending = append(s.pending, img)
	s.pendingMu.Unlock()
}

// AddPhoto appends a photo immediately. Must be called from the tick (or
// before the loop starts); external producers use EnqueuePhoto.
func (s *Scene) AddPhoto(img image.Image) *Photo {
	p := newPhoto(s.cfg, s.rng, img)
	s.photos = append(s.photos, p)
	return p
}

// ClearPhotos removes every photo and any zoomed state.
func (s *Scene) ClearPhotos() {
	s.photos = nil
	s.zoomed = false
	s.zoomedID = 0
}

// Photos returns the live photo list. The returned slice MUST NOT be mutated.
func (s *Scene) Photos() []*Photo {
	return s.photos
}

// ParticleCount returns the current population size.
func (s *Scene) ParticleCount() int {
	return len(s.particles)
}

// Rotation returns the current scene rotation in radians.
func (s *Scene) Rotation() float64 {
	return s.rotation
}

// mode snapshots the interaction state for this tick. Physics and render
// both receive the same value, so no branch can observe a half-applied
// transition.
func (s *Scene) mode() Mode {
	switch {
	case s.zoomed:
		return Mode{State: StateZoomed, PhotoID: s.zoomedID}
	case s.exploded:
		return Mode{State: StateExploded}
	default:
		return Mode{State: StateCollapsed}
	}
}

// Mode returns the current interaction mode snapshot.
func (s *Scene) Mode() Mode {
	return s.mode()
}

// Update runs one tick: drain external inputs, apply gesture transitions,
// then integrate physics. Call once per frame before Draw.
func (s *Scene) Update() {
	dt := 1.0 / float64(ebiten.TPS())
	s.elapsed += dt

	s.drainPending()

	if res, ok := s.mailbox.Latest(); ok {
		s.HandleGesture(res)
	}

	s.fadeAlpha = s.advanceTweens(float32(dt))

	s.step(s.mode())
}

// drainPending moves queued photo images into the live set.
func (s *Scene) drainPending() {
	s.pendingMu.Lock()
	pending := s.pending
	s.pending = nil
	s.pendingMu.Unlock()
	for _, img := range pending {
		s.AddPhoto(img)
	}
}

// advanceTweens steps the startup fade and any active ripple, returning the
// scene-wide alpha for this frame.
func (s *Scene) advanceTweens(dt float32) float64 {
	alpha, _ := s.fade.Update(dt)
	if s.ripple != nil && s.ripple.update(dt) {
		s.ripple = nil
	}
	return float64(alpha)
}
