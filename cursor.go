package evergreen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Cursor marker colors per gesture.
var (
	cursorColorDefault = Color{0.55, 0.75, 1, 1}
	cursorColorPinch   = Color{1.0, 0.84, 0.3, 1}
	cursorColorPalm    = Color{0.45, 0.9, 0.55, 1}
)

// rippleAnim is the one-shot expanding ring played on a primary action.
type rippleAnim struct {
	x, y   float64
	radius *gween.Tween
	alpha  *gween.Tween
	r, a   float32
}

func newRipple(x, y float64) *rippleAnim {
	return &rippleAnim{
		x:      x,
		y:      y,
		radius: gween.New(8, 60, 0.45, ease.OutQuad),
		alpha:  gween.New(0.9, 0, 0.45, ease.OutQuad),
		r:      8,
		a:      0.9,
	}
}

// update advances the ripple; returns true when it has played out.
func (rp *rippleAnim) update(dt float32) bool {
	var done bool
	rp.r, _ = rp.radius.Update(dt)
	rp.a, done = rp.alpha.Update(dt)
	return done
}

// drawCursor draws the gesture cursor marker and any active ripple, always
// on top of the depth-sorted scene. The cursor's x coordinate is mirrored
// so on-screen motion matches the user's hand in the camera feed.
func (s *Scene) drawCursor(screen *ebiten.Image) {
	if rp := s.ripple; rp != nil {
		vector.StrokeCircle(screen, float32(rp.x), float32(rp.y), rp.r, 2,
			nrgba(cursorColorDefault.WithAlpha(float64(rp.a))), true)
	}

	if s.lastResult.Cursor == nil {
		return
	}
	x, y := s.cursorToScreen(*s.lastResult.Cursor)

	c := cursorColorDefault
	switch s.lastResult.Gesture {
	case GesturePinch:
		c = cursorColorPinch
	case GestureOpenPalm:
		c = cursorColorPalm
	}

	vector.DrawFilledCircle(screen, float32(x), float32(y), 6, nrgba(c), true)
	vector.StrokeCircle(screen, float32(x), float32(y), 12, 2,
		nrgba(c.WithAlpha(0.6)), true)
}
