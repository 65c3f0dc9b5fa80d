package evergreen

import "sort"

// PrimaryAction is the select action (mouse click or pinch). From the
// collapsed state it explodes the scene; while a photo is zoomed it unzooms;
// otherwise it hit-tests the photos under the point and zooms the nearest
// one, or does nothing if the point misses.
func (s *Scene) PrimaryAction(x, y float64) {
	switch s.mode().State {
	case StateCollapsed:
		s.exploded = true
	case StateZoomed:
		s.zoomed = false
		s.zoomedID = 0
	case StateExploded:
		if id, ok := s.hitTestPhoto(x, y); ok {
			s.zoomed = true
			s.zoomedID = id
		}
	}
	s.ripple = newRipple(x, y)
}

// CancelAction returns to the collapsed tree and clears any zoom,
// regardless of the current state.
func (s *Scene) CancelAction() {
	s.exploded = false
	s.zoomed = false
	s.zoomedID = 0
}

// Explode scatters the scene without going through a hit test.
func (s *Scene) Explode() {
	s.exploded = true
}

// hitCandidate is one photo's projected bounding rectangle plus its depth.
type hitCandidate struct {
	id    uint32
	depth float64
	rect  Rect
}

// hitTestPhoto projects every sufficiently-opaque photo at the current
// rotation and returns the nearest one whose bounding rectangle contains
// (x, y). Using the current rotation keeps the test consistent with what
// was last drawn; the at-most-one-frame lag is bounded by the per-tick
// rotation delta.
func (s *Scene) hitTestPhoto(x, y float64) (uint32, bool) {
	cx := s.width / 2
	cy := s.height / 2
	focal := s.cfg.FocalLength

	var candidates []hitCandidate
	for _, photo := range s.photos {
		if photo.Opacity < s.cfg.HitOpacity {
			continue
		}
		pos := photo.Pos.RotateY(s.rotation)
		scale := focal / (focal + pos.Z)
		if scale <= 0 {
			continue
		}
		w := photo.Width * scale
		h := photo.Height * scale
		candidates = append(candidates, hitCandidate{
			id:    photo.ID,
			depth: pos.Z,
			rect: Rect{
				X:      pos.X*scale + cx - w/2,
				Y:      pos.Y*scale + cy - h/2,
				Width:  w,
				Height: h,
			},
		})
	}

	// Nearest first, so a near photo wins inside an overlap.
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].depth < candidates[j].depth
	})

	for _, c := range candidates {
		if c.rect.Contains(x, y) {
			return c.id, true
		}
	}
	return 0, false
}

// HandleGesture applies one gesture result to the scene state. An open palm
// forces the exploded state, a closed fist collapses everything, and a
// pinch acts like a primary click at the mirrored cursor. The pinch fires
// only on the transition into the gesture; a held pinch would otherwise
// toggle zoom every tick.
func (s *Scene) HandleGesture(res GestureResult) {
	s.lastResult = res

	switch res.Gesture {
	case GestureOpenPalm:
		s.exploded = true
	case GestureClosedFist:
		s.CancelAction()
	case GesturePinch:
		if s.prevGesture != GesturePinch && res.Cursor != nil {
			x, y := s.cursorToScreen(*res.Cursor)
			s.PrimaryAction(x, y)
		}
	}
	s.prevGesture = res.Gesture
}

// cursorToScreen maps a normalized gesture cursor to screen coordinates.
// The x axis is mirrored: the screen shows the camera feed as a mirror.
func (s *Scene) cursorToScreen(c Vec2) (float64, float64) {
	return (1 - c.X) * s.width, c.Y * s.height
}
