package evergreen

import "testing"

// testScene returns a scene with no particles or photos, ready for
// interaction tests.
func testScene(t *testing.T) *Scene {
	t.Helper()
	s := newScene(DefaultConfig(), 1280, 720, testRNG())
	s.particles = nil
	return s
}

// addTestPhoto appends a bare photo billboard at a position, fully opaque.
func addTestPhoto(s *Scene, id uint32, pos Vec3) *Photo {
	p := &Photo{ID: id, Width: 150, Height: 100, Pos: pos, Target: pos, Opacity: 1}
	s.photos = append(s.photos, p)
	return p
}

func TestPrimaryActionExplodes(t *testing.T) {
	s := testScene(t)
	if s.Mode().State != StateCollapsed {
		t.Fatal("scene must start collapsed")
	}
	s.PrimaryAction(10, 10)
	if s.Mode().State != StateExploded {
		t.Errorf("state = %v, want exploded", s.Mode().State)
	}
}

func TestPrimaryActionSelectsAndDeselects(t *testing.T) {
	s := testScene(t)
	addTestPhoto(s, 1, Vec3{0, 0, 0})
	s.Explode()

	// Click the center: the photo projects there.
	s.PrimaryAction(640, 360)
	if m := s.Mode(); m.State != StateZoomed || m.PhotoID != 1 {
		t.Fatalf("mode = %+v, want zoomed photo 1", m)
	}

	// Any primary action while zoomed unzooms.
	s.PrimaryAction(0, 0)
	if m := s.Mode(); m.State != StateExploded {
		t.Errorf("mode after unzoom = %+v, want exploded", m)
	}
}

func TestPrimaryActionMissKeepsState(t *testing.T) {
	s := testScene(t)
	addTestPhoto(s, 1, Vec3{300, 0, 0})
	s.Explode()

	s.PrimaryAction(10, 10)
	if m := s.Mode(); m.State != StateExploded {
		t.Errorf("mode after miss = %+v, want exploded unchanged", m)
	}
}

// TestZoomMutualExclusion: selecting a second photo while one is zoomed is
// impossible directly (the first click unzooms), and the zoomed id is a
// single field, so at most one photo can ever be zoomed.
func TestZoomMutualExclusion(t *testing.T) {
	s := testScene(t)
	addTestPhoto(s, 1, Vec3{-200, 0, 0})
	addTestPhoto(s, 2, Vec3{200, 0, 0})
	s.Explode()

	sel := func() []uint32 {
		var ids []uint32
		m := s.Mode()
		for _, p := range s.photos {
			if m.Zoomed(p.ID) {
				ids = append(ids, p.ID)
			}
		}
		return ids
	}

	// Zoom photo 1 (projected left of center).
	s.PrimaryAction(640-200, 360)
	if ids := sel(); len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("zoomed ids = %v, want [1]", ids)
	}

	// Unzoom, then zoom photo 2: the previous selection is gone atomically.
	s.PrimaryAction(640+200, 360)
	if s.Mode().State != StateExploded {
		t.Fatal("expected unzoom")
	}
	s.PrimaryAction(640+200, 360)
	if ids := sel(); len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("zoomed ids = %v, want [2]", ids)
	}
}

func TestCancelActionAlwaysCollapses(t *testing.T) {
	s := testScene(t)
	addTestPhoto(s, 1, Vec3{})
	s.Explode()
	s.PrimaryAction(640, 360)
	if s.Mode().State != StateZoomed {
		t.Fatal("setup: expected zoomed")
	}

	s.CancelAction()
	if m := s.Mode(); m.State != StateCollapsed || m.PhotoID != 0 {
		t.Errorf("mode after cancel = %+v, want collapsed with no zoom", m)
	}

	// Cancel from collapsed is a no-op, not an error.
	s.CancelAction()
	if s.Mode().State != StateCollapsed {
		t.Error("cancel from collapsed must stay collapsed")
	}
}

// TestHitTestNearestWins: two overlapping photos at different depths; a
// click inside the overlap selects the nearer one.
func TestHitTestNearestWins(t *testing.T) {
	s := testScene(t)
	addTestPhoto(s, 1, Vec3{0, 0, 100}) // farther
	addTestPhoto(s, 2, Vec3{20, 0, 10}) // nearer, overlapping at center

	id, ok := s.hitTestPhoto(640, 360)
	if !ok {
		t.Fatal("expected a hit")
	}
	if id != 2 {
		t.Errorf("hit id = %d, want 2 (the nearer photo)", id)
	}
}

func TestHitTestIgnoresFadedPhotos(t *testing.T) {
	s := testScene(t)
	p := addTestPhoto(s, 1, Vec3{})
	p.Opacity = 0.3 // below the 50% threshold

	if _, ok := s.hitTestPhoto(640, 360); ok {
		t.Error("photo below the opacity threshold must not be hit-testable")
	}
}

func TestHitTestUsesCurrentRotation(t *testing.T) {
	s := testScene(t)
	// Photo at +X; after a quarter turn it rotates to -Z (toward the
	// viewer) and projects at the center, enlarged.
	addTestPhoto(s, 1, Vec3{200, 0, 0})

	if _, ok := s.hitTestPhoto(640+200, 360); !ok {
		t.Fatal("expected hit at unrotated position")
	}

	s.rotation = 3.14159265 / 2
	if _, ok := s.hitTestPhoto(640, 360); !ok {
		t.Error("expected hit at the rotated position")
	}
}

func TestHandleGestureTransitions(t *testing.T) {
	s := testScene(t)

	s.HandleGesture(GestureResult{Gesture: GestureOpenPalm, Cursor: &Vec2{0.5, 0.5}})
	if s.Mode().State != StateExploded {
		t.Fatalf("open palm: state = %v, want exploded", s.Mode().State)
	}

	s.HandleGesture(GestureResult{Gesture: GestureClosedFist, Cursor: &Vec2{0.5, 0.5}})
	if s.Mode().State != StateCollapsed {
		t.Fatalf("closed fist: state = %v, want collapsed", s.Mode().State)
	}

	// Pinch acts as a primary click: from collapsed it explodes.
	s.HandleGesture(GestureResult{Gesture: GesturePinch, Cursor: &Vec2{0.5, 0.5}})
	if s.Mode().State != StateExploded {
		t.Fatalf("pinch: state = %v, want exploded", s.Mode().State)
	}
}

// TestHandleGesturePinchEdge: a held pinch is one action, not one per tick.
func TestHandleGesturePinchEdge(t *testing.T) {
	s := testScene(t)
	addTestPhoto(s, 1, Vec3{})
	s.Explode()

	// Cursor at normalized (0.5, 0.5) maps to the screen center where the
	// photo sits.
	pinch := GestureResult{Gesture: GesturePinch, Cursor: &Vec2{0.5, 0.5}}
	s.HandleGesture(pinch)
	if s.Mode().State != StateZoomed {
		t.Fatal("first pinch must zoom the photo")
	}

	// Same gesture repeated: no new action, still zoomed.
	s.HandleGesture(pinch)
	s.HandleGesture(pinch)
	if s.Mode().State != StateZoomed {
		t.Error("held pinch must not toggle the zoom")
	}

	// Release (pointing), pinch again: unzooms.
	s.HandleGesture(GestureResult{Gesture: GesturePointing, Cursor: &Vec2{0.5, 0.5}})
	s.HandleGesture(pinch)
	if s.Mode().State != StateExploded {
		t.Error("re-pinch after release must unzoom")
	}
}

func TestCursorMirroring(t *testing.T) {
	s := testScene(t)
	x, y := s.cursorToScreen(Vec2{0.25, 0.5})
	if x != 0.75*1280 || y != 0.5*720 {
		t.Errorf("cursorToScreen = (%v, %v), want (%v, %v)", x, y, 0.75*1280, 0.5*720)
	}
}
