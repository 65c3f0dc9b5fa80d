package evergreen

// easeTo moves cur one damping step toward target. First-order low-pass
// filter: no velocity state, monotone convergence, no overshoot.
func easeTo(cur, target, k float64) float64 {
	return cur + (target-cur)*k
}

// easeVec applies easeTo per component.
func easeVec(cur, target Vec3, k float64) Vec3 {
	return Vec3{
		X: easeTo(cur.X, target.X, k),
		Y: easeTo(cur.Y, target.Y, k),
		Z: easeTo(cur.Z, target.Z, k),
	}
}

// step advances the whole scene by one tick under the given mode. Entity
// order is irrelevant: every entity eases independently toward the target
// the mode selects for it.
func (s *Scene) step(mode Mode) {
	switch mode.State {
	case StateZoomed:
		// Rotation freezes while a photo is inspected.
	case StateExploded:
		s.rotation += s.cfg.RotationSpeedExploded
	default:
		s.rotation += s.cfg.RotationSpeed
	}

	k := s.cfg.Damping

	for i := range s.particles {
		p := &s.particles[i]
		target := p.Rest
		if mode.Exploded() {
			target = p.Target
		}
		p.Pos = easeVec(p.Pos, target, k)
	}

	for _, photo := range s.photos {
		target, opacity := s.photoTarget(photo, mode)
		photo.Pos = easeVec(photo.Pos, target, k)
		photo.Opacity = easeTo(photo.Opacity, opacity, k)
	}
}

// photoTarget resolves a photo's effective target position and opacity by a
// three-way priority: the zoomed photo comes to a fixed forward offset at
// full opacity; while some other photo is zoomed the rest shrink away; and
// otherwise the photo follows the global explode flag, fading in only when
// the scene is scattered.
func (s *Scene) photoTarget(photo *Photo, mode Mode) (Vec3, float64) {
	switch {
	case mode.Zoomed(photo.ID):
		return Vec3{Z: s.cfg.PhotoZoomOffset}, 1
	case mode.State == StateZoomed:
		return photo.Target.Scale(s.cfg.PhotoPushAway), 0
	case mode.Exploded():
		return photo.Target, 1
	default:
		return Vec3{}, 0
	}
}
