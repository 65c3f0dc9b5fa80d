package evergreen

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// starLightDir is the fixed directional light the star facets are shaded
// against. Up-left of the viewer, pointing into the scene.
var starLightDir = mgl64.Vec3{-0.45, -0.6, -0.66}.Normalize()

// Star is the static faceted mesh at the tree apex: a front and a back apex
// vertex plus a 10-vertex ring of alternating outer and inner radii, forming
// 20 triangular faces. Geometry is computed once; only the shared scene
// rotation moves it.
type Star struct {
	faces [20][3]Vec3
}

// newStar builds the mesh centered at center. The first ring vertex points
// straight up so the silhouette reads as a five-point star.
func newStar(center Vec3, outerR, innerR, depth float64) *Star {
	var ring [10]Vec3
	for i := range ring {
		angle := float64(i)/10*2*math.Pi - math.Pi/2
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		ring[i] = Vec3{
			X: center.X + math.Cos(angle)*r,
			Y: center.Y + math.Sin(angle)*r,
			Z: center.Z,
		}
	}
	front := Vec3{center.X, center.Y, center.Z - depth}
	back := Vec3{center.X, center.Y, center.Z + depth}

	s := &Star{}
	for i := 0; i < 10; i++ {
		a := ring[i]
		b := ring[(i+1)%10]
		s.faces[i] = [3]Vec3{front, a, b}
		s.faces[10+i] = [3]Vec3{back, b, a}
	}
	return s
}

// Faces returns the 20 triangular faces in scene space.
func (s *Star) Faces() [][3]Vec3 {
	return s.faces[:]
}

// faceBrightness flat-shades a face: the normal from two edge vectors dotted
// with the light direction, floor-clamped so no facet goes fully dark.
func faceBrightness(a, b, c Vec3) float64 {
	va := mgl64.Vec3{a.X, a.Y, a.Z}
	vb := mgl64.Vec3{b.X, b.Y, b.Z}
	vc := mgl64.Vec3{c.X, c.Y, c.Z}
	n := vb.Sub(va).Cross(vc.Sub(va))
	if n.Len() == 0 {
		return starBrightnessFloor
	}
	d := math.Abs(n.Normalize().Dot(starLightDir))
	if d < starBrightnessFloor {
		return starBrightnessFloor
	}
	return d
}

// starBrightnessFloor keeps every facet at least faintly lit.
const starBrightnessFloor = 0.4
