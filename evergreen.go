package evergreen

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// WithAlpha returns the color with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	return Color{c.R, c.G, c.B, c.A * a}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// WhitePixel is a 1x1 white image used as the source for solid-color
// triangle fills.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Vec2 is a 2D vector used for screen points, normalized cursor positions,
// and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D point in scene space. Y increases downward to match the
// screen coordinate system after projection; Z increases away from the viewer.
type Vec3 struct {
	X, Y, Z float64
}

// RotateY rotates the vector about the vertical axis by angle radians.
// Y is unaffected.
func (v Vec3) RotateY(angle float64) Vec3 {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// Scale returns the vector multiplied component-wise by f.
func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter (overlapping glows brighten)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	default:
		return ebiten.BlendSourceOver
	}
}

// Kind distinguishes the ambient particle types. The set is closed: every
// renderer dispatch over Kind is exhaustive.
type Kind uint8

const (
	KindOrnament Kind = iota // glowing sphere sprite, additive blending
	KindGift                 // wrapped box sprite, normal blending
	KindSparkle              // twinkling diamond, no sprite
)

// String returns the kind name for logs and test output.
func (k Kind) String() string {
	switch k {
	case KindOrnament:
		return "ornament"
	case KindGift:
		return "gift"
	case KindSparkle:
		return "sparkle"
	default:
		return "unknown"
	}
}

// Gesture is a discrete hand-gesture label produced by the gesture bridge.
type Gesture uint8

const (
	GestureNone       Gesture = iota // no hand detected
	GestureOpenPalm                  // all fingers extended
	GestureClosedFist                // fingers curled to the palm
	GesturePinch                     // thumb and index tips touching
	GesturePointing                  // intermediate / index extended
)

// String returns the gesture name for logs and test output.
func (g Gesture) String() string {
	switch g {
	case GestureOpenPalm:
		return "open_palm"
	case GestureClosedFist:
		return "closed_fist"
	case GesturePinch:
		return "pinch"
	case GesturePointing:
		return "pointing"
	default:
		return "none"
	}
}

// State is the top-level interaction state of the scene.
type State uint8

const (
	StateCollapsed State = iota // particles at their tree rest positions
	StateExploded               // particles scattered, photos revealed
	StateZoomed                 // exploded with one photo brought forward
)

// String returns the state name for logs and test output.
func (s State) String() string {
	switch s {
	case StateExploded:
		return "exploded"
	case StateZoomed:
		return "zoomed"
	default:
		return "collapsed"
	}
}

// Mode is an immutable per-frame snapshot of the interaction state. It is
// computed once per tick and passed into the physics and render steps so
// every branch reads the same value.
type Mode struct {
	State State
	// PhotoID is the zoomed photo's id. Only valid when State == StateZoomed.
	PhotoID uint32
}

// Zoomed reports whether id is the zoomed photo in this mode.
func (m Mode) Zoomed(id uint32) bool {
	return m.State == StateZoomed && m.PhotoID == id
}

// Exploded reports whether the scene is scattered (zoomed counts as exploded).
func (m Mode) Exploded() bool {
	return m.State != StateCollapsed
}
