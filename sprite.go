package evergreen

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// ornamentPalette holds the base colors ornaments are drawn in. Indexed by a
// particle's paletteIndex.
var ornamentPalette = []color.RGBA{
	{255, 200, 60, 255},  // warm gold
	{230, 60, 60, 255},   // red
	{240, 240, 255, 255}, // ice white
	{255, 150, 40, 255},  // amber
	{120, 190, 255, 255}, // pale blue
}

// giftVariant pairs a box color with a ribbon color.
type giftVariant struct {
	box    color.RGBA
	ribbon color.RGBA
}

// giftVariants holds the box/ribbon color pairs. Indexed by a particle's
// variant index.
var giftVariants = []giftVariant{
	{box: color.RGBA{200, 40, 50, 255}, ribbon: color.RGBA{255, 215, 120, 255}},
	{box: color.RGBA{40, 120, 70, 255}, ribbon: color.RGBA{240, 240, 240, 255}},
	{box: color.RGBA{60, 80, 170, 255}, ribbon: color.RGBA{255, 200, 80, 255}},
	{box: color.RGBA{170, 130, 40, 255}, ribbon: color.RGBA{180, 40, 50, 255}},
}

const (
	ornamentSpriteSize = 64
	giftSpriteSize     = 48
)

// spriteKey identifies a cached sprite: the particle kind plus a palette or
// variant index. A typed key (rather than a formatted string) lets the bank
// be built exhaustively up front so lookups can never miss.
type spriteKey struct {
	kind  Kind
	index uint8
}

// SpriteBank caches the procedurally rasterized sprites for the process
// lifetime. Build one with newSpriteBank before the first frame.
type SpriteBank struct {
	images map[spriteKey]*ebiten.Image
}

// newSpriteBank rasterizes every ornament color and gift variant once.
func newSpriteBank() *SpriteBank {
	b := &SpriteBank{images: make(map[spriteKey]*ebiten.Image)}
	for i := range ornamentPalette {
		src := rasterizeOrnament(ornamentPalette[i], ornamentSpriteSize)
		b.images[spriteKey{KindOrnament, uint8(i)}] = spriteImage(src)
	}
	for i := range giftVariants {
		src := rasterizeGift(giftVariants[i], giftSpriteSize)
		b.images[spriteKey{KindGift, uint8(i)}] = spriteImage(src)
	}
	return b
}

// spriteImage wraps a rasterized bitmap into a GPU image. A nil bitmap (a
// rasterizer refusing a bad size) degrades to a 1x1 transparent placeholder
// so affected particles render nothing instead of failing the frame.
func spriteImage(src *image.RGBA) *ebiten.Image {
	if src == nil {
		warnOnce("sprite rasterization failed, using empty placeholder")
		return ebiten.NewImage(1, 1)
	}
	return ebiten.NewImageFromImage(src)
}

// ornament returns the cached ornament sprite for a palette index.
func (b *SpriteBank) ornament(index uint8) *ebiten.Image {
	return b.images[spriteKey{KindOrnament, index % uint8(len(ornamentPalette))}]
}

// gift returns the cached gift sprite for a variant index.
func (b *SpriteBank) gift(index uint8) *ebiten.Image {
	return b.images[spriteKey{KindGift, index % uint8(len(giftVariants))}]
}

var warned = map[string]bool{}

// warnOnce logs a warning to stderr the first time each message occurs.
func warnOnce(msg string) {
	if warned[msg] {
		return
	}
	warned[msg] = true
	_, _ = fmt.Fprintf(os.Stderr, "[evergreen] warning: %s\n", msg)
}

// rasterizeOrnament draws a glowing sphere: a soft radial halo, a shaded
// sphere body running from a white highlight through the base color to a dark
// rim, and a small elliptical specular spot. Returns nil if size is not
// positive.
func rasterizeOrnament(base color.RGBA, size int) *image.RGBA {
	if size <= 0 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cx := float64(size) / 2
	cy := float64(size) / 2
	haloR := float64(size) / 2
	sphereR := haloR * 0.62
	// Highlight center sits up-left of the sphere center.
	hx := cx - sphereR*0.35
	hy := cy - sphereR*0.35

	br := float64(base.R)
	bg := float64(base.G)
	bb := float64(base.B)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx := float64(x) + 0.5
			fy := float64(y) + 0.5
			d := math.Hypot(fx-cx, fy-cy)

			switch {
			case d <= sphereR:
				// Sphere body: shade by distance from the highlight point.
				t := clamp01(math.Hypot(fx-hx, fy-hy) / (sphereR * 1.6))
				// White core -> base color -> dark rim.
				var r, g, bl float64
				if t < 0.35 {
					u := t / 0.35
					r = 255 + (br-255)*u
					g = 255 + (bg-255)*u
					bl = 255 + (bb-255)*u
				} else {
					u := (t - 0.35) / 0.65
					r = br * (1 - 0.75*u)
					g = bg * (1 - 0.75*u)
					bl = bb * (1 - 0.75*u)
				}
				img.SetRGBA(x, y, color.RGBA{uint8(r), uint8(g), uint8(bl), 255})
			case d <= haloR:
				// Soft glow halo with quadratic falloff.
				u := 1 - (d-sphereR)/(haloR-sphereR)
				a := clamp01(u*u) * 0.55
				img.SetRGBA(x, y, color.RGBA{
					uint8(br * a), uint8(bg * a), uint8(bb * a), uint8(255 * a),
				})
			}
		}
	}

	// Small elliptical specular highlight.
	sx := cx - sphereR*0.4
	sy := cy - sphereR*0.45
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx := float64(x) + 0.5
			fy := float64(y) + 0.5
			dx := (fx - sx) / (sphereR * 0.28)
			dy := (fy - sy) / (sphereR * 0.18)
			e := dx*dx + dy*dy
			if e < 1 {
				a := clamp01(1 - e)
				prev := img.RGBAAt(x, y)
				img.SetRGBA(x, y, color.RGBA{
					mixByte(prev.R, 255, a),
					mixByte(prev.G, 255, a),
					mixByte(prev.B, 255, a),
					prev.A,
				})
			}
		}
	}
	return img
}

// rasterizeGift draws a wrapped box: flat fill, a darker half simulating a
// directional light, two perpendicular ribbon bands, and a circular bow knot.
// Returns nil if size is not positive.
func rasterizeGift(v giftVariant, size int) *image.RGBA {
	if size <= 0 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	shade := color.RGBA{
		uint8(float64(v.box.R) * 0.7),
		uint8(float64(v.box.G) * 0.7),
		uint8(float64(v.box.B) * 0.7),
		255,
	}
	band := size / 6
	mid := size / 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := v.box
			if x >= mid {
				// Right half away from the light.
				c = shade
			}
			// Ribbon bands through the center, both axes.
			if abs(x-mid) < band/2 || abs(y-mid) < band/2 {
				c = v.ribbon
			}
			img.SetRGBA(x, y, c)
		}
	}

	// Bow knot: a filled circle where the ribbons cross.
	knotR := float64(band) * 0.9
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x-mid)+0.5, float64(y-mid)+0.5)
			if d <= knotR {
				img.SetRGBA(x, y, v.ribbon)
			}
		}
	}
	return img
}

func mixByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
