package evergreen

import (
	"image/color"
	"testing"
)

func TestRasterizeOrnamentShading(t *testing.T) {
	img := rasterizeOrnament(color.RGBA{255, 200, 60, 255}, 64)
	if img == nil {
		t.Fatal("rasterizer returned nil for a valid size")
	}

	// Sphere center is opaque and lit.
	center := img.RGBAAt(32, 32)
	if center.A != 255 {
		t.Errorf("center alpha = %d, want 255", center.A)
	}

	// The highlight region is brighter than the rim.
	highlight := img.RGBAAt(25, 25)
	rim := img.RGBAAt(32, 32+17)
	if highlight.R <= rim.R {
		t.Errorf("highlight R %d not brighter than rim R %d", highlight.R, rim.R)
	}

	// Corners are outside the halo: fully transparent.
	if c := img.RGBAAt(0, 0); c.A != 0 {
		t.Errorf("corner alpha = %d, want 0", c.A)
	}

	// The halo band is translucent.
	halo := img.RGBAAt(32, 3)
	if halo.A == 0 || halo.A == 255 {
		t.Errorf("halo alpha = %d, want translucent", halo.A)
	}
}

func TestRasterizeGiftLayout(t *testing.T) {
	v := giftVariants[0]
	img := rasterizeGift(v, 48)
	if img == nil {
		t.Fatal("rasterizer returned nil for a valid size")
	}

	// Ribbons cross at the center.
	if c := img.RGBAAt(24, 24); c != v.ribbon {
		t.Errorf("center = %v, want ribbon %v", c, v.ribbon)
	}
	// Vertical ribbon band away from the center row.
	if c := img.RGBAAt(24, 5); c != v.ribbon {
		t.Errorf("vertical band = %v, want ribbon %v", c, v.ribbon)
	}

	// Left half is the lit box color, right half is shaded darker.
	left := img.RGBAAt(5, 5)
	right := img.RGBAAt(42, 5)
	if left != v.box {
		t.Errorf("lit half = %v, want %v", left, v.box)
	}
	if right.R >= left.R && right.G >= left.G && right.B >= left.B {
		t.Errorf("shaded half %v not darker than lit half %v", right, left)
	}
}

func TestRasterizeInvalidSize(t *testing.T) {
	if img := rasterizeOrnament(color.RGBA{255, 0, 0, 255}, 0); img != nil {
		t.Error("ornament rasterizer must refuse size 0")
	}
	if img := rasterizeGift(giftVariants[0], -1); img != nil {
		t.Error("gift rasterizer must refuse negative sizes")
	}
}

func TestSpriteBankExhaustive(t *testing.T) {
	b := newSpriteBank()

	want := len(ornamentPalette) + len(giftVariants)
	if got := len(b.images); got != want {
		t.Fatalf("bank holds %d sprites, want %d", got, want)
	}

	for i := range ornamentPalette {
		if b.ornament(uint8(i)) == nil {
			t.Errorf("ornament(%d) = nil", i)
		}
	}
	for i := range giftVariants {
		if b.gift(uint8(i)) == nil {
			t.Errorf("gift(%d) = nil", i)
		}
	}

	// Out-of-range indices wrap instead of missing.
	if b.ornament(200) == nil {
		t.Error("ornament lookup must never miss")
	}
	if b.gift(200) == nil {
		t.Error("gift lookup must never miss")
	}
}
