package evergreen

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawKind tags a drawItem. The set is closed so the draw dispatch is
// exhaustive; adding a kind without a draw rule is a compile-time smell, not
// a silent no-op at runtime.
type drawKind uint8

const (
	drawOrnament drawKind = iota
	drawGift
	drawSparkle
	drawStarFace
	drawPhoto
)

// drawItem is one entry of the unified depth-sorted draw list. It carries
// only the precomputed screen-space fields its kind needs; depth and order
// are the sort keys.
type drawItem struct {
	kind  drawKind
	depth float64
	order int

	// Projected center and perspective scale (ornament/gift/sparkle/photo).
	x, y  float64
	scale float64

	// Sprite kinds.
	img  *ebiten.Image
	size float64

	// Sparkle twinkle / photo eased opacity.
	opacity float64

	// Star faces: the three projected vertices and the flat-shade factor.
	tri        [3]Vec2
	brightness float64

	photo  *Photo
	zoomed bool
}

// frameStats holds per-frame timing, populated only in debug mode.
type frameStats struct {
	buildTime  time.Duration
	sortTime   time.Duration
	submitTime time.Duration
	itemCount  int
}

// Draw projects, sorts, and composites the scene onto screen. Call after
// Update each frame. A nil screen skips the frame entirely; it will be
// retried on the next tick.
func (s *Scene) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	if s.sprites == nil {
		s.sprites = newSpriteBank()
	}

	mode := s.mode()

	var stats frameStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.buildItems(mode)

	if s.debug {
		stats.buildTime = time.Since(t0)
		t0 = time.Now()
	}

	s.sortItems()

	if s.debug {
		stats.sortTime = time.Since(t0)
		stats.itemCount = len(s.items)
		t0 = time.Now()
	}

	for i := range s.items {
		s.submitItem(screen, &s.items[i])
	}
	s.drawCursor(screen)

	if s.debug {
		stats.submitTime = time.Since(t0)
		s.logStats(stats)
		s.drawOverlay(screen)
	}
}

// buildItems fills s.items with every drawable for this frame: particles,
// photos, and (unless a photo is zoomed) the star's faces. Everything is
// rotated about the vertical axis and perspective-projected here, once.
func (s *Scene) buildItems(mode Mode) {
	s.items = s.items[:0]
	cx := s.width / 2
	cy := s.height / 2
	focal := s.cfg.FocalLength

	for i := range s.particles {
		p := &s.particles[i]
		rp := p.Pos.RotateY(s.rotation)
		scale := focal / (focal + rp.Z)
		if scale <= 0 {
			continue
		}
		it := drawItem{
			depth: rp.Z,
			order: len(s.items),
			x:     rp.X*scale + cx,
			y:     rp.Y*scale + cy,
			scale: scale,
			size:  p.Size,
		}
		switch p.Kind {
		case KindOrnament:
			it.kind = drawOrnament
			if s.sprites != nil {
				it.img = s.sprites.ornament(p.PaletteIndex)
			}
		case KindGift:
			it.kind = drawGift
			if s.sprites != nil {
				it.img = s.sprites.gift(p.Variant)
			}
		case KindSparkle:
			tw := 0.3 + 0.7*math.Sin(s.elapsed*p.TwinkleSpeed+p.TwinklePhase)
			if tw <= 0 {
				continue
			}
			it.kind = drawSparkle
			it.opacity = tw
		}
		s.items = append(s.items, it)
	}

	for _, photo := range s.photos {
		if photo.Opacity < 0.01 {
			continue
		}
		zoomed := mode.Zoomed(photo.ID)
		pos := photo.Pos
		if !zoomed {
			// The zoomed photo always faces the viewer at its fixed
			// forward offset; everything else spins with the scene.
			pos = pos.RotateY(s.rotation)
		}
		scale := focal / (focal + pos.Z)
		if scale <= 0 {
			continue
		}
		if zoomed {
			scale *= s.cfg.PhotoZoomScale
		}
		s.items = append(s.items, drawItem{
			kind:    drawPhoto,
			depth:   pos.Z,
			order:   len(s.items),
			x:       pos.X*scale + cx,
			y:       pos.Y*scale + cy,
			scale:   scale,
			opacity: photo.Opacity,
			photo:   photo,
			zoomed:  zoomed,
		})
	}

	if mode.State != StateZoomed {
		s.buildStarItems(cx, cy, focal)
	}
}

// buildStarItems projects each star face independently per vertex; the sort
// depth is the mean rotated vertex depth.
func (s *Scene) buildStarItems(cx, cy, focal float64) {
	for _, face := range s.star.Faces() {
		var rot [3]Vec3
		depth := 0.0
		for i, v := range face {
			rot[i] = v.RotateY(s.rotation)
			depth += rot[i].Z
		}
		depth /= 3

		var tri [3]Vec2
		visible := true
		for i, v := range rot {
			scale := focal / (focal + v.Z)
			if scale <= 0 {
				visible = false
				break
			}
			tri[i] = Vec2{v.X*scale + cx, v.Y*scale + cy}
		}
		if !visible {
			continue
		}
		s.items = append(s.items, drawItem{
			kind:       drawStarFace,
			depth:      depth,
			order:      len(s.items),
			tri:        tri,
			brightness: faceBrightness(rot[0], rot[1], rot[2]),
		})
	}
}

// itemLessOrEqual orders items back-to-front (largest depth first). The
// emit-order tie-break with <= keeps the sort stable so equal depths never
// flicker between frames.
func itemLessOrEqual(a, b *drawItem) bool {
	if a.depth != b.depth {
		return a.depth > b.depth
	}
	return a.order <= b.order
}

// sortItems sorts s.items in place using s.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations once the buffer reaches its
// high-water mark.
func (s *Scene) sortItems() {
	n := len(s.items)
	if n <= 1 {
		return
	}
	if cap(s.sortBuf) < n {
		s.sortBuf = make([]drawItem, n)
	}
	s.sortBuf = s.sortBuf[:n]

	a := s.items
	b := s.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(s.items, s.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []drawItem, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if itemLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}

// submitItem draws one item by kind. Each rule sets its blend on its own
// draw options, so no compositing state leaks between items.
func (s *Scene) submitItem(screen *ebiten.Image, it *drawItem) {
	switch it.kind {
	case drawOrnament:
		s.submitSprite(screen, it, BlendAdd)
	case drawGift:
		s.submitSprite(screen, it, BlendNormal)
	case drawSparkle:
		s.submitSparkle(screen, it)
	case drawStarFace:
		s.submitStarFace(screen, it)
	case drawPhoto:
		s.submitPhoto(screen, it)
	}
}

// submitSprite draws a cached sprite centered at the item's projected point,
// scaled by the particle size factor and perspective.
func (s *Scene) submitSprite(screen *ebiten.Image, it *drawItem, blend BlendMode) {
	if it.img == nil {
		return
	}
	b := it.img.Bounds()
	f := it.size * it.scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(f, f)
	op.GeoM.Translate(it.x, it.y)
	op.ColorScale.ScaleAlpha(float32(s.fadeAlpha))
	op.Blend = blend.EbitenBlend()
	screen.DrawImage(it.img, op)
}

// submitSparkle draws a four-point diamond plus a soft core circle at the
// twinkle opacity.
func (s *Scene) submitSparkle(screen *ebiten.Image, it *drawItem) {
	a := it.opacity * s.fadeAlpha
	w := it.size * it.scale
	h := w * 2.6

	quad := [4]Vec2{
		{it.x, it.y - h},
		{it.x + w, it.y},
		{it.x, it.y + h},
		{it.x - w, it.y},
	}
	fillQuad(screen, quad, Color{1, 1, 1, a}, BlendAdd)
	vector.DrawFilledCircle(screen, float32(it.x), float32(it.y), float32(w*1.2),
		nrgba(Color{1, 1, 1, a * 0.5}), true)
}

// Star facet colors: an amber-gold fill modulated by brightness, a warm glow
// behind, and a thin light edge.
var (
	starFillColor = Color{1.0, 0.78, 0.25, 1}
	starGlowColor = Color{1.0, 0.85, 0.4, 1}
	starEdgeColor = Color{1.0, 0.95, 0.8, 1}
)

// submitStarFace fills a facet with its flat-shaded color over a widened
// additive glow pass, then strokes the edges.
func (s *Scene) submitStarFace(screen *ebiten.Image, it *drawItem) {
	a := s.fadeAlpha

	// Glow: the same triangle expanded about its centroid, drawn additive.
	cx := (it.tri[0].X + it.tri[1].X + it.tri[2].X) / 3
	cy := (it.tri[0].Y + it.tri[1].Y + it.tri[2].Y) / 3
	var glow [3]Vec2
	for i, p := range it.tri {
		glow[i] = Vec2{cx + (p.X-cx)*1.3, cy + (p.Y-cy)*1.3}
	}
	fillTriangle(screen, glow, starGlowColor.WithAlpha(0.3*a), BlendAdd)

	fill := Color{
		R: starFillColor.R * it.brightness,
		G: starFillColor.G * it.brightness,
		B: starFillColor.B * it.brightness,
		A: a,
	}
	fillTriangle(screen, it.tri, fill, BlendNormal)

	edge := nrgba(starEdgeColor.WithAlpha(0.8 * a))
	for i := range it.tri {
		p := it.tri[i]
		q := it.tri[(i+1)%3]
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), 1, edge, true)
	}
}

// Photo frame colors.
var (
	photoFrameColor  = Color{1, 1, 1, 1}
	photoFrameZoomed = Color{1.0, 0.84, 0.4, 1}
	photoShadowColor = Color{0, 0, 0, 0.35}
)

// submitPhoto draws the drop shadow, frame, and scaled image for one photo.
// A disposed source image must not take down the frame, so the draw is
// isolated per photo.
func (s *Scene) submitPhoto(screen *ebiten.Image, it *drawItem) {
	defer func() {
		if r := recover(); r != nil {
			warnOnce("photo draw failed, skipping")
		}
	}()

	photo := it.photo
	a := it.opacity * s.fadeAlpha
	w := photo.Width * it.scale
	h := photo.Height * it.scale
	x0 := it.x - w/2
	y0 := it.y - h/2

	shadowOff := 4 * it.scale
	vector.DrawFilledRect(screen, float32(x0+shadowOff), float32(y0+shadowOff),
		float32(w), float32(h), nrgba(photoShadowColor.WithAlpha(a)), true)

	if photo.Image != nil {
		b := photo.Image.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
		op.GeoM.Translate(x0, y0)
		op.ColorScale.ScaleAlpha(float32(a))
		screen.DrawImage(photo.Image, op)
	}

	frame := photoFrameColor
	width := float32(math.Max(1, 3*it.scale))
	if it.zoomed {
		frame = photoFrameZoomed
		width = float32(math.Max(1.5, 5*it.scale))
	}
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(w), float32(h),
		width, nrgba(frame.WithAlpha(a)), true)
}

// fillTriangle fills a screen-space triangle with a solid color.
func fillTriangle(dst *ebiten.Image, pts [3]Vec2, c Color, blend BlendMode) {
	var vs [3]ebiten.Vertex
	writeVerts(vs[:], pts[:], c)
	var op ebiten.DrawTrianglesOptions
	op.Blend = blend.EbitenBlend()
	dst.DrawTriangles(vs[:], triIndices[:3], WhitePixel, &op)
}

// fillQuad fills a screen-space quad (two triangles) with a solid color.
func fillQuad(dst *ebiten.Image, pts [4]Vec2, c Color, blend BlendMode) {
	var vs [4]ebiten.Vertex
	writeVerts(vs[:], pts[:], c)
	var op ebiten.DrawTrianglesOptions
	op.Blend = blend.EbitenBlend()
	dst.DrawTriangles(vs[:], triIndices[:6], WhitePixel, &op)
}

var triIndices = [6]uint16{0, 1, 2, 0, 2, 3}

// writeVerts fills vertex slots with premultiplied color and the white-pixel
// source coordinate.
func writeVerts(vs []ebiten.Vertex, pts []Vec2, c Color) {
	r := float32(c.R * c.A)
	g := float32(c.G * c.A)
	b := float32(c.B * c.A)
	a := float32(c.A)
	for i := range pts {
		vs[i] = ebiten.Vertex{
			DstX:   float32(pts[i].X),
			DstY:   float32(pts[i].Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}
}

// nrgba converts a Color to a non-premultiplied color.NRGBA for the vector
// helpers.
func nrgba(c Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}
