// Package evergreen renders an interactive pseudo-3D particle tree scene
// for [Ebitengine].
//
// The scene holds thousands of independently animated 3D entities: ambient
// particles (glowing ornaments, gift boxes, twinkling sparkles), user photo
// billboards, and a faceted star mesh. Every tick each entity eases toward
// its currently-active target, then the renderer rotates the scene about
// the vertical axis, perspective-projects everything to screen space,
// depth-sorts the unified draw list back-to-front, and composites each item
// with its own blending and shading rule. There is no z-buffer: depth is
// resolved entirely by the painter's algorithm.
//
// # Quick start
//
// Implement [ebiten.Game] and call [Scene.Update] and [Scene.Draw]:
//
//	scene := evergreen.NewScene(evergreen.DefaultConfig(), 1280, 720)
//
//	type Game struct{ scene *evergreen.Scene }
//
//	func (g *Game) Update() error              { g.scene.Update(); return nil }
//	func (g *Game) Draw(screen *ebiten.Image)  { g.scene.Draw(screen) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Interaction
//
// The scene moves between three states: collapsed (the tree), exploded
// (scattered, photos revealed), and zoomed (one photo brought forward).
// [Scene.PrimaryAction] is the select action for a screen point;
// [Scene.CancelAction] always collapses. Hand gestures drive the same
// transitions: run a [GestureServer] and point an external hand tracker at
// it, or publish [GestureResult] values into [Scene.Mailbox] directly.
//
// # Photos
//
// Decoded images join the scene through [Scene.AddPhoto] (from the tick) or
// [Scene.EnqueuePhoto] (from any goroutine). [WatchPhotos] feeds a
// directory of image files into the scene as they appear.
//
// [Ebitengine]: https://ebitengine.org
package evergreen
