// tree runs the particle tree scene in a window. Click to explode the tree
// and select photos, right-click to collapse. Optional flags connect a
// websocket hand tracker and a watched photo directory.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"net/http"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/evergreen"
)

const (
	screenW = 1280
	screenH = 720
)

var backgroundColor = color.RGBA{8, 12, 26, 255}

type game struct {
	scene *evergreen.Scene
	w, h  int
}

func (g *game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.scene.PrimaryAction(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.scene.CancelAction()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.Explode()
	}
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.scene.Draw(screen)
}

func (g *game) Layout(w, h int) (int, int) {
	if w != g.w || h != g.h {
		g.w, g.h = w, h
		g.scene.Resize(float64(w), float64(h))
	}
	return w, h
}

func main() {
	gestures := flag.String("gestures", "", "listen address for the hand tracker websocket (e.g. :8765)")
	photos := flag.String("photos", "", "directory to watch for photo files")
	debug := flag.Bool("debug", false, "print frame stats and show the FPS overlay")
	flag.Parse()

	scene := evergreen.NewScene(evergreen.DefaultConfig(), screenW, screenH)
	scene.SetDebug(*debug)

	if *gestures != "" {
		srv := evergreen.NewGestureServer(evergreen.DefaultConfig(), scene.Mailbox())
		mux := http.NewServeMux()
		mux.Handle("/gestures", srv)
		go func() {
			if err := http.ListenAndServe(*gestures, mux); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "gesture server: %v\n", err)
			}
		}()
	}

	if *photos != "" {
		watcher, err := evergreen.WatchPhotos(*photos, scene)
		if err != nil {
			log.Fatalf("watch photos: %v", err)
		}
		defer watcher.Close()
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Evergreen — Particle Tree")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{scene: scene, w: screenW, h: screenH}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
