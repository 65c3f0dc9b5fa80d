package evergreen

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
)

// Photo is one user-supplied image mapped onto a billboard. Width is fixed;
// Height follows the image's aspect ratio. The rest position is the origin:
// a photo stays hidden at the tree center until the scene explodes.
type Photo struct {
	ID    uint32
	Image *ebiten.Image

	Width, Height float64

	Pos     Vec3
	Target  Vec3 // explosion shell placement, fixed at creation
	Opacity float64
}

// photoIDCounter is a plain counter (scene mutation is single-threaded).
var photoIDCounter uint32

func nextPhotoID() uint32 {
	photoIDCounter++
	return photoIDCounter
}

// newPhoto builds a billboard from a decoded image. The explosion target is
// sampled on the photo shell, which sits outside the particle shell.
func newPhoto(cfg Config, rng *rand.Rand, img image.Image) *Photo {
	bounds := img.Bounds()
	w := cfg.PhotoWidth
	h := w
	if bounds.Dx() > 0 {
		h = w * float64(bounds.Dy()) / float64(bounds.Dx())
	}
	return &Photo{
		ID:     nextPhotoID(),
		Image:  ebiten.NewImageFromImage(img),
		Width:  w,
		Height: h,
		Target: spherePoint(rng, cfg.PhotoMinDist, cfg.PhotoSpread),
	}
}

// PhotoWatcher feeds images dropped into a directory to a scene. It uses
// OS-native file notifications and delivers decoded images through the
// scene's pending queue, so scene state is still only mutated by the tick.
type PhotoWatcher struct {
	w    *fsnotify.Watcher
	done chan struct{}
}

// WatchPhotos begins watching dir for new png/jpeg files. Files already in
// the directory are loaded immediately, then created or rewritten files are
// picked up as they appear. Close the watcher during teardown.
func WatchPhotos(dir string, scene *Scene) (*PhotoWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch photos: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch photos: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch photos: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			loadPhotoFile(filepath.Join(dir, e.Name()), scene)
		}
	}

	pw := &PhotoWatcher{w: w, done: make(chan struct{})}
	go pw.loop(scene)
	return pw, nil
}

func (pw *PhotoWatcher) loop(scene *Scene) {
	for {
		select {
		case ev, ok := <-pw.w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				loadPhotoFile(ev.Name, scene)
			}
		case err, ok := <-pw.w.Errors:
			if !ok {
				return
			}
			_, _ = fmt.Fprintf(os.Stderr, "[evergreen] photo watcher: %v\n", err)
		case <-pw.done:
			return
		}
	}
}

// Close stops the watcher goroutine and releases the OS watch.
func (pw *PhotoWatcher) Close() error {
	close(pw.done)
	return pw.w.Close()
}

// loadPhotoFile decodes a single image file and enqueues it. Unsupported or
// partially written files are skipped; decoding will succeed on a later
// Write event once the file is complete.
func loadPhotoFile(path string, scene *Scene) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
	default:
		return
	}
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return
	}
	scene.EnqueuePhoto(img)
}
