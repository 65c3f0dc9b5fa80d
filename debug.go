package evergreen

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// logStats prints per-frame timing to stderr. Only called in debug mode.
func (s *Scene) logStats(stats frameStats) {
	total := stats.buildTime + stats.sortTime + stats.submitTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[evergreen] build: %v | sort: %v | submit: %v | total: %v | items: %d\n",
		stats.buildTime, stats.sortTime, stats.submitTime, total, stats.itemCount)
}

// drawOverlay prints FPS/TPS and entity counts in the top-left corner.
func (s *Scene) drawOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f\nTPS: %.1f\nparticles: %d  photos: %d\nmode: %v",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		len(s.particles), len(s.photos), s.mode().State))
}
