package scene

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the widget redraws its text.
const fpsRefresh = 500 * time.Millisecond

// fpsWidget displays the current FPS and TPS in the top-left corner. Its
// image is created on first draw and refreshed every fpsRefresh.
type fpsWidget struct {
	img     *ebiten.Image
	elapsed time.Duration
	dirty   bool
}

func (w *fpsWidget) update(dt time.Duration) {
	w.elapsed += dt
	if w.elapsed < fpsRefresh {
		return
	}
	w.elapsed = 0
	w.dirty = true
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	if w.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		w.img = ebiten.NewImage(100, 32)
		w.dirty = true
	}
	if w.dirty {
		w.dirty = false
		w.img.Clear()
		w.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(4, float64(screen.Bounds().Dy()-36))
	screen.DrawImage(w.img, op)
}
