package tipview

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsCounter draws the current FPS and TPS in the top-left corner. The text
// is refreshed every half second.
type fpsCounter struct {
	img   *ebiten.Image
	since time.Duration
	dirty bool
}

func newFPSCounter() *fpsCounter {
	return &fpsCounter{dirty: true}
}

func (f *fpsCounter) update(dt time.Duration) {
	f.since += dt
	if f.since >= 500*time.Millisecond {
		f.since = 0
		f.dirty = true
	}
}

func (f *fpsCounter) draw(screen *ebiten.Image) {
	if f.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		f.img = ebiten.NewImage(100, 32)
	}
	if f.dirty {
		f.dirty = false
		f.img.Clear()
		f.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(f.img, nil)
}
