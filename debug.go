package tipview

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// debugStats holds per-frame timing. Only populated in debug mode.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
}

var (
	debugBoundsColor   = color.RGBA{R: 255, A: 255}
	debugTextColor     = color.RGBA{G: 200, A: 255}
	debugTriangleColor = color.RGBA{B: 255, G: 120, A: 255}
)

// debugLog writes frame timing and tip counts at debug level.
func (o *Overlay) debugLog() {
	visible := 0
	for _, t := range o.disp.Tips() {
		if t.IsShowing() {
			visible++
		}
	}
	logger.Debug("frame",
		"update", o.stats.updateTime,
		"draw", o.stats.drawTime,
		"tips", o.disp.Len(),
		"visible", visible,
		"timers", o.sched.Len(),
	)
}

// debugDraw outlines the full bounds, text bounds and triangle bounds of
// every visible tip.
func (o *Overlay) debugDraw(screen *ebiten.Image) {
	for _, t := range o.disp.Tips() {
		if !t.IsShowing() {
			continue
		}
		strokeRect(screen, t.Bounds(), debugBoundsColor)
		strokeRect(screen, t.visual.TextBounds(), debugTextColor)
		strokeRect(screen, t.visual.TriangleBounds(), debugTriangleColor)
	}
}

func strokeRect(dst *ebiten.Image, r Rect, c color.Color) {
	if r.Empty() {
		return
	}
	vector.StrokeRect(dst,
		float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()),
		1, c, false)
}
