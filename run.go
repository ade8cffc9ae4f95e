package tipview

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ClearColor    Color
	ShowFPS       bool

	// Update and Draw drive the content beneath the tips. Either may be nil.
	Update func() error
	Draw   func(screen *ebiten.Image)
}

// Run opens a window and runs a game loop that updates and draws the
// content from cfg with o on top. It blocks until the window closes and
// releases o on return.
func Run(o *Overlay, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	o.SetScreenSize(cfg.Width, cfg.Height)
	defer o.Release()

	g := &runGame{overlay: o, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSCounter()
	}
	return ebiten.RunGame(g)
}

type runGame struct {
	overlay *Overlay
	cfg     RunConfig
	fps     *fpsCounter
}

func (g *runGame) Update() error {
	if g.cfg.Update != nil {
		if err := g.cfg.Update(); err != nil {
			return err
		}
	}
	g.overlay.Update()
	if g.fps != nil {
		g.fps.update(time.Second / time.Duration(ebiten.TPS()))
	}
	return nil
}

func (g *runGame) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor.A > 0 {
		screen.Fill(g.cfg.ClearColor.toRGBA())
	}
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
	g.overlay.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *runGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.overlay.Layout(outsideWidth, outsideHeight)
}
