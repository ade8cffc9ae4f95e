package main

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/cobra"

	"github.com/phanxgames/tipview"
)

type runOptions struct {
	style   string
	script  string
	width   int
	height  int
	debug   bool
	showFPS bool
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window with a row of buttons that show tips when clicked",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts)
		},
	}

	cmd.Flags().StringVar(&opts.style, "style", "", "TOML or YAML style file")
	cmd.Flags().StringVar(&opts.script, "script", "", "JSON test script to drive the demo")
	cmd.Flags().IntVar(&opts.width, "width", 800, "window width")
	cmd.Flags().IntVar(&opts.height, "height", 480, "window height")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "outline tip parts and log frame timing")
	cmd.Flags().BoolVar(&opts.showFPS, "fps", false, "show FPS and TPS")
	return cmd
}

// button is a clickable rectangle that owns one tip.
type button struct {
	anchor    *tipview.StaticAnchor
	label     string
	dir       tipview.Direction
	advanced  bool
	autoHide  time.Duration
	color     color.RGBA
	highlight bool
}

var wordCount = tipview.TextDelegateFunc(func(src string) string {
	return fmt.Sprintf("%s\n(%d characters)", src, len([]rune(src)))
})

func (b *button) show(o *tipview.Overlay) {
	var opts []tipview.ShowOption
	if b.autoHide > 0 {
		opts = append(opts, tipview.WithAutoHide(b.autoHide))
	}
	opts = append(opts, tipview.WithHideListener(func(t *tipview.Tip) {
		b.highlight = false
		tipview.Logger().Debug("hide listener", "button", b.label, "tip", t.ID())
	}))
	b.highlight = true
	if b.advanced {
		o.ShowAdvanced(b.anchor, b.label, wordCount, b.dir, opts...)
		return
	}
	o.Show(b.anchor, b.label, b.dir, opts...)
}

func newButtons(w, h int) []*button {
	const bw, bh = 120, 40
	y := h/2 - bh/2
	gap := (w - 5*bw) / 6
	specs := []struct {
		label    string
		dir      tipview.Direction
		advanced bool
		autoHide time.Duration
	}{
		{"Below me", tipview.DirectionTop, false, 0},
		{"Above me", tipview.DirectionBottom, false, 0},
		{"To my right", tipview.DirectionLeft, false, 0},
		{"To my left", tipview.DirectionRight, false, 0},
		{"A longer tip that wraps when it runs out of room near the screen edge", tipview.DirectionTop, true, 3 * time.Second},
	}
	buttons := make([]*button, len(specs))
	for i, s := range specs {
		x := gap + i*(bw+gap)
		buttons[i] = &button{
			anchor:   tipview.NewStaticAnchor(tipview.R(x, y, x+bw, y+bh)),
			label:    s.label,
			dir:      s.dir,
			advanced: s.advanced,
			autoHide: s.autoHide,
			color:    color.RGBA{R: 80, G: 180, B: 255, A: 255},
		}
	}
	return buttons
}

func runDemo(opts runOptions) error {
	o := tipview.NewOverlay(opts.width, opts.height)
	o.SetDebugMode(opts.debug)

	if opts.style != "" {
		s, err := tipview.LoadStyle(opts.style)
		if err != nil {
			return err
		}
		o.Registry().SetStyle(s)
		tipview.Logger().Info("style loaded", "path", opts.style)
	} else {
		o.Registry().SetInterceptTouches(true)
	}
	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := tipview.LoadTestScript(data)
		if err != nil {
			return err
		}
		o.SetTestRunner(runner)
	}

	buttons := newButtons(opts.width, opts.height)
	o.SetEventSink(tipview.EventSinkFunc(func(e tipview.TipEvent) {
		tipview.Logger().Debug("tip event", "type", e.Type, "tip", e.TipID, "dir", e.Direction)
	}))
	o.OnPassThrough(func(ev tipview.TouchEvent) {
		if ev.Kind != tipview.TouchUp {
			return
		}
		for _, b := range buttons {
			if b.anchor.TipBounds().Contains(ev.X, ev.Y) {
				b.show(o)
				return
			}
		}
		o.HideAll()
	})

	return tipview.Run(o, tipview.RunConfig{
		Title:      "tipview demo",
		Width:      opts.width,
		Height:     opts.height,
		ClearColor: tipview.Color{R: 0.118, G: 0.118, B: 0.157, A: 1},
		ShowFPS:    opts.showFPS,
		Draw: func(screen *ebiten.Image) {
			for _, b := range buttons {
				r := b.anchor.TipBounds()
				c := b.color
				if b.highlight {
					c = color.RGBA{R: 255, G: 200, B: 80, A: 255}
				}
				vector.DrawFilledRect(screen,
					float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()),
					c, false)
			}
		},
	})
}
