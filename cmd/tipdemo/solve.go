package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tipview"
)

type solveOptions struct {
	anchor    []int
	size      []int
	direction string
	screen    int
	margin    int
	noTri     bool
}

func newSolveCmd() *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print where a tip of a given size lands next to an anchor",
		Example: `  tipdemo solve --anchor 100,200,180,240 --size 300,80 --dir top
  tipdemo solve --anchor 0,0,50,20 --size 120,40 --dir left --screen 640`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts)
		},
	}

	cmd.Flags().IntSliceVar(&opts.anchor, "anchor", nil, "anchor rectangle as left,top,right,bottom")
	cmd.Flags().IntSliceVar(&opts.size, "size", nil, "tip size as width,height including the triangle")
	cmd.Flags().StringVarP(&opts.direction, "dir", "d", "top", "direction: none, left, top, right or bottom")
	cmd.Flags().IntVar(&opts.screen, "screen", 1000, "screen width")
	cmd.Flags().IntVar(&opts.margin, "margin", tipview.DefaultEdgeMargin, "screen edge margin")
	cmd.Flags().BoolVar(&opts.noTri, "no-triangle", false, "place a tip without a triangle")
	_ = cmd.MarkFlagRequired("anchor")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}

func runSolve(cmd *cobra.Command, opts solveOptions) error {
	a, size := opts.anchor, opts.size
	if len(a) != 4 {
		return fmt.Errorf("--anchor: want 4 values, got %d", len(a))
	}
	if len(size) != 2 {
		return fmt.Errorf("--size: want 2 values, got %d", len(size))
	}
	dir, err := tipview.ParseDirection(opts.direction)
	if err != nil {
		return err
	}

	in := tipview.PlacementInput{
		Anchor:      tipview.R(a[0], a[1], a[2], a[3]),
		ScreenWidth: opts.screen,
		EdgeMargin:  opts.margin,
		Direction:   dir,
		TipWidth:    size[0],
		TipHeight:   size[1],
	}
	if !opts.noTri {
		in.TriangleWidth, in.TriangleHeight = tipview.TriangleSize(dir)
	}
	p := tipview.Solve(in)
	b := p.Bounds

	fmt.Fprintln(cmd.OutOrStdout(), renderReport("placement", []field{
		{"anchor", formatRect(in.Anchor)},
		{"direction", dir},
		{"bounds", formatRect(b)},
		{"size", fmt.Sprintf("%dx%d", b.Width(), b.Height())},
		{"triangle margin", p.TriangleMargin},
	}))
	return nil
}

func formatRect(r tipview.Rect) string {
	return fmt.Sprintf("(%d, %d, %d, %d)", r.Left, r.Top, r.Right, r.Bottom)
}
