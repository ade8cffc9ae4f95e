package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tipview"
)

func newStyleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "style <file>",
		Short: "Validate a TOML or YAML style file and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := tipview.LoadStyle(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderReport(args[0], styleFields(s)))
			return nil
		},
	}
}

func styleFields(s tipview.Style) []field {
	bg := "none"
	if b, ok := s.Background.(*tipview.RectBackground); ok {
		bg = b.Color.Hex()
	}
	font := "go regular"
	if s.Font != nil {
		font = fmt.Sprintf("%T", s.Font)
	}
	return []field{
		{"background", bg},
		{"text color", s.TextColor.Hex()},
		{"text size", s.TextSize},
		{"font", font},
		{"padding", fmt.Sprintf("%d %d %d %d", s.Padding.Left, s.Padding.Top, s.Padding.Right, s.Padding.Bottom)},
		{"edge margin", s.EdgeMargin},
		{"animate", s.Animate},
		{"animation", fmt.Sprintf("%T", s.Animation)},
		{"durations", fmt.Sprintf("%v / %v", s.ShowDuration, s.HideDuration)},
		{"intercept", s.InterceptTouches},
		{"tap hides all", s.TapHidesAll},
		{"tap notifies", s.TapHideNotify},
	}
}
