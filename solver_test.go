package tipview

import "testing"

func TestSolve(t *testing.T) {
	tests := []struct {
		name       string
		in         PlacementInput
		wantBounds Rect
		wantMargin int
	}{
		{
			name: "top clamped to left margin",
			in: PlacementInput{
				Anchor: R(100, 200, 180, 240), ScreenWidth: 1000, EdgeMargin: 10,
				Direction: DirectionTop, TipWidth: 300, TipHeight: 80, TriangleWidth: 20,
			},
			wantBounds: R(10, 240, 310, 320),
			wantMargin: 120,
		},
		{
			name: "top clamped to right margin",
			in: PlacementInput{
				Anchor: R(900, 0, 980, 20), ScreenWidth: 1000, EdgeMargin: 10,
				Direction: DirectionTop, TipWidth: 300, TipHeight: 50, TriangleWidth: 60,
			},
			wantBounds: R(690, 20, 990, 70),
			wantMargin: 220,
		},
		{
			name: "bottom centered",
			in: PlacementInput{
				Anchor: R(400, 300, 500, 340), ScreenWidth: 1000, EdgeMargin: 10,
				Direction: DirectionBottom, TipWidth: 200, TipHeight: 50, TriangleWidth: 60,
			},
			wantBounds: R(350, 250, 550, 300),
			wantMargin: 70,
		},
		{
			name: "left",
			in: PlacementInput{
				Anchor: R(100, 200, 180, 240), ScreenWidth: 1000, EdgeMargin: 10,
				Direction: DirectionLeft, TipWidth: 120, TipHeight: 40, TriangleHeight: 20,
			},
			wantBounds: R(180, 200, 300, 240),
			wantMargin: 10,
		},
		{
			name: "right",
			in: PlacementInput{
				Anchor: R(400, 300, 500, 340), ScreenWidth: 1000, EdgeMargin: 10,
				Direction: DirectionRight, TipWidth: 100, TipHeight: 40, TriangleHeight: 20,
			},
			wantBounds: R(300, 300, 400, 340),
			wantMargin: 10,
		},
		{
			name: "none centered on anchor",
			in: PlacementInput{
				Anchor: R(100, 100, 200, 200), ScreenWidth: 1000, EdgeMargin: 10,
				Direction: DirectionNone, TipWidth: 50, TipHeight: 30,
			},
			wantBounds: R(125, 135, 175, 165),
			wantMargin: 0,
		},
		{
			name: "odd width keeps its size",
			in: PlacementInput{
				Anchor: R(100, 200, 180, 240), ScreenWidth: 1000, EdgeMargin: 10,
				Direction: DirectionTop, TipWidth: 101, TipHeight: 30, TriangleWidth: 60,
			},
			wantBounds: R(90, 240, 191, 270),
			wantMargin: 20,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Solve(tt.in)
			if got.Bounds != tt.wantBounds {
				t.Errorf("Bounds = %v, want %v", got.Bounds, tt.wantBounds)
			}
			if got.TriangleMargin != tt.wantMargin {
				t.Errorf("TriangleMargin = %d, want %d", got.TriangleMargin, tt.wantMargin)
			}
		})
	}
}

func TestSolve_TooWideKeepsLeftMargin(t *testing.T) {
	got := Solve(PlacementInput{
		Anchor: R(450, 0, 550, 20), ScreenWidth: 1000, EdgeMargin: 10,
		Direction: DirectionBottom, TipWidth: 1200, TipHeight: 40, TriangleWidth: 60,
	})
	if got.Bounds.Left != 10 || got.Bounds.Right != 990 {
		t.Errorf("Bounds = %v, want left 10 right 990", got.Bounds)
	}
}

func TestSolve_SideTipsClampOnlyTop(t *testing.T) {
	// Near the top the tip is pushed down and the triangle offset goes
	// negative rather than being clamped.
	got := Solve(PlacementInput{
		Anchor: R(0, 0, 50, 20), ScreenWidth: 1000, EdgeMargin: 10,
		Direction: DirectionLeft, TipWidth: 100, TipHeight: 100, TriangleHeight: 60,
	})
	if got.Bounds != R(50, 0, 150, 100) {
		t.Errorf("Bounds = %v", got.Bounds)
	}
	if got.TriangleMargin != -20 {
		t.Errorf("TriangleMargin = %d, want -20", got.TriangleMargin)
	}

	// Near the bottom nothing is clamped.
	got = Solve(PlacementInput{
		Anchor: R(500, 2000, 600, 2040), ScreenWidth: 1000, EdgeMargin: 10,
		Direction: DirectionRight, TipWidth: 100, TipHeight: 100, TriangleHeight: 60,
	})
	if got.Bounds != R(400, 1970, 500, 2070) {
		t.Errorf("Bounds = %v", got.Bounds)
	}
}

func TestSolve_VerticalTipsStayInsideMargins(t *testing.T) {
	const screen, margin = 800, 12
	for _, dir := range []Direction{DirectionTop, DirectionBottom} {
		for ax := -50; ax <= screen+50; ax += 37 {
			for _, w := range []int{1, 40, 121, 400, screen - 2*margin} {
				in := PlacementInput{
					Anchor: R(ax, 300, ax+30, 330), ScreenWidth: screen, EdgeMargin: margin,
					Direction: dir, TipWidth: w, TipHeight: 60, TriangleWidth: 60,
				}
				b := Solve(in).Bounds
				if b.Width() != w || b.Height() != 60 {
					t.Fatalf("%v anchor x %d width %d: size %dx%d", dir, ax, w, b.Width(), b.Height())
				}
				if b.Left < margin || b.Right > screen-margin {
					t.Fatalf("%v anchor x %d width %d: bounds %v outside margins", dir, ax, w, b)
				}
			}
		}
	}
}

func TestSolve_TopBottomTouchAnchor(t *testing.T) {
	a := R(300, 300, 360, 340)
	in := PlacementInput{Anchor: a, ScreenWidth: 1000, EdgeMargin: 10, TipWidth: 100, TipHeight: 50}

	in.Direction = DirectionTop
	if got := Solve(in).Bounds.Top; got != a.Bottom {
		t.Errorf("top tip top = %d, want %d", got, a.Bottom)
	}
	in.Direction = DirectionBottom
	if got := Solve(in).Bounds.Bottom; got != a.Top {
		t.Errorf("bottom tip bottom = %d, want %d", got, a.Top)
	}
	in.Direction = DirectionLeft
	if got := Solve(in).Bounds.Left; got != a.Right {
		t.Errorf("left tip left = %d, want %d", got, a.Right)
	}
	in.Direction = DirectionRight
	if got := Solve(in).Bounds.Right; got != a.Left {
		t.Errorf("right tip right = %d, want %d", got, a.Left)
	}
}

func TestSolve_InvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Solve(PlacementInput{Direction: Direction(5)})
}
