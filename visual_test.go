package tipview

import "testing"

// newTestVisual builds a visual showing "hello" (50x20 in testFont) with 5px
// padding, a background and a default triangle for dir.
func newTestVisual(dir Direction) *Visual {
	v := newVisual(newPlainText())
	v.SetFont(testFont)
	v.SetText("hello")
	v.SetPadding(UniformInsets(5))
	v.SetBackground(NewRectBackground(DefaultTipColor))
	if dir != DirectionNone {
		v.SetTriangle(NewTriangle(dir, DefaultTipColor))
	}
	v.SetDirection(dir)
	return v
}

func TestVisualIntrinsicSize(t *testing.T) {
	tests := []struct {
		dir  Direction
		w, h int
	}{
		{DirectionNone, 60, 30},
		{DirectionTop, 60, 60},
		{DirectionBottom, 60, 60},
		{DirectionLeft, 90, 30},
		{DirectionRight, 90, 30},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			w, h := newTestVisual(tt.dir).IntrinsicSize()
			if w != tt.w || h != tt.h {
				t.Errorf("IntrinsicSize = %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestVisualIntrinsicSize_NoTriangleReservesNothing(t *testing.T) {
	v := newTestVisual(DirectionTop)
	v.SetTriangle(nil)
	if w, h := v.IntrinsicSize(); w != 60 || h != 30 {
		t.Errorf("IntrinsicSize = %dx%d, want 60x30", w, h)
	}
}

func TestVisualLayout(t *testing.T) {
	tests := []struct {
		dir      Direction
		bounds   Rect
		margin   int
		triangle Rect
		text     Rect
		bg       Rect
	}{
		{DirectionTop, R(100, 100, 160, 160), 20,
			R(120, 100, 180, 130), R(105, 135, 155, 155), R(100, 130, 160, 160)},
		{DirectionBottom, R(0, 0, 60, 60), 0,
			R(0, 30, 60, 60), R(5, 5, 55, 25), R(0, 0, 60, 30)},
		{DirectionLeft, R(0, 0, 90, 30), -15,
			R(0, -15, 30, 45), R(35, 5, 85, 25), R(30, 0, 90, 30)},
		{DirectionRight, R(0, 0, 90, 30), 5,
			R(60, 5, 90, 65), R(5, 5, 55, 25), R(0, 0, 60, 30)},
		{DirectionNone, R(10, 10, 70, 40), 0,
			Rect{}, R(15, 15, 65, 35), R(10, 10, 70, 40)},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			v := newTestVisual(tt.dir)
			v.SetTriangleMargin(tt.margin)
			v.SetBounds(tt.bounds)
			if got := v.TriangleBounds(); got != tt.triangle {
				t.Errorf("triangle = %v, want %v", got, tt.triangle)
			}
			if got := v.TextBounds(); got != tt.text {
				t.Errorf("text = %v, want %v", got, tt.text)
			}
			if got := v.BackgroundBounds(); got != tt.bg {
				t.Errorf("background = %v, want %v", got, tt.bg)
			}
		})
	}
}

func TestVisualLayout_TextNeverExceedsBody(t *testing.T) {
	v := newTestVisual(DirectionNone)
	v.SetBounds(R(0, 0, 30, 20))
	if got := v.TextBounds(); got != R(5, 5, 25, 15) {
		t.Errorf("text = %v, want (5,5,25,15)", got)
	}

	v.SetBounds(R(0, 0, 200, 100))
	if got := v.TextBounds(); got != R(5, 5, 55, 25) {
		t.Errorf("text = %v, want intrinsic size", got)
	}
}

func TestVisualLayout_PaddingWiderThanBody(t *testing.T) {
	v := newTestVisual(DirectionNone)
	v.SetPadding(UniformInsets(40))
	v.SetBounds(R(0, 0, 50, 50))
	tb := v.TextBounds()
	if tb.Width() != 0 || tb.Height() != 0 {
		t.Errorf("text = %v, want zero size", tb)
	}
}

func TestVisualRelayoutOnChange(t *testing.T) {
	v := newTestVisual(DirectionTop)
	v.SetBounds(R(0, 0, 60, 60))
	v.SetTriangleMargin(0)
	if got := v.TriangleBounds(); got != R(0, 0, 60, 30) {
		t.Errorf("triangle = %v", got)
	}
	v.SetTriangleMargin(10)
	if got := v.TriangleBounds(); got != R(10, 0, 70, 30) {
		t.Errorf("triangle after margin change = %v", got)
	}
	v.SetPadding(Insets{Left: 1, Top: 2, Right: 3, Bottom: 4})
	if got := v.TextBounds(); got != R(1, 32, 51, 52) {
		t.Errorf("text after padding change = %v", got)
	}
}

func TestVisualSetAlpha_Propagates(t *testing.T) {
	v := newTestVisual(DirectionTop)
	v.SetAlpha(0.25)
	if v.Alpha() != 0.25 {
		t.Errorf("Alpha = %v", v.Alpha())
	}
	if a := v.background.(*RectBackground).alpha; a != 0.25 {
		t.Errorf("background alpha = %v", a)
	}
	if a := v.triangle.(*Triangle).alpha; a != 0.25 {
		t.Errorf("triangle alpha = %v", a)
	}
	if a := v.text.(*plainText).alpha; a != 0.25 {
		t.Errorf("text alpha = %v", a)
	}

	// A drawable added later picks up the current alpha.
	v.SetTriangle(NewTriangle(DirectionTop, DefaultTipColor))
	if a := v.triangle.(*Triangle).alpha; a != 0.25 {
		t.Errorf("new triangle alpha = %v", a)
	}
}

func TestVisualSetDirection_InvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	newVisual(newPlainText()).SetDirection(Direction(8))
}

func TestRectBackgroundClone(t *testing.T) {
	b := NewRectBackground(DefaultTipColor)
	c := b.Clone()
	c.SetBounds(R(0, 0, 10, 10))
	if !b.Bounds().Empty() {
		t.Error("clone bounds leaked into template")
	}
	if w, h := c.IntrinsicSize(); w != 0 || h != 0 {
		t.Errorf("IntrinsicSize = %dx%d", w, h)
	}
}
