package tipview

// PlacementInput is everything the solver needs to place one tip.
type PlacementInput struct {
	Anchor      Rect // anchor rectangle in surface coordinates
	ScreenWidth int
	EdgeMargin  int
	Direction   Direction

	TipWidth, TipHeight           int // intrinsic tip size
	TriangleWidth, TriangleHeight int // intrinsic triangle size
}

// Placement is the solved tip rectangle and the triangle offset along the
// pointing edge, measured from the tip's left (top/bottom) or top
// (left/right) edge.
type Placement struct {
	Bounds         Rect
	TriangleMargin int
}

// Solve places a tip next to its anchor.
//
// Top and bottom tips are centered horizontally on the anchor and kept
// EdgeMargin away from the screen edges, the left edge winning when the tip
// is too wide for both. Left and right tips are centered vertically and only
// clamped at the top of the screen. The triangle offset is derived from the
// clamped rectangle and is not clamped itself, so near a screen edge the
// triangle may fall outside the body. DirectionNone centers the tip on the
// anchor.
//
// Solve panics on an invalid direction.
func Solve(in PlacementInput) Placement {
	mustValid(in.Direction)
	a := in.Anchor
	w, h := in.TipWidth, in.TipHeight

	switch in.Direction {
	case DirectionTop, DirectionBottom:
		cx := a.CenterX()
		left, right := horizontalSpan(cx, w, in.EdgeMargin, in.ScreenWidth-in.EdgeMargin)
		var top int
		if in.Direction == DirectionTop {
			top = a.Bottom
		} else {
			top = a.Top - h
		}
		return Placement{
			Bounds:         R(left, top, right, top+h),
			TriangleMargin: cx - left - in.TriangleWidth>>1,
		}

	case DirectionLeft, DirectionRight:
		cy := a.CenterY()
		top := max(0, cy-h>>1)
		var left int
		if in.Direction == DirectionLeft {
			left = a.Right
		} else {
			left = a.Left - w
		}
		return Placement{
			Bounds:         R(left, top, left+w, top+h),
			TriangleMargin: cy - top - in.TriangleHeight>>1,
		}
	}

	left := a.CenterX() - w>>1
	top := a.CenterY() - h>>1
	return Placement{Bounds: R(left, top, left+w, top+h)}
}

// horizontalSpan centers a span of width w on cx and clamps it into
// [minLeft, maxRight], enforcing the left edge first.
func horizontalSpan(cx, w, minLeft, maxRight int) (left, right int) {
	left = cx - w>>1
	right = left + w
	if left < minLeft {
		left = minLeft
		right = left + w
		if right > maxRight {
			right = maxRight
		}
	} else if right > maxRight {
		right = maxRight
		left = right - w
		if left < minLeft {
			left = minLeft
		}
	}
	return left, right
}
