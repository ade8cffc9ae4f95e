package tipview

// Anchor is the element a tip points at. Anchors are map keys, so the
// dynamic type must be comparable; pointer types are the norm. The same
// anchor value always maps to the same tip.
type Anchor interface {
	// TipBounds returns the anchor's current rectangle in surface
	// coordinates. It is read on every show.
	TipBounds() Rect
}

// StaticAnchor is an anchor with a fixed, settable rectangle.
type StaticAnchor struct {
	rect Rect
}

// NewStaticAnchor creates an anchor at r.
func NewStaticAnchor(r Rect) *StaticAnchor {
	return &StaticAnchor{rect: r}
}

// TipBounds implements Anchor.
func (a *StaticAnchor) TipBounds() Rect { return a.rect }

// SetRect moves the anchor. Visible tips keep their placement until the
// next show.
func (a *StaticAnchor) SetRect(r Rect) { a.rect = r }

type funcAnchor struct {
	fn func() Rect
}

func (a *funcAnchor) TipBounds() Rect { return a.fn() }

// AnchorFunc wraps fn as an anchor. Each call returns a distinct anchor, so
// keep the result to address the same tip again.
func AnchorFunc(fn func() Rect) Anchor {
	return &funcAnchor{fn: fn}
}
