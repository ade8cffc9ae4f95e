package tipview

import "github.com/hajimehoshi/ebiten/v2"

// Drawable is a bounded, fadeable visual part of a tip. Backgrounds and
// triangles implement it. Style templates are cloned per tip before any
// bounds or alpha mutation.
type Drawable interface {
	SetBounds(r Rect)
	Bounds() Rect
	// IntrinsicSize returns the natural size, or (0, 0) when the drawable
	// has none and fills whatever it is given.
	IntrinsicSize() (w, h int)
	SetAlpha(a float64)
	Draw(dst *ebiten.Image, tr Transformation)
	Clone() Drawable
}

// --- RectBackground ---

// RectBackground fills its bounds with a solid color.
type RectBackground struct {
	Color Color

	bounds Rect
	alpha  float64
	verts  [4]ebiten.Vertex
}

var quadIndices = []uint16{0, 1, 2, 1, 3, 2}

// NewRectBackground creates a solid background filled with c.
func NewRectBackground(c Color) *RectBackground {
	return &RectBackground{Color: c, alpha: 1}
}

func (b *RectBackground) SetBounds(r Rect)         { b.bounds = r }
func (b *RectBackground) Bounds() Rect             { return b.bounds }
func (b *RectBackground) IntrinsicSize() (int, int) { return 0, 0 }
func (b *RectBackground) SetAlpha(a float64)       { b.alpha = clamp01(a) }

// Clone returns an independent copy.
func (b *RectBackground) Clone() Drawable {
	c := *b
	return &c
}

// Draw fills the bounds onto dst under tr.
func (b *RectBackground) Draw(dst *ebiten.Image, tr Transformation) {
	if b.bounds.Empty() {
		return
	}
	a := float32(b.Color.A * b.alpha * tr.Alpha)
	if a <= 0 {
		return
	}
	corners := [4]Vec2{
		{float64(b.bounds.Left), float64(b.bounds.Top)},
		{float64(b.bounds.Right), float64(b.bounds.Top)},
		{float64(b.bounds.Left), float64(b.bounds.Bottom)},
		{float64(b.bounds.Right), float64(b.bounds.Bottom)},
	}
	for i, p := range corners {
		x, y := tr.Apply(p.X, p.Y)
		v := &b.verts[i]
		v.DstX = float32(x)
		v.DstY = float32(y)
		v.SrcX = 0.5
		v.SrcY = 0.5
		v.ColorR = float32(b.Color.R) * a
		v.ColorG = float32(b.Color.G) * a
		v.ColorB = float32(b.Color.B) * a
		v.ColorA = a
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles(b.verts[:], quadIndices, ensureWhitePixel(), &op)
}

// --- Visual ---

// Visual is the drawable composite of a tip: a background, a text component
// and an optional pointing triangle. It lays out its three parts whenever its
// bounds or any layout input changes.
type Visual struct {
	background Drawable
	triangle   Drawable
	text       textComponent

	direction      Direction
	triangleMargin int
	padding        Insets

	bounds    Rect
	alpha     float64
	transform Transformation
}

func newVisual(tc textComponent) *Visual {
	return &Visual{
		text:      tc,
		alpha:     1,
		transform: NewTransformation(),
	}
}

// Bounds returns the full tip rectangle, triangle zone included.
func (v *Visual) Bounds() Rect { return v.bounds }

// Direction returns the current pointing direction.
func (v *Visual) Direction() Direction { return v.direction }

// TriangleMargin returns the triangle offset along the pointing edge.
func (v *Visual) TriangleMargin() int { return v.triangleMargin }

// TextBounds returns the rectangle the text is drawn in.
func (v *Visual) TextBounds() Rect { return v.text.Bounds() }

// BackgroundBounds returns the background rectangle, or an empty rect when
// there is no background.
func (v *Visual) BackgroundBounds() Rect {
	if v.background == nil {
		return Rect{}
	}
	return v.background.Bounds()
}

// TriangleBounds returns the triangle rectangle, or an empty rect when there
// is no triangle.
func (v *Visual) TriangleBounds() Rect {
	if v.triangle == nil {
		return Rect{}
	}
	return v.triangle.Bounds()
}

// Text returns the displayed text.
func (v *Visual) Text() string { return v.text.Text() }

// SetBounds lays the three parts out inside r.
func (v *Visual) SetBounds(r Rect) {
	v.bounds = r
	v.layout()
}

// SetDirection changes the pointing direction. Panics on an invalid direction.
func (v *Visual) SetDirection(d Direction) {
	mustValid(d)
	v.direction = d
	v.relayout()
}

// SetTriangleMargin sets the triangle offset along the pointing edge.
func (v *Visual) SetTriangleMargin(m int) {
	v.triangleMargin = m
	v.relayout()
}

// SetPadding sets the insets between the background edge and the text.
func (v *Visual) SetPadding(p Insets) {
	v.padding = p
	v.relayout()
}

// SetBackground replaces the background drawable. nil removes it.
func (v *Visual) SetBackground(d Drawable) {
	v.background = d
	if d != nil {
		d.SetAlpha(v.alpha)
	}
	v.relayout()
}

// SetTriangle replaces the triangle drawable. nil means no triangle is drawn
// and no triangle space is reserved.
func (v *Visual) SetTriangle(d Drawable) {
	v.triangle = d
	if d != nil {
		d.SetAlpha(v.alpha)
	}
	v.relayout()
}

// SetText changes the displayed text.
func (v *Visual) SetText(s string) {
	v.text.SetText(s)
	v.relayout()
}

// SetFont changes the font used to measure and draw text.
func (v *Visual) SetFont(f Font) {
	v.text.SetFont(f)
	v.relayout()
}

// SetTextColor changes the text color.
func (v *Visual) SetTextColor(c Color) { v.text.SetColor(c) }

// SetAlpha applies an opacity to all three parts.
func (v *Visual) SetAlpha(a float64) {
	v.alpha = clamp01(a)
	if v.background != nil {
		v.background.SetAlpha(v.alpha)
	}
	v.text.SetAlpha(v.alpha)
	if v.triangle != nil {
		v.triangle.SetAlpha(v.alpha)
	}
}

// Alpha returns the current opacity.
func (v *Visual) Alpha() float64 { return v.alpha }

// SetTransform sets the matrix all three parts are drawn under.
func (v *Visual) SetTransform(t Transformation) { v.transform = t }

// Transform returns the current transformation.
func (v *Visual) Transform() Transformation { return v.transform }

// triangleSize returns the intrinsic triangle size, or zero without one.
func (v *Visual) triangleSize() (int, int) {
	if v.triangle == nil {
		return 0, 0
	}
	return v.triangle.IntrinsicSize()
}

// IntrinsicSize returns the text size plus padding, grown by the triangle
// along the pointing axis only.
func (v *Visual) IntrinsicSize() (w, h int) {
	tw, th := v.text.IntrinsicSize()
	w = tw + v.padding.Left + v.padding.Right
	h = th + v.padding.Top + v.padding.Bottom
	triW, triH := v.triangleSize()
	switch v.direction {
	case DirectionLeft, DirectionRight:
		w += triW
	case DirectionTop, DirectionBottom:
		h += triH
	}
	return w, h
}

// Prepare gives the text component a chance to lay itself out for the
// current text width. It reports true when the intrinsic size changed and
// the owner must solve placement again.
func (v *Visual) Prepare() bool {
	return v.text.Prepare(v.text.Bounds().Width())
}

// relayout re-runs layout only once bounds have been set.
func (v *Visual) relayout() {
	if !v.bounds.Empty() {
		v.layout()
	}
}

func (v *Visual) layout() {
	r := v.bounds
	body := r
	triW, triH := v.triangleSize()
	m := v.triangleMargin

	var tri Rect
	switch v.direction {
	case DirectionLeft:
		tri = R(r.Left, r.Top+m, r.Left+triW, r.Top+m+triH)
		body.Left += triW
	case DirectionTop:
		tri = R(r.Left+m, r.Top, r.Left+m+triW, r.Top+triH)
		body.Top += triH
	case DirectionRight:
		tri = R(r.Right-triW, r.Top+m, r.Right, r.Top+m+triH)
		body.Right -= triW
	case DirectionBottom:
		tri = R(r.Left+m, r.Bottom-triH, r.Left+m+triW, r.Bottom)
		body.Bottom -= triH
	}
	if v.triangle != nil {
		v.triangle.SetBounds(tri)
	}

	p := v.padding
	availW := max(body.Width()-p.Left-p.Right, 0)
	availH := max(body.Height()-p.Top-p.Bottom, 0)
	needW, needH := v.text.IntrinsicSize()
	textW := availW
	if needW > 0 {
		textW = min(needW, availW)
	}
	textH := min(needH, availH)

	left := body.Left + p.Left
	top := body.Top + p.Top
	v.text.SetBounds(R(left, top, left+textW, top+textH))
	if v.background != nil {
		v.background.SetBounds(R(left-p.Left, top-p.Top, left+textW+p.Right, top+textH+p.Bottom))
	}
}

// Draw paints the background, then the text, then the triangle. Opacity
// comes from SetAlpha; only the matrix of the transformation is used here.
func (v *Visual) Draw(dst *ebiten.Image) {
	tr := v.transform
	tr.Alpha = 1
	if v.background != nil {
		v.background.Draw(dst, tr)
	}
	v.text.Draw(dst, tr)
	if v.triangle != nil {
		v.triangle.Draw(dst, tr)
	}
}
