package tipview

import "github.com/hajimehoshi/ebiten/v2"

// Default triangle dimensions for an upward-pointing triangle. Left and
// right triangles swap them.
const (
	triangleBase   = 60
	triangleHeight = 30
)

// triangleShape describes one direction's triangle: which rect points form
// the polygon and how the shape is rotated relative to an upward triangle.
type triangleShape struct {
	rotation float64
	rotated  bool // base runs vertically (left/right)
	points   func(r Rect) [3]Vec2
}

var triangleShapes = [5]triangleShape{
	DirectionNone: {
		points: func(Rect) [3]Vec2 { return [3]Vec2{} },
	},
	DirectionLeft: {
		rotation: -90,
		rotated:  true,
		points: func(r Rect) [3]Vec2 {
			return [3]Vec2{
				{float64(r.Right), float64(r.Top)},
				{float64(r.Right), float64(r.Bottom)},
				{float64(r.Left), float64(r.CenterY())},
			}
		},
	},
	DirectionTop: {
		rotation: 0,
		points: func(r Rect) [3]Vec2 {
			return [3]Vec2{
				{float64(r.Left), float64(r.Bottom)},
				{float64(r.Right), float64(r.Bottom)},
				{float64(r.CenterX()), float64(r.Top)},
			}
		},
	},
	DirectionRight: {
		rotation: 90,
		rotated:  true,
		points: func(r Rect) [3]Vec2 {
			return [3]Vec2{
				{float64(r.Left), float64(r.Top)},
				{float64(r.Left), float64(r.Bottom)},
				{float64(r.Right), float64(r.CenterY())},
			}
		},
	},
	DirectionBottom: {
		rotation: 180,
		points: func(r Rect) [3]Vec2 {
			return [3]Vec2{
				{float64(r.Left), float64(r.Top)},
				{float64(r.Right), float64(r.Top)},
				{float64(r.CenterX()), float64(r.Bottom)},
			}
		},
	},
}

// TriangleShape maps a direction and bounding rectangle to the triangle's
// three points and its rotation in degrees relative to an upward triangle.
// DirectionNone yields three zero points. Panics on an invalid direction.
func TriangleShape(dir Direction, r Rect) (pts [3]Vec2, rotation float64) {
	mustValid(dir)
	ts := triangleShapes[dir]
	return ts.points(r), ts.rotation
}

// TriangleSize returns the intrinsic width and height of the default
// triangle for dir. The cross-axis size used for centering is the width for
// top/bottom triangles and the height for left/right ones.
func TriangleSize(dir Direction) (w, h int) {
	mustValid(dir)
	if dir == DirectionNone {
		return 0, 0
	}
	if triangleShapes[dir].rotated {
		return triangleHeight, triangleBase
	}
	return triangleBase, triangleHeight
}

// Triangle is a solid-color pointing triangle. Triangles are typically held
// as shared style templates and cloned per tip before mutation.
type Triangle struct {
	Direction Direction
	Color     Color

	bounds Rect
	alpha  float64
	verts  [3]ebiten.Vertex
	inds   [3]uint16
}

// NewTriangle creates a triangle for dir filled with c.
func NewTriangle(dir Direction, c Color) *Triangle {
	mustValid(dir)
	return &Triangle{Direction: dir, Color: c, alpha: 1, inds: [3]uint16{0, 1, 2}}
}

// DefaultTriangles returns one triangle per direction in slot order
// (left, top, right, bottom), all filled with c.
func DefaultTriangles(c Color) [4]*Triangle {
	return [4]*Triangle{
		NewTriangle(DirectionLeft, c),
		NewTriangle(DirectionTop, c),
		NewTriangle(DirectionRight, c),
		NewTriangle(DirectionBottom, c),
	}
}

// IntrinsicSize returns the triangle's natural size.
func (t *Triangle) IntrinsicSize() (int, int) {
	return TriangleSize(t.Direction)
}

// SetBounds sets the rectangle the triangle is inscribed in.
func (t *Triangle) SetBounds(r Rect) { t.bounds = r }

// Bounds returns the current bounds.
func (t *Triangle) Bounds() Rect { return t.bounds }

// SetAlpha sets the opacity multiplier in [0, 1].
func (t *Triangle) SetAlpha(a float64) { t.alpha = clamp01(a) }

// Clone returns an independent copy, so two tips never share mutable state.
func (t *Triangle) Clone() Drawable {
	c := *t
	return &c
}

// Points returns the triangle's polygon for the current bounds.
func (t *Triangle) Points() [3]Vec2 {
	pts, _ := TriangleShape(t.Direction, t.bounds)
	return pts
}

// Draw fills the triangle onto dst under tr.
func (t *Triangle) Draw(dst *ebiten.Image, tr Transformation) {
	if t.Direction == DirectionNone || t.bounds.Empty() {
		return
	}
	a := float32(t.Color.A * t.alpha * tr.Alpha)
	if a <= 0 {
		return
	}
	for i, p := range t.Points() {
		x, y := tr.Apply(p.X, p.Y)
		v := &t.verts[i]
		v.DstX = float32(x)
		v.DstY = float32(y)
		v.SrcX = 0.5
		v.SrcY = 0.5
		v.ColorR = float32(t.Color.R) * a
		v.ColorG = float32(t.Color.G) * a
		v.ColorB = float32(t.Color.B) * a
		v.ColorA = a
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	dst.DrawTriangles(t.verts[:], t.inds[:], ensureWhitePixel(), &op)
}
