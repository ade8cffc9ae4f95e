package tipview

import "github.com/hajimehoshi/ebiten/v2"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transformation is the output of a TipAnimation for one progress value: an
// opacity and a 2D affine matrix applied on top of the tip's layout.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Transformation struct {
	Alpha  float64
	Matrix [6]float64
}

// NewTransformation returns an opaque identity transformation.
func NewTransformation() Transformation {
	return Transformation{Alpha: 1, Matrix: identityTransform}
}

// Clear resets t to an opaque identity transformation.
func (t *Transformation) Clear() {
	t.Alpha = 1
	t.Matrix = identityTransform
}

// IsIdentity reports whether the matrix part is the identity.
func (t Transformation) IsIdentity() bool {
	return t.Matrix == identityTransform
}

// Translate post-multiplies a translation by (dx, dy).
func (t *Transformation) Translate(dx, dy float64) {
	t.Matrix = multiplyAffine([6]float64{1, 0, 0, 1, dx, dy}, t.Matrix)
}

// ScaleAbout post-multiplies a scale by (sx, sy) around the pivot (px, py).
func (t *Transformation) ScaleAbout(sx, sy, px, py float64) {
	m := [6]float64{sx, 0, 0, sy, px - px*sx, py - py*sy}
	t.Matrix = multiplyAffine(m, t.Matrix)
}

// Apply maps a point through the matrix.
func (t Transformation) Apply(x, y float64) (float64, float64) {
	return transformPoint(t.Matrix, x, y)
}

// Inverse maps a point through the inverse of the matrix. Singular matrices
// invert to the identity.
func (t Transformation) Inverse(x, y float64) (float64, float64) {
	return transformPoint(invertAffine(t.Matrix), x, y)
}

// GeoM converts the matrix to an ebiten.GeoM for image and text drawing.
func (t Transformation) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	m := t.Matrix
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// multiplyAffine multiplies two 2D affine matrices: result = p * c.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
