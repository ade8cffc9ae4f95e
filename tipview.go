package tipview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default text color.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" into a Color.
func ParseColor(s string) (Color, error) {
	alpha := 1.0
	if len(s) == 9 && s[0] == '#' {
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return Color{}, fmt.Errorf("tipview: parse color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("tipview: parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when not fully opaque.
func (c Color) Hex() string {
	h := colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
	if c.A >= 1 {
		return h
	}
	return fmt.Sprintf("%s%02x", h, uint8(clamp01(c.A)*255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for points and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an integer rectangle given by its edges. The coordinate system has
// its origin at the top-left, with Y increasing downward. A rectangle with
// zero area is legal and means "not laid out yet".
type Rect struct {
	Left, Top, Right, Bottom int
}

// R is shorthand for Rect{l, t, r, b}.
func R(l, t, r, b int) Rect {
	return Rect{Left: l, Top: t, Right: r, Bottom: b}
}

// Width returns Right - Left.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() int { return r.Bottom - r.Top }

// CenterX returns the horizontal center, truncated toward negative infinity.
func (r Rect) CenterX() int { return (r.Left + r.Right) >> 1 }

// CenterY returns the vertical center, truncated toward negative infinity.
func (r Rect) CenterY() int { return (r.Top + r.Bottom) >> 1 }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside. Empty rectangles contain nothing.
func (r Rect) Contains(x, y float64) bool {
	if r.Empty() {
		return false
	}
	return x >= float64(r.Left) && x <= float64(r.Right) &&
		y >= float64(r.Top) && y <= float64(r.Bottom)
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{r.Left + dx, r.Top + dy, r.Right + dx, r.Bottom + dy}
}

// Insets is a four-sided inset, used for text padding.
type Insets struct {
	Left, Top, Right, Bottom int
}

// UniformInsets returns Insets with the same value on all sides.
func UniformInsets(v int) Insets {
	return Insets{v, v, v, v}
}

// Direction selects which edge of the tip body the pointing triangle
// protrudes from, i.e. the side facing the anchor.
type Direction uint8

const (
	DirectionNone   Direction = iota // no triangle, tip centered on the anchor
	DirectionLeft                    // triangle on the left edge, tip right of the anchor
	DirectionTop                     // triangle on the top edge, tip below the anchor
	DirectionRight                   // triangle on the right edge, tip left of the anchor
	DirectionBottom                  // triangle on the bottom edge, tip above the anchor
)

var directionNames = [...]string{"none", "left", "top", "right", "bottom"}

// Valid reports whether d is one of the five defined directions.
func (d Direction) Valid() bool {
	return d <= DirectionBottom
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Slot returns the index of d in a four-slot per-direction array, or -1 for
// DirectionNone.
func (d Direction) Slot() int {
	mustValid(d)
	return int(d) - 1
}

// Vertical reports whether d stacks the tip above or below the anchor.
func (d Direction) Vertical() bool {
	return d == DirectionTop || d == DirectionBottom
}

// Horizontal reports whether d stacks the tip beside the anchor.
func (d Direction) Horizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// ParseDirection parses a direction name as returned by String.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return DirectionNone, fmt.Errorf("tipview: unknown direction %q", s)
}

func mustValid(d Direction) {
	if !d.Valid() {
		panic(fmt.Sprintf("tipview: invalid direction %d", uint8(d)))
	}
}

// whitePixel is a 1x1 white image used as the source for solid fills.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixel
}
