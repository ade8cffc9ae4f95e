package tipview

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the interface for text measurement and layout.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// fontSizer is implemented by fonts that can produce a copy at another size.
type fontSizer interface {
	WithSize(size float64) Font
}

// faceFont is implemented by fonts that can be rendered with text/v2.
type faceFont interface {
	Face() *text.GoTextFace
}

// resizeFont returns f at the given size when f supports resizing, or f
// unchanged otherwise.
func resizeFont(f Font, size float64) Font {
	if s, ok := f.(fontSizer); ok && size > 0 {
		return s.WithSize(size)
	}
	return f
}

// --- TextDelegate ---

// TextDelegate converts source text into the text an advanced tip displays.
type TextDelegate interface {
	ParseText(src string) string
}

// TextDelegateFunc adapts a plain function to TextDelegate.
type TextDelegateFunc func(src string) string

// ParseText calls f(src).
func (f TextDelegateFunc) ParseText(src string) string { return f(src) }

// applyDelegate returns src transformed by d, or src verbatim when d is nil.
func applyDelegate(d TextDelegate, src string) string {
	if d == nil {
		return src
	}
	return d.ParseText(src)
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("tipview: failed to parse TTF data: %w", err)
	}
	return newTTFFont(source, size), nil
}

func newTTFFont(source *text.GoTextFaceSource, size float64) *TTFFont {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}
}

var defaultSource *text.GoTextFaceSource

// DefaultFont returns the Go Regular typeface at the given size. The parsed
// face source is shared by every call.
func DefaultFont(size float64) *TTFFont {
	if defaultSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic("tipview: embedded goregular font failed to parse: " + err.Error())
		}
		defaultSource = src
	}
	return newTTFFont(defaultSource, size)
}

// WithSize returns a font sharing f's source at a different size.
func (f *TTFFont) WithSize(size float64) Font {
	if size == f.size {
		return f
	}
	return newTTFFont(f.source, size)
}

// Size returns the font size in pixels.
func (f *TTFFont) Size() float64 { return f.size }

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// --- text components ---

// textComponent is the text part of a tip visual. The basic variant uses a
// single line; the advanced variant wraps to the width it is given.
type textComponent interface {
	SetText(s string)
	Text() string
	SetFont(f Font)
	SetColor(c Color)
	SetAlpha(a float64)
	IntrinsicSize() (w, h int)
	SetBounds(r Rect)
	Bounds() Rect
	// Prepare readies the component for drawing at the given width. It
	// reports true when the intrinsic size changed as a result and the owner
	// must lay out again.
	Prepare(width int) (relayout bool)
	Draw(dst *ebiten.Image, tr Transformation)
}

// textBase holds the state shared by both text components.
type textBase struct {
	content string
	font    Font
	color   Color
	alpha   float64
	bounds  Rect
}

func (t *textBase) Text() string        { return t.content }
func (t *textBase) SetFont(f Font)      { t.font = f }
func (t *textBase) SetColor(c Color)    { t.color = c }
func (t *textBase) SetAlpha(a float64)  { t.alpha = clamp01(a) }
func (t *textBase) SetBounds(r Rect)    { t.bounds = r }
func (t *textBase) Bounds() Rect        { return t.bounds }
func (t *textBase) lineHeight() float64 { return t.font.LineHeight() }

// measuredWidth returns the single-line width of the content, or 0 when
// there is no content or font.
func (t *textBase) measuredWidth() int {
	if t.content == "" || t.font == nil {
		return 0
	}
	w, _ := t.font.MeasureString(t.content)
	return int(math.Ceil(w))
}

// drawLines renders lines top-down inside the bounds, each horizontally
// centered, clipped to the bounds.
func (t *textBase) drawLines(dst *ebiten.Image, tr Transformation, lines []string, top float64) {
	ff, ok := t.font.(faceFont)
	if !ok || len(lines) == 0 || t.bounds.Empty() {
		return
	}
	a := t.color.A * t.alpha * tr.Alpha
	if a <= 0 {
		return
	}

	x0, y0 := tr.Apply(float64(t.bounds.Left), float64(t.bounds.Top))
	x1, y1 := tr.Apply(float64(t.bounds.Right), float64(t.bounds.Bottom))
	clip := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
	clip = clip.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	sub := dst.SubImage(clip).(*ebiten.Image)

	geo := tr.GeoM()
	lh := t.lineHeight()
	for i, line := range lines {
		w, _ := t.font.MeasureString(line)
		op := &text.DrawOptions{}
		op.GeoM.Translate(
			float64(t.bounds.Left)+(float64(t.bounds.Width())-w)/2,
			top+float64(i)*lh,
		)
		op.GeoM.Concat(geo)
		op.ColorScale.Scale(
			float32(t.color.R*a),
			float32(t.color.G*a),
			float32(t.color.B*a),
			float32(a),
		)
		text.Draw(sub, line, ff.Face(), op)
	}
}

// plainText is a single line of text, measured eagerly, centered in its
// bounds and clipped rather than wrapped.
type plainText struct {
	textBase
}

func newPlainText() *plainText {
	return &plainText{textBase{color: ColorWhite, alpha: 1}}
}

func (t *plainText) SetText(s string) { t.content = s }

// IntrinsicSize is the measured line width and one line height.
func (t *plainText) IntrinsicSize() (int, int) {
	if t.font == nil {
		return 0, 0
	}
	return t.measuredWidth(), int(math.Ceil(t.lineHeight()))
}

func (t *plainText) Prepare(int) bool { return false }

func (t *plainText) Draw(dst *ebiten.Image, tr Transformation) {
	if t.content == "" || t.font == nil {
		return
	}
	top := float64(t.bounds.CenterY()) - t.lineHeight()/2
	t.drawLines(dst, tr, []string{t.content}, top)
}

// wrappedText word-wraps its content to the width it is prepared with. The
// wrapped layout is computed lazily; until then the component reports a
// single-line height.
type wrappedText struct {
	textBase
	lines    []string
	laidOut  bool
	layoutW  int
	fontSeen Font
}

func newWrappedText() *wrappedText {
	return &wrappedText{textBase: textBase{color: ColorWhite, alpha: 1}}
}

func (t *wrappedText) SetText(s string) {
	if s == t.content {
		return
	}
	t.content = s
	t.invalidate()
}

func (t *wrappedText) SetFont(f Font) {
	if f == t.font {
		return
	}
	t.font = f
	t.invalidate()
}

func (t *wrappedText) invalidate() {
	t.lines = t.lines[:0]
	t.laidOut = false
}

// IntrinsicSize is the single-line width and either one line height or, once
// laid out, the height of all wrapped lines.
func (t *wrappedText) IntrinsicSize() (int, int) {
	if t.font == nil {
		return 0, 0
	}
	lh := t.lineHeight()
	if !t.laidOut || len(t.lines) == 0 {
		return t.measuredWidth(), int(math.Ceil(lh))
	}
	return t.measuredWidth(), int(math.Ceil(lh * float64(len(t.lines))))
}

// Prepare lays out the wrapped lines when the content or width changed since
// the last layout. It reports true only on the call that computes a layout.
func (t *wrappedText) Prepare(width int) bool {
	if t.content == "" || t.font == nil {
		return false
	}
	if t.laidOut && width == t.layoutW && t.font == t.fontSeen {
		return false
	}
	t.lines = wrapText(t.font, t.content, float64(width), t.lines[:0])
	t.layoutW = width
	t.fontSeen = t.font
	t.laidOut = true
	return true
}

// Lines returns the wrapped lines from the last layout.
func (t *wrappedText) Lines() []string { return t.lines }

func (t *wrappedText) Draw(dst *ebiten.Image, tr Transformation) {
	if !t.laidOut || len(t.lines) == 0 {
		return
	}
	t.drawLines(dst, tr, t.lines, float64(t.bounds.Top))
}

// wrapText breaks s into lines no wider than width, splitting on spaces and
// honouring explicit newlines. A single word wider than width occupies its
// own line. A non-positive width disables wrapping.
func wrapText(f Font, s string, width float64, buf []string) []string {
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 || width <= 0 {
			buf = append(buf, para)
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if cw, _ := f.MeasureString(candidate); cw > width {
				buf = append(buf, line)
				line = w
				continue
			}
			line = candidate
		}
		buf = append(buf, line)
	}
	return buf
}
