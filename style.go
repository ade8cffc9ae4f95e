package tipview

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Default style values.
const (
	DefaultTextSize   = 15
	DefaultPadding    = 5
	DefaultEdgeMargin = 10
)

// DefaultTipColor is the default background and triangle fill.
var DefaultTipColor = Color{R: 0.2, G: 0.2, B: 0.2, A: 0.92}

// Style is the set of defaults a Registry applies to every tip on show.
// Changes affect the next show, never a tip already on screen.
type Style struct {
	Background Drawable    // cloned per tip; nil draws no background
	Triangles  [4]Drawable // by Direction.Slot; cloned per tip; nil entries draw no triangle
	Font       Font        // nil uses the Go Regular face
	TextSize   float64
	TextColor  Color
	Padding    Insets
	EdgeMargin int

	Animate      bool
	Animation    TipAnimation
	Easing       ease.TweenFunc
	ShowDuration time.Duration
	HideDuration time.Duration

	InterceptTouches bool // consume touches aimed at tips
	TapHidesAll      bool // any touch hides every tip and passes through
	TapHideNotify    bool // hides caused by a tap notify hide listeners
}

// DefaultStyle returns the stock style: dark tips with white 15px text,
// 5px padding, a 10px screen margin and a 200ms/150ms fade.
func DefaultStyle() Style {
	s := Style{
		Background:    NewRectBackground(DefaultTipColor),
		TextSize:      DefaultTextSize,
		TextColor:     ColorWhite,
		Padding:       UniformInsets(DefaultPadding),
		EdgeMargin:    DefaultEdgeMargin,
		Animate:       true,
		Animation:     FadeAnimation{},
		Easing:        ease.Linear,
		ShowDuration:  DefaultShowDuration,
		HideDuration:  DefaultHideDuration,
		TapHideNotify: true,
	}
	for i, t := range DefaultTriangles(DefaultTipColor) {
		s.Triangles[i] = t
	}
	return s
}

// triangle returns the triangle template for d, or nil.
func (s *Style) triangle(d Direction) Drawable {
	if d == DirectionNone {
		return nil
	}
	return s.Triangles[d.Slot()]
}

// styleFile is the on-disk form of a Style. Unset fields keep their
// defaults.
type styleFile struct {
	Background       string   `toml:"background" yaml:"background"`
	TriangleColor    string   `toml:"triangle_color" yaml:"triangle_color"`
	TextColor        string   `toml:"text_color" yaml:"text_color"`
	TextSize         float64  `toml:"text_size" yaml:"text_size"`
	Padding          []int    `toml:"padding" yaml:"padding"`
	EdgeMargin       *int     `toml:"edge_margin" yaml:"edge_margin"`
	Animate          *bool    `toml:"animate" yaml:"animate"`
	Animation        string   `toml:"animation" yaml:"animation"`
	Easing           string   `toml:"easing" yaml:"easing"`
	ShowDuration     string   `toml:"show_duration" yaml:"show_duration"`
	HideDuration     string   `toml:"hide_duration" yaml:"hide_duration"`
	InterceptTouches *bool    `toml:"intercept_touches" yaml:"intercept_touches"`
	TapHidesAll      *bool    `toml:"tap_hides_all" yaml:"tap_hides_all"`
	TapHideNotify    *bool    `toml:"tap_hide_notify" yaml:"tap_hide_notify"`
	Font             string   `toml:"font" yaml:"font"`
	PopFrom          *float64 `toml:"pop_from" yaml:"pop_from"`
}

// LoadStyle reads a style file. The format is chosen by extension: .toml,
// .yaml or .yml. A relative font path is resolved against the file's
// directory.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("tipview: read style: %w", err)
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return parseStyle(data, format, filepath.Dir(path))
}

// ParseStyle decodes a style in the given format ("toml", "yaml" or "yml")
// on top of DefaultStyle. Relative font paths are resolved against the
// working directory.
func ParseStyle(data []byte, format string) (Style, error) {
	return parseStyle(data, format, "")
}

func parseStyle(data []byte, format, dir string) (Style, error) {
	var f styleFile
	switch format {
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
			return Style{}, fmt.Errorf("tipview: decode toml style: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return Style{}, fmt.Errorf("tipview: decode yaml style: %w", err)
		}
	default:
		return Style{}, fmt.Errorf("tipview: unknown style format %q", format)
	}
	return f.apply(DefaultStyle(), dir)
}

func (f *styleFile) apply(s Style, dir string) (Style, error) {
	tipColor := DefaultTipColor
	if f.Background != "" {
		c, err := ParseColor(f.Background)
		if err != nil {
			return Style{}, err
		}
		tipColor = c
		s.Background = NewRectBackground(c)
	}
	triColor := tipColor
	if f.TriangleColor != "" {
		c, err := ParseColor(f.TriangleColor)
		if err != nil {
			return Style{}, err
		}
		triColor = c
	}
	for i, t := range DefaultTriangles(triColor) {
		s.Triangles[i] = t
	}
	if f.TextColor != "" {
		c, err := ParseColor(f.TextColor)
		if err != nil {
			return Style{}, err
		}
		s.TextColor = c
	}
	if f.TextSize > 0 {
		s.TextSize = f.TextSize
	}
	switch len(f.Padding) {
	case 0:
	case 1:
		s.Padding = UniformInsets(f.Padding[0])
	case 4:
		s.Padding = Insets{f.Padding[0], f.Padding[1], f.Padding[2], f.Padding[3]}
	default:
		return Style{}, fmt.Errorf("tipview: padding needs 1 or 4 values, got %d", len(f.Padding))
	}
	if f.EdgeMargin != nil {
		s.EdgeMargin = *f.EdgeMargin
	}
	if f.Animate != nil {
		s.Animate = *f.Animate
	}
	if f.Animation != "" {
		a, err := animationByName(f.Animation, f.PopFrom)
		if err != nil {
			return Style{}, err
		}
		s.Animation = a
	}
	if f.Easing != "" {
		fn, ok := easings[strings.ToLower(f.Easing)]
		if !ok {
			return Style{}, fmt.Errorf("tipview: unknown easing %q", f.Easing)
		}
		s.Easing = fn
	}
	var err error
	if s.ShowDuration, err = parseDuration("show_duration", f.ShowDuration, s.ShowDuration); err != nil {
		return Style{}, err
	}
	if s.HideDuration, err = parseDuration("hide_duration", f.HideDuration, s.HideDuration); err != nil {
		return Style{}, err
	}
	if f.InterceptTouches != nil {
		s.InterceptTouches = *f.InterceptTouches
	}
	if f.TapHidesAll != nil {
		s.TapHidesAll = *f.TapHidesAll
	}
	if f.TapHideNotify != nil {
		s.TapHideNotify = *f.TapHideNotify
	}
	if f.Font != "" {
		path := f.Font
		if dir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return Style{}, fmt.Errorf("tipview: read font: %w", err)
		}
		font, err := LoadTTFFont(data, s.TextSize)
		if err != nil {
			return Style{}, err
		}
		s.Font = font
	}
	return s, nil
}

func parseDuration(field, v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("tipview: %s: %w", field, err)
	}
	return d, nil
}

func animationByName(name string, popFrom *float64) (TipAnimation, error) {
	switch strings.ToLower(name) {
	case "fade":
		return FadeAnimation{}, nil
	case "pop":
		from := 0.8
		if popFrom != nil {
			from = *popFrom
		}
		return PopAnimation{From: from}, nil
	case "slide":
		return SlideAnimation{DY: 8}, nil
	}
	return nil, fmt.Errorf("tipview: unknown animation %q", name)
}

// easings maps config names to gween easing functions.
var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inquad":       ease.InQuad,
	"outquad":      ease.OutQuad,
	"inoutquad":    ease.InOutQuad,
	"incubic":      ease.InCubic,
	"outcubic":     ease.OutCubic,
	"inoutcubic":   ease.InOutCubic,
	"insine":       ease.InSine,
	"outsine":      ease.OutSine,
	"inoutsine":    ease.InOutSine,
	"outback":      ease.OutBack,
	"outelastic":   ease.OutElastic,
	"outbounce":    ease.OutBounce,
	"inoutexpo":    ease.InOutExpo,
	"outcirc":      ease.OutCirc,
	"inoutquart":   ease.InOutQuart,
	"outquint":     ease.OutQuint,
	"inoutquint":   ease.InOutQuint,
	"inoutback":    ease.InOutBack,
	"inoutbounce":  ease.InOutBounce,
	"inoutelastic": ease.InOutElastic,
}
