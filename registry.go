package tipview

import (
	"time"

	"github.com/tanema/gween/ease"
)

// ShowOption adjusts a single show call.
type ShowOption func(*showOptions)

type showOptions struct {
	offsetX, offsetY int
	showDur, hideDur time.Duration
	hasDurations     bool
	onHide           func(*Tip)
	autoHide         time.Duration
}

// WithOffset shifts the anchor rectangle by (dx, dy) before placement.
func WithOffset(dx, dy int) ShowOption {
	return func(o *showOptions) { o.offsetX, o.offsetY = dx, dy }
}

// WithDurations overrides the style's ramp durations for this tip.
func WithDurations(show, hide time.Duration) ShowOption {
	return func(o *showOptions) {
		o.showDur, o.hideDur = show, hide
		o.hasDurations = true
	}
}

// WithHideListener sets the tip's hide listener. Without it a reused tip
// keeps the listener it already had.
func WithHideListener(fn func(*Tip)) ShowOption {
	return func(o *showOptions) { o.onHide = fn }
}

// WithAutoHide hides the tip after d.
func WithAutoHide(d time.Duration) ShowOption {
	return func(o *showOptions) { o.autoHide = d }
}

// Registry maps anchors to tips for one surface. It creates tips on first
// show, reuses them across show/hide cycles and replaces them when the
// requested variant changes. After Release every method is a no-op.
type Registry struct {
	host     Host
	disp     *Dispatcher
	tips     map[Anchor]*Tip
	style    Style
	font     Font // style font at style text size, resolved lazily
	sink     EventSink
	released bool
}

// NewRegistry creates a registry whose tips live on host and are tracked by
// disp. The dispatcher's touch settings follow the registry style.
func NewRegistry(host Host, disp *Dispatcher) *Registry {
	r := &Registry{
		host: host,
		disp: disp,
		tips: make(map[Anchor]*Tip),
	}
	r.SetStyle(DefaultStyle())
	return r
}

// Show shows a basic tip for anchor pointing in dir. It returns nil after
// Release. Panics on an invalid direction.
func (r *Registry) Show(anchor Anchor, text string, dir Direction, opts ...ShowOption) *Tip {
	return r.show(anchor, text, nil, VariantBasic, dir, opts)
}

// ShowAdvanced shows a word-wrapping tip whose text is passed through
// delegate first. A nil delegate shows text verbatim. It returns nil after
// Release. Panics on an invalid direction.
func (r *Registry) ShowAdvanced(anchor Anchor, text string, delegate TextDelegate, dir Direction, opts ...ShowOption) *Tip {
	return r.show(anchor, text, delegate, VariantAdvanced, dir, opts)
}

func (r *Registry) show(anchor Anchor, text string, delegate TextDelegate, v Variant, dir Direction, opts []ShowOption) *Tip {
	if r.released || anchor == nil {
		return nil
	}
	mustValid(dir)

	var o showOptions
	for _, opt := range opts {
		opt(&o)
	}

	t := r.obtain(anchor, v)
	t.delegate = delegate
	t.source = text
	r.configure(t, dir, o)
	r.disp.add(t)
	t.show()
	if o.autoHide > 0 {
		t.AutoHide(o.autoHide)
	}
	logger.Debug("tip show", "id", t.id, "variant", v, "dir", dir, "bounds", t.Bounds())
	return t
}

// obtain finds the tip for anchor, evicting it first when its variant does
// not match.
func (r *Registry) obtain(anchor Anchor, v Variant) *Tip {
	if t, ok := r.tips[anchor]; ok {
		if t.variant == v {
			return t
		}
		logger.Debug("tip evict", "id", t.id, "from", t.variant, "to", v)
		r.remove(anchor, t)
	}
	t := newTip(r, anchor, v)
	r.tips[anchor] = t
	return t
}

// configure applies the current style and placement inputs to t and lays
// it out.
func (r *Registry) configure(t *Tip, dir Direction, o showOptions) {
	s := &r.style
	vis := t.visual

	if s.Background != nil {
		vis.background = s.Background.Clone()
	} else {
		vis.background = nil
	}
	if tri := s.triangle(dir); tri != nil {
		vis.triangle = tri.Clone()
	} else {
		vis.triangle = nil
	}
	vis.direction = dir
	vis.padding = s.Padding
	vis.text.SetFont(r.resolvedFont())
	vis.text.SetColor(s.TextColor)
	vis.text.SetText(applyDelegate(t.delegate, t.source))

	a := t.anim
	a.SetEnabled(s.Animate)
	a.SetAnimation(s.Animation)
	a.SetEasing(s.Easing)
	if o.hasDurations {
		a.SetDurations(o.showDur, o.hideDur)
	} else {
		a.SetDurations(s.ShowDuration, s.HideDuration)
	}
	if o.onHide != nil {
		t.onHide = o.onHide
	}

	t.anchorRect = t.anchor.TipBounds()
	t.screenWidth = r.host.ScreenWidth()
	t.edgeMargin = s.EdgeMargin
	t.offsetX, t.offsetY = o.offsetX, o.offsetY
	t.layout()
}

func (r *Registry) resolvedFont() Font {
	if r.font == nil {
		if r.style.Font != nil {
			r.font = resizeFont(r.style.Font, r.style.TextSize)
		} else {
			r.font = DefaultFont(r.style.TextSize)
		}
	}
	return r.font
}

// Hide starts hiding the tip for anchor. Absent anchors are ignored.
func (r *Registry) Hide(anchor Anchor) {
	if r.released {
		return
	}
	if t, ok := r.tips[anchor]; ok {
		t.hide(true)
	}
}

// Remove releases the tip for anchor. The next show creates a new tip.
func (r *Registry) Remove(anchor Anchor) {
	if r.released {
		return
	}
	if t, ok := r.tips[anchor]; ok {
		r.remove(anchor, t)
	}
}

func (r *Registry) remove(anchor Anchor, t *Tip) {
	delete(r.tips, anchor)
	r.disp.Remove(t)
	r.emit(newTipEvent(TipRemoved, t))
	logger.Debug("tip remove", "id", t.id)
}

// RemoveAll releases every tip.
func (r *Registry) RemoveAll() {
	if r.released {
		return
	}
	for anchor, t := range r.tips {
		r.remove(anchor, t)
	}
}

// Release removes every tip and turns the registry into a no-op.
func (r *Registry) Release() {
	if r.released {
		return
	}
	r.RemoveAll()
	r.disp.RemoveAll()
	r.released = true
}

// Released reports whether Release was called.
func (r *Registry) Released() bool { return r.released }

// IsShowing reports whether the tip for anchor is visible or animating.
func (r *Registry) IsShowing(anchor Anchor) bool {
	if r.released {
		return false
	}
	t, ok := r.tips[anchor]
	return ok && t.IsShowing()
}

// Tip returns the tip for anchor, or nil.
func (r *Registry) Tip(anchor Anchor) *Tip {
	if r.released {
		return nil
	}
	return r.tips[anchor]
}

// Len returns the number of tips, hidden ones included.
func (r *Registry) Len() int { return len(r.tips) }

// SetEventSink sets where lifecycle events go. nil disables them.
func (r *Registry) SetEventSink(s EventSink) { r.sink = s }

func (r *Registry) emit(e TipEvent) {
	if r.sink != nil {
		r.sink.EmitTipEvent(e)
	}
}

// --- style ---

// Style returns a copy of the current style.
func (r *Registry) Style() Style { return r.style }

// SetStyle replaces the whole style. Touch settings apply immediately; the
// rest applies on the next show.
func (r *Registry) SetStyle(s Style) {
	if r.released {
		return
	}
	r.style = s
	r.font = nil
	r.disp.SetIntercept(s.InterceptTouches)
	r.disp.SetTapHidesAll(s.TapHidesAll)
	r.disp.SetTapHideNotify(s.TapHideNotify)
}

func (r *Registry) update(fn func(s *Style)) {
	s := r.style
	fn(&s)
	r.SetStyle(s)
}

// SetBackground sets the background template. nil draws none.
func (r *Registry) SetBackground(d Drawable) { r.update(func(s *Style) { s.Background = d }) }

// SetTriangles sets the triangle templates in left, top, right, bottom order.
func (r *Registry) SetTriangles(left, top, right, bottom Drawable) {
	r.update(func(s *Style) { s.Triangles = [4]Drawable{left, top, right, bottom} })
}

// SetTextSize sets the text size in pixels.
func (r *Registry) SetTextSize(size float64) { r.update(func(s *Style) { s.TextSize = size }) }

// SetTextColor sets the text color.
func (r *Registry) SetTextColor(c Color) { r.update(func(s *Style) { s.TextColor = c }) }

// SetTextPadding sets the padding around the text.
func (r *Registry) SetTextPadding(p Insets) { r.update(func(s *Style) { s.Padding = p }) }

// SetEdgeMargin sets the minimum distance from the screen edges.
func (r *Registry) SetEdgeMargin(m int) { r.update(func(s *Style) { s.EdgeMargin = m }) }

// SetAnimationEnabled turns show/hide ramps on or off.
func (r *Registry) SetAnimationEnabled(on bool) { r.update(func(s *Style) { s.Animate = on }) }

// SetAnimation sets the show/hide animation. nil restores the fade.
func (r *Registry) SetAnimation(a TipAnimation) { r.update(func(s *Style) { s.Animation = a }) }

// SetEasing sets the ramp easing. nil restores linear.
func (r *Registry) SetEasing(fn ease.TweenFunc) { r.update(func(s *Style) { s.Easing = fn }) }

// SetDurations sets the default ramp durations.
func (r *Registry) SetDurations(show, hide time.Duration) {
	r.update(func(s *Style) { s.ShowDuration, s.HideDuration = show, hide })
}

// SetInterceptTouches sets whether touches on tips are consumed.
func (r *Registry) SetInterceptTouches(on bool) { r.update(func(s *Style) { s.InterceptTouches = on }) }

// SetTapHidesAll sets whether any touch hides every tip.
func (r *Registry) SetTapHidesAll(on bool) { r.update(func(s *Style) { s.TapHidesAll = on }) }

// SetTapHideNotify sets whether tap-hides notify hide listeners.
func (r *Registry) SetTapHideNotify(on bool) { r.update(func(s *Style) { s.TapHideNotify = on }) }

// SetFont sets the font. It is resized to the style text size when it
// supports resizing.
func (r *Registry) SetFont(f Font) { r.update(func(s *Style) { s.Font = f }) }
