package tipview

import (
	"time"

	"github.com/google/uuid"
)

// Variant distinguishes basic tips from advanced ones. A tip's variant is
// fixed when it is created.
type Variant uint8

const (
	VariantBasic    Variant = iota // single-line text
	VariantAdvanced                // delegate-transformed, word-wrapped text
)

func (v Variant) String() string {
	if v == VariantAdvanced {
		return "advanced"
	}
	return "basic"
}

// Tip is one tooltip bound to an anchor. Tips are created and owned by a
// Registry; hiding a tip keeps it for reuse by the next show on the same
// anchor.
type Tip struct {
	id       string
	variant  Variant
	anchor   Anchor
	reg      *Registry
	host     Host
	visual   *Visual
	anim     *Animator
	delegate TextDelegate
	source   string
	onHide   func(*Tip)

	// placement inputs kept for re-layout
	anchorRect       Rect
	screenWidth      int
	edgeMargin       int
	offsetX, offsetY int

	hideTimer TimerID
	released  bool
}

func newTip(reg *Registry, anchor Anchor, variant Variant) *Tip {
	var tc textComponent
	if variant == VariantAdvanced {
		tc = newWrappedText()
	} else {
		tc = newPlainText()
	}
	return &Tip{
		id:      uuid.NewString(),
		variant: variant,
		anchor:  anchor,
		reg:     reg,
		host:    reg.host,
		visual:  newVisual(tc),
		anim:    NewAnimator(),
	}
}

// ID returns the tip's unique identifier.
func (t *Tip) ID() string { return t.id }

// Variant returns the tip's variant.
func (t *Tip) Variant() Variant { return t.variant }

// Anchor returns the anchor the tip points at.
func (t *Tip) Anchor() Anchor { return t.anchor }

// Text returns the displayed text, after any text delegate.
func (t *Tip) Text() string { return t.visual.Text() }

// SourceText returns the text as passed to show, before any text delegate.
func (t *Tip) SourceText() string { return t.source }

// Direction returns the pointing direction of the last show.
func (t *Tip) Direction() Direction { return t.visual.Direction() }

// Bounds returns the tip rectangle in surface coordinates.
func (t *Tip) Bounds() Rect { return t.visual.Bounds() }

// TriangleMargin returns the triangle offset along the pointing edge.
func (t *Tip) TriangleMargin() int { return t.visual.TriangleMargin() }

// Visual returns the tip's drawable composite.
func (t *Tip) Visual() *Visual { return t.visual }

// State returns the animation state.
func (t *Tip) State() TipState { return t.anim.State() }

// IsShowing reports whether the tip is visible or animating.
func (t *Tip) IsShowing() bool { return t.anim.IsShowing() }

// Alpha returns the current opacity.
func (t *Tip) Alpha() float64 { return t.visual.Alpha() }

// Released reports whether the tip was removed from its registry.
func (t *Tip) Released() bool { return t.released }

// Contains reports whether the surface point (x, y) hits the tip.
func (t *Tip) Contains(x, y float64) bool {
	return t.visual.Bounds().Contains(x, y)
}

// SetOnHide sets the listener invoked after a notifying hide completes. The
// tip is already hidden when it runs.
func (t *Tip) SetOnHide(fn func(*Tip)) *Tip {
	t.onHide = fn
	return t
}

// Hide starts hiding the tip and notifies the hide listener on completion.
// Hiding an already hidden or hiding tip does nothing.
func (t *Tip) Hide() {
	t.hide(true)
}

// AutoHide schedules a notifying hide after delay, replacing any pending
// one. Non-positive delays are ignored.
func (t *Tip) AutoHide(delay time.Duration) *Tip {
	if t.released || delay <= 0 {
		return t
	}
	t.cancelAutoHide()
	t.hideTimer = t.host.Schedule(delay, func() {
		t.hideTimer = 0
		t.hide(true)
	})
	return t
}

func (t *Tip) cancelAutoHide() {
	if t.hideTimer != 0 {
		t.host.Cancel(t.hideTimer)
		t.hideTimer = 0
	}
}

func (t *Tip) show() {
	if t.released {
		return
	}
	t.cancelAutoHide()
	t.handle(t.anim.Show())
}

func (t *Tip) hide(notify bool) {
	if t.released {
		return
	}
	t.handle(t.anim.Hide(notify))
}

// update advances the animation by dt.
func (t *Tip) update(dt time.Duration) AnimEvents {
	if t.released {
		return 0
	}
	ev := t.anim.Update(dt)
	t.handle(ev)
	return ev
}

// handle applies animator output to the visual and fans out events.
func (t *Tip) handle(ev AnimEvents) {
	if ev == 0 {
		return
	}
	tr := t.anim.Transformation()
	t.visual.SetAlpha(tr.Alpha)
	t.visual.SetTransform(tr)
	if ev.Has(EventRepaint) {
		t.host.Invalidate()
	}
	if ev.Has(EventShown) {
		t.reg.emit(newTipEvent(TipShown, t))
	}
	if ev.Has(EventHidden) {
		t.reg.emit(newTipEvent(TipHidden, t))
		logger.Debug("tip hidden", "id", t.id, "notify", ev.Has(EventNotifyHide))
	}
	if ev.Has(EventNotifyHide) && t.onHide != nil {
		t.onHide(t)
	}
}

// layout solves placement for the stored inputs and lays the visual out.
// When the text component changes its size while preparing for the new
// width, placement is solved once more; that second pass never prepares
// again.
func (t *Tip) layout() {
	t.place()
	if t.visual.Prepare() {
		t.place()
	}
}

func (t *Tip) place() {
	w, h := t.visual.IntrinsicSize()
	triW, triH := t.visual.triangleSize()
	p := Solve(PlacementInput{
		Anchor:         t.anchorRect.Offset(t.offsetX, t.offsetY),
		ScreenWidth:    t.screenWidth,
		EdgeMargin:     t.edgeMargin,
		Direction:      t.visual.Direction(),
		TipWidth:       w,
		TipHeight:      h,
		TriangleWidth:  triW,
		TriangleHeight: triH,
	})
	t.visual.triangleMargin = p.TriangleMargin
	t.visual.SetBounds(p.Bounds)
	t.anim.SetBounds(p.Bounds)
}

// release cancels everything pending for the tip. A released tip ignores
// every later call.
func (t *Tip) release() {
	if t.released {
		return
	}
	t.cancelAutoHide()
	t.anim.Reset()
	t.released = true
}
