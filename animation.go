package tipview

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default show and hide ramp durations.
const (
	DefaultShowDuration = 200 * time.Millisecond
	DefaultHideDuration = 150 * time.Millisecond
)

// TipState is the visibility state of a tip.
type TipState uint8

const (
	StateHidden  TipState = iota // not drawn, not hit-testable
	StateShowing                 // show ramp in progress
	StateShown                   // fully visible
	StateHiding                  // hide ramp in progress
)

var stateNames = [...]string{"hidden", "showing", "shown", "hiding"}

func (s TipState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// AnimEvents is a bit set of things that happened during one animator call.
type AnimEvents uint8

const (
	// EventRepaint means the visual changed and should be redrawn.
	EventRepaint AnimEvents = 1 << iota
	// EventShown means a show ramp completed.
	EventShown
	// EventHidden means the tip reached StateHidden.
	EventHidden
	// EventNotifyHide means the hide listener should be invoked.
	EventNotifyHide
)

// Has reports whether every bit of f is set in e.
func (e AnimEvents) Has(f AnimEvents) bool { return e&f == f }

// TipAnimation turns ramp progress into a transformation. progress runs
// 0 to 1 while showing and 1 to 0 while hiding. bounds is the tip rectangle,
// useful as a pivot. t is cleared by the caller only when a show starts, so
// implementations should set every field they use.
type TipAnimation interface {
	Apply(progress float64, bounds Rect, t *Transformation)
}

// TipAnimationFunc adapts a plain function to TipAnimation.
type TipAnimationFunc func(progress float64, bounds Rect, t *Transformation)

// Apply calls f.
func (f TipAnimationFunc) Apply(progress float64, bounds Rect, t *Transformation) {
	f(progress, bounds, t)
}

// FadeAnimation sets alpha to progress.
type FadeAnimation struct{}

// Apply implements TipAnimation.
func (FadeAnimation) Apply(progress float64, _ Rect, t *Transformation) {
	t.Alpha = progress
}

// PopAnimation fades in while scaling up from From about the tip center.
type PopAnimation struct {
	From float64 // starting scale, e.g. 0.8
}

// Apply implements TipAnimation.
func (p PopAnimation) Apply(progress float64, bounds Rect, t *Transformation) {
	t.Alpha = progress
	s := p.From + (1-p.From)*progress
	t.Matrix = identityTransform
	t.ScaleAbout(s, s, float64(bounds.CenterX()), float64(bounds.CenterY()))
}

// SlideAnimation fades in while moving from an offset of (DX, DY) to the
// final position.
type SlideAnimation struct {
	DX, DY float64
}

// Apply implements TipAnimation.
func (s SlideAnimation) Apply(progress float64, _ Rect, t *Transformation) {
	t.Alpha = progress
	t.Matrix = identityTransform
	t.Translate(s.DX*(1-progress), s.DY*(1-progress))
}

// rampKind tags which ramp is running, so completion never has to infer it
// from the duration.
type rampKind uint8

const (
	rampNone rampKind = iota
	rampShow
	rampHide
)

// Animator is the show/hide state machine of a tip. It is driven entirely by
// Update, so any clock can run it.
type Animator struct {
	enabled  bool
	anim     TipAnimation
	easing   ease.TweenFunc
	showDur  time.Duration
	hideDur  time.Duration
	state    TipState
	tween    *gween.Tween
	ramp     rampKind
	notify   bool
	progress float64
	bounds   Rect
	tr       Transformation
}

// NewAnimator returns an enabled animator in StateHidden with the default
// durations, a fade animation and linear easing.
func NewAnimator() *Animator {
	return &Animator{
		enabled: true,
		anim:    FadeAnimation{},
		easing:  ease.Linear,
		showDur: DefaultShowDuration,
		hideDur: DefaultHideDuration,
		tr:      NewTransformation(),
	}
}

// SetEnabled turns ramps on or off. When off, Show and Hide jump straight to
// their end states.
func (a *Animator) SetEnabled(on bool) { a.enabled = on }

// Enabled reports whether ramps are on.
func (a *Animator) Enabled() bool { return a.enabled }

// SetAnimation sets the progress-to-transformation function. nil restores
// the fade.
func (a *Animator) SetAnimation(anim TipAnimation) {
	if anim == nil {
		anim = FadeAnimation{}
	}
	a.anim = anim
}

// SetEasing sets the easing applied to ramp progress. nil restores linear.
func (a *Animator) SetEasing(fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	a.easing = fn
}

// SetDurations sets the ramp durations. Negative values are treated as zero.
// Equal durations get one extra millisecond on hide so the two ramps are
// always distinguishable by length.
func (a *Animator) SetDurations(show, hide time.Duration) {
	show = max(show, 0)
	hide = max(hide, 0)
	if show == hide {
		hide += time.Millisecond
	}
	a.showDur = show
	a.hideDur = hide
}

// Durations returns the effective show and hide durations.
func (a *Animator) Durations() (show, hide time.Duration) {
	return a.showDur, a.hideDur
}

// SetBounds sets the rectangle handed to the animation as a pivot.
func (a *Animator) SetBounds(r Rect) { a.bounds = r }

// State returns the current state.
func (a *Animator) State() TipState { return a.state }

// IsShowing reports whether the tip is anything but hidden.
func (a *Animator) IsShowing() bool { return a.state != StateHidden }

// Progress returns the last ramp progress in [0, 1].
func (a *Animator) Progress() float64 { return a.progress }

// Transformation returns the current transformation.
func (a *Animator) Transformation() Transformation { return a.tr }

// Show makes the tip visible, cancelling any hide in flight, and starts the
// show ramp from zero. With ramps off or a zero show duration the tip is
// shown immediately.
func (a *Animator) Show() AnimEvents {
	a.tr.Clear()
	a.notify = false
	if !a.enabled || a.showDur <= 0 {
		a.stop()
		a.state = StateShown
		a.progress = 1
		return EventRepaint | EventShown
	}
	a.state = StateShowing
	a.start(rampShow, 0, 1, a.showDur)
	return EventRepaint
}

// Hide starts the hide ramp from the current progress. It does nothing and
// returns zero when the tip is already hidden or hiding. When ramps are off
// or the hide duration is zero the tip is hidden immediately and the
// returned events say so.
func (a *Animator) Hide(notify bool) AnimEvents {
	if a.state == StateHidden || a.state == StateHiding {
		return 0
	}
	if !a.enabled || a.hideDur <= 0 {
		a.stop()
		a.state = StateHidden
		a.progress = 0
		ev := EventRepaint | EventHidden
		if notify {
			ev |= EventNotifyHide
		}
		return ev
	}
	a.notify = notify
	a.state = StateHiding
	a.start(rampHide, a.progress, 0, a.hideDur)
	return EventRepaint
}

// Reset cancels any ramp and returns to StateHidden without events.
func (a *Animator) Reset() {
	a.stop()
	a.state = StateHidden
	a.progress = 0
	a.notify = false
	a.tr.Clear()
}

// Running reports whether a ramp is in progress.
func (a *Animator) Running() bool { return a.ramp != rampNone }

// Update advances the running ramp by dt and reports what happened.
func (a *Animator) Update(dt time.Duration) AnimEvents {
	if a.ramp == rampNone {
		return 0
	}
	v, done := a.tween.Update(float32(dt.Seconds()))
	a.setProgress(float64(v))
	ev := EventRepaint
	if !done {
		return ev
	}
	finished := a.ramp
	a.stop()
	switch finished {
	case rampShow:
		a.setProgress(1)
		a.state = StateShown
		ev |= EventShown
	case rampHide:
		a.setProgress(0)
		a.state = StateHidden
		ev |= EventHidden
		if a.notify {
			ev |= EventNotifyHide
		}
		a.notify = false
	}
	return ev
}

func (a *Animator) start(kind rampKind, from, to float64, d time.Duration) {
	a.ramp = kind
	a.tween = gween.New(float32(from), float32(to), float32(d.Seconds()), a.easing)
	a.setProgress(from)
}

func (a *Animator) stop() {
	a.ramp = rampNone
	a.tween = nil
}

func (a *Animator) setProgress(p float64) {
	a.progress = clamp01(p)
	a.anim.Apply(a.progress, a.bounds, &a.tr)
}
