package tipview

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay is the surface that hosts all tips for one screen. It owns the
// clock, the dispatcher and the registry, polls Ebitengine input in Update
// and paints the tips in Draw. Call Update and Draw from the host game's own
// Update and Draw, after drawing the game content.
//
// After Release every method is a no-op.
type Overlay struct {
	sched *Scheduler
	disp  *Dispatcher
	reg   *Registry

	width, height int
	debug         bool
	released      bool
	passThrough   func(TouchEvent)

	// Input
	pointer     pointerState
	touchIDs    []ebiten.TouchID
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	// Screenshots
	ScreenshotDir   string
	screenshotQueue []string

	stats debugStats
}

// NewOverlay creates an overlay for a screen of the given size with the
// default style.
func NewOverlay(width, height int) *Overlay {
	o := &Overlay{
		sched:         NewScheduler(),
		disp:          NewDispatcher(),
		width:         width,
		height:        height,
		ScreenshotDir: "screenshots",
	}
	o.reg = NewRegistry(o, o.disp)
	return o
}

// Registry returns the overlay's tip registry.
func (o *Overlay) Registry() *Registry { return o.reg }

// Dispatcher returns the overlay's dispatcher.
func (o *Overlay) Dispatcher() *Dispatcher { return o.disp }

// Scheduler returns the overlay's clock.
func (o *Overlay) Scheduler() *Scheduler { return o.sched }

// --- Host ---

// Invalidate requests a repaint.
func (o *Overlay) Invalidate() { o.disp.Invalidate() }

// Schedule runs fn after delay on the overlay clock. Released overlays never
// run callbacks.
func (o *Overlay) Schedule(delay time.Duration, fn func()) TimerID {
	if o.released {
		return 0
	}
	return o.sched.Schedule(delay, fn)
}

// Cancel unschedules a pending callback.
func (o *Overlay) Cancel(id TimerID) { o.sched.Cancel(id) }

// ScreenWidth returns the current screen width.
func (o *Overlay) ScreenWidth() int { return o.width }

// ScreenHeight returns the current screen height.
func (o *Overlay) ScreenHeight() int { return o.height }

// Now returns the overlay clock.
func (o *Overlay) Now() time.Duration { return o.sched.Now() }

// --- tips ---

// Show shows a basic tip. See Registry.Show.
func (o *Overlay) Show(anchor Anchor, text string, dir Direction, opts ...ShowOption) *Tip {
	return o.reg.Show(anchor, text, dir, opts...)
}

// ShowAdvanced shows a wrapping tip. See Registry.ShowAdvanced.
func (o *Overlay) ShowAdvanced(anchor Anchor, text string, delegate TextDelegate, dir Direction, opts ...ShowOption) *Tip {
	return o.reg.ShowAdvanced(anchor, text, delegate, dir, opts...)
}

// Hide hides the tip for anchor.
func (o *Overlay) Hide(anchor Anchor) { o.reg.Hide(anchor) }

// HideAll hides every tip.
func (o *Overlay) HideAll() {
	if !o.released {
		o.disp.HideAll()
	}
}

// Remove releases the tip for anchor.
func (o *Overlay) Remove(anchor Anchor) { o.reg.Remove(anchor) }

// IsShowing reports whether the tip for anchor is visible or animating.
func (o *Overlay) IsShowing(anchor Anchor) bool { return o.reg.IsShowing(anchor) }

// SetEventSink routes lifecycle and tap events to s.
func (o *Overlay) SetEventSink(s EventSink) {
	o.reg.SetEventSink(s)
	o.disp.SetEventSink(s)
}

// OnPassThrough sets a handler for touches no tip consumed, so the content
// under the overlay can react to them.
func (o *Overlay) OnPassThrough(fn func(TouchEvent)) { o.passThrough = fn }

// --- frame loop ---

// Update processes input, fires due timers and advances animations by one
// tick of 1/TPS seconds.
func (o *Overlay) Update() {
	o.step(time.Second/time.Duration(ebiten.TPS()), true)
}

// Step advances the overlay by dt without polling Ebitengine input. Injected
// input and the test runner still run. Useful for headless driving.
func (o *Overlay) Step(dt time.Duration) {
	o.step(dt, false)
}

func (o *Overlay) step(dt time.Duration, poll bool) {
	if o.released {
		return
	}
	var t0 time.Time
	if o.debug {
		t0 = time.Now()
	}

	if o.testRunner != nil {
		o.testRunner.step(o)
	}
	if poll {
		o.processInput()
	} else {
		o.processInjectedInput()
	}
	o.sched.Advance(dt)
	o.disp.Update(dt)

	if o.debug {
		o.stats.updateTime = time.Since(t0)
	}
}

// Draw paints every visible tip onto screen and flushes queued screenshots.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.released {
		return
	}
	var t0 time.Time
	if o.debug {
		t0 = time.Now()
	}

	o.disp.Draw(screen)
	o.disp.ConsumeRepaint()

	if o.debug {
		o.debugDraw(screen)
		o.stats.drawTime = time.Since(t0)
		o.debugLog()
	}
	o.flushScreenshots(screen)
}

// Layout records the outside size as the screen size and returns it
// unchanged, so an Overlay can serve as a Game's Layout.
func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	o.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// SetScreenSize changes the screen size used by the next show.
func (o *Overlay) SetScreenSize(w, h int) {
	o.width, o.height = w, h
}

// NeedsRepaint reports whether anything changed since the last Draw.
func (o *Overlay) NeedsRepaint() bool { return o.disp.NeedsRepaint() }

// SetDebugMode enables or disables debug mode. When enabled, tip outlines
// are drawn and per-frame timing is logged at debug level.
func (o *Overlay) SetDebugMode(enabled bool) { o.debug = enabled }

// SetTestRunner attaches a TestRunner. Its step runs at the start of every
// Update or Step.
func (o *Overlay) SetTestRunner(runner *TestRunner) { o.testRunner = runner }

// Release tears the overlay down: a press in progress is cancelled, every
// tip is released and every pending callback dropped.
func (o *Overlay) Release() {
	if o.released {
		return
	}
	o.cancelPointer()
	o.reg.Release()
	o.sched.Clear()
	o.injectQueue = o.injectQueue[:0]
	o.screenshotQueue = o.screenshotQueue[:0]
	o.released = true
}

// Released reports whether Release was called.
func (o *Overlay) Released() bool { return o.released }
