package tipview

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Click thresholds. A press and release on the same tip within both counts
// as a tap.
const (
	ClickMaxDuration = 200 * time.Millisecond
	ClickMaxDistance = 100.0
)

// TouchKind is the phase of a single-pointer touch event.
type TouchKind uint8

const (
	TouchDown TouchKind = iota
	TouchMove
	TouchUp
	TouchCancel
)

var touchKindNames = [...]string{"down", "move", "up", "cancel"}

func (k TouchKind) String() string {
	if int(k) < len(touchKindNames) {
		return touchKindNames[k]
	}
	return "unknown"
}

// TouchEvent is one pointer event in surface coordinates. Time is on the
// host clock.
type TouchEvent struct {
	Kind TouchKind
	X, Y float64
	Time time.Duration
}

// Dispatcher tracks the tips on one surface in insertion order, which is also
// draw order. It coalesces repaint requests and routes touches to tips.
type Dispatcher struct {
	tips    []*Tip
	repaint bool

	intercept     bool
	tapHidesAll   bool
	tapHideNotify bool

	downX, downY float64
	downAt       time.Duration
	hit          *Tip
	consuming    bool // decided on down, held until up or cancel

	sink EventSink
}

// NewDispatcher returns a dispatcher that passes touches through and
// notifies hide listeners on tap-hides.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{tapHideNotify: true}
}

// SetIntercept sets whether touches aimed at tips are consumed.
func (d *Dispatcher) SetIntercept(on bool) { d.intercept = on }

// SetTapHidesAll sets whether any touch hides every tip. Such touches are
// never consumed.
func (d *Dispatcher) SetTapHidesAll(on bool) { d.tapHidesAll = on }

// SetTapHideNotify sets whether a tap-hide notifies the tip's hide listener.
func (d *Dispatcher) SetTapHideNotify(on bool) { d.tapHideNotify = on }

// SetEventSink sets where tap events go. nil disables them.
func (d *Dispatcher) SetEventSink(s EventSink) { d.sink = s }

// Invalidate requests a repaint.
func (d *Dispatcher) Invalidate() { d.repaint = true }

// NeedsRepaint reports whether a repaint is pending.
func (d *Dispatcher) NeedsRepaint() bool { return d.repaint }

// ConsumeRepaint clears the pending repaint and reports whether there was one.
func (d *Dispatcher) ConsumeRepaint() bool {
	r := d.repaint
	d.repaint = false
	return r
}

// Len returns the number of tracked tips.
func (d *Dispatcher) Len() int { return len(d.tips) }

// Tips returns the tracked tips in draw order. The slice must not be modified.
func (d *Dispatcher) Tips() []*Tip { return d.tips }

// add tracks t once.
func (d *Dispatcher) add(t *Tip) {
	if !slices.Contains(d.tips, t) {
		d.tips = append(d.tips, t)
	}
}

// Remove stops tracking t and releases it.
func (d *Dispatcher) Remove(t *Tip) {
	if i := slices.Index(d.tips, t); i >= 0 {
		d.tips = slices.Delete(d.tips, i, i+1)
	}
	if d.hit == t {
		d.hit = nil
	}
	t.release()
	d.repaint = true
}

// RemoveAll releases every tracked tip.
func (d *Dispatcher) RemoveAll() {
	for _, t := range d.tips {
		t.release()
	}
	d.tips = d.tips[:0]
	d.hit = nil
	d.repaint = true
}

// HideAll starts hiding every tip, notifying hide listeners. Listeners may
// remove tips while it runs.
func (d *Dispatcher) HideAll() {
	for _, t := range slices.Clone(d.tips) {
		if !t.released {
			t.hide(true)
		}
	}
	d.repaint = true
}

// Update advances every tip's animation by dt. Tips that changed mark the
// dispatcher for a single repaint.
func (d *Dispatcher) Update(dt time.Duration) {
	for _, t := range slices.Clone(d.tips) {
		if t.update(dt).Has(EventRepaint) {
			d.repaint = true
		}
	}
}

// Draw paints every visible tip in insertion order.
func (d *Dispatcher) Draw(dst *ebiten.Image) {
	for _, t := range d.tips {
		if t.IsShowing() {
			t.visual.Draw(dst)
		}
	}
}

// HandleTouch routes one touch event and reports whether it was consumed.
// Whether a gesture is consumed is decided on its down and holds for every
// later event of that gesture.
func (d *Dispatcher) HandleTouch(ev TouchEvent) bool {
	if d.tapHidesAll && len(d.tips) > 0 {
		d.HideAll()
	}
	switch ev.Kind {
	case TouchDown:
		d.downX, d.downY, d.downAt = ev.X, ev.Y, ev.Time
		d.hit = nil
		d.consuming = d.intercept && !d.tapHidesAll && d.anyShowing()
		if !d.consuming {
			return false
		}
		d.hit = d.hitTest(ev.X, ev.Y)
		if d.hit != nil {
			logger.Debug("tip touched", "id", d.hit.id, "x", ev.X, "y", ev.Y)
		}
		return true
	case TouchMove:
		return d.consuming
	case TouchUp, TouchCancel:
		consumed := d.consuming
		d.consuming = false
		hit := d.hit
		d.hit = nil
		if hit != nil && !hit.released && d.isClick(ev) {
			if d.sink != nil {
				e := newTipEvent(TipTapped, hit)
				e.X, e.Y = ev.X, ev.Y
				d.sink.EmitTipEvent(e)
			}
			hit.hide(d.tapHideNotify)
		}
		return consumed
	}
	return false
}

func (d *Dispatcher) isClick(ev TouchEvent) bool {
	if ev.Time-d.downAt > ClickMaxDuration {
		return false
	}
	dx, dy := ev.X-d.downX, ev.Y-d.downY
	return dx*dx+dy*dy <= ClickMaxDistance*ClickMaxDistance
}

func (d *Dispatcher) anyShowing() bool {
	for _, t := range d.tips {
		if t.IsShowing() {
			return true
		}
	}
	return false
}

// hitTest returns the topmost visible tip containing (x, y).
func (d *Dispatcher) hitTest(x, y float64) *Tip {
	for i := len(d.tips) - 1; i >= 0; i-- {
		t := d.tips[i]
		if t.IsShowing() && t.Contains(x, y) {
			return t
		}
	}
	return nil
}
