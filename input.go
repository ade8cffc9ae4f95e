package tipview

import "github.com/hajimehoshi/ebiten/v2"

// pointerState tracks the single pointer tips respond to. A touch that
// starts while nothing is pressed owns the pointer until it lifts; otherwise
// the mouse's left button drives it.
type pointerState struct {
	down         bool
	touch        bool
	touchID      ebiten.TouchID
	lastX, lastY float64
}

// processInput polls Ebitengine for pointer state and turns transitions
// into touch events. Injected events take precedence over real input for
// the frame they are consumed in.
func (o *Overlay) processInput() {
	if o.processInjectedInput() {
		return
	}
	x, y, pressed := o.pollPointer()
	o.processPointer(x, y, pressed)
}

// pollPointer reads the owning touch, a new touch, or the mouse.
func (o *Overlay) pollPointer() (x, y float64, pressed bool) {
	ps := &o.pointer
	o.touchIDs = ebiten.AppendTouchIDs(o.touchIDs[:0])

	if ps.down && ps.touch {
		for _, id := range o.touchIDs {
			if id == ps.touchID {
				tx, ty := ebiten.TouchPosition(id)
				return float64(tx), float64(ty), true
			}
		}
		return ps.lastX, ps.lastY, false
	}
	if !ps.down && len(o.touchIDs) > 0 {
		id := o.touchIDs[0]
		ps.touch = true
		ps.touchID = id
		tx, ty := ebiten.TouchPosition(id)
		return float64(tx), float64(ty), true
	}

	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// processPointer runs the pointer state machine and dispatches the
// resulting touch event, if any.
func (o *Overlay) processPointer(x, y float64, pressed bool) {
	ps := &o.pointer
	var kind TouchKind

	switch {
	case pressed && !ps.down:
		ps.down = true
		kind = TouchDown
	case !pressed && ps.down:
		ps.down = false
		ps.touch = false
		kind = TouchUp
	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		kind = TouchMove
	default:
		ps.touch = false
		ps.lastX, ps.lastY = x, y
		return
	}
	ps.lastX, ps.lastY = x, y
	o.dispatchTouch(TouchEvent{Kind: kind, X: x, Y: y, Time: o.sched.Now()})
}

// cancelPointer ends a press in progress with a TouchCancel.
func (o *Overlay) cancelPointer() {
	ps := &o.pointer
	if !ps.down {
		return
	}
	ps.down = false
	ps.touch = false
	o.dispatchTouch(TouchEvent{Kind: TouchCancel, X: ps.lastX, Y: ps.lastY, Time: o.sched.Now()})
}

// dispatchTouch hands ev to the dispatcher and forwards it to the
// pass-through handler when no tip consumed it.
func (o *Overlay) dispatchTouch(ev TouchEvent) {
	if o.disp.HandleTouch(ev) {
		return
	}
	if o.passThrough != nil {
		o.passThrough(ev)
	}
}
