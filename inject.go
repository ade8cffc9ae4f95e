package tipview

// syntheticPointerEvent represents a single injected pointer event in
// surface coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at (x, y). The event is consumed on the
// next Update or Step.
func (o *Overlay) InjectPress(x, y float64) {
	o.injectQueue = append(o.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move at (x, y) with the pointer held down.
// Use it between InjectPress and InjectRelease to simulate a drag.
func (o *Overlay) InjectMove(x, y float64) {
	o.injectQueue = append(o.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at (x, y).
func (o *Overlay) InjectRelease(x, y float64) {
	o.injectQueue = append(o.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (o *Overlay) InjectClick(x, y float64) {
	o.InjectPress(x, y)
	o.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 evenly spaced moves
// and a release at (toX, toY). The sequence consumes frames frames, at
// least two.
func (o *Overlay) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	o.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		o.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	o.InjectRelease(toX, toY)
}

// PendingInput returns the number of queued synthetic events.
func (o *Overlay) PendingInput() int { return len(o.injectQueue) }

// processInjectedInput pops one queued event and feeds it through the
// pointer state machine. It reports whether an event was consumed.
func (o *Overlay) processInjectedInput() bool {
	if len(o.injectQueue) == 0 {
		return false
	}
	evt := o.injectQueue[0]
	copy(o.injectQueue, o.injectQueue[1:])
	o.injectQueue = o.injectQueue[:len(o.injectQueue)-1]

	o.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
