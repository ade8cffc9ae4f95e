package tipview

// TipEventType identifies a tip lifecycle event.
type TipEventType uint8

const (
	TipShown   TipEventType = iota + 1 // show ramp finished
	TipHidden                          // tip reached the hidden state
	TipTapped                          // a click landed on the tip
	TipRemoved                         // tip was released
)

var tipEventNames = [...]string{"", "shown", "hidden", "tapped", "removed"}

func (t TipEventType) String() string {
	if int(t) < len(tipEventNames) && t != 0 {
		return tipEventNames[t]
	}
	return "unknown"
}

// TipEvent is published to an EventSink. X and Y are the pointer position
// for TipTapped and the tip center otherwise.
type TipEvent struct {
	Type      TipEventType
	TipID     string
	Anchor    Anchor
	Direction Direction
	X, Y      float64
}

// EventSink receives tip lifecycle events. Sinks are called synchronously
// from Update, HandleTouch and registry calls.
type EventSink interface {
	EmitTipEvent(TipEvent)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(TipEvent)

// EmitTipEvent calls f(e).
func (f EventSinkFunc) EmitTipEvent(e TipEvent) { f(e) }

// newTipEvent fills an event for t centered on its bounds.
func newTipEvent(typ TipEventType, t *Tip) TipEvent {
	b := t.Bounds()
	return TipEvent{
		Type:      typ,
		TipID:     t.id,
		Anchor:    t.anchor,
		Direction: t.Direction(),
		X:         float64(b.CenterX()),
		Y:         float64(b.CenterY()),
	}
}
