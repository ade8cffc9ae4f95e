package tipview

import (
	"time"
	"unicode/utf8"
)

// monoFont measures every rune as charW wide with a fixed line height.
type monoFont struct {
	charW, lineH float64
}

func (f monoFont) MeasureString(s string) (float64, float64) {
	return float64(utf8.RuneCountInString(s)) * f.charW, f.lineH
}

func (f monoFont) LineHeight() float64 { return f.lineH }

var testFont = monoFont{charW: 10, lineH: 20}

// fakeHost is a Host backed by a Scheduler with a recorded repaint count.
type fakeHost struct {
	sched       *Scheduler
	width       int
	invalidates int
}

func newFakeHost(width int) *fakeHost {
	return &fakeHost{sched: NewScheduler(), width: width}
}

func (h *fakeHost) Invalidate() { h.invalidates++ }

func (h *fakeHost) Schedule(d time.Duration, fn func()) TimerID { return h.sched.Schedule(d, fn) }

func (h *fakeHost) Cancel(id TimerID) { h.sched.Cancel(id) }

func (h *fakeHost) ScreenWidth() int { return h.width }

func (h *fakeHost) Now() time.Duration { return h.sched.Now() }

// newTestRegistry returns a registry on a 1000px wide fake host using the
// mono font and no animation.
func newTestRegistry() (*Registry, *fakeHost, *Dispatcher) {
	h := newFakeHost(1000)
	d := NewDispatcher()
	r := NewRegistry(h, d)
	r.SetFont(testFont)
	r.SetAnimationEnabled(false)
	return r, h, d
}

// eventLog records every event it receives.
type eventLog struct {
	events []TipEvent
}

func (l *eventLog) EmitTipEvent(e TipEvent) { l.events = append(l.events, e) }

func (l *eventLog) types() []TipEventType {
	out := make([]TipEventType, len(l.events))
	for i, e := range l.events {
		out[i] = e.Type
	}
	return out
}

// stepFor calls fn with 16ms frames until total has elapsed, plus one
// frame so ramps finish despite float32 rounding in the tween clock.
func stepFor(total time.Duration, fn func(dt time.Duration)) {
	const frame = 16 * time.Millisecond
	for elapsed := time.Duration(0); elapsed <= total; elapsed += frame {
		fn(frame)
	}
}
