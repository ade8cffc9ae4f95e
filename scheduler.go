package tipview

import (
	"slices"
	"time"
)

// TimerID identifies a scheduled callback. The zero value is never issued.
type TimerID uint64

// Host is what tips need from the surface they live on.
type Host interface {
	// Invalidate requests a repaint. Requests coalesce until the next draw.
	Invalidate()
	// Schedule runs fn once delay has elapsed on the host clock.
	Schedule(delay time.Duration, fn func()) TimerID
	// Cancel unschedules a pending callback. Unknown IDs are ignored.
	Cancel(id TimerID)
	// ScreenWidth returns the surface width used for edge clamping.
	ScreenWidth() int
	// Now returns the host clock.
	Now() time.Duration
}

type timer struct {
	id  TimerID
	due time.Duration
	fn  func()
}

// Scheduler is a manual clock with a queue of delayed callbacks. Time only
// moves when Advance is called, so the same queue serves the frame loop and
// tests.
type Scheduler struct {
	now    time.Duration
	nextID TimerID
	timers []timer // sorted by due, then by id
}

// NewScheduler returns a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current clock.
func (s *Scheduler) Now() time.Duration { return s.now }

// Len returns the number of pending callbacks.
func (s *Scheduler) Len() int { return len(s.timers) }

// Schedule queues fn to run once the clock has advanced by delay. Negative
// delays run on the next Advance.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) TimerID {
	s.nextID++
	t := timer{id: s.nextID, due: s.now + max(delay, 0), fn: fn}
	i, _ := slices.BinarySearchFunc(s.timers, t, compareTimers)
	s.timers = slices.Insert(s.timers, i, t)
	return t.id
}

// Cancel removes a pending callback. It is safe to call from inside a
// callback and with IDs that already fired.
func (s *Scheduler) Cancel(id TimerID) {
	if id == 0 {
		return
	}
	if i := slices.IndexFunc(s.timers, func(t timer) bool { return t.id == id }); i >= 0 {
		s.timers = slices.Delete(s.timers, i, i+1)
	}
}

// Advance moves the clock forward by dt and runs every callback that became
// due, in due order. Callbacks scheduled during Advance that are already due
// also run.
func (s *Scheduler) Advance(dt time.Duration) {
	s.now += max(dt, 0)
	for len(s.timers) > 0 && s.timers[0].due <= s.now {
		t := s.timers[0]
		s.timers = slices.Delete(s.timers, 0, 1)
		t.fn()
	}
}

// Clear drops every pending callback without running it.
func (s *Scheduler) Clear() {
	s.timers = s.timers[:0]
}

func compareTimers(a, b timer) int {
	if a.due != b.due {
		if a.due < b.due {
			return -1
		}
		return 1
	}
	if a.id < b.id {
		return -1
	}
	if a.id > b.id {
		return 1
	}
	return 0
}
