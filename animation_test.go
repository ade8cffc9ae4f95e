package tipview

import (
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestAnimatorSetDurations(t *testing.T) {
	tests := []struct {
		show, hide         time.Duration
		wantShow, wantHide time.Duration
	}{
		{200 * time.Millisecond, 150 * time.Millisecond, 200 * time.Millisecond, 150 * time.Millisecond},
		{200 * time.Millisecond, 200 * time.Millisecond, 200 * time.Millisecond, 201 * time.Millisecond},
		{-5, 100 * time.Millisecond, 0, 100 * time.Millisecond},
		{0, 0, 0, time.Millisecond},
	}
	for _, tt := range tests {
		a := NewAnimator()
		a.SetDurations(tt.show, tt.hide)
		show, hide := a.Durations()
		if show != tt.wantShow || hide != tt.wantHide {
			t.Errorf("SetDurations(%v, %v) -> %v, %v; want %v, %v",
				tt.show, tt.hide, show, hide, tt.wantShow, tt.wantHide)
		}
	}
}

func TestAnimatorShowRamp(t *testing.T) {
	a := NewAnimator()
	ev := a.Show()
	if ev != EventRepaint {
		t.Errorf("Show events = %b, want repaint only", ev)
	}
	if a.State() != StateShowing || !a.IsShowing() {
		t.Fatalf("state = %v, want showing", a.State())
	}
	if a.Transformation().Alpha != 0 {
		t.Errorf("alpha at start = %v, want 0", a.Transformation().Alpha)
	}

	ev = a.Update(100 * time.Millisecond)
	if ev != EventRepaint {
		t.Errorf("mid-ramp events = %b", ev)
	}
	assertNear(t, "mid progress", a.Progress(), 0.5)
	assertNear(t, "mid alpha", a.Transformation().Alpha, 0.5)

	ev = a.Update(100 * time.Millisecond)
	if !ev.Has(EventRepaint | EventShown) {
		t.Errorf("end events = %b, want repaint|shown", ev)
	}
	if a.State() != StateShown || a.Running() {
		t.Errorf("state = %v running = %v, want shown and idle", a.State(), a.Running())
	}
	if a.Update(time.Second) != 0 {
		t.Error("idle animator should report nothing")
	}
}

func TestAnimatorHideRamp(t *testing.T) {
	a := NewAnimator()
	a.SetEnabled(false)
	a.Show()
	a.SetEnabled(true)

	if ev := a.Hide(true); ev != EventRepaint {
		t.Errorf("Hide events = %b", ev)
	}
	if a.State() != StateHiding || !a.IsShowing() {
		t.Fatalf("state = %v, want hiding", a.State())
	}
	ev := a.Update(DefaultHideDuration)
	want := EventRepaint | EventHidden | EventNotifyHide
	if ev != want {
		t.Errorf("end events = %b, want %b", ev, want)
	}
	if a.State() != StateHidden || a.IsShowing() {
		t.Errorf("state = %v, want hidden", a.State())
	}
	if a.Progress() != 0 {
		t.Errorf("progress = %v, want 0", a.Progress())
	}
}

func TestAnimatorHide_WithoutNotify(t *testing.T) {
	a := NewAnimator()
	a.Show()
	a.Update(DefaultShowDuration)
	a.Hide(false)
	ev := a.Update(DefaultHideDuration)
	if ev.Has(EventNotifyHide) {
		t.Error("non-notifying hide reported notify")
	}
	if !ev.Has(EventHidden) {
		t.Error("expected hidden")
	}
}

func TestAnimatorHide_Idempotent(t *testing.T) {
	a := NewAnimator()
	if a.Hide(true) != 0 {
		t.Error("hiding a hidden animator should do nothing")
	}
	a.Show()
	a.Update(DefaultShowDuration)
	a.Hide(true)
	if a.Hide(false) != 0 {
		t.Error("second hide should do nothing")
	}
	// The first hide's notify flag survives the ignored second call.
	if ev := a.Update(DefaultHideDuration); !ev.Has(EventNotifyHide) {
		t.Errorf("events = %b, want notify", ev)
	}
}

func TestAnimatorHide_FromMidShow(t *testing.T) {
	a := NewAnimator()
	a.SetDurations(200*time.Millisecond, 100*time.Millisecond)
	a.Show()
	a.Update(100 * time.Millisecond)
	a.Hide(true)
	assertNear(t, "progress at hide start", a.Progress(), 0.5)
	a.Update(50 * time.Millisecond)
	assertNear(t, "progress mid hide", a.Progress(), 0.25)
}

func TestAnimatorShow_CancelsHide(t *testing.T) {
	a := NewAnimator()
	a.Show()
	a.Update(DefaultShowDuration)
	a.Hide(true)
	a.Update(50 * time.Millisecond)

	a.Show()
	if a.State() != StateShowing {
		t.Fatalf("state = %v, want showing", a.State())
	}
	ev := a.Update(DefaultShowDuration)
	if ev.Has(EventHidden) || ev.Has(EventNotifyHide) {
		t.Errorf("cancelled hide still completed: %b", ev)
	}
	if a.State() != StateShown {
		t.Errorf("state = %v, want shown", a.State())
	}
}

func TestAnimatorDisabled(t *testing.T) {
	a := NewAnimator()
	a.SetEnabled(false)

	if ev := a.Show(); ev != EventRepaint|EventShown {
		t.Errorf("Show events = %b", ev)
	}
	if a.State() != StateShown || a.Transformation().Alpha != 1 {
		t.Errorf("state = %v alpha = %v", a.State(), a.Transformation().Alpha)
	}
	if ev := a.Hide(true); ev != EventRepaint|EventHidden|EventNotifyHide {
		t.Errorf("Hide events = %b", ev)
	}
	if a.State() != StateHidden {
		t.Errorf("state = %v, want hidden", a.State())
	}
	if ev := a.Hide(true); ev != 0 {
		t.Errorf("second hide events = %b", ev)
	}
}

func TestAnimatorZeroDuration_CompletesInCall(t *testing.T) {
	t.Run("show", func(t *testing.T) {
		a := NewAnimator()
		a.SetDurations(0, 10*time.Millisecond)
		ev := a.Show()
		if !ev.Has(EventRepaint | EventShown) {
			t.Errorf("events = %b, want repaint and shown", ev)
		}
		if a.State() != StateShown || a.Progress() != 1 || a.Running() {
			t.Errorf("state = %v progress = %v running = %v", a.State(), a.Progress(), a.Running())
		}
		if a.Update(16*time.Millisecond) != 0 {
			t.Error("finished show ramp produced events")
		}
	})
	t.Run("hide", func(t *testing.T) {
		tests := []struct {
			notify bool
			want   AnimEvents
		}{
			{true, EventRepaint | EventHidden | EventNotifyHide},
			{false, EventRepaint | EventHidden},
		}
		for _, tt := range tests {
			a := NewAnimator()
			a.SetDurations(10*time.Millisecond, 0)
			a.Show()
			a.Update(20 * time.Millisecond)
			if ev := a.Hide(tt.notify); ev != tt.want {
				t.Errorf("notify %v: events = %b, want %b", tt.notify, ev, tt.want)
			}
			if a.State() != StateHidden || a.Progress() != 0 || a.Running() {
				t.Errorf("state = %v progress = %v running = %v", a.State(), a.Progress(), a.Running())
			}
		}
	})
}

func TestAnimatorReset(t *testing.T) {
	a := NewAnimator()
	a.Show()
	a.Update(50 * time.Millisecond)
	a.Reset()
	if a.State() != StateHidden || a.Running() {
		t.Errorf("state = %v running = %v", a.State(), a.Running())
	}
	if a.Update(time.Second) != 0 {
		t.Error("reset animator should be idle")
	}
}

func TestAnimatorEasing(t *testing.T) {
	a := NewAnimator()
	a.SetEasing(ease.InQuad)
	a.SetDurations(100*time.Millisecond, 50*time.Millisecond)
	a.Show()
	a.Update(50 * time.Millisecond)
	assertNearTol(t, "eased progress", a.Progress(), 0.25, 1e-5)

	a.SetEasing(nil)
	a.SetAnimation(nil)
	if _, ok := a.anim.(FadeAnimation); !ok {
		t.Errorf("nil animation restored %T, want FadeAnimation", a.anim)
	}
}

func TestPopAnimation(t *testing.T) {
	var tr Transformation
	b := R(100, 100, 200, 140)
	PopAnimation{From: 0.5}.Apply(0, b, &tr)
	if tr.Alpha != 0 {
		t.Errorf("alpha = %v, want 0", tr.Alpha)
	}
	// The center is fixed and the corner moves halfway in.
	x, y := tr.Apply(150, 120)
	assertNear(t, "center x", x, 150)
	assertNear(t, "center y", y, 120)
	x, y = tr.Apply(100, 100)
	assertNear(t, "corner x", x, 125)
	assertNear(t, "corner y", y, 110)

	PopAnimation{From: 0.5}.Apply(1, b, &tr)
	if !tr.IsIdentity() || tr.Alpha != 1 {
		t.Errorf("at 1 = %+v, want opaque identity", tr)
	}
}

func TestSlideAnimation(t *testing.T) {
	var tr Transformation
	SlideAnimation{DX: 0, DY: 8}.Apply(0.25, Rect{}, &tr)
	assertNear(t, "alpha", tr.Alpha, 0.25)
	x, y := tr.Apply(10, 10)
	assertNear(t, "x", x, 10)
	assertNear(t, "y", y, 16)
}

func TestTipAnimationFunc(t *testing.T) {
	var got float64
	f := TipAnimationFunc(func(p float64, _ Rect, tr *Transformation) {
		got = p
		tr.Alpha = 1 - p
	})
	var tr Transformation
	f.Apply(0.3, Rect{}, &tr)
	if got != 0.3 {
		t.Errorf("progress = %v", got)
	}
	assertNear(t, "alpha", tr.Alpha, 0.7)
}

func TestTipStateString(t *testing.T) {
	want := map[TipState]string{
		StateHidden:  "hidden",
		StateShowing: "showing",
		StateShown:   "shown",
		StateHiding:  "hiding",
		TipState(9):  "unknown",
	}
	for s, name := range want {
		if s.String() != name {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), name)
		}
	}
}
