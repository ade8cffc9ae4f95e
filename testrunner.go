package tipview

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action    string  `json:"action"`
	Label     string  `json:"label,omitempty"`
	Anchor    string  `json:"anchor,omitempty"`
	Rect      []int   `json:"rect,omitempty"`
	Text      string  `json:"text,omitempty"`
	Direction string  `json:"direction,omitempty"`
	Advanced  bool    `json:"advanced,omitempty"`
	Showing   *bool   `json:"showing,omitempty"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	FromX     float64 `json:"fromX,omitempty"`
	FromY     float64 `json:"fromY,omitempty"`
	ToX       float64 `json:"toX,omitempty"`
	ToY       float64 `json:"toY,omitempty"`
	Frames    int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences tip operations, injected input and screenshots
// across frames for automated visual testing. Anchors are named in the
// script and created on first use.
//
// Supported actions: show, hide, remove, expect, click, drag, wait,
// screenshot.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	anchors   map[string]*StaticAnchor
	failures  []string
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to an Overlay via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("tipview: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("tipview: parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("tipview: parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps, anchors: make(map[string]*StaticAnchor)}, nil
}

func (st *testStep) validate() error {
	switch st.Action {
	case "show":
		if st.Anchor == "" {
			return fmt.Errorf("show needs an anchor")
		}
		if len(st.Rect) != 0 && len(st.Rect) != 4 {
			return fmt.Errorf("rect needs 4 values, got %d", len(st.Rect))
		}
		if st.Direction != "" {
			if _, err := ParseDirection(st.Direction); err != nil {
				return err
			}
		}
	case "hide", "remove":
		if st.Anchor == "" {
			return fmt.Errorf("%s needs an anchor", st.Action)
		}
	case "expect":
		if st.Anchor == "" || st.Showing == nil {
			return fmt.Errorf("expect needs an anchor and showing")
		}
	case "click", "drag", "wait", "screenshot":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the messages of failed expect steps.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// Anchor returns the anchor created for name, or nil.
func (r *TestRunner) Anchor(name string) *StaticAnchor {
	return r.anchors[name]
}

func (r *TestRunner) anchor(name string, rect []int) *StaticAnchor {
	a, ok := r.anchors[name]
	if !ok {
		a = NewStaticAnchor(Rect{})
		r.anchors[name] = a
	}
	if len(rect) == 4 {
		a.SetRect(R(rect[0], rect[1], rect[2], rect[3]))
	}
	return a
}

// step advances the test runner by one frame.
func (r *TestRunner) step(o *Overlay) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(o.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "show":
		a := r.anchor(st.Anchor, st.Rect)
		dir := DirectionNone
		if st.Direction != "" {
			dir, _ = ParseDirection(st.Direction)
		}
		if st.Advanced {
			o.ShowAdvanced(a, st.Text, nil, dir)
		} else {
			o.Show(a, st.Text, dir)
		}
	case "hide":
		o.Hide(r.anchor(st.Anchor, nil))
	case "remove":
		o.Remove(r.anchor(st.Anchor, nil))
	case "expect":
		got := o.IsShowing(r.anchor(st.Anchor, nil))
		if got != *st.Showing {
			r.failures = append(r.failures,
				fmt.Sprintf("step %d: %s showing = %v, want %v", r.cursor-1, st.Anchor, got, *st.Showing))
		}
	case "screenshot":
		o.Screenshot(st.Label)
	case "click":
		o.InjectClick(st.X, st.Y)
	case "drag":
		o.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(o.injectQueue) == 0 {
		r.done = true
	}
}
