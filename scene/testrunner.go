package scene

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Planet *int    `json:"planet,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Count  int     `json:"count,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// scriptTarget is what a TestRunner drives.
type scriptTarget interface {
	InjectClick(x, y float64)
	InjectWheel(dy float64)
	Screenshot(label string)
	PendingInput() int
	// PlanetAt locates planet i on the landing page.
	PlanetAt(i int) (x, y float64, ok bool)
}

// TestRunner sequences injected input events and screenshots across frames
// for automated visual testing. Attach to a Game via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

var validActions = map[string]bool{
	"screenshot": true,
	"click":      true,
	"wheel":      true,
	"wait":       true,
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Game via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !validActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Game.Update.
func (r *TestRunner) step(t scriptTarget) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if t.PendingInput() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		t.Screenshot(st.Label)
	case "click":
		x, y := st.X, st.Y
		if st.Planet != nil {
			if px, py, ok := t.PlanetAt(*st.Planet); ok {
				x, y = px, py
			}
		}
		t.InjectClick(x, y)
	case "wheel":
		dy := st.DY
		if dy == 0 {
			dy = -1
		}
		n := max(st.Count, 1)
		for i := 0; i < n; i++ {
			t.InjectWheel(dy)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && t.PendingInput() == 0 {
		r.done = true
	}
}
