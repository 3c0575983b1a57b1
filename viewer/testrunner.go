package viewer

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/segmentio/encoding/json"
)

// ErrTypeInvalidScript is the error type for scripts that fail to load.
const ErrTypeInvalidScript = "invalid_script"

// testStep is one entry of a test script. Count repeats split, merge and
// toggle steps; Frames is the length of a wait.
type testStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Count  int    `json:"count,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner plays a scripted sequence of actions, waits and screenshots
// across frames. Attach it with Game.SetTestRunner.
//
//	{"steps": [
//	  {"action": "split", "count": 3},
//	  {"action": "wait", "frames": 30},
//	  {"action": "screenshot", "label": "three-splits"},
//	  {"action": "quit"}
//	]}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, errors.New("parsing test script failed").
			WithType(ErrTypeInvalidScript).
			Wrap(err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("test script has no steps").
			WithType(ErrTypeInvalidScript)
	}
	for i, st := range script.Steps {
		if st.Action == "wait" {
			continue
		}
		if _, err := ParseAction(st.Action); err != nil {
			return nil, errors.New("invalid test step").
				WithType(ErrTypeInvalidScript).
				WithTag("step", i).
				Wrap(err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner; it advances at the start of every Update.
func (g *Game) SetTestRunner(r *TestRunner) {
	g.runner = r
}

// Done reports whether every step has run.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	// Let queued actions drain before advancing.
	if g.Pending() > 0 {
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
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		g.Screenshot(st.Label)
	default:
		a, err := ParseAction(st.Action)
		if err != nil {
			break
		}
		for i := 0; i < max(st.Count, 1); i++ {
			g.Inject(a)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && g.Pending() == 0 {
		r.done = true
	}
}
