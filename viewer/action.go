package viewer

import "github.com/aukilabs/go-tooling/pkg/errors"

// ErrTypeUnknownAction is the error type for an unrecognized action name.
const ErrTypeUnknownAction = "unknown_action"

// Action is a user command, triggered by a key, a test script or Inject.
type Action uint8

const (
	ActionSplit      Action = iota + 1 // split the next region, new camera on the far half
	ActionMerge                        // undo the latest split
	ActionToggleView                   // switch between viewports and bird's-eye
	ActionScreenshot                   // save the next frame as PNG
	ActionQuit                         // close the window
)

var actionNames = map[Action]string{
	ActionSplit:      "split",
	ActionMerge:      "merge",
	ActionToggleView: "toggle",
	ActionScreenshot: "screenshot",
	ActionQuit:       "quit",
}

// String returns the action name used in scripts and logs.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction returns the action named s.
func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}
	return 0, errors.New("unknown action").
		WithType(ErrTypeUnknownAction).
		WithTag("action", s)
}

// Inject queues actions. One queued action is applied per Update, ahead of
// keyboard input.
func (g *Game) Inject(actions ...Action) {
	g.queue = append(g.queue, actions...)
}

// Pending returns the number of queued actions.
func (g *Game) Pending() int {
	return len(g.queue)
}

// popAction removes and returns the oldest queued action.
func (g *Game) popAction() (Action, bool) {
	if len(g.queue) == 0 {
		return 0, false
	}
	a := g.queue[0]
	copy(g.queue, g.queue[1:])
	g.queue = g.queue[:len(g.queue)-1]
	return a, true
}
