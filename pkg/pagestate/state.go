package pagestate

import "fmt"

// State is one of the mutually exclusive page states.
type State int

const (
	// Content shows the wrapped view.
	Content State = iota
	// Loading shows the loading view and runs its spinner.
	Loading
	// Error shows the error view.
	Error
	// Empty shows the empty-data view.
	Empty
	// NoNetwork shows the no-network view.
	NoNetwork
	// Custom shows the caller-supplied custom view.
	Custom

	numStates
)

// States lists every state in declaration order.
var States = []State{Content, Loading, Error, Empty, NoNetwork, Custom}

func (s State) String() string {
	switch s {
	case Content:
		return "content"
	case Loading:
		return "loading"
	case Error:
		return "error"
	case Empty:
		return "empty"
	case NoNetwork:
		return "no_network"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Valid reports whether s is one of the six states.
func (s State) Valid() bool {
	return s >= Content && s < numStates
}

// ParseState returns the state named by String.
func ParseState(name string) (State, error) {
	for _, s := range States {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown state %q", name)
}
