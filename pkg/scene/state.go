package scene

// State is a Builder state.
type State int

// Builder states, in the order a successful Build visits them.
const (
	StateStart State = iota
	StateCheckingConnection
	StateFailed
	StateBuildingGround
	StateBuildingRing
	StateAddingLight
	StateSelectingFocus
	StateCapturingScreenshot
	StateTearingDown
	StateDone
)

var stateNames = map[State]string{
	StateStart:               "start",
	StateCheckingConnection:  "checking-connection",
	StateFailed:              "failed",
	StateBuildingGround:      "building-ground",
	StateBuildingRing:        "building-ring",
	StateAddingLight:         "adding-light",
	StateSelectingFocus:      "selecting-focus",
	StateCapturingScreenshot: "capturing-screenshot",
	StateTearingDown:         "tearing-down",
	StateDone:                "done",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StateFailed || s == StateDone
}

// MarshalText renders the state name in JSON reports.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
