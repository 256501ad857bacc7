package domain

// State is a step of the build dispatch state machine.
type State uint8

const (
	// StateIdle is the state before a request is supplied.
	StateIdle State = iota
	// StateTargetSelected means a request has been accepted and the active target is being prepared.
	StateTargetSelected
	// StateOptionsResolved means the final build options are known.
	StateOptionsResolved
	// StatePreProcessed means the pre-process hook has run.
	StatePreProcessed
	// StateBuilt means the external build call succeeded.
	StateBuilt
	// StatePostProcessed means the post-process hook has run.
	StatePostProcessed
	// StatePackaged is the terminal success state.
	StatePackaged
	// StateFailed is the terminal failure state.
	StateFailed
)

var stateNames = [...]string{
	StateIdle:            "idle",
	StateTargetSelected:  "target-selected",
	StateOptionsResolved: "options-resolved",
	StatePreProcessed:    "pre-processed",
	StateBuilt:           "built",
	StatePostProcessed:   "post-processed",
	StatePackaged:        "packaged",
	StateFailed:          "failed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// IsTerminal reports whether no further transition can leave s.
func (s State) IsTerminal() bool {
	return s == StatePackaged || s == StateFailed
}
