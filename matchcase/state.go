package matchcase

// State is the position of a [Matcher] relative to the current match block.
type State int

const (
	// StateNormal is outside any match block.
	StateNormal State = iota
	// StateDefault is inside a block before its first case label, buffering
	// the default case.
	StateDefault
	// StateMatched is inside the selected case.
	StateMatched
	// StateOther is inside a case that was not selected, before any case was.
	StateOther
	// StateDone means the block's output is decided; the rest of it is skipped
	// up to the exit line.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateDefault:
		return "default"
	case StateMatched:
		return "matched"
	case StateOther:
		return "other"
	case StateDone:
		return "done"
	default:
		return "invalid"
	}
}
