package matchcase

import "fmt"

// TransitionError reports a structural line that is not allowed in the
// current state. Values are comparable, so errors.Is works against the
// exported Err* values.
type TransitionError struct {
	From  State
	Event EventKind
}

var (
	ErrNeedDefault     = TransitionError{StateNormal, KindSwitch}
	ErrNotInMatch      = TransitionError{StateNormal, KindExit}
	ErrEnterInDefault  = TransitionError{StateDefault, KindEnter}
	ErrNoAlternatives  = TransitionError{StateDefault, KindExit}
	ErrEnterInSwitch   = TransitionError{StateOther, KindEnter}
	ErrEnterInMatched  = TransitionError{StateMatched, KindEnter}
	ErrEnterWithoutEnd = TransitionError{StateDone, KindEnter}
)

func (e TransitionError) Error() string {
	switch e {
	case ErrNeedDefault:
		return "cannot start new case: need default first"
	case ErrNotInMatch:
		return "cannot end match: not in match"
	case ErrEnterInDefault:
		return "cannot start new match: in default of previous match"
	case ErrNoAlternatives:
		return "ended match without alternatives"
	case ErrEnterInSwitch:
		return "cannot start new match: switching previous match"
	case ErrEnterInMatched:
		return "cannot start new match: in matched case of previous match"
	case ErrEnterWithoutEnd:
		return "cannot start new match: no exit of previous match"
	default:
		return fmt.Sprintf("invalid %s line in state %s", e.Event, e.From)
	}
}

// LineError attaches the 1-based input line number to an error.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("parse failed at line %d: %s", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
