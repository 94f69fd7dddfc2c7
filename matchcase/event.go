package matchcase

import "strings"

// EventKind is the kind of a structural line.
type EventKind int

const (
	KindEnter EventKind = iota
	KindSwitch
	KindExit
)

func (k EventKind) String() string {
	switch k {
	case KindEnter:
		return "enter"
	case KindSwitch:
		return "switch"
	case KindExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Event is a structural line found by a [Classifier]. The only
// implementations are [Enter], [Switch] and [Exit].
type Event interface {
	Kind() EventKind
	event()
}

// Enter opens a new match block.
type Enter struct{}

// Switch starts a new case labelled with Labels.
type Switch struct {
	Labels []string
}

// Exit closes the current match block.
type Exit struct{}

func (Enter) Kind() EventKind  { return KindEnter }
func (Switch) Kind() EventKind { return KindSwitch }
func (Exit) Kind() EventKind   { return KindExit }

func (Enter) event()  {}
func (Switch) event() {}
func (Exit) event()   {}

// Classifier decides whether a line is structural. Patterns are matched as
// literal substrings. An empty Ignore disables the ignore check.
type Classifier struct {
	Enter, Exit, Ignore string
}

// Classify returns the event for line, or nil for a content line. The enter
// pattern takes priority over the exit pattern.
func (c Classifier) Classify(line string) Event {
	if c.Ignore != "" && strings.Contains(line, c.Ignore) {
		return nil
	}
	if _, labels, ok := strings.Cut(line, c.Enter); ok {
		labels = strings.TrimSpace(labels)
		if labels == "" {
			return Enter{}
		}
		return Switch{Labels: strings.Fields(labels)}
	}
	if strings.Contains(line, c.Exit) {
		return Exit{}
	}
	return nil
}
