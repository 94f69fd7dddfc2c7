package matchcase

import (
	"fmt"
	"iter"
	"strings"

	"fastcat.org/go/matchpick/textedit"
)

// Default delimiters.
const (
	DefaultEnter = "~>>>"
	DefaultExit  = "~<<<"
)

// Options configure a [Matcher].
type Options struct {
	// Targets are the case labels to select. Empty selects the default case.
	Targets []string
	// Enter and Exit are the block delimiters, DefaultEnter and DefaultExit
	// when empty.
	Enter, Exit string
	// Ignore, if not empty, marks lines that are never structural.
	Ignore string
}

func (o Options) classifier() Classifier {
	c := Classifier{Enter: o.Enter, Exit: o.Exit, Ignore: o.Ignore}
	if c.Enter == "" {
		c.Enter = DefaultEnter
	}
	if c.Exit == "" {
		c.Exit = DefaultExit
	}
	return c
}

// Matcher is the match-case state machine. It consumes lines strictly in order
// and must not be used concurrently. It also implements [textedit.Editor];
// used that way it is stateful and can only be used once.
type Matcher struct {
	cls      Classifier
	targets  map[string]struct{}
	defaults []string
	state    State
	line     int
}

var _ textedit.Editor = (*Matcher)(nil)

func New(opts Options) *Matcher {
	targets := make(map[string]struct{}, len(opts.Targets))
	for _, t := range opts.Targets {
		targets[t] = struct{}{}
	}
	return &Matcher{
		cls:     opts.classifier(),
		targets: targets,
	}
}

// State returns the current state.
func (m *Matcher) State() State { return m.state }

// CheckLine feeds one line to the machine. If ok is true, out must be emitted;
// out may hold several lines joined with "\n" when the buffered default case
// is released, and may be empty when that case had no lines.
func (m *Matcher) CheckLine(line string) (out string, ok bool, err error) {
	ev := m.cls.Classify(line)
	if ev == nil {
		out, ok = m.content(line)
		return out, ok, nil
	}
	return m.transition(ev)
}

func (m *Matcher) content(line string) (string, bool) {
	switch m.state {
	case StateNormal, StateMatched:
		return line, true
	case StateDefault:
		m.defaults = append(m.defaults, line)
		return "", false
	case StateOther, StateDone:
		return "", false
	default:
		panic(fmt.Errorf("matchcase: invalid state %d", m.state))
	}
}

func (m *Matcher) transition(ev Event) (out string, ok bool, err error) {
	switch ev := ev.(type) {
	case Enter:
		if m.state != StateNormal {
			return "", false, TransitionError{From: m.state, Event: KindEnter}
		}
		m.state = StateDefault
		return "", false, nil

	case Switch:
		switch m.state {
		case StateNormal:
			return "", false, ErrNeedDefault
		case StateDefault, StateOther:
			switch {
			case len(m.targets) == 0:
				// the default case was requested, and it is complete now
				m.state = StateDone
				return m.flush(), true, nil
			case m.selects(ev.Labels):
				m.state = StateMatched
			default:
				m.state = StateOther
			}
			return "", false, nil
		case StateMatched, StateDone:
			m.state = StateDone
			return "", false, nil
		}

	case Exit:
		switch m.state {
		case StateNormal:
			return "", false, ErrNotInMatch
		case StateDefault:
			return "", false, ErrNoAlternatives
		case StateMatched, StateDone:
			m.defaults = m.defaults[:0]
			m.state = StateNormal
			return "", false, nil
		case StateOther:
			// no case matched, fall back to the default
			out = m.flush()
			m.defaults = m.defaults[:0]
			m.state = StateNormal
			return out, true, nil
		}
	}
	panic(fmt.Errorf("matchcase: unhandled %T in state %s", ev, m.state))
}

func (m *Matcher) selects(labels []string) bool {
	for _, l := range labels {
		if _, ok := m.targets[l]; ok {
			return true
		}
	}
	return false
}

func (m *Matcher) flush() string {
	return strings.Join(m.defaults, "\n")
}

// Next implements textedit.Editor. Errors are wrapped in a [*LineError].
func (m *Matcher) Next(line string) (iter.Seq[string], error) {
	m.line++
	out, ok, err := m.CheckLine(line)
	if err != nil {
		return nil, &LineError{Line: m.line, Err: err}
	}
	if !ok {
		return textedit.Empty(), nil
	}
	return textedit.Each(out), nil
}

// EOF implements textedit.Editor. A block still open at the end of the input
// is dropped without error.
func (m *Matcher) EOF() (iter.Seq[string], error) {
	return textedit.Empty(), nil
}
