package matchcase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	enterPat  = "~>>>"
	exitPat   = "~<<<"
	ignorePat = "###"

	scenario = `start
~>>>
default
~>>> eggs
foo
~>>> spam ###
bar
~>>> baz second
foobar
~<<<
end`

	outputDefault   = "start\ndefault\nend"
	outputEggs      = "start\nfoo\nend"
	outputEggsSpam  = "start\nfoo\n~>>> spam ###\nbar\nend"
	outputSpam      = "start\nbar\nend"
	outputBazSecond = "start\nfoobar\nend"
)

func TestProcess(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		targets []string
		ignore  string
		want    string
	}{
		{"default", nil, ignorePat, outputDefault},
		{"default without ignore", nil, "", outputDefault},
		{"eggs", []string{"eggs"}, "", outputEggs},
		{"eggs ignoring spam label", []string{"eggs"}, ignorePat, outputEggsSpam},
		{"spam", []string{"spam"}, "", outputSpam},
		{"spam ignored", []string{"spam"}, ignorePat, outputDefault},
		{"baz", []string{"baz"}, ignorePat, outputBazSecond},
		{"second", []string{"second"}, ignorePat, outputBazSecond},
		{"unknown", []string{"something_else_that_will_not_trigger_any_case"}, ignorePat, outputDefault},
		{"first match wins", []string{"second", "eggs"}, ignorePat, outputEggsSpam},
		{"any of several targets", []string{"nope", "baz"}, ignorePat, outputBazSecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Process(scenario, Options{
				Targets: tt.targets,
				Enter:   enterPat,
				Exit:    exitPat,
				Ignore:  tt.ignore,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProcess_Lines(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		in      string
		targets []string
		want    string
	}{
		{"empty", "", nil, ""},
		{"trailing newline dropped", "a\nb\n", nil, "a\nb"},
		{"crlf", "a\r\n~>>>\r\nx\r\n~>>> y\r\nz\r\n~<<<\r\nb\r\n", []string{"y"}, "a\nz\nb"},
		{"blank line kept", "a\n\nb", nil, "a\n\nb"},
		{"final lone cr kept", "a\r", nil, "a\r"},
		{
			name: "empty default still emits a line",
			in:   "a\n~>>>\n~>>> x\nx\n~<<<\nb",
			want: "a\n\nb",
		},
		{
			name:    "empty default on fallback",
			in:      "a\n~>>>\n~>>> x\nx\n~<<<\nb",
			targets: []string{"y"},
			want:    "a\n\nb",
		},
		{
			name: "multi-line default",
			in:   "~>>>\nd1\nd2\n~>>> x\nx\n~<<<",
			want: "d1\nd2",
		},
		{
			name:    "two blocks",
			in:      "~>>>\nd1\n~>>> x\nx1\n~<<<\nmid\n~>>>\nd2\n~>>> y\ny2\n~<<<",
			targets: []string{"y"},
			want:    "d1\nmid\ny2",
		},
		{
			name:    "default buffer cleared between blocks",
			in:      "~>>>\nd1\n~>>> x\nx1\n~<<<\n~>>>\nd2\n~>>> x\nx2\n~<<<",
			targets: []string{"z"},
			want:    "d1\nd2",
		},
		{
			name:    "unterminated block dropped",
			in:      "a\n~>>>\nd\n~>>> x\nx",
			targets: []string{"y"},
			want:    "a",
		},
		{
			name:    "unterminated selected case kept",
			in:      "a\n~>>>\nd\n~>>> x\nx",
			targets: []string{"x"},
			want:    "a\nx",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Process(tt.in, Options{Targets: tt.targets})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProcess_Idempotent(t *testing.T) {
	t.Parallel()
	once, err := Process(scenario, Options{Targets: []string{"eggs"}})
	require.NoError(t, err)
	twice, err := Process(once, Options{Targets: []string{"eggs"}})
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestProcess_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		in      string
		targets []string
		line    int
		want    error
		msg     string
	}{
		{
			name: "switch outside match",
			in:   "a\n~>>> x",
			line: 2,
			want: ErrNeedDefault,
			msg:  "cannot start new case: need default first",
		},
		{
			name: "exit outside match",
			in:   "~<<<",
			line: 1,
			want: ErrNotInMatch,
			msg:  "cannot end match: not in match",
		},
		{
			name: "enter in default",
			in:   "~>>>\nd\n~>>>",
			line: 3,
			want: ErrEnterInDefault,
			msg:  "cannot start new match: in default of previous match",
		},
		{
			name: "exit in default",
			in:   "~>>>\nd\n~<<<",
			line: 3,
			want: ErrNoAlternatives,
			msg:  "ended match without alternatives",
		},
		{
			name:    "enter in other case",
			in:      "~>>>\n~>>> x\n~>>>",
			targets: []string{"y"},
			line:    3,
			want:    ErrEnterInSwitch,
			msg:     "cannot start new match: switching previous match",
		},
		{
			name:    "enter in matched case",
			in:      "~>>>\n~>>> x\n~>>>",
			targets: []string{"x"},
			line:    3,
			want:    ErrEnterInMatched,
			msg:     "cannot start new match: in matched case of previous match",
		},
		{
			name: "enter when done",
			in:   "~>>>\n~>>> x\n\n~>>>",
			line: 4,
			want: ErrEnterWithoutEnd,
			msg:  "cannot start new match: no exit of previous match",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Process(tt.in, Options{Targets: tt.targets})
			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, tt.want)
			var le *LineError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.line, le.Line)
			assert.EqualError(t, le.Err, tt.msg)
			assert.Equal(t, fmt.Sprintf("parse failed at line %d: %s", tt.line, tt.msg), err.Error())
		})
	}
}

func TestMatcher_States(t *testing.T) {
	t.Parallel()
	m := New(Options{Targets: []string{"b"}})
	steps := []struct {
		line  string
		state State
		out   string
		ok    bool
	}{
		{"before", StateNormal, "before", true},
		{"~>>>", StateDefault, "", false},
		{"dflt", StateDefault, "", false},
		{"~>>> a", StateOther, "", false},
		{"in a", StateOther, "", false},
		{"~>>> b", StateMatched, "", false},
		{"in b", StateMatched, "in b", true},
		{"~>>> c", StateDone, "", false},
		{"in c", StateDone, "", false},
		{"~>>> b", StateDone, "", false},
		{"~<<<", StateNormal, "", false},
		{"after", StateNormal, "after", true},
	}
	for _, s := range steps {
		out, ok, err := m.CheckLine(s.line)
		require.NoError(t, err, s.line)
		assert.Equal(t, s.state, m.State(), s.line)
		assert.Equal(t, s.ok, ok, s.line)
		assert.Equal(t, s.out, out, s.line)
	}
}

func TestMatcher_DefaultFlushedOnSwitch(t *testing.T) {
	t.Parallel()
	m := New(Options{})
	for _, l := range []string{"~>>>", "d1", "d2"} {
		_, ok, err := m.CheckLine(l)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	out, ok, err := m.CheckLine("~>>> x")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "d1\nd2", out)
	assert.Equal(t, StateDone, m.State())
}

func TestTransitionError_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "default", StateDefault.String())
	assert.Equal(t, "switch", KindSwitch.String())
	assert.EqualError(t,
		TransitionError{From: State(42), Event: KindExit},
		"invalid exit line in state invalid")
}
