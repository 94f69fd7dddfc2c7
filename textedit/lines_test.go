package textedit

import (
	"errors"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "a", []string{"a"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"only newline", "\n", []string{""}},
		{"blank lines", "a\n\n\nb", []string{"a", "", "", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr kept", "a\rb", []string{"a\rb"}},
		{"final lone cr", "a\r", []string{"a\r"}},
		{"cr before final newline", "a\r\n", []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, slices.Collect(Lines(tt.in)))
		})
	}
}

// upper is a trivial editor: it upper-cases every line, drops "skip" lines
// and fails on "fail".
type upper struct{ eof []string }

func (u *upper) Next(line string) (iter.Seq[string], error) {
	switch line {
	case "skip":
		return Empty(), nil
	case "fail":
		return nil, errors.New("failed")
	}
	return Each(strings.ToUpper(line)), nil
}

func (u *upper) EOF() (iter.Seq[string], error) {
	return Each(u.eof...), nil
}

func TestApply(t *testing.T) {
	t.Parallel()
	got, err := Apply(Lines("a\nskip\nb\n"), &upper{eof: []string{"end"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "end"}, got)

	got, err = Apply(Lines("a\nfail\nb"), &upper{})
	assert.EqualError(t, err, "failed")
	assert.Nil(t, got)
}

func TestEdit(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	require.NoError(t, Edit(strings.NewReader("a\r\nskip\nb"), &out, &upper{eof: []string{"x\ny"}}))
	assert.Equal(t, "A\nB\nx\ny\n", out.String())
}

func TestEdit_LongLine(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", 1<<20)
	var out strings.Builder
	require.NoError(t, Edit(strings.NewReader(long+"\n"), &out, &upper{}))
	assert.Equal(t, strings.ToUpper(long)+"\n", out.String())
}
