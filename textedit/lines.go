package textedit

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// maxLineSize bounds a single input line. bufio.Scanner's default of 64KiB is
// too small for generated text.
const maxLineSize = 16 << 20

// Lines splits text into lines without their terminators. A trailing newline
// does not produce a final empty line, and a "\r" before a "\n" is dropped, so
// "a\r\nb\n" yields "a", "b". A "\r" not followed by "\n" is kept.
func Lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for l := range strings.Lines(text) {
			if trimmed, ok := strings.CutSuffix(l, "\n"); ok {
				l = strings.TrimSuffix(trimmed, "\r")
			}
			if !yield(l) {
				return
			}
		}
	}
}

func newScanner(in io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}

// Apply runs editor over lines and collects every output element in order. It
// stops at the first error and returns no output in that case.
func Apply(lines iter.Seq[string], editor Editor) ([]string, error) {
	var result []string
	for line := range lines {
		output, err := editor.Next(line)
		if err != nil {
			return nil, err
		}
		for o := range output {
			result = append(result, o)
		}
	}
	output, err := editor.EOF()
	if err != nil {
		return nil, err
	}
	for o := range output {
		result = append(result, o)
	}
	return result, nil
}
