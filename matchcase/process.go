package matchcase

import (
	"strings"

	"fastcat.org/go/matchpick/textedit"
)

// Process runs text through a fresh [Matcher] and joins the surviving lines
// with "\n", without a trailing newline. On failure nothing is returned and
// the error is a [*LineError] naming the offending line.
func Process(text string, opts Options) (string, error) {
	out, err := textedit.Apply(textedit.Lines(text), New(opts))
	if err != nil {
		return "", err
	}
	return strings.Join(out, "\n"), nil
}

// Block describes one match block found by [Outline]. Line numbers are
// 1-based.
type Block struct {
	Start int
	// End is 0 if the input ended before the block was closed.
	End int
	// Default is the number of lines in the default case.
	Default int
	Cases   []Case
}

// Case is one labelled alternative of a [Block].
type Case struct {
	Line   int
	Labels []string
	// Lines is the number of body lines.
	Lines int
	// Selected is set on the case the targets select, if any.
	Selected bool
}

// UsesDefault reports whether the default case is emitted for this block.
func (b Block) UsesDefault() bool {
	for _, c := range b.Cases {
		if c.Selected {
			return false
		}
	}
	return true
}

// Outline validates text the same way [Process] does and describes its match
// blocks.
func Outline(text string, opts Options) ([]Block, error) {
	m := New(opts)
	var (
		blocks []Block
		cur    *Block
		lno    int
	)
	for line := range textedit.Lines(text) {
		lno++
		ev := m.cls.Classify(line)
		if _, _, err := m.CheckLine(line); err != nil {
			return nil, &LineError{Line: lno, Err: err}
		}
		switch ev := ev.(type) {
		case nil:
			if cur == nil {
				continue
			}
			if n := len(cur.Cases); n > 0 {
				cur.Cases[n-1].Lines++
			} else {
				cur.Default++
			}
		case Enter:
			cur = &Block{Start: lno}
		case Switch:
			cur.Cases = append(cur.Cases, Case{
				Line:     lno,
				Labels:   ev.Labels,
				Selected: m.State() == StateMatched,
			})
		case Exit:
			cur.End = lno
			blocks = append(blocks, *cur)
			cur = nil
		}
	}
	if cur != nil {
		blocks = append(blocks, *cur)
	}
	return blocks, nil
}
