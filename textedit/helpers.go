package textedit

import "iter"

// Empty is the output of an editor step that emits nothing.
func Empty() iter.Seq[string] {
	return func(func(string) bool) {}
}

// Each emits the given values in order.
func Each(v ...string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range v {
			if !yield(e) {
				break
			}
		}
	}
}
