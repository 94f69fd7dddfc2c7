// Package matchcase selects one variant out of switch/case shaped blocks in a
// text.
//
// A match block opens with a line containing the enter pattern and nothing
// after it, and closes with a line containing the exit pattern. Lines between
// the opening line and the first case label form the default case. A case
// label is a line containing the enter pattern followed by one or more
// whitespace separated labels:
//
//	start
//	~>>>
//	default
//	~>>> eggs
//	foo
//	~>>> baz second
//	foobar
//	~<<<
//	end
//
// Selecting "eggs" yields "start", "foo", "end"; selecting nothing, or a label
// no case carries, yields the default "start", "default", "end". Delimiter
// and label lines never reach the output. Lines containing the ignore pattern,
// if one is set, are always treated as content.
//
// The default case cannot be emitted until the machine knows no other case
// will be chosen, so it is buffered and written out as one element at that
// point.
package matchcase
