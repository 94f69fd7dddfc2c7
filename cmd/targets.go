package cmd

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// targetsValue is the set of case labels given with --match, one label per
// flag. Labels are taken verbatim, so "a,b" selects a case labelled "a,b".
type targetsValue []string

// Set implements pflag.Value.
func (t *targetsValue) Set(value string) error {
	label := strings.TrimSpace(value)
	if label == "" {
		return nil
	}
	if strings.ContainsFunc(label, unicode.IsSpace) {
		return fmt.Errorf("label %q must not contain whitespace", label)
	}
	if !slices.Contains(*t, label) {
		*t = append(*t, label)
	}
	return nil
}

// String implements pflag.Value.
func (t *targetsValue) String() string {
	return strings.Join(*t, ",")
}

// Type implements pflag.Value.
func (t *targetsValue) Type() string {
	return "labels"
}
