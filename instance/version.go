package instance

import (
	"runtime/debug"
	"strings"
	"sync"
)

var version = sync.OnceValue(loadVersion)

// Version is the module version of the running binary, with the short VCS
// revision appended when the build recorded one.
func Version() string {
	return version()
}

func loadVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "0.0.0-development+unknown"
	}
	return formatVersion(bi.Main.Version, bi.Settings)
}

func formatVersion(v string, settings []debug.BuildSetting) string {
	if v == "" || v == "(devel)" {
		v = "0.0.0-development"
	}
	var rev string
	for _, s := range settings {
		if s.Key == "vcs.revision" {
			rev = s.Value
		}
	}
	if rev == "" {
		return v
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	// go revisions often contain the git hash already
	if strings.Contains(v, rev) {
		return v
	}
	return v + "+" + rev
}
