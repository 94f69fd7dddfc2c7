package config

import (
	"os"

	"fastcat.org/go/matchpick/instance"
	"fastcat.org/go/matchpick/matchcase"
)

// Settings are the user defaults for the filter. Command line flags override
// them.
type Settings struct {
	// Enter opens a match block and labels its cases.
	Enter string `yaml:"enter" validate:"required,nefield=Exit"`
	// Exit closes a match block.
	Exit string `yaml:"exit" validate:"required"`
	// Ignore marks lines that are never delimiters.
	Ignore string `yaml:"ignore,omitempty" validate:"omitempty,nefield=Enter,nefield=Exit"`
	// Match is the default set of case labels to select.
	Match []string `yaml:"match,omitempty" validate:"dive,required,label"`
}

func Defaults() Settings {
	return Settings{
		Enter: matchcase.DefaultEnter,
		Exit:  matchcase.DefaultExit,
	}
}

// Options converts the settings for use with matchcase.
func (s Settings) Options() matchcase.Options {
	return matchcase.Options{
		Targets: s.Match,
		Enter:   s.Enter,
		Exit:    s.Exit,
		Ignore:  s.Ignore,
	}
}

// Path is where the settings file lives unless overridden.
func Path() string {
	return os.ExpandEnv("${HOME}/.config/" + instance.AppName + ".yaml")
}
