package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fastcat.org/go/matchpick/config"
	"fastcat.org/go/matchpick/instance"
	"fastcat.org/go/matchpick/matchcase"
)

// app holds the flags shared by all commands and the state derived from them
// before a command runs.
type app struct {
	targets    targetsValue
	enter      string
	exit       string
	ignore     string
	configPath string
	verbose    bool

	log  *slog.Logger
	file *config.File
}

func (a *app) addFlags(fs *pflag.FlagSet) {
	fs.VarP(&a.targets, "match", "m",
		"case label to select, repeat to select any of several (default: the default case)")
	fs.StringVarP(&a.enter, "start-pattern", "s", matchcase.DefaultEnter,
		"pattern to start matching and switch cases")
	fs.StringVarP(&a.exit, "end-pattern", "e", matchcase.DefaultExit,
		"pattern to end matching")
	fs.StringVar(&a.ignore, "ignore-pattern", "",
		"lines containing this pattern are never treated as delimiters")
	fs.StringVar(&a.configPath, "config", "",
		"settings file (default "+config.Path()+")")
	fs.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
}

// setup runs before any command: it creates the logger and loads the settings
// file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.log = newLogger(cmd.ErrOrStderr(), a.verbose)
	path := a.configPath
	if path == "" {
		path = config.Path()
	}
	f, err := config.Load(path)
	if err != nil {
		return err
	}
	a.log.Debug("settings", "path", f.Path, "exists", f.Exists)
	a.file = f
	return nil
}

// settings merges explicitly given flags over the settings file and validates
// the result.
func (a *app) settings(cmd *cobra.Command) (config.Settings, error) {
	s := a.merged(cmd)
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (a *app) merged(cmd *cobra.Command) config.Settings {
	s := a.file.Settings
	fs := cmd.Flags()
	if fs.Changed("start-pattern") {
		s.Enter = a.enter
	}
	if fs.Changed("end-pattern") {
		s.Exit = a.exit
	}
	if fs.Changed("ignore-pattern") {
		s.Ignore = a.ignore
	}
	if fs.Changed("match") {
		s.Match = a.targets
	}
	return s
}

func Root() *cobra.Command {
	a := &app{}
	var opts filterOptions
	root := &cobra.Command{
		Use:   instance.AppName + " [file...]",
		Short: "Find and replace multi-lines using a match-case",
		Long: fmt.Sprintf(`Select one case out of every match block in the input.

A match block starts with a line containing the start pattern (%[1]s) and
ends with a line containing the end pattern (%[2]s). Lines up to the first
case label are the default case. A case label is the start pattern followed
by one or more labels:

    %[1]s
    default text
    %[1]s linux darwin
    unix text
    %[1]s windows
    windows text
    %[2]s

Input is read from the file argument or stdin. Without --match, or when no
case carries a requested label, the default case is kept.`,
			matchcase.DefaultEnter, matchcase.DefaultExit),
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           instance.Version(),
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.filter(cmd, args, opts)
		},
	}
	a.addFlags(root.PersistentFlags())
	opts.addFlags(root.Flags())
	root.MarkFlagsMutuallyExclusive("output", "in-place")
	root.MarkFlagsMutuallyExclusive("print-start", "print-end")
	root.MarkFlagsMutuallyExclusive("watch", "in-place")
	for _, fn := range commandBuilders {
		root.AddCommand(fn(a))
	}
	return root
}

var commandBuilders []func(*app) *cobra.Command

func addCommandBuilders(fns ...func(*app) *cobra.Command) {
	commandBuilders = append(commandBuilders, fns...)
}
