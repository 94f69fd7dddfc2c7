package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fastcat.org/go/matchpick/matchcase"
	"fastcat.org/go/matchpick/textedit"
	"fastcat.org/go/matchpick/watch"
)

type filterOptions struct {
	output     string
	inPlace    bool
	watch      bool
	printStart bool
	printEnd   bool
}

func (o *filterOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.output, "output", "o", "",
		"output to file (otherwise to stdout)")
	fs.BoolVarP(&o.inPlace, "in-place", "i", false,
		"rewrite the given files instead of writing the result elsewhere")
	fs.BoolVarP(&o.watch, "watch", "w", false,
		"keep running and redo the output whenever the input file changes (needs a file and --output)")
	fs.BoolVar(&o.printStart, "print-start", false, "print the start pattern and exit")
	fs.BoolVar(&o.printEnd, "print-end", false, "print the end pattern and exit")
}

func (a *app) filter(cmd *cobra.Command, args []string, opts filterOptions) error {
	// shortcuts, these print whatever was given without validating it
	if opts.printStart {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), a.merged(cmd).Enter)
		return err
	}
	if opts.printEnd {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), a.merged(cmd).Exit)
		return err
	}
	s, err := a.settings(cmd)
	if err != nil {
		return err
	}

	mo := s.Options()
	switch {
	case opts.inPlace:
		if len(args) == 0 {
			return errors.New("--in-place needs at least one file")
		}
		return a.editInPlace(mo, args)
	case len(args) > 1:
		return fmt.Errorf("expected at most one input file, got %d (use --in-place to rewrite several)", len(args))
	case opts.watch:
		if len(args) != 1 || opts.output == "" {
			return errors.New("--watch needs an input file and --output")
		}
		return a.watchFile(cmd.Context(), mo, args[0], opts.output)
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	out, err := matchcase.Process(text, mo)
	if err != nil {
		return err
	}
	a.log.Debug("processed", "targets", mo.Targets, "bytes", len(out))
	return writeOutput(cmd.OutOrStdout(), opts.output, out)
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return readFile(args[0])
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if !utf8.Valid(data) {
		return "", decodeError{source: "stdin"}
	}
	return string(data), nil
}

func readFile(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", decodeError{source: name}
	}
	return string(data), nil
}

// writeOutput writes to the named file verbatim, or to w with a final newline.
func writeOutput(w io.Writer, path, out string) error {
	if path == "" {
		_, err := fmt.Fprintln(w, out)
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write to file: %w", err)
	}
	return nil
}

func (a *app) editInPlace(mo matchcase.Options, files []string) error {
	for _, f := range files {
		// reject undecodable input before touching anything
		if _, err := readFile(f); err != nil {
			return err
		}
		changed, err := textedit.EditFile(f, matchcase.New(mo))
		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
		if changed {
			a.log.Info("updated", "file", f)
		} else {
			a.log.Debug("unchanged", "file", f)
		}
	}
	return nil
}

func (a *app) watchFile(ctx context.Context, mo matchcase.Options, input, output string) error {
	once := func() error {
		text, err := readFile(input)
		if err != nil {
			return err
		}
		out, err := matchcase.Process(text, mo)
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		return writeOutput(nil, output, out)
	}
	if err := once(); err != nil {
		return err
	}
	a.log.Info("wrote output", "file", output)

	w, err := watch.New(a.log, watch.DefaultDebounce, func(context.Context, []string) {
		if err := once(); err != nil {
			a.log.Error("update failed", "file", input, "error", err)
			return
		}
		a.log.Info("wrote output", "file", output)
	}, input)
	if err != nil {
		return err
	}
	a.log.Info("watching for changes", "file", input)
	return w.Run(ctx)
}
