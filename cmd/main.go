package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
)

func Main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := Root().ExecuteContext(ctx)
	stop()
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err.Error()) // nolint:errcheck
		os.Exit(exitCode(err))
	}
}

type ExitCodeErr interface {
	ExitCode() int
}

func exitCode(err error) int {
	var ece ExitCodeErr
	if errors.As(err, &ece) {
		return ece.ExitCode()
	}
	return 1
}

// decodeError is returned when the input is not valid UTF-8. It is reported
// before any matching happens.
type decodeError struct {
	source string
}

func (e decodeError) Error() string {
	return "parse utf8: " + e.source + " is not valid UTF-8"
}

func (decodeError) ExitCode() int { return 2 }
