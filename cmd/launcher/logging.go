package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/kahiin/launcher/pkg/lib/compose"
	"github.com/kahiin/launcher/pkg/lib/relay"
	"github.com/kahiin/launcher/pkg/lib/runner"
	"github.com/kahiin/launcher/pkg/lib/state"
)

// newLogger returns a silent logger unless a level is configured; the menu
// owns the terminal, so diagnostics are opt-in.
func newLogger(level string) (*log.Logger, error) {
	if level == "" {
		return log.New(io.Discard), nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "launcher",
		Level:           lvl,
		ReportTimestamp: true,
	}), nil
}

func installLogger(l *log.Logger) {
	runner.SetLogger(l.WithPrefix("runner"))
	relay.SetLogger(l.WithPrefix("relay"))
	state.SetLogger(l.WithPrefix("state"))
	compose.SetLogger(l.WithPrefix("compose"))
}
