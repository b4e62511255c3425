package main

import (
	"context"
	"errors"
	"io"
	"runtime"

	"github.com/kahiin/launcher/pkg/lib"
	"github.com/kahiin/launcher/pkg/lib/compose"
	"github.com/kahiin/launcher/pkg/lib/platform"
	"github.com/kahiin/launcher/pkg/lib/relay"
	"github.com/kahiin/launcher/pkg/lib/runner"
	"github.com/kahiin/launcher/pkg/lib/state"
)

// App owns the launcher state: the process registry and the initialization
// tracker live here rather than in globals, and actions reach them through it.
type App struct {
	cfg      Config
	runner   *runner.Runner
	tracker  *state.Tracker
	compose  compose.Compose
	detector platform.Detector
	goos     string

	prompt Prompter
	ui     *ui
	// stdin and term are handed to foreground scripts.
	stdin io.Reader
	term  *relay.Terminal
}

func newApp(cfg Config, prompt Prompter, term *relay.Terminal, stdin io.Reader, u *ui) *App {
	return &App{
		cfg:      cfg,
		runner:   runner.NewRunner(term, cfg.TailLines),
		tracker:  state.NewTracker(state.DefaultPaths(cfg.BaseDir)),
		compose:  cfg.compose(),
		detector: platform.Host(),
		goos:     runtime.GOOS,
		prompt:   prompt,
		ui:       u,
		stdin:    stdin,
		term:     term,
	}
}

// spawn starts a background process and tells the user it keeps running.
func (a *App) spawn(label string, command lib.Command) error {
	if _, err := a.runner.Start(label, command); err != nil {
		return err
	}
	a.ui.Println("The process runs in the background. You can keep using the menu.")
	return nil
}

// runForeground runs command attached to the launcher's terminal.
func (a *App) runForeground(ctx context.Context, command lib.Command) error {
	return runner.Run(ctx, command, runner.IO{In: a.stdin, Out: a.term, Err: a.term})
}

// markInitialized records the state; a marker file failure is reported but
// never fails the surrounding action.
func (a *App) markInitialized(success bool) {
	if err := a.tracker.MarkInitialized(success); err != nil {
		a.ui.Errorf("Could not update the state file: %v", err)
	}
}

// report renders an action error. Every error stops at this boundary.
func (a *App) report(err error) {
	var (
		spawnErr   *lib.SpawnError
		depErr     *lib.DependencyError
		failureErr *lib.ScriptFailureError
		stateErr   *lib.StateFileError
		invalidErr *validationError
	)
	switch {
	case errors.As(err, &spawnErr):
		a.ui.Errorf("Could not start %s: %v", spawnErr.Command, spawnErr.Err)
	case errors.As(err, &depErr):
		a.ui.Errorf("Missing dependencies: %v", depErr)
	case errors.As(err, &failureErr):
		a.ui.Errorf("%s failed (exit code: %d).", failureErr.Command, failureErr.Code)
	case errors.As(err, &stateErr):
		a.ui.Errorf("Could not update the state file: %v", stateErr)
	case errors.As(err, &invalidErr):
		a.ui.Errorf("Invalid input: %v", invalidErr)
	default:
		a.ui.Errorf("Error: %v", err)
	}
}

// pause blocks until the user presses Enter.
func (a *App) pause() {
	_, _ = a.prompt.ReadLine("\nPress Enter to continue...")
}

// shutdown stops every managed process group.
func (a *App) shutdown() {
	a.runner.StopAll()
	a.ui.Println("All processes have been stopped.")
}
