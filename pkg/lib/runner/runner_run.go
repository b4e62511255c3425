package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/kahiin/launcher/pkg/lib"
)

// IO wires a foreground command to the caller's streams. Nil fields mean
// /dev/null (In) or discard (Out, Err).
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes command in the foreground and blocks until it exits. The child
// stays in the launcher's process group so it can use the terminal. A non-zero
// exit is reported as *lib.ScriptFailureError, a launch failure as
// *lib.SpawnError. Run is not tracked by any Runner.
func Run(ctx context.Context, command lib.Command, stdio IO) error {
	if command.Command == "" {
		return &lib.SpawnError{Err: errors.New("command is required")}
	}

	cmd := exec.CommandContext(ctx, command.Command, command.Args...)
	cmd.Dir = command.Dir
	if len(command.Env) > 0 {
		cmd.Env = append(os.Environ(), command.Env...)
	}
	cmd.Stdin = stdio.In
	if len(command.Stdin) > 0 {
		cmd.Stdin = bytes.NewReader(command.Stdin)
	}
	cmd.Stdout = stdio.Out
	cmd.Stderr = stdio.Err

	logger.Debug("running foreground command", "command", command.Command, "dir", command.Dir)
	if err := cmd.Start(); err != nil {
		return &lib.SpawnError{Command: command.Command, Err: err}
	}

	err := cmd.Wait()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &lib.ScriptFailureError{Command: command.Command, Code: exitErr.ExitCode()}
	}
	return err
}

// Output runs command in the foreground and returns its trimmed stdout.
// It is meant for quick probes such as version checks.
func Output(ctx context.Context, command lib.Command) (string, error) {
	var out bytes.Buffer
	if err := Run(ctx, command, IO{Out: &out}); err != nil {
		return "", err
	}
	return strings.TrimSpace(out.String()), nil
}

// LookupAll checks that every named executable can be found in PATH.
func LookupAll(names ...string) error {
	var missing []string
	var firstErr error
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			missing = append(missing, name)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if len(missing) > 0 {
		return &lib.DependencyError{Missing: missing, Err: firstErr}
	}
	return nil
}
