package runner

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/kahiin/launcher/pkg/lib"
	"github.com/kahiin/launcher/pkg/lib/relay"
)

type StartResult struct {
	ID     string
	PID    int
	PGID   int
	Status *lib.ProcessStatus
}

// Start launches command in the background as the leader of a new process
// group, registers it under label and starts one relay per output stream.
// Failures to launch are returned as *lib.SpawnError and leave the registry
// untouched.
func (runner *Runner) Start(label string, command lib.Command) (*StartResult, error) {
	if command.Command == "" {
		return nil, &lib.SpawnError{Label: label, Err: errors.New("command is required")}
	}

	cmd := exec.Command(command.Command, command.Args...)
	cmd.Dir = command.Dir
	if len(command.Env) > 0 {
		cmd.Env = append(os.Environ(), command.Env...)
	}
	cmd.SysProcAttr = groupSysProcAttr()
	if len(command.Stdin) > 0 {
		cmd.Stdin = bytes.NewReader(command.Stdin)
	}
	// cmd.Stdin is otherwise left nil, so the child reads /dev/null

	// Pipes are created manually: the child gets the write ends directly and
	// Wait does not wait for the relays, so exit status is reported as soon as
	// the leader exits even if grandchildren keep the pipes open.
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, &lib.SpawnError{Label: label, Command: command.Command, Err: err}
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		closeAll(stdoutR, stdoutW)
		return nil, &lib.SpawnError{Label: label, Command: command.Command, Err: err}
	}
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	logger.Debug("starting process", "label", label, "command", command.Command, "dir", command.Dir)
	if err := cmd.Start(); err != nil {
		logger.Debug("failed to start process", "label", label, "err", err)
		closeAll(stdoutR, stdoutW, stderrR, stderrW)
		return nil, &lib.SpawnError{Label: label, Command: command.Command, Err: err}
	}
	// The child holds its own copies now.
	closeAll(stdoutW, stderrW)

	entry := &processEntry{
		id:    lib.NewID(),
		label: label,
		// Stdin may carry a secret and is deliberately not retained.
		command: lib.Command{Command: command.Command, Args: append([]string(nil), command.Args...), Dir: command.Dir},
		cmd:     cmd,
		pid:     cmd.Process.Pid,
		pgid:    processGroup(cmd.Process.Pid),
		tail:    relay.NewOutputStorage(runner.tailLines),
		state:   lib.ProcessStateRunning,
		start:   time.Now(),
	}

	go runner.relay(stdoutR, entry, false)
	go runner.relay(stderrR, entry, true)

	// Waiter
	go func() {
		err := cmd.Wait()

		code := 0
		if err != nil {
			code = -1
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			}
		}
		logger.Debug("process finished", "label", entry.label, "pid", entry.pid, "code", code)

		entry.mu.Lock()
		defer entry.mu.Unlock()
		entry.exitCode = &code
		now := time.Now()
		entry.end = &now
		entry.state = lib.ProcessStateExited
	}()

	runner.mu.Lock()
	runner.processes = append(runner.processes, entry)
	runner.mu.Unlock()

	status := entry.lockAndGetStatus()

	return &StartResult{ID: entry.id, PID: entry.pid, PGID: entry.pgid, Status: &status}, nil
}

func (runner *Runner) relay(r *os.File, entry *processEntry, isErr bool) {
	defer func() {
		_ = r.Close()
	}()
	relay.Relay(r, entry.label, isErr, runner.sink, entry.tail)
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
