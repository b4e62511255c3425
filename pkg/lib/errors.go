package lib

import (
	"fmt"
	"strings"
)

// SpawnError means a command could not be started: the executable is missing,
// not executable, or its working directory is unusable.
type SpawnError struct {
	Label   string
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("failed to start %s (%s): %v", e.Label, e.Command, e.Err)
	}
	return fmt.Sprintf("failed to start %s: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// DependencyError lists required tools that are not available.
type DependencyError struct {
	Missing []string
	Err     error
}

func (e *DependencyError) Error() string {
	if len(e.Missing) == 0 {
		return fmt.Sprintf("missing dependency: %v", e.Err)
	}
	return fmt.Sprintf("missing dependencies: %s", strings.Join(e.Missing, ", "))
}

func (e *DependencyError) Unwrap() error { return e.Err }

// ScriptFailureError is returned when an external script exits non-zero.
type ScriptFailureError struct {
	Command string
	Code    int
}

func (e *ScriptFailureError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Command, e.Code)
}

// StateFileError wraps a failure to write or remove the initialization marker.
type StateFileError struct {
	Path string
	Op   string
	Err  error
}

func (e *StateFileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StateFileError) Unwrap() error { return e.Err }
