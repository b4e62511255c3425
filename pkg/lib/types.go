package lib

import "time"

// ProcessState is the coarse lifecycle state of a managed process.
type ProcessState int

const (
	ProcessStateUnspecified ProcessState = iota
	ProcessStateRunning
	ProcessStateExited
)

func (s ProcessState) String() string {
	switch s {
	case ProcessStateRunning:
		return "running"
	case ProcessStateExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Command captures what to execute. Args are handed to the OS as a vector,
// never joined into a shell string.
type Command struct {
	Command string
	Args    []string
	// Dir is the working directory of the child.
	Dir string
	// Env is appended to the launcher's own environment.
	Env []string
	// Stdin, when set, is written to the child's stdin which is then closed.
	// It is never retained after the process starts.
	Stdin []byte
}

// ProcessStatus captures runtime state and timestamps.
type ProcessStatus struct {
	State     ProcessState
	ExitCode  *int
	StartTime time.Time
	EndTime   *time.Time
}

// ProcessInfo is one row of the process registry as seen by callers.
type ProcessInfo struct {
	ID    string
	Label string
	// Command is the argument vector joined for display. Stdin is never shown.
	Command  string
	PID      int
	PGID     int
	Status   ProcessStatus
	LastLine string
}
