package runner

import (
	"io"
	"os/exec"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kahiin/launcher/pkg/lib"
	"github.com/kahiin/launcher/pkg/lib/relay"
)

var logger = log.New(io.Discard)

// SetLogger replaces the package logger.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Runner starts background processes and keeps the registry of everything it
// started. Entries stay listed after they exit, until StopAll.
type Runner struct {
	mu        sync.RWMutex
	processes []*processEntry
	sink      relay.Sink
	tailLines int
}

type processEntry struct {
	id      string
	label   string
	command lib.Command
	cmd     *exec.Cmd
	pid     int
	pgid    int
	tail    *relay.OutputStorage

	// status fields, written by the waiter goroutine
	mu       sync.RWMutex
	state    lib.ProcessState
	exitCode *int
	start    time.Time
	end      *time.Time
}

// NewRunner creates a Runner relaying child output to sink, keeping the last
// tailLines lines of every process.
func NewRunner(sink relay.Sink, tailLines int) *Runner {
	if tailLines <= 0 {
		tailLines = relay.DefaultTailLines
	}
	return &Runner{sink: sink, tailLines: tailLines}
}

// Len returns the number of registered processes, running or exited.
func (runner *Runner) Len() int {
	runner.mu.RLock()
	defer runner.mu.RUnlock()
	return len(runner.processes)
}
