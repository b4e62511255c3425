package runner

import (
	"os"
	"strings"

	"github.com/kahiin/launcher/pkg/lib"
)

// ListStatus returns every registered process in start order with its current
// state. It never blocks on a child and never changes the registry.
func (runner *Runner) ListStatus() []lib.ProcessInfo {
	runner.mu.RLock()
	entries := append([]*processEntry(nil), runner.processes...)
	runner.mu.RUnlock()

	infos := make([]lib.ProcessInfo, 0, len(entries))
	for _, pe := range entries {
		infos = append(infos, pe.info())
	}
	return infos
}

// Status returns the current state of one process by identifier.
func (runner *Runner) Status(id string) (*lib.ProcessInfo, error) {
	pe, err := runner.getProcess(id)
	if err != nil {
		return nil, err
	}
	info := pe.info()
	return &info, nil
}

func (runner *Runner) getProcess(id string) (*processEntry, error) {
	runner.mu.RLock()
	defer runner.mu.RUnlock()
	for _, pe := range runner.processes {
		if pe.id == id {
			return pe, nil
		}
	}
	return nil, os.ErrNotExist
}

func (processEntry *processEntry) info() lib.ProcessInfo {
	info := lib.ProcessInfo{
		ID:      processEntry.id,
		Label:   processEntry.label,
		Command: strings.Join(append([]string{processEntry.command.Command}, processEntry.command.Args...), " "),
		PID:     processEntry.pid,
		PGID:    processEntry.pgid,
		Status:  processEntry.lockAndGetStatus(),
	}
	if last, ok := processEntry.tail.Last(); ok {
		info.LastLine = last.Text
	}
	return info
}

func (processEntry *processEntry) lockAndGetStatus() lib.ProcessStatus {
	processEntry.mu.RLock()
	defer processEntry.mu.RUnlock()

	st := lib.ProcessStatus{State: processEntry.state, StartTime: processEntry.start}
	if processEntry.exitCode != nil {
		st.ExitCode = new(int)
		*st.ExitCode = *processEntry.exitCode
	}
	if processEntry.end != nil {
		t := *processEntry.end
		st.EndTime = &t
	}
	return st
}
