package runner

import (
	"github.com/kahiin/launcher/pkg/lib/relay"
)

// Tail returns the retained output lines of a process, oldest first, with
// stdout and stderr interleaved in arrival order.
func (runner *Runner) Tail(id string) ([]relay.Line, error) {
	pe, err := runner.getProcess(id)
	if err != nil {
		return nil, err
	}

	lines := make([]relay.Line, 0, pe.tail.Len())
	pe.tail.ForEach(func(l relay.Line) bool {
		lines = append(lines, l)
		return true
	})
	logger.Debug("read output tail", "label", pe.label, "lines", len(lines))
	return lines, nil
}
