package runner

// StopAll sends a termination signal to the process group of every registered
// process and empties the registry. Delivery errors, e.g. for groups that are
// already gone, are ignored. Termination is not awaited. It returns the number
// of entries removed.
func (runner *Runner) StopAll() int {
	runner.mu.Lock()
	entries := runner.processes
	runner.processes = nil
	runner.mu.Unlock()

	// Exited leaders are signalled too: their group may still hold children.
	for _, pe := range entries {
		if err := terminateGroup(pe.pid, pe.pgid); err != nil {
			logger.Debug("terminate process group", "label", pe.label, "pgid", pe.pgid, "err", err)
		}
	}
	return len(entries)
}
