package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (a *App) showStatus(ctx context.Context) error {
	infos := a.runner.ListStatus()
	printStatusTable(a.ui.out, infos)
	if len(infos) == 0 {
		return nil
	}

	choice, err := a.prompt.ReadLine("\nProcess number to show its recent output (Enter to go back): ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	choice = strings.TrimSpace(choice)
	if choice == "" {
		return nil
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(infos) {
		return &validationError{Field: "process number", Reason: fmt.Sprintf("must be between 1 and %d", len(infos))}
	}
	return a.showOutput(infos[n-1].ID)
}

// showOutput replays the retained output of one process through the terminal
// sink, so it looks the way it did when it was relayed.
func (a *App) showOutput(id string) error {
	info, err := a.runner.Status(id)
	if err != nil {
		return fmt.Errorf("process is no longer registered: %w", err)
	}
	lines, err := a.runner.Tail(id)
	if err != nil {
		return fmt.Errorf("process is no longer registered: %w", err)
	}

	a.ui.Infof("\n%s: %s (%s), last %d lines", info.Label, info.Command, stateString(info.Status), len(lines))
	if len(lines) == 0 {
		a.ui.Println("No output yet.")
		return nil
	}
	for _, l := range lines {
		a.term.WriteLine(info.Label, l.Text, l.IsErr)
	}
	return nil
}
