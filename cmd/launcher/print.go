package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/kahiin/launcher/pkg/lib"
)

const maxLastLineWidth = 40

// printStatusTable prints the registry, numbering rows from 1 in start order.
func printStatusTable(w io.Writer, infos []lib.ProcessInfo) {
	if len(infos) == 0 {
		_, _ = fmt.Fprintln(w, "No process is running.")
		return
	}

	type row struct{ num, label, pid, state, last string }
	rows := make([]row, 0, len(infos))
	numW := lipgloss.Width(strconv.Itoa(len(infos)))
	labelW, pidW, stateW, lastW := lipgloss.Width("PROCESS"), lipgloss.Width("PID"), lipgloss.Width("STATE"), lipgloss.Width("LAST OUTPUT")
	for i, info := range infos {
		r := row{
			num:   strconv.Itoa(i + 1),
			label: info.Label,
			pid:   strconv.Itoa(info.PID),
			state: stateString(info.Status),
			last:  truncate(ansi.Strip(info.LastLine), maxLastLineWidth),
		}
		labelW = maxInt(labelW, lipgloss.Width(r.label))
		pidW = maxInt(pidW, lipgloss.Width(r.pid))
		stateW = maxInt(stateW, lipgloss.Width(r.state))
		lastW = maxInt(lastW, lipgloss.Width(r.last))
		rows = append(rows, r)
	}

	sep := fmt.Sprintf("+-%s-+-%s-+-%s-+-%s-+-%s-+\n", strings.Repeat("-", numW), strings.Repeat("-", labelW), strings.Repeat("-", pidW), strings.Repeat("-", stateW), strings.Repeat("-", lastW))
	_, _ = fmt.Fprint(w, "\n"+sep)
	_, _ = fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n", pad("#", numW), pad("PROCESS", labelW), pad("PID", pidW), pad("STATE", stateW), pad("LAST OUTPUT", lastW))
	_, _ = fmt.Fprint(w, sep)
	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n", pad(r.num, numW), pad(r.label, labelW), pad(r.pid, pidW), pad(r.state, stateW), pad(r.last, lastW))
	}
	_, _ = fmt.Fprint(w, sep)
}

func stateString(st lib.ProcessStatus) string {
	switch st.State {
	case lib.ProcessStateRunning:
		return "running"
	case lib.ProcessStateExited:
		if st.ExitCode != nil {
			return fmt.Sprintf("exited (code %d)", *st.ExitCode)
		}
		return "exited"
	default:
		return "unknown"
	}
}

// truncate shortens s to w terminal cells, marking the cut with "...".
func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	return ansi.Truncate(s, w, "...")
}

// pad right-pads s to w terminal cells.
func pad(s string, w int) string {
	n := lipgloss.Width(s)
	if n >= w {
		return s
	}
	return s + strings.Repeat(" ", w-n)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
