package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/kahiin/launcher/pkg/lib"
)

func TestPrintStatusTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	printStatusTable(&buf, nil)
	if strings.TrimSpace(buf.String()) != "No process is running." {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestPrintStatusTable(t *testing.T) {
	code := 3
	infos := []lib.ProcessInfo{
		{Label: "Server", PID: 4242, Status: lib.ProcessStatus{State: lib.ProcessStateRunning}, LastLine: "listening on :5000"},
		{Label: "Android app builder", PID: 17, Status: lib.ProcessStatus{State: lib.ProcessStateExited, ExitCode: &code}, LastLine: strings.Repeat("x", 60)},
	}

	var buf bytes.Buffer
	printStatusTable(&buf, infos)
	out := buf.String()

	for _, want := range []string{"PROCESS", "| Server ", "4242", "running", "listening on :5000", "exited (code 3)", "xxx..."} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, "Server") > strings.Index(out, "Android app builder") {
		t.Fatalf("rows must keep registry order")
	}
}

func TestPrintStatusTable_AlignsWideAndStyledText(t *testing.T) {
	infos := []lib.ProcessInfo{
		{Label: "Base de données", PID: 7, Status: lib.ProcessStatus{State: lib.ProcessStateRunning}, LastLine: "\x1b[31mErreur de connexion\x1b[0m"},
		{Label: "Server", PID: 12345, Status: lib.ProcessStatus{State: lib.ProcessStateRunning}, LastLine: "Démarrage terminé"},
		{Label: "Android app builder", PID: 1, Status: lib.ProcessStatus{State: lib.ProcessStateRunning}, LastLine: strings.Repeat("é", 60)},
	}

	var buf bytes.Buffer
	printStatusTable(&buf, infos)
	out := buf.String()

	if strings.Contains(out, "\x1b[") {
		t.Fatalf("escape codes must be stripped:\n%q", out)
	}
	if !strings.Contains(out, "Erreur de connexion") {
		t.Fatalf("expected stripped text in:\n%s", out)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	width := lipgloss.Width(lines[0])
	for _, line := range lines {
		if lipgloss.Width(line) != width {
			t.Fatalf("misaligned row %q (%d cells, want %d)", line, lipgloss.Width(line), width)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("café", 10); got != "café" {
		t.Fatalf("short text must be kept, got %q", got)
	}
	got := truncate(strings.Repeat("é", 50), maxLastLineWidth)
	if lipgloss.Width(got) > maxLastLineWidth || !strings.HasSuffix(got, "...") {
		t.Fatalf("unexpected truncation %q (%d cells)", got, lipgloss.Width(got))
	}
}
