package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/kahiin/launcher/pkg/lib/platform"
	"github.com/kahiin/launcher/pkg/lib/relay"
)

// syncBuffer is a bytes.Buffer safe for the relays writing concurrently.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// scriptedPrompter answers prompts from a fixed list, then reports end, or
// io.EOF when end is nil.
type scriptedPrompter struct {
	mu      sync.Mutex
	inputs  []string
	prompts []string
	end     error
}

func (p *scriptedPrompter) next(prompt string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompts = append(p.prompts, prompt)
	if len(p.inputs) == 0 {
		if p.end != nil {
			return "", p.end
		}
		return "", io.EOF
	}
	s := p.inputs[0]
	p.inputs = p.inputs[1:]
	return s, nil
}

func (p *scriptedPrompter) ReadKey(prompt string) (rune, error) {
	s, err := p.next(prompt)
	if err != nil {
		return 0, err
	}
	return singleRune(s), nil
}

func (p *scriptedPrompter) ReadLine(prompt string) (string, error) { return p.next(prompt) }

func (p *scriptedPrompter) ReadSecret(prompt string) (string, error) { return p.next(prompt) }

func writeScript(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

type testApp struct {
	*App
	out    *syncBuffer
	base   string
	script *scriptedPrompter
}

// newTestApp builds an App over a temporary Kahiin checkout with stub scripts.
func newTestApp(t *testing.T, inputs ...string) *testApp {
	t.Helper()
	base := t.TempDir()

	writeScript(t, filepath.Join(base, "kahiin", "start.sh"), "echo server up; sleep 5")
	writeScript(t, filepath.Join(base, "kahiin-db", "start.sh"), "echo db up; sleep 5")
	writeScript(t, filepath.Join(base, "kahiin-app", "build.sh"), "echo building; sleep 5")
	writeScript(t, filepath.Join(base, "kahiin-db", "initDB", platform.ScriptDebian), `printf '%s\n' "$@" > args.txt`)
	writeScript(t, filepath.Join(base, "kahiin-db", "dropDB", platform.ScriptDebian), "touch dropped")

	release := filepath.Join(base, "os-release")
	if err := os.WriteFile(release, []byte("ID=ubuntu\n"), 0o644); err != nil {
		t.Fatalf("write os-release: %v", err)
	}

	cfg := defaultConfig(base)
	cfg.InitRequires = []string{"sh"}

	out := &syncBuffer{}
	sink := relay.NewTerminal(out)
	prompt := &scriptedPrompter{inputs: inputs}
	app := newApp(cfg, prompt, sink, strings.NewReader(""), newUI(sink, lipgloss.NewRenderer(out), false))
	app.detector = platform.Detector{GOOS: "linux", OSReleasePath: release}
	app.goos = "linux"
	t.Cleanup(func() { app.runner.StopAll() })

	return &testApp{App: app, out: out, base: base, script: prompt}
}

// waitForOutput polls until the output contains want.
func waitForOutput(t *testing.T, out *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), want) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected output to contain %q, got:\n%s", want, out.String())
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
