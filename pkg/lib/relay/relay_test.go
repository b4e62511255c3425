package relay

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type recordedLine struct {
	label string
	text  string
	isErr bool
}

// recordingSink keeps every line it receives.
type recordingSink struct {
	mu    sync.Mutex
	lines []recordedLine
}

func (s *recordingSink) WriteLine(label, line string, isErr bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, recordedLine{label: label, text: line, isErr: isErr})
}

func TestRelay_PrefixesEveryLine(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	Relay(strings.NewReader("one\ntwo\n"), "A", false, term, nil)

	expected := "[A] one\n[A] two\n"
	if buf.String() != expected {
		t.Fatalf("unexpected output: got=%q want=%q", buf.String(), expected)
	}
}

func TestRelay_FlushesUnterminatedLastLine(t *testing.T) {
	sink := &recordingSink{}

	Relay(strings.NewReader("first\r\nno newline"), "B", true, sink, nil)

	if len(sink.lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(sink.lines))
	}
	if sink.lines[0].text != "first" || sink.lines[1].text != "no newline" {
		t.Fatalf("unexpected lines: %+v", sink.lines)
	}
	for _, l := range sink.lines {
		if !l.isErr || l.label != "B" {
			t.Fatalf("line lost its origin: %+v", l)
		}
	}
}

func TestRelay_RecordsIntoTail(t *testing.T) {
	sink := &recordingSink{}
	tail := NewOutputStorage(2)

	Relay(strings.NewReader("a\nb\nc\n"), "C", false, sink, tail)

	lines := tail.Lines()
	if len(lines) != 2 || lines[0].Text != "b" || lines[1].Text != "c" {
		t.Fatalf("unexpected tail: %+v", lines)
	}
	if len(sink.lines) != 3 {
		t.Fatalf("sink should see every line, got %d", len(sink.lines))
	}
}

func TestRelay_EmptyInput(t *testing.T) {
	sink := &recordingSink{}
	Relay(strings.NewReader(""), "D", false, sink, nil)
	if len(sink.lines) != 0 {
		t.Fatalf("expected no lines, got %+v", sink.lines)
	}
}

func TestTerminal_ConcurrentWritersDoNotSplitLines(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	const N = 200
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < N; i++ {
			term.WriteLine("out", "stdout-line", false)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < N; i++ {
			term.WriteLine("err", "stderr-line", true)
		}
	}()
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2*N {
		t.Fatalf("expected %d lines, got %d", 2*N, len(lines))
	}
	for _, l := range lines {
		if !strings.Contains(l, "[out] stdout-line") && !strings.Contains(l, "[err] stderr-line") {
			t.Fatalf("corrupted line: %q", l)
		}
	}
}

func TestTerminal_RawModeUsesCRLF(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	term.SetRawMode(true)
	term.WriteLine("A", "x", false)
	term.SetRawMode(false)
	term.WriteLine("A", "y", false)

	if buf.String() != "[A] x\r\n[A] y\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
