package relay

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Sink receives relayed lines. Implementations must be safe for concurrent use:
// every process has two relays writing at the same time.
type Sink interface {
	WriteLine(label, line string, isErr bool)
}

// Terminal is the shared sink for the controlling terminal.
type Terminal struct {
	mu       sync.Mutex
	w        io.Writer
	errStyle lipgloss.Style
	eol      string
}

// NewTerminal creates a sink writing to w. Colors are only emitted when w is
// a terminal that supports them.
func NewTerminal(w io.Writer) *Terminal {
	r := lipgloss.NewRenderer(w)
	return &Terminal{
		w:        w,
		errStyle: r.NewStyle().Foreground(lipgloss.Color("9")),
		eol:      "\n",
	}
}

// SetRawMode switches line endings to CRLF, needed while the terminal has
// output post-processing disabled.
func (t *Terminal) SetRawMode(raw bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if raw {
		t.eol = "\r\n"
	} else {
		t.eol = "\n"
	}
}

// WriteLine writes "[label] line" as one write, so lines from concurrent relays
// never interleave mid-line.
func (t *Terminal) WriteLine(label, line string, isErr bool) {
	text := fmt.Sprintf("[%s] %s", label, line)
	if isErr {
		text = t.errStyle.Render(text)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = io.WriteString(t.w, text+t.eol)
}

// Write lets menu output share the terminal lock with relays.
func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.w.Write(p)
}
