package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/kahiin/launcher/pkg/lib/relay"
)

// ErrInterrupted is returned by a prompt when the user pressed Ctrl-C while
// the terminal was in raw mode.
var ErrInterrupted = errors.New("interrupted")

// Prompter reads user input for the menu and the actions.
type Prompter interface {
	// ReadKey returns one menu choice. Input that is not a single character
	// yields utf8.RuneError.
	ReadKey(prompt string) (rune, error)
	ReadLine(prompt string) (string, error)
	// ReadSecret reads without echo when attached to a terminal.
	ReadSecret(prompt string) (string, error)
}

// terminalPrompter reads from stdin. On a TTY, keys are read in raw mode and
// secrets without echo; otherwise everything is line based.
type terminalPrompter struct {
	in     *os.File
	reader *bufio.Reader
	out    io.Writer
	sink   *relay.Terminal

	mu    sync.Mutex
	saved *term.State
}

func newTerminalPrompter(in *os.File, sink *relay.Terminal) *terminalPrompter {
	return &terminalPrompter{
		in:     in,
		reader: bufio.NewReader(in),
		out:    sink,
		sink:   sink,
	}
}

func (p *terminalPrompter) fd() int { return int(p.in.Fd()) }

func (p *terminalPrompter) isTerminal() bool { return term.IsTerminal(p.fd()) }

func (p *terminalPrompter) ReadKey(prompt string) (rune, error) {
	if !p.isTerminal() {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		return singleRune(line), nil
	}

	_, _ = io.WriteString(p.out, prompt)
	if err := p.makeRaw(); err != nil {
		return 0, err
	}
	defer p.Restore()

	buf := make([]byte, utf8.UTFMax)
	n, err := p.in.Read(buf)
	if err != nil {
		return 0, err
	}
	r, _ := utf8.DecodeRune(buf[:n])
	switch r {
	case 0x03: // Ctrl-C
		_, _ = io.WriteString(p.out, "\r\n")
		return 0, ErrInterrupted
	case 0x04: // Ctrl-D
		_, _ = io.WriteString(p.out, "\r\n")
		return 0, io.EOF
	}
	_, _ = fmt.Fprintf(p.out, "%c\r\n", r)
	return r, nil
}

func (p *terminalPrompter) ReadLine(prompt string) (string, error) {
	_, _ = io.WriteString(p.out, prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *terminalPrompter) ReadSecret(prompt string) (string, error) {
	if !p.isTerminal() {
		return p.ReadLine(prompt)
	}
	_, _ = io.WriteString(p.out, prompt)
	// ReadPassword restores echo itself, but not if the process exits from
	// the signal handler while it blocks.
	if err := p.saveState(); err != nil {
		return "", err
	}
	secret, err := term.ReadPassword(p.fd())
	p.forgetState()
	_, _ = io.WriteString(p.out, "\n")
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

func (p *terminalPrompter) makeRaw() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	saved, err := term.MakeRaw(p.fd())
	if err != nil {
		return err
	}
	p.saved = saved
	p.sink.SetRawMode(true)
	return nil
}

func (p *terminalPrompter) saveState() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	saved, err := term.GetState(p.fd())
	if err != nil {
		return err
	}
	p.saved = saved
	return nil
}

func (p *terminalPrompter) forgetState() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saved = nil
}

// Restore puts the terminal back the way it was before the current raw or
// no-echo read. It is called from the signal handler too, so the shell is
// never left in raw mode or without echo.
func (p *terminalPrompter) Restore() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.saved == nil {
		return
	}
	_ = term.Restore(p.fd(), p.saved)
	p.saved = nil
	p.sink.SetRawMode(false)
}

// singleRune returns the only rune of s, or utf8.RuneError when s is empty or
// longer than one character.
func singleRune(s string) rune {
	s = strings.TrimSpace(s)
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return utf8.RuneError
	}
	return r
}
