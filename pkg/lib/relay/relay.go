package relay

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

var logger = log.New(io.Discard)

// SetLogger replaces the package logger.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Relay copies complete lines from r to sink until r reaches EOF, recording
// each line into tail when tail is non-nil. A trailing line without a newline
// is flushed at EOF. Relay blocks; callers run it in its own goroutine.
func Relay(r io.Reader, label string, isErr bool, sink Sink, tail *OutputStorage) {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimRight(line, "\r\n")
			sink.WriteLine(label, line, isErr)
			tail.Append(Line{Text: line, IsErr: isErr})
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Debug("relay stopped", "label", label, "stderr", isErr, "err", err)
			}
			return
		}
	}
}
