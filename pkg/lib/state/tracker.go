// Package state tracks whether the Kahiin database has been initialized.
//
// The fact is persisted only through file presence: a marker file written by
// the launcher, plus the config and environment files produced by the init
// scripts. Any one of them existing means "initialized".
package state

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kahiin/launcher/pkg/lib"
)

// TimestampLayout is the format of the marker file contents.
const TimestampLayout = "2006-01-02 15:04:05"

var logger = log.New(io.Discard)

// SetLogger replaces the package logger.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Paths are the fixed artifact locations.
type Paths struct {
	ConfigFile string
	EnvFile    string
	MarkerFile string
}

// DefaultPaths returns the artifact locations for a launcher installed in
// baseDir next to the kahiin-db directory.
func DefaultPaths(baseDir string) Paths {
	return Paths{
		ConfigFile: filepath.Join(baseDir, "config.ini"),
		EnvFile:    filepath.Join(baseDir, "kahiin-db", ".env"),
		MarkerFile: filepath.Join(baseDir, ".db_initialized"),
	}
}

// Tracker answers from the filesystem until an init or drop outcome has been
// recorded; from then on the recorded outcome wins over the artifacts.
type Tracker struct {
	paths Paths
	now   func() time.Time

	mu     sync.Mutex
	marked *bool
}

func NewTracker(paths Paths) *Tracker {
	return &Tracker{paths: paths, now: time.Now}
}

// IsInitialized returns the recorded outcome if there is one, and otherwise
// whether any artifact exists right now.
func (t *Tracker) IsInitialized() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.marked != nil {
		return *t.marked
	}
	return t.scan()
}

// Refresh forgets the recorded outcome and reads the disk again.
func (t *Tracker) Refresh() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.marked = nil
	return t.scan()
}

func (t *Tracker) scan() bool {
	for _, p := range []string{t.paths.ConfigFile, t.paths.EnvFile, t.paths.MarkerFile} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			logger.Debug("initialization artifact found", "path", p)
			return true
		}
	}
	return false
}

// MarkInitialized records the outcome of an init or drop. On success the
// marker is written with the current time; otherwise it is removed. The recorded
// outcome follows success even if the file operation fails; that failure is
// returned as *lib.StateFileError.
func (t *Tracker) MarkInitialized(success bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.marked = &success

	if success {
		stamp := t.now().Format(TimestampLayout)
		if err := os.WriteFile(t.paths.MarkerFile, []byte(stamp), 0o644); err != nil {
			logger.Warn("could not write marker", "path", t.paths.MarkerFile, "err", err)
			return &lib.StateFileError{Path: t.paths.MarkerFile, Op: "write", Err: err}
		}
		return nil
	}

	if err := os.Remove(t.paths.MarkerFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not remove marker", "path", t.paths.MarkerFile, "err", err)
		return &lib.StateFileError{Path: t.paths.MarkerFile, Op: "remove", Err: err}
	}
	return nil
}
