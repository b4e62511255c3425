package relay

import (
	"sync"
)

// DefaultTailLines is the number of lines an OutputStorage keeps when no
// capacity is given.
const DefaultTailLines = 200

// Line is one complete line of child output.
type Line struct {
	Text  string
	IsErr bool
}

// OutputStorage keeps the most recent lines written by a process.
// Both relays of a process append to the same storage, so Append is
// synchronized; readers get copies.
type OutputStorage struct {
	mu    sync.RWMutex
	lines []Line
	next  int
	full  bool
}

// NewOutputStorage creates an empty storage holding up to capacity lines.
func NewOutputStorage(capacity int) *OutputStorage {
	if capacity <= 0 {
		capacity = DefaultTailLines
	}
	return &OutputStorage{lines: make([]Line, capacity)}
}

// Append records a line, evicting the oldest one when full.
func (s *OutputStorage) Append(line Line) {
	if s == nil {
		return
	}

	s.mu.Lock()
	s.lines[s.next] = line
	s.next = (s.next + 1) % len(s.lines)
	if s.next == 0 {
		s.full = true
	}
	s.mu.Unlock()
}

// Len returns the number of retained lines.
func (s *OutputStorage) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.full {
		return len(s.lines)
	}
	return s.next
}

// ForEach iterates over retained lines oldest first.
// If iter returns false, iteration stops early.
func (s *OutputStorage) ForEach(iter func(Line) bool) {
	if s == nil || iter == nil {
		return
	}
	for _, l := range s.Lines() {
		if !iter(l) {
			return
		}
	}
}

// Lines returns a snapshot of retained lines, oldest first.
func (s *OutputStorage) Lines() []Line {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.full {
		return append([]Line(nil), s.lines[:s.next]...)
	}
	out := make([]Line, 0, len(s.lines))
	out = append(out, s.lines[s.next:]...)
	out = append(out, s.lines[:s.next]...)
	return out
}

// Last returns the most recent line, if any.
func (s *OutputStorage) Last() (Line, bool) {
	if s == nil {
		return Line{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.full && s.next == 0 {
		return Line{}, false
	}
	idx := s.next - 1
	if idx < 0 {
		idx = len(s.lines) - 1
	}
	return s.lines[idx], true
}
