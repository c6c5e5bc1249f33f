// Package complaint collects non-fatal porting diagnostics.
package complaint

import (
	"fmt"
	"sync"
)

// Set is an insertion-ordered set of messages deduplicated by exact text.
// It is safe for concurrent use.
type Set struct {
	mu    sync.Mutex
	seen  map[string]struct{}
	items []string
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Add records msg and reports whether it was new.
func (s *Set) Add(msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, dup := s.seen[msg]; dup {
		return false
	}
	s.seen[msg] = struct{}{}
	s.items = append(s.items, msg)
	return true
}

// Addf formats and records a message.
func (s *Set) Addf(format string, args ...any) bool {
	return s.Add(fmt.Sprintf(format, args...))
}

// Len returns the number of distinct messages.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// List returns a copy of the messages in insertion order.
func (s *Set) List() []string {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Merge adds every message of other, keeping other's order after s's.
func (s *Set) Merge(other *Set) {
	for _, msg := range other.List() {
		s.Add(msg)
	}
}
