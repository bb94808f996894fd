package parser

import (
	"strconv"
	"sync"
)

// FirstSequenceID is the first import id handed out for BOM lines.
const FirstSequenceID = 9900001

// Sequencer hands out strictly increasing BOM line ids.
type Sequencer struct {
	mu   sync.Mutex
	next int
}

// NewSequencer returns a sequencer whose first id is start.
func NewSequencer(start int) *Sequencer {
	return &Sequencer{next: start}
}

// Next allocates the next id.
func (s *Sequencer) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	return id
}

// CodeRegistry makes product codes unique by appending a per-code counter.
// The first occurrence of "X" becomes "X-1", the second "X-2".
type CodeRegistry struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewCodeRegistry returns an empty registry.
func NewCodeRegistry() *CodeRegistry {
	return &CodeRegistry{counts: make(map[string]int)}
}

// Unique returns base suffixed with its occurrence number.
func (r *CodeRegistry) Unique(base string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[base]++
	return base + "-" + strconv.Itoa(r.counts[base])
}
