package testutil

import (
	"fmt"
	"sync"
)

// SequenceGenerator returns predictable IDs: prefix followed by a zero-padded
// counter starting at 1 ("id-00000001", "id-00000002", ...).
//
// It satisfies journal.IDGenerator and can stand in for naming suffixes, so
// golden output does not depend on random UUIDs.
//
// Thread-safety: SequenceGenerator is safe for concurrent use.
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSequenceGenerator creates a generator. An empty prefix defaults to "id-".
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	if prefix == "" {
		prefix = "id-"
	}
	return &SequenceGenerator{prefix: prefix}
}

// Generate returns the next ID.
func (g *SequenceGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s%08d", g.prefix, g.n)
}
