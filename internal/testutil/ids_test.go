package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceGenerator_Increments(t *testing.T) {
	gen := NewSequenceGenerator("exp-")

	assert.Equal(t, "exp-00000001", gen.Generate())
	assert.Equal(t, "exp-00000002", gen.Generate())
	assert.Equal(t, "exp-00000003", gen.Generate())
}

func TestSequenceGenerator_DefaultPrefix(t *testing.T) {
	gen := NewSequenceGenerator("")
	assert.Equal(t, "id-00000001", gen.Generate())
}

func TestSequenceGenerator_ThreadSafe(t *testing.T) {
	gen := NewSequenceGenerator("")

	done := make(chan []string)
	for i := 0; i < 10; i++ {
		go func() {
			ids := make([]string, 100)
			for j := range ids {
				ids[j] = gen.Generate()
			}
			done <- ids
		}()
	}

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		for _, id := range <-done {
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, 1000)
}
