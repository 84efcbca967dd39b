package ids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPrefixed(t *testing.T) {
	id := New(OpportunityPrefix)
	assert.True(t, strings.HasPrefix(id, "o-"))
	assert.Greater(t, len(id), 30)
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New(EventPrefix)
		assert.False(t, seen[id], "ids must not collide under rapid creation")
		seen[id] = true
	}
}
