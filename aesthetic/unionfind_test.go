package aesthetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestUnionFind covers merging, idempotent unions and transitive connectivity.
func TestUnionFind(t *testing.T) {
	u := newUnionFind(6)
	assert.False(t, u.connected(0, 1))

	assert.True(t, u.union(0, 1))
	assert.True(t, u.union(2, 3))
	assert.False(t, u.union(1, 0), "second union of the same pair must report no merge")
	assert.True(t, u.connected(0, 1))
	assert.False(t, u.connected(1, 2))

	assert.True(t, u.union(1, 3))
	assert.True(t, u.connected(0, 2))
	assert.False(t, u.connected(0, 5))
}
