package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMapKeepsInsertionOrder(t *testing.T) {
	m := NewFileMap()
	assert.True(t, m.Add(&File{Path: "b.txt", Content: "b"}))
	assert.True(t, m.Add(&File{Path: "a.txt", Content: "a"}))
	assert.True(t, m.Add(&File{Path: "c.txt", Content: "c"}))

	assert.Equal(t, []string{"b.txt", "a.txt", "c.txt"}, m.Paths())
	assert.Equal(t, 3, m.Len())
}

func TestFileMapOverwriteKeepsPosition(t *testing.T) {
	m := NewFileMap()
	m.Add(&File{Path: "a.txt", Content: "old"})
	m.Add(&File{Path: "b.txt", Content: "b"})

	assert.False(t, m.Add(&File{Path: "a.txt", Content: "new"}))
	assert.Equal(t, []string{"a.txt", "b.txt"}, m.Paths())

	content, ok := m.Get("a.txt")
	require.True(t, ok)
	assert.Equal(t, "new", content)
}

func TestFileMapMergeReportsCollisions(t *testing.T) {
	m := NewFileMap()
	m.Add(&File{Path: "shared.txt", Content: "first"})

	other := NewFileMap()
	other.Add(&File{Path: "shared.txt", Content: "second"})
	other.Add(&File{Path: "extra.txt", Content: "extra"})

	diags := m.Merge(other)
	require.Len(t, diags, 1)
	assert.Equal(t, DiagPathCollision, diags[0].Kind)
	assert.Equal(t, "shared.txt", diags[0].Detail)

	// Later file wins on collision.
	content, _ := m.Get("shared.txt")
	assert.Equal(t, "second", content)
	assert.Equal(t, 2, m.Len())
}

func TestFileMapMergeNil(t *testing.T) {
	m := NewFileMap()
	assert.Empty(t, m.Merge(nil))
	assert.False(t, m.Add(nil))
}
