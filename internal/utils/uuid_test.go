package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Version7(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_Ordered(t *testing.T) {
	g := NewUUIDGenerator()
	prev := g.Generate()
	for range 100 {
		next := g.Generate()
		assert.NotEqual(t, prev, next)
		assert.Less(t, prev, next)
		prev = next
	}
}
