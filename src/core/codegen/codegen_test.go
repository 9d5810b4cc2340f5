package codegen

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	g := New()

	id := g.NewID()
	assert.Len(t, id, 36)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestNewIDIsFresh(t *testing.T) {
	g := New()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := g.NewID()
		assert.False(t, seen[id], "identifier %s returned twice", id)
		seen[id] = true
	}
}

func TestAlphanumericCode(t *testing.T) {
	g := New()
	pattern := regexp.MustCompile(`^[A-Z0-9]+$`)

	for _, n := range []int{1, 8, 32} {
		code, err := g.AlphanumericCode(n)
		require.NoError(t, err)
		assert.Len(t, code, n)
		assert.Regexp(t, pattern, code)
	}
}

func TestNumericCode(t *testing.T) {
	g := New()
	pattern := regexp.MustCompile(`^[0-9]+$`)

	for _, n := range []int{1, 6, 20} {
		code, err := g.NumericCode(n)
		require.NoError(t, err)
		assert.Len(t, code, n)
		assert.Regexp(t, pattern, code)
	}
}

func TestZeroLengthCodes(t *testing.T) {
	g := New()

	code, err := g.AlphanumericCode(0)
	require.NoError(t, err)
	assert.Empty(t, code)
}
