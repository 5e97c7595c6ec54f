package train

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFerrify_Deterministic(t *testing.T) {
	first := Ferrify(8, 42)
	second := Ferrify(8, 42)
	assert.Equal(t, first, second)
}

func TestFerrify_ZeroCount(t *testing.T) {
	assert.Empty(t, Ferrify(0, 1))
	assert.Empty(t, Ferrify(-3, 1))
}

func TestFerrify_StartsWithEngine(t *testing.T) {
	got := Ferrify(5, 7)
	found := false
	for _, engine := range engines {
		if strings.HasPrefix(got, engine) {
			found = true
		}
	}
	assert.True(t, found, "train must start with an engine: %q", got)
}

func TestFerrify_Length(t *testing.T) {
	got := Ferrify(4, 99)
	// Each car is a single rune.
	assert.Len(t, []rune(got), 4)
}
