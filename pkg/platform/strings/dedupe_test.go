package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "broker list with spaces and repeats",
			input:    []string{" kafka-1:9092 ", "kafka-2:9092", "kafka-1:9092"},
			expected: []string{"kafka-1:9092", "kafka-2:9092"},
		},
		{
			name:     "splitting an empty env var yields one empty element",
			input:    []string{""},
			expected: []string{},
		},
		{
			name:     "whitespace-only elements are dropped",
			input:    []string{"foo", "  ", "", "bar", "foo"},
			expected: []string{"foo", "bar"},
		},
		{
			name:     "case is preserved",
			input:    []string{"Foo", "foo"},
			expected: []string{"Foo", "foo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}
