package textprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases",
			input:    "Cool Beans",
			expected: "cool beans",
		},
		{
			name:     "collapses whitespace",
			input:    "a  very\t spaced   out phrase",
			expected: "very spaced out phrase",
		},
		{
			name:     "strips punctuation",
			input:    "lit, adj.: extremely good!",
			expected: "lit adj extremely good",
		},
		{
			name:     "drops single-letter tokens",
			input:    "a b or not to be",
			expected: "or not to be",
		},
		{
			name:     "drops digits",
			input:    "top 10 vibes of 2024",
			expected: "top vibes of",
		},
		{
			name:     "drops overlong tokens",
			input:    "ok supercalifragilistic ok",
			expected: "ok ok",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "only separators",
			input:    "1234 --- !!!",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"no", "cap"}, Tokenize("No cap!"))
	assert.Nil(t, Tokenize("42"))
}
