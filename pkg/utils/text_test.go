package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "keeps plus and digits", input: "+1 (555) 010-0100", expected: "+15550100100"},
		{name: "drops letters", input: "call 555 now", expected: "555"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeTel(tt.input))
		})
	}
}

func TestSanitizeDigits(t *testing.T) {
	assert.Equal(t, "55512", SanitizeDigits("(555) 12"))
	assert.Equal(t, "15550100", SanitizeDigits("+1 555-0100"))
	assert.Equal(t, "", SanitizeDigits("abc"))
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "two words", input: "ann lee", expected: "AL"},
		{name: "three words keeps two", input: "Mary Ann Lee", expected: "MA"},
		{name: "single word", input: "cher", expected: "C"},
		{name: "repeated spaces", input: "  bob   stone ", expected: "BS"},
		{name: "empty falls back", input: "", expected: "NA"},
		{name: "blank falls back", input: "   ", expected: "NA"},
		{name: "non ascii", input: "émile zola", expected: "ÉZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Initials(tt.input))
		})
	}
}

func TestNewID(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := NewID()
		assert.Len(t, id, 32)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}
