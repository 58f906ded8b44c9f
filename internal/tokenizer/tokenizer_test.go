package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Exact shape", "123-456-7890", true},
		{"Short last group", "123-456-789", false},
		{"Long middle group", "098-0765-04321", false},
		{"Letters", "abc-def-ghij", false},
		{"No hyphens", "1234567890", false},
		{"Trailing text", "123-456-7890x", false},
		{"Unicode digits", "١٢٣-٤٥٦-٧٨٩٠", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPhoneNumber(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Collapses repeated spaces", "a b  c", []string{"a", "b", "c"}},
		{"Keeps phone number", "123-456-7890", []string{"123-456-7890"}},
		{"Long phone-like word stays one token", "098-0765-04321", []string{"098-0765-04321"}},
		{"Tabs and newlines", "1\t2\n3\r\n4", []string{"1", "2", "3", "4"}},
		{"Leading and trailing whitespace", "  x y  ", []string{"x", "y"}},
		{"Non-breaking space", "x\u00a0y", []string{"x", "y"}},
		{
			"Example from the form",
			"123-456-789 098-0765-04321 fee-fi-fo-fum i-like-cheese",
			[]string{"123-456-789", "098-0765-04321", "fee-fi-fo-fum", "i-like-cheese"},
		},
		{"Mixed", "call 555-123-4567 now", []string{"call", "555-123-4567", "now"}},
		{"Only whitespace", " \t ", nil},
		{"Empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenizeNeverReturnsEmptyTokens(t *testing.T) {
	inputs := []string{" a", "a ", "  a  b  ", "\n\n", "a\t\tb"}

	for _, in := range inputs {
		for _, tok := range Tokenize(in) {
			assert.NotEmpty(t, tok, "input %q", in)
		}
	}
}
