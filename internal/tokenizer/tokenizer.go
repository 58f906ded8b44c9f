package tokenizer

import (
	"regexp"
	"strings"
)

// phonePattern matches the only word shape kept intact: DDD-DDD-DDDD.
var phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)

// IsPhoneNumber reports whether word has the exact DDD-DDD-DDDD shape
func IsPhoneNumber(word string) bool {
	return phonePattern.MatchString(word)
}

// Tokenize splits s on runs of whitespace and returns the tokens in order.
//
// Words matching the phone number shape are kept as a single token. Any other
// word is split again on single spaces, which never changes a word that came
// out of the whitespace split.
func Tokenize(s string) []string {
	var tokens []string

	for _, word := range strings.Fields(s) {
		if IsPhoneNumber(word) {
			tokens = append(tokens, word)
			continue
		}
		for _, part := range strings.Split(word, " ") {
			if part != "" {
				tokens = append(tokens, part)
			}
		}
	}

	return tokens
}
