// Package textprep normalizes definition sentences before encoding.
package textprep

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Token length bounds, in runes. Shorter or longer tokens are dropped.
const (
	minTokenLen = 2
	maxTokenLen = 15
)

// reToken matches maximal runs of letters.
var reToken = regexp.MustCompile(`\pL+`)

// Tokenize lowercases s and splits it into letter-only tokens between 2 and
// 15 runes long. Digits and punctuation act as separators and are discarded.
func Tokenize(s string) []string {
	var tokens []string
	for _, tok := range reToken.FindAllString(strings.ToLower(s), -1) {
		n := utf8.RuneCountInString(tok)
		if n < minTokenLen || n > maxTokenLen {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Normalize tokenizes s and rejoins the tokens with single spaces.
func Normalize(s string) string {
	return strings.Join(Tokenize(s), " ")
}
