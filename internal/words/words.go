// Package words supplies target words for a round: a fixed built-in table and
// an optional text-generation backend that invents fresh challenges.
package words

import (
	"context"
	"strings"

	"github.com/vovakirdan/tui-hangman/internal/alphabet"
)

// Challenge is one target word or phrase with optional context for the player.
type Challenge struct {
	Word     string `json:"word" yaml:"word"`
	Hint     string `json:"hint" yaml:"hint"`
	Category string `json:"category" yaml:"category"`
}

// Fetcher produces a fresh challenge from an external source.
type Fetcher interface {
	FetchChallenge(ctx context.Context) (Challenge, error)
}

// DefaultWords is the built-in word table used by the classic board and as
// the fallback when no challenge can be fetched.
var DefaultWords = []string{
	"GROẞZÜGIGKEIT",
	"VERGEBUNG",
	"GEBET",
	"RUHE",
	"NÄCHSTENLIEBE",
	"VERURTEILT NICHT",
}

// DefaultFallback returns the built-in words as challenges without hint or category.
func DefaultFallback() []Challenge {
	out := make([]Challenge, len(DefaultWords))
	for i, w := range DefaultWords {
		out[i] = Challenge{Word: w}
	}
	return out
}

// FromWords wraps plain words as challenges.
func FromWords(list []string) []Challenge {
	out := make([]Challenge, 0, len(list))
	for _, w := range list {
		if strings.TrimSpace(w) == "" {
			continue
		}
		out = append(out, Challenge{Word: alphabet.NormalizeWord(w)})
	}
	return out
}

// cleanWord strips all whitespace from a fetched word and uppercases it.
// Returns false if the result is empty or holds a letter the keyboard cannot produce.
func cleanWord(raw string) (string, bool) {
	word := alphabet.NormalizeWord(strings.Join(strings.Fields(raw), ""))
	if word == "" {
		return "", false
	}
	for _, r := range word {
		if !alphabet.Contains(r) {
			return "", false
		}
	}
	return word, true
}
