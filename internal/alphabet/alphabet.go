// Package alphabet defines the German guess alphabet and the rules that turn
// raw keyboard input and target words into canonical letters.
package alphabet

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SharpS is the canonical capital sharp-S letter used for every ß input.
const SharpS = 'ẞ'

// Letters is the guess alphabet in on-screen keyboard order.
var Letters = []rune{
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
	'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	'Ä', 'Ö', 'Ü', SharpS,
}

// Contains reports whether r is a guessable letter.
func Contains(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z':
		return true
	case r == 'Ä', r == 'Ö', r == 'Ü', r == SharpS:
		return true
	}
	return false
}

// IsSeparator reports whether r separates words inside a target phrase.
// Separators are never guessable and never count as letters.
func IsSeparator(r rune) bool {
	return unicode.IsSpace(r)
}

// NormalizeKey maps a raw key press to a guess letter.
// German uppercasing turns ß into "SS"; both forms become ẞ.
// Returns false for anything outside the alphabet.
func NormalizeKey(raw string) (rune, bool) {
	if raw == "" {
		return 0, false
	}
	if raw == "ß" {
		return SharpS, true
	}

	key := toUpper(raw)
	if key == "SS" {
		return SharpS, true
	}

	runes := []rune(key)
	if len(runes) != 1 || !Contains(runes[0]) {
		return 0, false
	}
	return runes[0], true
}

// NormalizeWord uppercases a target word or phrase.
// ß maps to ẞ instead of the "SS" that plain German uppercasing would produce,
// so target letters and guesses share one canonical form.
func NormalizeWord(s string) string {
	s = strings.ReplaceAll(s, "ß", string(SharpS))
	return toUpper(s)
}

// toUpper applies German uppercasing. Casers keep internal state, so each
// call gets its own.
func toUpper(s string) string {
	return cases.Upper(language.German).String(s)
}
