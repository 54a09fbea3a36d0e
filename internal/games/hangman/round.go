package hangman

import (
	"github.com/vovakirdan/tui-hangman/internal/alphabet"
)

// DefaultLives is the number of wrong guesses tolerated before a round is lost.
const DefaultLives = 6

// Status is the derived outcome of a round.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "PLAYING"
	case StatusWon:
		return "WON"
	case StatusLost:
		return "LOST"
	default:
		return "UNKNOWN"
	}
}

// Round holds the target words and guess history of one play-through.
// Status, wrong guesses and lives are always derived, never stored.
type Round struct {
	words   []string
	lives   int
	guessed map[rune]bool
	order   []rune // guess order, display only
	targets map[rune]bool
}

// NewRound creates a round over the given words with the given life budget.
// A non-positive budget means DefaultLives.
func NewRound(words []string, lives int) *Round {
	if lives <= 0 {
		lives = DefaultLives
	}
	r := &Round{lives: lives}
	r.NewRound(words)
	return r
}

// NewRound replaces the target words and clears every guess.
func (r *Round) NewRound(words []string) {
	r.words = make([]string, len(words))
	r.targets = make(map[rune]bool)
	for i, w := range words {
		w = alphabet.NormalizeWord(w)
		r.words[i] = w
		for _, c := range w {
			if !alphabet.IsSeparator(c) {
				r.targets[c] = true
			}
		}
	}
	r.guessed = make(map[rune]bool)
	r.order = nil
}

// AcceptGuess records a letter. Guesses after the round ended, repeated
// letters and runes outside the alphabet are ignored.
// Returns whether the guess was recorded.
func (r *Round) AcceptGuess(letter rune) bool {
	if r.Status() != StatusPlaying {
		return false
	}
	if !alphabet.Contains(letter) || r.guessed[letter] {
		return false
	}
	r.guessed[letter] = true
	r.order = append(r.order, letter)
	return true
}

// WrongGuessCount counts guessed letters that appear in no target word.
func (r *Round) WrongGuessCount() int {
	wrong := 0
	for letter := range r.guessed {
		if !r.targets[letter] {
			wrong++
		}
	}
	return wrong
}

// LivesRemaining returns max(0, lives - wrong guesses).
func (r *Round) LivesRemaining() int {
	return max(0, r.lives-r.WrongGuessCount())
}

// Status derives the round outcome. A loss takes precedence over a win:
// once the budget is spent no further letter matters.
func (r *Round) Status() Status {
	if r.WrongGuessCount() >= r.lives {
		return StatusLost
	}
	if len(r.targets) > 0 && r.allTargetsGuessed() {
		return StatusWon
	}
	return StatusPlaying
}

func (r *Round) allTargetsGuessed() bool {
	for letter := range r.targets {
		if !r.guessed[letter] {
			return false
		}
	}
	return true
}

// Lives returns the configured life budget.
func (r *Round) Lives() int {
	return r.lives
}

// Words returns a copy of the normalized target words.
func (r *Round) Words() []string {
	out := make([]string, len(r.words))
	copy(out, r.words)
	return out
}

// Guessed reports whether a letter has been guessed.
func (r *Round) Guessed(letter rune) bool {
	return r.guessed[letter]
}

// IsTarget reports whether a letter occurs in any target word.
func (r *Round) IsTarget(letter rune) bool {
	return r.targets[letter]
}

// Guesses returns guessed letters in the order they were made.
func (r *Round) Guesses() []rune {
	out := make([]rune, len(r.order))
	copy(out, r.order)
	return out
}

// TargetLetters returns the distinct letters of all target words in
// first-appearance order.
func (r *Round) TargetLetters() []rune {
	seen := make(map[rune]bool, len(r.targets))
	var out []rune
	for _, w := range r.words {
		for _, c := range w {
			if alphabet.IsSeparator(c) || seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
