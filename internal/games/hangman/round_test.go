package hangman

import (
	"testing"

	"github.com/vovakirdan/tui-hangman/internal/alphabet"
)

func guessAll(r *Round, letters string) {
	for _, c := range letters {
		r.AcceptGuess(c)
	}
}

func TestRoundWinGebet(t *testing.T) {
	r := NewRound([]string{"GEBET"}, 6)

	letters := []rune("GEBT")
	for i, c := range letters {
		if !r.AcceptGuess(c) {
			t.Fatalf("AcceptGuess(%q) should be recorded", c)
		}
		want := StatusPlaying
		if i == len(letters)-1 {
			want = StatusWon
		}
		if got := r.Status(); got != want {
			t.Errorf("after %q status = %v, want %v", c, got, want)
		}
	}

	if r.WrongGuessCount() != 0 {
		t.Errorf("WrongGuessCount() = %d, want 0", r.WrongGuessCount())
	}
	if r.LivesRemaining() != 6 {
		t.Errorf("LivesRemaining() = %d, want 6", r.LivesRemaining())
	}
}

func TestRoundLossRuhe(t *testing.T) {
	r := NewRound([]string{"RUHE"}, 6)
	guessAll(r, "XYZQWK")

	if r.WrongGuessCount() != 6 {
		t.Errorf("WrongGuessCount() = %d, want 6", r.WrongGuessCount())
	}
	if r.LivesRemaining() != 0 {
		t.Errorf("LivesRemaining() = %d, want 0", r.LivesRemaining())
	}
	if r.Status() != StatusLost {
		t.Errorf("Status() = %v, want LOST", r.Status())
	}
}

func TestAcceptGuessIgnored(t *testing.T) {
	tests := []struct {
		name   string
		setup  string
		letter rune
	}{
		{name: "repeat hit", setup: "R", letter: 'R'},
		{name: "repeat miss", setup: "X", letter: 'X'},
		{name: "lowercase", setup: "", letter: 'r'},
		{name: "digit", setup: "", letter: '1'},
		{name: "outside alphabet", setup: "", letter: 'É'},
		{name: "space", setup: "", letter: ' '},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRound([]string{"RUHE"}, 6)
			guessAll(r, tt.setup)
			before := r.Guesses()
			wrong := r.WrongGuessCount()

			if r.AcceptGuess(tt.letter) {
				t.Errorf("AcceptGuess(%q) should be ignored", tt.letter)
			}
			if len(r.Guesses()) != len(before) {
				t.Errorf("guess history changed: %q -> %q", string(before), string(r.Guesses()))
			}
			if r.WrongGuessCount() != wrong {
				t.Errorf("WrongGuessCount() changed: %d -> %d", wrong, r.WrongGuessCount())
			}
		})
	}
}

func TestNoGuessesAfterRoundEnds(t *testing.T) {
	won := NewRound([]string{"RUHE"}, 6)
	guessAll(won, "RUHE")
	if won.AcceptGuess('X') {
		t.Error("guess after win should be ignored")
	}
	if won.Status() != StatusWon {
		t.Errorf("Status() = %v, want WON", won.Status())
	}

	lost := NewRound([]string{"RUHE"}, 2)
	guessAll(lost, "XY")
	if lost.AcceptGuess('R') {
		t.Error("guess after loss should be ignored")
	}
	if lost.Guessed('R') {
		t.Error("R should not be recorded after loss")
	}
}

func TestWrongCountMonotonic(t *testing.T) {
	r := NewRound([]string{"NÄCHSTENLIEBE"}, 6)
	prevWrong := 0
	for i, c := range "AQNÄZXCHJK" {
		r.AcceptGuess(c)
		wrong := r.WrongGuessCount()
		if wrong < prevWrong {
			t.Fatalf("wrong count decreased at %d: %d -> %d", i, prevWrong, wrong)
		}
		if wrong > len(r.Guesses()) {
			t.Fatalf("wrong count %d exceeds guesses %d", wrong, len(r.Guesses()))
		}
		if lr := r.LivesRemaining(); lr < 0 || lr > r.Lives() {
			t.Fatalf("LivesRemaining() = %d out of range", lr)
		}
		prevWrong = wrong
	}
}

func TestMissEndsRoundWithLettersOpen(t *testing.T) {
	r := NewRound([]string{"AB"}, 1)
	guessAll(r, "A")
	guessAll(r, "Z")
	if r.Status() != StatusLost {
		t.Errorf("Status() = %v, want LOST", r.Status())
	}
}

func TestLossTakesPrecedence(t *testing.T) {
	// AcceptGuess stops at the first end state, so both conditions are set up directly.
	r := NewRound([]string{"AB"}, 1)
	r.guessed = map[rune]bool{'A': true, 'B': true, 'Z': true}

	if !r.allTargetsGuessed() || r.WrongGuessCount() < r.Lives() {
		t.Fatal("round should be both solved and out of lives")
	}
	if r.Status() != StatusLost {
		t.Errorf("Status() = %v, want LOST", r.Status())
	}
}

func TestMultipleWordsAndSeparators(t *testing.T) {
	r := NewRound([]string{"GEBET", "VERURTEILT NICHT"}, 6)

	targets := string(r.TargetLetters())
	if targets != "GEBTVRUILNCH" {
		t.Errorf("TargetLetters() = %q, want %q", targets, "GEBTVRUILNCH")
	}
	if r.IsTarget(' ') {
		t.Error("space must not be a target letter")
	}

	guessAll(r, "GEBTVRUILNC")
	if r.Status() != StatusPlaying {
		t.Fatalf("Status() = %v before last letter, want PLAYING", r.Status())
	}
	guessAll(r, "H")
	if r.Status() != StatusWon {
		t.Errorf("Status() = %v, want WON", r.Status())
	}
}

func TestEmptyWordsStayPlaying(t *testing.T) {
	for _, ws := range [][]string{nil, {}, {"   "}} {
		r := NewRound(ws, 6)
		if r.Status() != StatusPlaying {
			t.Errorf("NewRound(%q) status = %v, want PLAYING", ws, r.Status())
		}
		if len(r.TargetLetters()) != 0 {
			t.Errorf("NewRound(%q) targets = %q, want none", ws, string(r.TargetLetters()))
		}
	}
}

func TestNewRoundClearsGuesses(t *testing.T) {
	r := NewRound([]string{"RUHE"}, 6)
	guessAll(r, "XYZQWK")
	if r.Status() != StatusLost {
		t.Fatalf("Status() = %v, want LOST", r.Status())
	}

	r.NewRound([]string{"GEBET"})
	if len(r.Guesses()) != 0 {
		t.Errorf("Guesses() = %q, want empty", string(r.Guesses()))
	}
	if r.Status() != StatusPlaying {
		t.Errorf("Status() = %v, want PLAYING", r.Status())
	}
	if r.LivesRemaining() != 6 {
		t.Errorf("LivesRemaining() = %d, want 6", r.LivesRemaining())
	}
	if w := r.Words(); len(w) != 1 || w[0] != "GEBET" {
		t.Errorf("Words() = %q", w)
	}
}

func TestNewRoundNormalizesWords(t *testing.T) {
	r := NewRound([]string{"Großzügigkeit"}, 6)
	if got := r.Words()[0]; got != "GROẞZÜGIGKEIT" {
		t.Errorf("Words()[0] = %q, want GROẞZÜGIGKEIT", got)
	}
	if !r.IsTarget(alphabet.SharpS) {
		t.Error("sharp S should be a target letter")
	}
}

func TestSharpSKeyMarksSameLetter(t *testing.T) {
	native, ok := alphabet.NormalizeKey("ß")
	if !ok {
		t.Fatal("NormalizeKey(ß) should succeed")
	}
	canonical, ok := alphabet.NormalizeKey("ẞ")
	if !ok {
		t.Fatal("NormalizeKey(ẞ) should succeed")
	}

	a := NewRound([]string{"GROẞZÜGIGKEIT"}, 6)
	a.AcceptGuess(native)
	b := NewRound([]string{"GROẞZÜGIGKEIT"}, 6)
	b.AcceptGuess(canonical)

	if !a.Guessed(alphabet.SharpS) || !b.Guessed(alphabet.SharpS) {
		t.Error("both keys should mark the sharp S as guessed")
	}
	if a.AcceptGuess(canonical) {
		t.Error("canonical sharp S after native key should be a repeat")
	}
	if a.WrongGuessCount() != 0 {
		t.Errorf("WrongGuessCount() = %d, want 0", a.WrongGuessCount())
	}
}

func TestDefaultLives(t *testing.T) {
	for _, lives := range []int{0, -3} {
		if got := NewRound([]string{"RUHE"}, lives).Lives(); got != DefaultLives {
			t.Errorf("NewRound(lives=%d).Lives() = %d, want %d", lives, got, DefaultLives)
		}
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusPlaying: "PLAYING",
		StatusWon:     "WON",
		StatusLost:    "LOST",
		Status(99):    "UNKNOWN",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
