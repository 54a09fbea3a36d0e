package hangman

// Snapshot captures the observable game state for tests and logs.
type Snapshot struct {
	Mode      string
	Words     []string
	Guesses   string // guessed letters in guess order
	Wrong     int
	LivesLeft int
	Lives     int
	Status    Status
	Zoom      int
	Loading   bool
	Hint      string
	Category  string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Mode:      string(g.mode),
		Words:     g.round.Words(),
		Guesses:   string(g.round.Guesses()),
		Wrong:     g.round.WrongGuessCount(),
		LivesLeft: g.round.LivesRemaining(),
		Lives:     g.round.Lives(),
		Status:    g.round.Status(),
		Zoom:      g.zoom,
		Loading:   g.loading,
		Hint:      g.challenge.Hint,
		Category:  g.challenge.Category,
	}
}
