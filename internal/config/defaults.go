package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-hangman/internal/words"
)

//go:embed defaults/hangman.yaml
var defaultHangmanYAML []byte

// DefaultHangmanConfig returns the default hangman configuration.
func DefaultHangmanConfig() HangmanConfig {
	return HangmanConfig{
		Gameplay: GameplayConfig{
			Lives: 6,
			Zoom:  100,
		},
		Words: append([]string(nil), words.DefaultWords...),
		Challenge: ChallengeConfig{
			Endpoint: words.DefaultGeminiEndpoint,
			Model:    words.DefaultGeminiModel,
			Timeout:  words.DefaultFetchTimeout,
		},
	}
}

// DefaultYAML returns the embedded default config, e.g. for writing a
// starter file to ~/.hangman/configs.
func DefaultYAML() []byte {
	return defaultHangmanYAML
}
