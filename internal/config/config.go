// Package config provides YAML-based configuration loading, difficulty
// presets and environment overrides for the hangman game.
package config

import (
	"time"

	"github.com/vovakirdan/tui-hangman/internal/words"
)

// HangmanConfig contains all configuration for the hangman game.
type HangmanConfig struct {
	Gameplay  GameplayConfig    `yaml:"gameplay"`
	Words     []string          `yaml:"words"`     // Classic board words
	Challenge ChallengeConfig   `yaml:"challenge"` // Word generation backend
	Fallback  []words.Challenge `yaml:"fallback"`  // Used when generation fails, empty means Words
}

// GameplayConfig defines round parameters.
type GameplayConfig struct {
	Lives int `yaml:"lives"` // Wrong guesses tolerated per round
	Zoom  int `yaml:"zoom"`  // Initial zoom in percent (50-200)
}

// ChallengeConfig defines the text-generation backend used by challenge mode.
// Fields tagged with env can be overridden from the environment.
type ChallengeConfig struct {
	Endpoint string        `yaml:"endpoint" env:"HANGMAN_GEMINI_ENDPOINT"`
	Model    string        `yaml:"model" env:"HANGMAN_GEMINI_MODEL"`
	APIKey   string        `yaml:"api_key" env:"GEMINI_API_KEY"`
	Timeout  time.Duration `yaml:"timeout" env:"HANGMAN_FETCH_TIMEOUT"`
	Prompt   string        `yaml:"prompt"`
}

// FallbackChallenges returns the configured fallback table, or the board
// words wrapped as challenges when none is configured.
func (c HangmanConfig) FallbackChallenges() []words.Challenge {
	if len(c.Fallback) > 0 {
		out := make([]words.Challenge, len(c.Fallback))
		copy(out, c.Fallback)
		return out
	}
	return words.FromWords(c.Words)
}
