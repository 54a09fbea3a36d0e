package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset.
// An empty value yields "" and means keep the configured lives.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// LivesForPreset returns the life budget for a difficulty preset.
func LivesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 8
	case DifficultyHard:
		return 4
	default:
		return 6
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *HangmanConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Gameplay.Lives = LivesForPreset(preset)
}
