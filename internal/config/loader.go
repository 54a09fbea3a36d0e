package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-hangman/internal/alphabet"
)

// LoadHangman loads hangman configuration.
// Search order: customPath -> ~/.hangman/configs/hangman.yaml -> ./configs/hangman.yaml -> embedded default
// Missing fields keep their defaults. Environment overrides are applied last.
func LoadHangman(customPath string) (HangmanConfig, error) {
	cfg, err := loadHangmanFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, Validate(cfg)
}

func loadHangmanFile(customPath string) (HangmanConfig, error) {
	cfg := DefaultHangmanConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hangman.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultHangmanConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "hangman.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultHangmanConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHangmanYAML, &cfg); err != nil {
		return DefaultHangmanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hangman", "configs", filename)
}

// ApplyEnv overrides challenge settings from the environment
// (GEMINI_API_KEY, HANGMAN_GEMINI_MODEL, HANGMAN_GEMINI_ENDPOINT, HANGMAN_FETCH_TIMEOUT).
// Unset variables leave the loaded values alone.
func ApplyEnv(cfg *HangmanConfig) error {
	if err := env.Parse(&cfg.Challenge); err != nil {
		return fmt.Errorf("config: environment overrides: %w", err)
	}
	return nil
}

// Validate checks that every configured word can be guessed on the keyboard.
func Validate(cfg HangmanConfig) error {
	if cfg.Gameplay.Lives < 0 {
		return fmt.Errorf("config: lives must not be negative, got %d", cfg.Gameplay.Lives)
	}
	for _, w := range cfg.Words {
		if err := validateWord(w); err != nil {
			return err
		}
	}
	for _, ch := range cfg.Fallback {
		if err := validateWord(ch.Word); err != nil {
			return fmt.Errorf("fallback: %w", err)
		}
	}
	return nil
}

// validateWord requires at least one guessable letter and nothing off the keyboard.
func validateWord(w string) error {
	letters := 0
	for _, r := range alphabet.NormalizeWord(w) {
		switch {
		case alphabet.Contains(r):
			letters++
		case !alphabet.IsSeparator(r):
			return fmt.Errorf("config: word %q contains %q, which is not on the keyboard", w, r)
		}
	}
	if letters == 0 {
		return fmt.Errorf("config: word %q has no letters to guess", w)
	}
	return nil
}
