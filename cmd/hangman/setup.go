package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/games/hangman"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

// app bundles what every command needs once flags and config are resolved.
type app struct {
	cfg      config.HangmanConfig
	provider *words.Provider
	logger   *log.Logger
	closeLog func()
}

// setup loads configuration, applies it to new games and builds the word
// provider. Logs go to --log if set, otherwise to defaultLog.
func setup(defaultLog io.Writer) (*app, error) {
	logger, closeLog, err := newLogger(defaultLog)
	if err != nil {
		return nil, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		closeLog()
		return nil, err
	}

	cfg, err := config.LoadHangman(flagConfig)
	if err != nil {
		closeLog()
		return nil, err
	}
	config.ApplyPreset(&cfg, preset)

	hangman.Configure(hangman.Settings{
		Words: cfg.Words,
		Lives: cfg.Gameplay.Lives,
		Zoom:  cfg.Gameplay.Zoom,
	})

	fetcher := words.NewGeminiFetcher(words.GeminiConfig{
		Endpoint: cfg.Challenge.Endpoint,
		Model:    cfg.Challenge.Model,
		APIKey:   cfg.Challenge.APIKey,
		Prompt:   cfg.Challenge.Prompt,
	})
	provider := words.NewProvider(words.ProviderConfig{
		Fetcher:  fetcher,
		Fallback: cfg.FallbackChallenges(),
		Seed:     flagSeed,
		Timeout:  cfg.Challenge.Timeout,
		Logger:   logger.WithPrefix("words"),
	})

	logger.Debug("config loaded",
		"lives", cfg.Gameplay.Lives,
		"words", len(cfg.Words),
		"model", cfg.Challenge.Model,
		"api_key", cfg.Challenge.APIKey != "",
	)

	return &app{
		cfg:      cfg,
		provider: provider,
		logger:   logger,
		closeLog: closeLog,
	}, nil
}

// newLogger builds the process logger from --log and --log-level.
func newLogger(defaultLog io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := defaultLog
	closeLog := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log %s: %w", flagLogPath, err)
		}
		out = f
		closeLog = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "hangman",
		Level:           level,
	})
	return logger, closeLog, nil
}
