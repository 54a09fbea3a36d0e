package words

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultFetchTimeout bounds a single fetch when no timeout is configured.
const DefaultFetchTimeout = 20 * time.Second

// ProviderConfig holds configuration for a Provider.
type ProviderConfig struct {
	// Fetcher is the external source. Nil means always use the fallback table.
	Fetcher Fetcher

	// Fallback is the static table used when fetching fails.
	// Empty means DefaultFallback().
	Fallback []Challenge

	// Seed seeds fallback selection. 0 means time-based.
	Seed int64

	// Timeout bounds each fetch.
	Timeout time.Duration

	// Logger receives fetch failures. Nil discards them.
	Logger *log.Logger
}

// Provider hands out challenges and never fails: any fetch error is logged
// and masked by an entry from the fallback table.
type Provider struct {
	fetcher  Fetcher
	fallback []Challenge
	timeout  time.Duration
	logger   *log.Logger

	mu  sync.Mutex // guards rng, Next runs on command goroutines
	rng *rand.Rand
}

// NewProvider creates a provider from the given configuration.
func NewProvider(cfg ProviderConfig) *Provider {
	fallback := cfg.Fallback
	if len(fallback) == 0 {
		fallback = DefaultFallback()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Provider{
		fetcher:  cfg.Fetcher,
		fallback: fallback,
		timeout:  timeout,
		logger:   logger,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Next returns a fetched challenge, or a fallback entry if fetching fails.
func (p *Provider) Next(ctx context.Context) Challenge {
	if p.fetcher == nil {
		return p.Fallback()
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	ch, err := p.fetcher.FetchChallenge(ctx)
	if err == nil {
		p.logger.Debug("challenge fetched", "category", ch.Category)
		return ch
	}

	switch {
	case errors.Is(err, ErrNoAPIKey):
		p.logger.Info("no API key configured, using fallback word")
	case errors.Is(err, context.Canceled):
		p.logger.Debug("challenge fetch cancelled")
	default:
		p.logger.Warn("challenge fetch failed, using fallback word", "error", err)
	}
	return p.Fallback()
}

// Fallback picks a random entry from the static table.
func (p *Provider) Fallback() Challenge {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fallback[p.rng.Intn(len(p.fallback))]
}
