package words

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// Default Gemini settings.
const (
	DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultGeminiModel    = "gemini-3-flash-preview"
	DefaultPrompt         = "Generiere ein zufälliges, interessantes deutsches Wort für das Spiel Hangman. " +
		"Das Wort sollte zwischen 6 und 12 Buchstaben lang sein. " +
		"Gib mir das Wort, einen kurzen Hinweis und eine Kategorie zurück."
)

var (
	// ErrNoAPIKey is returned before any request is made when no key is configured.
	ErrNoAPIKey = errors.New("words: no API key configured")

	// ErrInvalidResponse is returned when the reply lacks a usable word.
	ErrInvalidResponse = errors.New("words: invalid response format")
)

// GeminiConfig configures the Gemini generateContent backend.
type GeminiConfig struct {
	Endpoint   string // Base models URL, the model name is appended
	Model      string
	APIKey     string
	Prompt     string
	HTTPClient *http.Client
}

// GeminiFetcher asks a Gemini model for a German word, hint and category.
type GeminiFetcher struct {
	cfg GeminiConfig
}

// NewGeminiFetcher builds a fetcher, filling unset fields with defaults.
func NewGeminiFetcher(cfg GeminiConfig) *GeminiFetcher {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = DefaultGeminiEndpoint
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = DefaultGeminiModel
	}
	if strings.TrimSpace(cfg.Prompt) == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	return &GeminiFetcher{cfg: cfg}
}

// FetchChallenge performs one request/response exchange. It never retries.
func (f *GeminiFetcher) FetchChallenge(ctx context.Context) (Challenge, error) {
	apiKey := strings.TrimSpace(f.cfg.APIKey)
	if apiKey == "" {
		return Challenge{}, ErrNoAPIKey
	}

	body, err := json.Marshal(f.requestBody())
	if err != nil {
		return Challenge{}, fmt.Errorf("words: marshal request: %w", err)
	}

	url := strings.TrimRight(f.cfg.Endpoint, "/") + "/" + f.cfg.Model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Challenge{}, fmt.Errorf("words: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	res, err := f.cfg.HTTPClient.Do(req)
	if err != nil {
		return Challenge{}, fmt.Errorf("words: request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return Challenge{}, fmt.Errorf("words: request status %d: %s", res.StatusCode, strings.TrimSpace(string(msg)))
	}

	payload, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return Challenge{}, fmt.Errorf("words: read response: %w", err)
	}

	return parseGeminiResponse(payload)
}

// parseGeminiResponse extracts the challenge JSON from the first candidate.
func parseGeminiResponse(payload []byte) (Challenge, error) {
	text := gjson.GetBytes(payload, "candidates.0.content.parts.0.text")
	if !text.Exists() || strings.TrimSpace(text.String()) == "" {
		return Challenge{}, fmt.Errorf("%w: no candidate text", ErrInvalidResponse)
	}

	var ch Challenge
	if err := json.Unmarshal([]byte(text.String()), &ch); err != nil {
		return Challenge{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	word, ok := cleanWord(ch.Word)
	if !ok {
		return Challenge{}, fmt.Errorf("%w: unusable word %q", ErrInvalidResponse, ch.Word)
	}
	ch.Word = word
	ch.Hint = strings.TrimSpace(ch.Hint)
	ch.Category = strings.TrimSpace(ch.Category)
	return ch, nil
}

func (f *GeminiFetcher) requestBody() map[string]any {
	field := func(desc string) map[string]any {
		return map[string]any{"type": "STRING", "description": desc}
	}
	return map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{{"text": f.cfg.Prompt}}},
		},
		"generationConfig": map[string]any{
			"responseMimeType": "application/json",
			"responseSchema": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"word":     field("Das Wort in Großbuchstaben"),
					"hint":     field("Ein kurzer, hilfreicher Hinweis"),
					"category": field("Die Kategorie des Wortes"),
				},
				"required": []string{"word", "hint", "category"},
			},
		},
	}
}
