package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadilmartias/career-platform/internal/config"
)

// ErrProviderDisabled means no credential is configured. This is a normal
// runtime mode: callers degrade to an empty vector or a fallback summary.
var ErrProviderDisabled = errors.New("embedding provider disabled")

// TransientError wraps a failed provider call (network, quota, malformed
// response) so callers can tell "provider said no" from "provider is down".
// Both degrade the same way today.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("embedding provider call failed: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// EmbeddingProvider converts free text into a fixed-length vector and writes
// short student summaries. One attempt per call, no retries; every failure
// mode is represented in the returned error, never a panic.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Summarize(ctx context.Context, name, location, experience string) string
	Enabled() bool
}

// NewEmbeddingProvider picks the backend from config. The disabled variant is
// explicit rather than an empty-credential sentinel threaded through call
// sites.
func NewEmbeddingProvider(ctx context.Context, cfg *config.EmbeddingConfig) (EmbeddingProvider, error) {
	switch cfg.Backend {
	case config.BackendOpenAI:
		return NewOpenAIService(cfg.OpenAI), nil
	case config.BackendGemini:
		return NewGeminiService(ctx, cfg.Gemini)
	default:
		return NewDisabledProvider(), nil
	}
}

// fallbackSummary is the summary used when no provider is configured.
func fallbackSummary(name, location, experience string) string {
	return fmt.Sprintf("%s, %s: %s...", name, location, truncate(experience, 50))
}

// truncate cuts on rune boundaries so multibyte text never yields a summary
// with a split character at the end.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
