package service

import "context"

// DisabledProvider is the explicit no-credential variant. Embeddings are
// consistently absent and summaries use the deterministic fallback.
type DisabledProvider struct{}

func NewDisabledProvider() *DisabledProvider {
	return &DisabledProvider{}
}

func (p *DisabledProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, ErrProviderDisabled
}

func (p *DisabledProvider) Summarize(ctx context.Context, name, location, experience string) string {
	return fallbackSummary(name, location, experience)
}

func (p *DisabledProvider) Enabled() bool {
	return false
}
