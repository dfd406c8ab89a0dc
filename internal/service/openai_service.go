package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fadilmartias/career-platform/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	openAIEmbeddingModel = "text-embedding-ada-002"
	openAISummaryModel   = "gpt-4o-mini"
)

type OpenAIService struct {
	client  *resty.Client
	baseURL string
}

func NewOpenAIService(cfg *config.OpenAIConfig) *OpenAIService {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("Authorization", "Bearer "+cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	return &OpenAIService{
		client:  client,
		baseURL: cfg.BaseURL,
	}
}

func (s *OpenAIService) Enabled() bool {
	return true
}

// Embed requests a single embedding. One attempt; any failure comes back as
// a TransientError for the caller to degrade on.
func (s *OpenAIService) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &TransientError{Err: fmt.Errorf("text for embedding cannot be empty")}
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model": openAIEmbeddingModel,
			"input": text,
		}).
		Post(s.baseURL + "/embeddings")
	if err != nil {
		return nil, &TransientError{Err: err}
	}
	if resp.IsError() {
		return nil, &TransientError{Err: fmt.Errorf("embeddings returned %s", resp.Status())}
	}

	values := gjson.Get(resp.String(), "data.0.embedding").Array()
	if len(values) == 0 {
		return nil, &TransientError{Err: fmt.Errorf("no embedding in response")}
	}
	embedding := make([]float32, len(values))
	for i, v := range values {
		embedding[i] = float32(v.Float())
	}
	return embedding, nil
}

// Summarize writes a short student summary. Failures fall back to truncated
// experience text; this never blocks student intake.
func (s *OpenAIService) Summarize(ctx context.Context, name, location, experience string) string {
	prompt := fmt.Sprintf("Summarize student %s from %s with experience: %s", name, location, experience)

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model": openAISummaryModel,
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
			"max_tokens": 50,
		}).
		Post(s.baseURL + "/chat/completions")
	if err != nil {
		log.Printf("summary request failed, falling back: %v", err)
		return truncate(experience, 50)
	}
	if resp.IsError() {
		log.Printf("summary request returned %s, falling back", resp.Status())
		return truncate(experience, 50)
	}

	text := strings.TrimSpace(gjson.Get(resp.String(), "choices.0.message.content").String())
	if text == "" {
		return truncate(experience, 50)
	}
	return text
}
