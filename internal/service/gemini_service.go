package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/fadilmartias/career-platform/internal/config"
	"google.golang.org/genai"
)

const (
	geminiEmbeddingModel = "gemini-embedding-001"
	geminiSummaryModel   = "gemini-2.5-flash"
)

type GeminiService struct {
	client         *genai.Client
	requestTimeout time.Duration
}

func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiService{
		client:         client,
		requestTimeout: 90 * time.Second,
	}, nil
}

func (s *GeminiService) Enabled() bool {
	return true
}

func (s *GeminiService) Embed(ctx context.Context, text string) ([]float32, error) {
	trimmedText := strings.TrimSpace(text)
	if trimmedText == "" {
		return nil, &TransientError{Err: fmt.Errorf("text for embedding cannot be empty")}
	}

	if len(trimmedText) > 10000 {
		log.Printf("Warning: text length %d exceeds recommended limit, truncating...", len(trimmedText))
		trimmedText = trimmedText[:10000]
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	content := []*genai.Content{genai.NewContentFromText(trimmedText, genai.RoleUser)}
	result, err := s.client.Models.EmbedContent(timeoutCtx, geminiEmbeddingModel, content, nil)
	if err != nil {
		return nil, &TransientError{Err: err}
	}

	embedding, err := s.validateEmbeddingResponse(result)
	if err != nil {
		return nil, &TransientError{Err: err}
	}
	return embedding, nil
}

func (s *GeminiService) Summarize(ctx context.Context, name, location, experience string) string {
	prompt := fmt.Sprintf("Summarize student %s from %s with experience: %s", name, location, experience)

	timeoutCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0.1)),
		MaxOutputTokens: 50,
	}
	result, err := s.client.Models.GenerateContent(timeoutCtx, geminiSummaryModel, genai.Text(prompt), genConfig)
	if err != nil {
		log.Printf("summary request failed, falling back: %v", err)
		return truncate(experience, 50)
	}
	if err := s.validateGenerateResponse(result); err != nil {
		log.Printf("invalid summary response, falling back: %v", err)
		return truncate(experience, 50)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return truncate(experience, 50)
	}
	return text
}

func (s *GeminiService) validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}

func (s *GeminiService) validateEmbeddingResponse(resp *genai.EmbedContentResponse) ([]float32, error) {
	if resp == nil {
		return nil, fmt.Errorf("response is nil")
	}
	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	embedding := resp.Embeddings[0].Values
	if len(embedding) == 0 {
		return nil, fmt.Errorf("embedding vector is empty")
	}
	for i, val := range embedding {
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil, fmt.Errorf("invalid embedding value at index %d: %v", i, val)
		}
	}
	return embedding, nil
}
