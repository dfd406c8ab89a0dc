package config

import (
	"sync"
)

// EmbeddingBackend selects which provider serves embedding and summary calls.
type EmbeddingBackend string

const (
	BackendOpenAI   EmbeddingBackend = "openai"
	BackendGemini   EmbeddingBackend = "gemini"
	BackendDisabled EmbeddingBackend = "disabled"
)

type EmbeddingConfig struct {
	Backend EmbeddingBackend
	OpenAI  *OpenAIConfig
	Gemini  *GeminiConfig
}

var (
	embeddingConfig *EmbeddingConfig
	embeddingOnce   sync.Once
)

// LoadEmbeddingConfig picks a backend from whichever credential is present.
// No credential at all is a normal runtime mode, not an error.
func LoadEmbeddingConfig() *EmbeddingConfig {
	embeddingOnce.Do(func() {
		openAI := LoadOpenAIConfig()
		gemini := LoadGeminiConfig()
		backend := BackendDisabled
		if openAI.APIKey != "" {
			backend = BackendOpenAI
		} else if gemini.APIKey != "" {
			backend = BackendGemini
		}
		embeddingConfig = &EmbeddingConfig{
			Backend: backend,
			OpenAI:  openAI,
			Gemini:  gemini,
		}
	})
	return embeddingConfig
}
