package factory

import (
	"fmt"

	"campusai-be/pkg/llm"
	"campusai-be/pkg/llm/ollama"
	"campusai-be/pkg/llm/openai"
)

// NewLLMProvider builds the configured provider. "openai" is the production
// backend; "ollama" points at a local daemon for development.
func NewLLMProvider(provider, model, openAIKey, ollamaBaseURL string) (llm.LLMProvider, error) {
	switch provider {
	case "openai":
		return openai.NewOpenAIProvider(openAIKey, model), nil
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}
}
