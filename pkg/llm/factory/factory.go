package factory

import (
	"fmt"

	"witt-interpreter-be/pkg/llm"
	"witt-interpreter-be/pkg/llm/huggingface"
	"witt-interpreter-be/pkg/llm/ollama"
	"witt-interpreter-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, apiKey, ollamaBaseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		return openai.NewOpenAIProvider(apiKey, modelName), nil
	case "huggingface":
		return huggingface.NewHuggingFaceProvider(apiKey, "", modelName), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
