package embedding

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"witt-interpreter-be/pkg/llm"
)

const openAIEmbeddingDimension = 1536 // text-embedding-3-small

type OpenAIProvider struct {
	client openai.Client
	model  string
}

var _ EmbeddingProvider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = "text-embedding-3-small"
	}
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (p *OpenAIProvider) Embed(ctx context.Context, text string, opts ...Option) ([]float32, error) {
	vectors, err := p.EmbedBatch(ctx, []string{text}, opts...)
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (p *OpenAIProvider) EmbedBatch(ctx context.Context, texts []string, opts ...Option) ([][]float32, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	var reqOpts []option.RequestOption
	if options.APIKey != "" {
		reqOpts = append(reqOpts, option.WithAPIKey(options.APIKey))
	}

	resp, err := p.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Model: openai.EmbeddingModel(p.model),
	}, reqOpts...)
	if err != nil {
		return nil, classifyEmbeddingError(err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("openai embeddings: got %d vectors for %d inputs", len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(resp.Data))
	for _, d := range resp.Data {
		vec := make([]float32, len(d.Embedding))
		for i, v := range d.Embedding {
			vec[i] = float32(v)
		}
		vectors[d.Index] = vec
	}
	return vectors, nil
}

func (p *OpenAIProvider) Dimension() int {
	return openAIEmbeddingDimension
}

// classifyEmbeddingError reuses the shared provider error classes so callers
// handle embedding and generation failures uniformly.
func classifyEmbeddingError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", llm.ErrTimeout, err)
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", llm.ErrInvalidCredential, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", llm.ErrRateLimited, err)
		}
	}
	return fmt.Errorf("openai embeddings: %w", err)
}
