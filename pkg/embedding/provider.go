package embedding

import "context"

// Option allows per-call parameters, mirroring the llm option style.
type Option func(*Options)

type Options struct {
	APIKey string // Override provider credential for this call
}

func WithAPIKey(key string) Option {
	return func(o *Options) {
		o.APIKey = key
	}
}

// EmbeddingProvider defines the interface for generating text embeddings.
// Dimension is exposed so collection creation can size vectors correctly.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string, opts ...Option) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string, opts ...Option) ([][]float32, error)
	Dimension() int
}
