package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const geminiEmbeddingDimension = 768 // text-embedding-004

type GeminiProvider struct {
	ApiKey string
	client *http.Client
}

var _ EmbeddingProvider = &GeminiProvider{}

func NewGeminiProvider(apiKey string) *GeminiProvider {
	return &GeminiProvider{
		ApiKey: apiKey,
		client: &http.Client{},
	}
}

type geminiRequest struct {
	Model   string        `json:"model"`
	Content geminiContent `json:"content"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Embedding struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
}

func (p *GeminiProvider) Embed(ctx context.Context, text string, opts ...Option) ([]float32, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	apiKey := p.ApiKey
	if options.APIKey != "" {
		apiKey = options.APIKey
	}

	modelName := "text-embedding-004"

	geminiReq := geminiRequest{
		Model: modelName,
		Content: geminiContent{
			Parts: []geminiPart{{Text: text}},
		},
	}
	geminiReqJson, err := json.Marshal(geminiReq)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1/models/%s:embedContent",
		modelName,
	)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(geminiReqJson))
	if err != nil {
		return nil, err
	}

	req.Header.Set("x-goog-api-key", apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resByte, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error from gemini response, code %d, body %s", res.StatusCode, string(resByte))
	}

	var resEmbedding geminiResponse
	if err := json.Unmarshal(resByte, &resEmbedding); err != nil {
		return nil, err
	}

	return resEmbedding.Embedding.Values, nil
}

func (p *GeminiProvider) EmbedBatch(ctx context.Context, texts []string, opts ...Option) ([][]float32, error) {
	// The v1 embedContent endpoint is single-input, so batch sequentially.
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := p.Embed(ctx, text, opts...)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}

func (p *GeminiProvider) Dimension() int {
	return geminiEmbeddingDimension
}
