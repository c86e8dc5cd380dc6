package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"witt-interpreter-be/pkg/vectorstore"
)

// Store is a minimal REST client to Qdrant. It assumes cosine distance.
type Store struct {
	url    string
	apiKey string
	client *http.Client
}

var _ vectorstore.Store = &Store{}

type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

func NewStore(cfg Config) *Store {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Store{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *Store) EnsureCollection(ctx context.Context, name string, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("invalid dimension %d", dimension)
	}
	// Qdrant returns 200 OK if the collection already exists with the same schema
	body := map[string]any{
		"vectors": map[string]any{
			"size":     dimension,
			"distance": "Cosine",
		},
	}
	return s.putJSON(ctx, fmt.Sprintf("%s/collections/%s", s.url, name), body)
}

func (s *Store) Upsert(ctx context.Context, collection string, points []vectorstore.Point) error {
	if len(points) == 0 {
		return nil
	}
	qdrantPoints := make([]map[string]any, len(points))
	for i, p := range points {
		qdrantPoints[i] = map[string]any{
			"id":     p.Id,
			"vector": p.Vector,
			"payload": map[string]any{
				"content":  p.Payload.Content,
				"metadata": p.Payload.Metadata,
			},
		}
	}
	body := map[string]any{"points": qdrantPoints}
	return s.putJSON(ctx, fmt.Sprintf("%s/collections/%s/points?wait=true", s.url, collection), body)
}

func (s *Store) Search(ctx context.Context, collection string, vector []float32, filter *vectorstore.Filter, topK int) ([]vectorstore.Result, error) {
	if topK <= 0 {
		topK = 5
	}
	req := map[string]any{
		"vector":       vector,
		"limit":        topK,
		"with_payload": true,
	}
	if f := buildFilter(filter); f != nil {
		req["filter"] = f
	}

	var resp struct {
		Result []struct {
			Id      any     `json:"id"`
			Score   float64 `json:"score"`
			Payload struct {
				Content  string               `json:"content"`
				Metadata vectorstore.Metadata `json:"metadata"`
			} `json:"payload"`
		} `json:"result"`
	}
	if err := s.postJSON(ctx, fmt.Sprintf("%s/collections/%s/points/search", s.url, collection), req, &resp); err != nil {
		return nil, err
	}

	results := make([]vectorstore.Result, 0, len(resp.Result))
	for _, r := range resp.Result {
		results = append(results, vectorstore.Result{
			Id:    fmt.Sprintf("%v", r.Id),
			Score: r.Score,
			Payload: vectorstore.Payload{
				Content:  r.Payload.Content,
				Metadata: r.Payload.Metadata,
			},
		})
	}
	return results, nil
}

func buildFilter(filter *vectorstore.Filter) map[string]any {
	if filter == nil || (len(filter.Should) == 0 && len(filter.Must) == 0) {
		return nil
	}
	out := map[string]any{}
	if conds := buildConditions(filter.Should); len(conds) > 0 {
		out["should"] = conds
	}
	if conds := buildConditions(filter.Must); len(conds) > 0 {
		out["must"] = conds
	}
	return out
}

func buildConditions(conds []vectorstore.Condition) []map[string]any {
	result := make([]map[string]any, 0, len(conds))
	for _, c := range conds {
		match := map[string]any{}
		if len(c.AnyOf) > 0 {
			match["any"] = c.AnyOf
		} else {
			match["value"] = c.Value
		}
		result = append(result, map[string]any{
			"key":   c.Key,
			"match": match,
		})
	}
	return result
}

func (s *Store) putJSON(ctx context.Context, url string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("qdrant PUT %s failed: %s", url, resp.Status)
	}
	return nil
}

func (s *Store) postJSON(ctx context.Context, url string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("qdrant POST %s failed: %s", url, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
