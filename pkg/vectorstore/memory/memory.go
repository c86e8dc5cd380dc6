package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"witt-interpreter-be/pkg/vectorstore"
)

// Store keeps everything in process memory. Used by tests and offline runs.
type Store struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

type collection struct {
	dimension int
	points    map[string]vectorstore.Point
}

var _ vectorstore.Store = &Store{}

func NewStore() *Store {
	return &Store{collections: make(map[string]*collection)}
}

func (s *Store) EnsureCollection(_ context.Context, name string, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("invalid dimension %d", dimension)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.collections[name]; ok {
		if c.dimension != dimension {
			return fmt.Errorf("collection %s exists with dimension %d", name, c.dimension)
		}
		return nil
	}
	s.collections[name] = &collection{
		dimension: dimension,
		points:    make(map[string]vectorstore.Point),
	}
	return nil
}

func (s *Store) Upsert(_ context.Context, name string, points []vectorstore.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[name]
	if !ok {
		return fmt.Errorf("collection %s not found", name)
	}
	for _, p := range points {
		if len(p.Vector) != c.dimension {
			return fmt.Errorf("point %s has dimension %d, want %d", p.Id, len(p.Vector), c.dimension)
		}
		c.points[p.Id] = p
	}
	return nil
}

func (s *Store) Search(_ context.Context, name string, vector []float32, filter *vectorstore.Filter, topK int) ([]vectorstore.Result, error) {
	if topK <= 0 {
		topK = 5
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.collections[name]
	if !ok {
		return nil, fmt.Errorf("collection %s not found", name)
	}

	results := make([]vectorstore.Result, 0, len(c.points))
	for _, p := range c.points {
		if !matches(filter, p.Payload) {
			continue
		}
		results = append(results, vectorstore.Result{
			Id:      p.Id,
			Score:   cosine(vector, p.Vector),
			Payload: p.Payload,
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

func matches(filter *vectorstore.Filter, payload vectorstore.Payload) bool {
	if filter == nil {
		return true
	}
	for _, c := range filter.Must {
		if !matchCondition(c, payload) {
			return false
		}
	}
	if len(filter.Should) == 0 {
		return true
	}
	for _, c := range filter.Should {
		if matchCondition(c, payload) {
			return true
		}
	}
	return false
}

func matchCondition(c vectorstore.Condition, payload vectorstore.Payload) bool {
	switch c.Key {
	case "content":
		return c.Value == payload.Content
	case "metadata.namespace":
		return c.Value == payload.Metadata.Namespace
	case "metadata.source":
		return c.Value == payload.Metadata.Source
	case "metadata.tags":
		for _, tag := range payload.Metadata.Tags {
			if len(c.AnyOf) > 0 {
				for _, want := range c.AnyOf {
					if strings.EqualFold(tag, want) {
						return true
					}
				}
			} else if strings.EqualFold(tag, c.Value) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
