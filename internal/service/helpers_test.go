package service

import (
	"context"
	"sync"

	"witt-interpreter-be/internal/entity"
	"witt-interpreter-be/pkg/embedding"
	"witt-interpreter-be/pkg/events"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// recordingPublisher captures events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) ofType(eventType string) []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.Event
	for _, e := range p.events {
		if e.EventType() == eventType {
			out = append(out, e)
		}
	}
	return out
}

// stubEmbedder returns the same vector for every input.
type stubEmbedder struct {
	vector []float32
}

func (s *stubEmbedder) Embed(_ context.Context, _ string, _ ...embedding.Option) ([]float32, error) {
	return s.vector, nil
}

func (s *stubEmbedder) EmbedBatch(_ context.Context, texts []string, _ ...embedding.Option) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = s.vector
	}
	return out, nil
}

func (s *stubEmbedder) Dimension() int { return len(s.vector) }

// stubSearch serves canned citations without a vector store.
type stubSearch struct {
	primary      []entity.Citation
	secondary    []entity.Citation
	primaryErr   error
	secondaryErr error
}

func (s *stubSearch) SearchWittgenstein(_ context.Context, _, _, _ string) ([]entity.Citation, error) {
	if s.primaryErr != nil {
		return nil, s.primaryErr
	}
	return s.primary, nil
}

func (s *stubSearch) SearchTransaction(_ context.Context, _, _, _ string) ([]entity.Citation, error) {
	if s.secondaryErr != nil {
		return nil, s.secondaryErr
	}
	return s.secondary, nil
}

// stubInterpret fabricates results, optionally failing chosen frameworks. A
// gate channel, when set, blocks generation until released so tests can
// observe the loading state.
type stubInterpret struct {
	mu       sync.Mutex
	failIds  map[string]error
	gate     chan struct{}
	calls    map[string]int
	lastKeys map[string]string
}

func newStubInterpret() *stubInterpret {
	return &stubInterpret{
		failIds:  make(map[string]error),
		calls:    make(map[string]int),
		lastKeys: make(map[string]string),
	}
}

func (s *stubInterpret) record(id, apiKey string) {
	s.mu.Lock()
	s.calls[id]++
	s.lastKeys[id] = apiKey
	s.mu.Unlock()
}

func (s *stubInterpret) callCount(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[id]
}

func (s *stubInterpret) InterpretFramework(_ context.Context, _ string, passages []entity.Citation, framework *entity.FrameworkInfo, apiKey string) (*entity.FrameworkResult, error) {
	if s.gate != nil {
		<-s.gate
	}
	s.record(framework.Id, apiKey)
	if err := s.failIds[framework.Id]; err != nil {
		return nil, err
	}
	return &entity.FrameworkResult{
		Id:                framework.Id,
		Name:              framework.Name,
		Status:            entity.JobComplete,
		Interpretation:    "interpretation for " + framework.Id,
		ReferencePassages: passages,
	}, nil
}

func (s *stubInterpret) InterpretTransaction(_ context.Context, _ string, wittPassages, _ []entity.Citation, apiKey string) (*entity.FrameworkResult, error) {
	if s.gate != nil {
		<-s.gate
	}
	s.record("transactional", apiKey)
	if err := s.failIds["transactional"]; err != nil {
		return nil, err
	}
	return &entity.FrameworkResult{
		Id:                "transactional",
		Name:              "Transactional Interpretation",
		Status:            entity.JobComplete,
		Interpretation:    "interpretation for transactional",
		ReferencePassages: wittPassages,
	}, nil
}
