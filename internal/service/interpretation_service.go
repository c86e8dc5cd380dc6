package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"witt-interpreter-be/internal/constant"
	"witt-interpreter-be/internal/entity"
	"witt-interpreter-be/internal/pkg/logger"
	"witt-interpreter-be/internal/pkg/ratelimit"
	"witt-interpreter-be/internal/repository/memory"
	"witt-interpreter-be/pkg/events"
	"witt-interpreter-be/pkg/llm"
)

type IInterpretationService interface {
	// StartRun retrieves passages synchronously, then fans generation out in
	// the background. The returned snapshot is already in the generating
	// state with every framework marked loading.
	StartRun(ctx context.Context, question, clientKey, apiKey string) (*entity.Interpretation, error)

	// GetRun returns the current snapshot for a run.
	GetRun(runId uuid.UUID) (*entity.Interpretation, error)

	// RetryFramework regenerates a single framework from the run's stored
	// citations without touching the vector store.
	RetryFramework(ctx context.Context, runId uuid.UUID, frameworkId, apiKey string) (*entity.Interpretation, error)
}

type interpretationService struct {
	search    ISearchService
	interpret IInterpretService
	runs      *memory.RunRepository
	publisher IPublisherService
	cooldown  *ratelimit.Cooldown
	logger    logger.ILogger

	mu  sync.Mutex
	seq map[string]uint64 // per run+framework dispatch counter
}

func NewInterpretationService(
	search ISearchService,
	interpret IInterpretService,
	runs *memory.RunRepository,
	publisher IPublisherService,
	cooldown *ratelimit.Cooldown,
	sysLogger logger.ILogger,
) IInterpretationService {
	return &interpretationService{
		search:    search,
		interpret: interpret,
		runs:      runs,
		publisher: publisher,
		cooldown:  cooldown,
		logger:    sysLogger,
		seq:       make(map[string]uint64),
	}
}

func (s *interpretationService) StartRun(ctx context.Context, question, clientKey, apiKey string) (*entity.Interpretation, error) {
	if wait, ok := s.cooldown.Try(clientKey); !ok {
		return nil, &ThrottledError{Wait: wait}
	}

	runId := uuid.New()
	snapshot := &entity.Interpretation{
		RunId:     runId,
		Question:  question,
		State:     entity.RunRetrievingPrimary,
		Timestamp: time.Now(),
	}
	s.store(ctx, snapshot)

	primary, err := s.search.SearchWittgenstein(ctx, question, "", apiKey)
	if err != nil {
		snapshot.State = entity.RunIdle
		snapshot.Message = "No relevant Wittgenstein passages were found for this question."
		s.store(ctx, snapshot)
		return nil, err
	}
	snapshot.Citations = MergeCitations(snapshot.Citations, primary)
	snapshot.State = entity.RunRetrievingSecondary
	s.store(ctx, snapshot)

	secondary, err := s.search.SearchTransaction(ctx, question, "", apiKey)
	if err != nil {
		// Secondary retrieval never fails a run.
		s.logger.Warn("Interpretation", "Secondary retrieval failed", map[string]interface{}{
			"run_id": runId.String(),
			"error":  err.Error(),
		})
		secondary = nil
	}
	snapshot.Citations = MergeCitations(snapshot.Citations, secondary)

	snapshot.State = entity.RunGenerating
	snapshot.Frameworks = make([]entity.FrameworkResult, len(constant.Frameworks))
	for i, fw := range constant.Frameworks {
		snapshot.Frameworks[i] = entity.FrameworkResult{
			Id:     fw.Id,
			Name:   fw.Name,
			Status: entity.JobLoading,
		}
	}
	s.store(ctx, snapshot)

	result := cloneSnapshot(snapshot)
	go s.generateAll(context.Background(), runId, question, primary, secondary, apiKey)

	return result, nil
}

func (s *interpretationService) GetRun(runId uuid.UUID) (*entity.Interpretation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot, found := s.runs.Get(runId)
	if !found {
		return nil, ErrRunNotFound
	}
	return cloneSnapshot(snapshot), nil
}

func (s *interpretationService) RetryFramework(ctx context.Context, runId uuid.UUID, frameworkId, apiKey string) (*entity.Interpretation, error) {
	fw := constant.FrameworkById(frameworkId)
	if fw == nil {
		return nil, ErrUnknownFramework
	}

	s.mu.Lock()
	snapshot, found := s.runs.Get(runId)
	if !found {
		s.mu.Unlock()
		return nil, ErrRunNotFound
	}

	primary, secondary := SplitByOrigin(snapshot.Citations)
	if len(primary) == 0 {
		s.mu.Unlock()
		return nil, ErrNoPassagesFound
	}

	question := snapshot.Question
	snapshot.Frameworks = ReplaceFramework(snapshot.Frameworks, entity.FrameworkResult{
		Id:     fw.Id,
		Name:   fw.Name,
		Status: entity.JobLoading,
	})
	s.runs.Save(snapshot)
	seq := s.nextSeqLocked(runId, fw.Id)
	result := cloneSnapshot(snapshot)
	s.mu.Unlock()

	s.publisher.Publish(ctx, events.NewFrameworkSettled(runId.String(), fw.Id, string(entity.JobLoading)))

	go func() {
		ctx := context.Background()
		settled := s.dispatch(ctx, question, primary, secondary, fw, apiKey)
		s.settle(ctx, runId, seq, settled)
	}()

	return result, nil
}

// generateAll runs one goroutine per framework, joins them all, then
// finalizes the run with a summary message.
func (s *interpretationService) generateAll(ctx context.Context, runId uuid.UUID, question string, primary, secondary []entity.Citation, apiKey string) {
	var wg sync.WaitGroup
	for i := range constant.Frameworks {
		fw := &constant.Frameworks[i]

		s.mu.Lock()
		seq := s.nextSeqLocked(runId, fw.Id)
		s.mu.Unlock()

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error("Interpretation", "Framework goroutine panicked", map[string]interface{}{
						"run_id":    runId.String(),
						"framework": fw.Id,
						"panic":     fmt.Sprintf("%v", r),
					})
					s.settle(ctx, runId, seq, entity.FrameworkResult{
						Id:     fw.Id,
						Name:   fw.Name,
						Status: entity.JobError,
						Error:  "Internal error while generating this interpretation.",
					})
				}
			}()
			s.settle(ctx, runId, seq, s.dispatch(ctx, question, primary, secondary, fw, apiKey))
		}()
	}
	wg.Wait()

	s.finalize(ctx, runId)
}

func (s *interpretationService) dispatch(ctx context.Context, question string, primary, secondary []entity.Citation, fw *entity.FrameworkInfo, apiKey string) entity.FrameworkResult {
	var (
		result *entity.FrameworkResult
		err    error
	)
	if fw.Id == constant.FrameworkTransactional {
		result, err = s.interpret.InterpretTransaction(ctx, question, primary, secondary, apiKey)
	} else {
		result, err = s.interpret.InterpretFramework(ctx, question, primary, fw, apiKey)
	}
	if err != nil {
		return entity.FrameworkResult{
			Id:     fw.Id,
			Name:   fw.Name,
			Status: entity.JobError,
			Error:  frameworkErrorMessage(err),
		}
	}
	return *result
}

// settle applies a finished framework result to the run snapshot. A result
// from a superseded dispatch is dropped so the most recent dispatch always
// wins.
func (s *interpretationService) settle(ctx context.Context, runId uuid.UUID, seq uint64, result entity.FrameworkResult) {
	s.mu.Lock()
	if s.seq[seqKey(runId, result.Id)] != seq {
		s.mu.Unlock()
		s.logger.Debug("Interpretation", "Dropping stale framework result", map[string]interface{}{
			"run_id":    runId.String(),
			"framework": result.Id,
		})
		return
	}
	snapshot, found := s.runs.Get(runId)
	if !found {
		s.mu.Unlock()
		return
	}
	snapshot.Frameworks = ReplaceFramework(snapshot.Frameworks, result)
	snapshot.Timestamp = time.Now()
	s.runs.Save(snapshot)
	s.mu.Unlock()

	s.publisher.Publish(ctx, events.NewFrameworkSettled(runId.String(), result.Id, string(result.Status)))
}

func (s *interpretationService) finalize(ctx context.Context, runId uuid.UUID) {
	s.mu.Lock()
	snapshot, found := s.runs.Get(runId)
	if !found {
		s.mu.Unlock()
		return
	}

	snapshot.State = entity.RunFinalizing
	s.runs.Save(snapshot)
	s.mu.Unlock()
	s.publisher.Publish(ctx, events.NewRunStateChanged(runId.String(), string(entity.RunFinalizing)))

	s.mu.Lock()
	snapshot, found = s.runs.Get(runId)
	if !found {
		s.mu.Unlock()
		return
	}
	completed, failed := 0, 0
	for _, fw := range snapshot.Frameworks {
		switch fw.Status {
		case entity.JobComplete:
			completed++
		case entity.JobError:
			failed++
		}
	}
	total := len(snapshot.Frameworks)
	switch {
	case failed == 0:
		snapshot.Message = "All interpretations generated successfully."
	case completed == 0:
		snapshot.Message = "All interpretation attempts failed."
	default:
		snapshot.Message = fmt.Sprintf("Generated %d of %d interpretations; %d failed.", completed, total, failed)
	}
	snapshot.State = entity.RunIdle
	snapshot.Timestamp = time.Now()
	s.runs.Save(snapshot)
	s.mu.Unlock()

	s.publisher.Publish(ctx, events.NewRunStateChanged(runId.String(), string(entity.RunIdle)))
	s.publisher.Publish(ctx, events.NewRunFinalized(runId.String(), completed, failed))

	s.logger.Info("Interpretation", "Run finalized", map[string]interface{}{
		"run_id":    runId.String(),
		"completed": completed,
		"failed":    failed,
	})
}

// store saves the snapshot and announces its state under the service lock.
func (s *interpretationService) store(ctx context.Context, snapshot *entity.Interpretation) {
	s.mu.Lock()
	s.runs.Save(snapshot)
	s.mu.Unlock()
	s.publisher.Publish(ctx, events.NewRunStateChanged(snapshot.RunId.String(), string(snapshot.State)))
}

func (s *interpretationService) nextSeqLocked(runId uuid.UUID, frameworkId string) uint64 {
	key := seqKey(runId, frameworkId)
	s.seq[key]++
	return s.seq[key]
}

func seqKey(runId uuid.UUID, frameworkId string) string {
	return runId.String() + "/" + frameworkId
}

func frameworkErrorMessage(err error) string {
	switch {
	case errors.Is(err, llm.ErrInvalidCredential):
		return "Invalid API credential."
	case errors.Is(err, llm.ErrRateLimited):
		return "Rate limit exceeded. Please try again later."
	case errors.Is(err, llm.ErrTimeout):
		return "The request timed out."
	default:
		return "Failed to generate interpretation."
	}
}

func cloneSnapshot(snapshot *entity.Interpretation) *entity.Interpretation {
	out := *snapshot
	out.Frameworks = make([]entity.FrameworkResult, len(snapshot.Frameworks))
	copy(out.Frameworks, snapshot.Frameworks)
	out.Citations = make([]entity.Citation, len(snapshot.Citations))
	copy(out.Citations, snapshot.Citations)
	return &out
}
