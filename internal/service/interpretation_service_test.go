package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"witt-interpreter-be/internal/constant"
	"witt-interpreter-be/internal/entity"
	"witt-interpreter-be/internal/pkg/ratelimit"
	"witt-interpreter-be/internal/repository/memory"
	"witt-interpreter-be/pkg/events"
	"witt-interpreter-be/pkg/llm"
)

type orchestratorFixture struct {
	svc       IInterpretationService
	search    *stubSearch
	interpret *stubInterpret
	publisher *recordingPublisher
	cooldown  *ratelimit.Cooldown
}

func newOrchestrator(t *testing.T) *orchestratorFixture {
	t.Helper()
	search := &stubSearch{
		primary: []entity.Citation{
			{Id: "witt-0", Text: "w0", Origin: entity.OriginPrimary},
			{Id: "witt-1", Text: "w1", Origin: entity.OriginPrimary},
		},
		secondary: []entity.Citation{
			{Id: "trans-0", Text: "t0", Origin: entity.OriginSecondary},
		},
	}
	interpret := newStubInterpret()
	publisher := &recordingPublisher{}
	cooldown := ratelimit.NewCooldown(time.Minute)

	svc := NewInterpretationService(search, interpret, memory.NewRunRepository(), publisher, cooldown, nopLogger{})
	return &orchestratorFixture{
		svc:       svc,
		search:    search,
		interpret: interpret,
		publisher: publisher,
		cooldown:  cooldown,
	}
}

func waitForIdle(t *testing.T, svc IInterpretationService, runId uuid.UUID) *entity.Interpretation {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		snapshot, err := svc.GetRun(runId)
		require.NoError(t, err)
		if snapshot.State == entity.RunIdle {
			return snapshot
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("run did not finalize in time")
	return nil
}

func waitForStatus(t *testing.T, svc IInterpretationService, runId uuid.UUID, frameworkId string, status entity.JobStatus) *entity.Interpretation {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		snapshot, err := svc.GetRun(runId)
		require.NoError(t, err)
		for _, fw := range snapshot.Frameworks {
			if fw.Id == frameworkId && fw.Status == status {
				return snapshot
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("framework %s never reached status %s", frameworkId, status)
	return nil
}

func TestStartRunHappyPath(t *testing.T) {
	f := newOrchestrator(t)

	snapshot, err := f.svc.StartRun(context.Background(), "What is language?", "client-a", "")
	require.NoError(t, err)

	assert.Equal(t, entity.RunGenerating, snapshot.State)
	require.Len(t, snapshot.Frameworks, len(constant.Frameworks))
	for _, fw := range snapshot.Frameworks {
		assert.Equal(t, entity.JobLoading, fw.Status)
	}
	assert.Len(t, snapshot.Citations, 3, "primary and secondary citations are merged")

	final := waitForIdle(t, f.svc, snapshot.RunId)
	for _, fw := range final.Frameworks {
		assert.Equal(t, entity.JobComplete, fw.Status, fw.Id)
	}
	assert.Equal(t, "All interpretations generated successfully.", final.Message)

	finalized := f.publisher.ofType(events.TypeRunFinalized)
	require.Len(t, finalized, 1)
	assert.EqualValues(t, len(constant.Frameworks), finalized[0].Payload()["completed"])
}

func TestStartRunPartialFailure(t *testing.T) {
	f := newOrchestrator(t)
	f.interpret.failIds["pragmatic"] = llm.ErrRateLimited

	snapshot, err := f.svc.StartRun(context.Background(), "q", "client-b", "")
	require.NoError(t, err)

	final := waitForIdle(t, f.svc, snapshot.RunId)
	completed, failed := 0, 0
	for _, fw := range final.Frameworks {
		switch fw.Status {
		case entity.JobComplete:
			completed++
		case entity.JobError:
			failed++
			assert.Equal(t, "pragmatic", fw.Id)
			assert.Equal(t, "Rate limit exceeded. Please try again later.", fw.Error)
		}
	}
	assert.Equal(t, len(constant.Frameworks)-1, completed)
	assert.Equal(t, 1, failed)
	assert.Contains(t, final.Message, "1 failed")
}

func TestStartRunAllFail(t *testing.T) {
	f := newOrchestrator(t)
	for _, fw := range constant.Frameworks {
		f.interpret.failIds[fw.Id] = llm.ErrTimeout
	}

	snapshot, err := f.svc.StartRun(context.Background(), "q", "client-c", "")
	require.NoError(t, err)

	final := waitForIdle(t, f.svc, snapshot.RunId)
	assert.Equal(t, "All interpretation attempts failed.", final.Message)
}

func TestStartRunFatalWhenNoPrimaryPassages(t *testing.T) {
	f := newOrchestrator(t)
	f.search.primaryErr = ErrNoPassagesFound

	_, err := f.svc.StartRun(context.Background(), "q", "client-d", "")
	assert.ErrorIs(t, err, ErrNoPassagesFound)
}

func TestStartRunSecondaryFailureIsNotFatal(t *testing.T) {
	f := newOrchestrator(t)
	f.search.secondaryErr = context.DeadlineExceeded

	snapshot, err := f.svc.StartRun(context.Background(), "q", "client-e", "")
	require.NoError(t, err)
	assert.Len(t, snapshot.Citations, 2, "only primary citations survive")

	final := waitForIdle(t, f.svc, snapshot.RunId)
	for _, fw := range final.Frameworks {
		assert.Equal(t, entity.JobComplete, fw.Status)
	}
}

func TestStartRunCooldown(t *testing.T) {
	f := newOrchestrator(t)

	first, err := f.svc.StartRun(context.Background(), "q", "client-f", "")
	require.NoError(t, err)
	waitForIdle(t, f.svc, first.RunId)

	_, err = f.svc.StartRun(context.Background(), "q", "client-f", "")
	var throttled *ThrottledError
	require.ErrorAs(t, err, &throttled)
	assert.Greater(t, throttled.WaitSeconds(), 0)
	assert.Contains(t, throttled.Error(), "Please wait")

	// A different submitter is unaffected.
	_, err = f.svc.StartRun(context.Background(), "q", "client-g", "")
	assert.NoError(t, err)
}

func TestGetRunUnknown(t *testing.T) {
	f := newOrchestrator(t)
	_, err := f.svc.GetRun(uuid.New())
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestRetryFramework(t *testing.T) {
	f := newOrchestrator(t)
	f.interpret.failIds["ordinary"] = llm.ErrTimeout

	snapshot, err := f.svc.StartRun(context.Background(), "q", "client-h", "")
	require.NoError(t, err)
	final := waitForIdle(t, f.svc, snapshot.RunId)

	var failedResult *entity.FrameworkResult
	for i := range final.Frameworks {
		if final.Frameworks[i].Id == "ordinary" {
			failedResult = &final.Frameworks[i]
		}
	}
	require.NotNil(t, failedResult)
	require.Equal(t, entity.JobError, failedResult.Status)

	// The model recovers.
	delete(f.interpret.failIds, "ordinary")

	retried, err := f.svc.RetryFramework(context.Background(), snapshot.RunId, "ordinary", "sk-override")
	require.NoError(t, err)
	for _, fw := range retried.Frameworks {
		if fw.Id == "ordinary" {
			assert.Equal(t, entity.JobLoading, fw.Status)
		} else {
			assert.Equal(t, entity.JobComplete, fw.Status, "other frameworks are untouched")
		}
	}

	recovered := waitForStatus(t, f.svc, snapshot.RunId, "ordinary", entity.JobComplete)
	assert.Len(t, recovered.Citations, 3, "stored citations survive the retry")
	assert.Equal(t, "sk-override", f.interpret.lastKeys["ordinary"], "the caller's credential is used for the retry")
	assert.Equal(t, 2, f.interpret.callCount("ordinary"))
}

func TestRetryFrameworkUnknowns(t *testing.T) {
	f := newOrchestrator(t)

	snapshot, err := f.svc.StartRun(context.Background(), "q", "client-i", "")
	require.NoError(t, err)
	waitForIdle(t, f.svc, snapshot.RunId)

	_, err = f.svc.RetryFramework(context.Background(), snapshot.RunId, "nonexistent", "")
	assert.ErrorIs(t, err, ErrUnknownFramework)

	_, err = f.svc.RetryFramework(context.Background(), uuid.New(), "early", "")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestStaleDispatchIsDropped(t *testing.T) {
	f := newOrchestrator(t)

	snapshot, err := f.svc.StartRun(context.Background(), "q", "client-j", "")
	require.NoError(t, err)
	waitForIdle(t, f.svc, snapshot.RunId)

	impl := f.svc.(*interpretationService)
	impl.mu.Lock()
	staleSeq := impl.nextSeqLocked(snapshot.RunId, "early")
	freshSeq := impl.nextSeqLocked(snapshot.RunId, "early")
	impl.mu.Unlock()

	// The fresh dispatch lands first, then the stale one tries to overwrite.
	impl.settle(context.Background(), snapshot.RunId, freshSeq, entity.FrameworkResult{
		Id: "early", Name: "Early Wittgenstein", Status: entity.JobComplete, Interpretation: "fresh",
	})
	impl.settle(context.Background(), snapshot.RunId, staleSeq, entity.FrameworkResult{
		Id: "early", Name: "Early Wittgenstein", Status: entity.JobComplete, Interpretation: "stale",
	})

	current, err := f.svc.GetRun(snapshot.RunId)
	require.NoError(t, err)
	for _, fw := range current.Frameworks {
		if fw.Id == "early" {
			assert.Equal(t, "fresh", fw.Interpretation, "a superseded dispatch never overwrites a newer one")
		}
	}
}

func TestTransactionalFrameworkUsesBothCorpora(t *testing.T) {
	f := newOrchestrator(t)

	snapshot, err := f.svc.StartRun(context.Background(), "q", "client-k", "")
	require.NoError(t, err)
	waitForIdle(t, f.svc, snapshot.RunId)

	assert.Equal(t, 1, f.interpret.callCount("transactional"))
}
