package events

import "time"

// Event codes emitted over the run lifecycle.
const (
	TypeRunStateChanged  = "INTERPRETATION_RUN_STATE_CHANGED"
	TypeFrameworkSettled = "INTERPRETATION_FRAMEWORK_SETTLED"
	TypeRunFinalized     = "INTERPRETATION_RUN_FINALIZED"
)

func NewRunStateChanged(runId, state string) Event {
	return BaseEvent{
		Type: TypeRunStateChanged,
		Data: map[string]interface{}{
			"run_id": runId,
			"state":  state,
		},
		OccurredAt: time.Now(),
	}
}

func NewFrameworkSettled(runId, frameworkId, status string) Event {
	return BaseEvent{
		Type: TypeFrameworkSettled,
		Data: map[string]interface{}{
			"run_id":    runId,
			"framework": frameworkId,
			"status":    status,
		},
		OccurredAt: time.Now(),
	}
}

func NewRunFinalized(runId string, completed, failed int) Event {
	return BaseEvent{
		Type: TypeRunFinalized,
		Data: map[string]interface{}{
			"run_id":    runId,
			"completed": completed,
			"failed":    failed,
		},
		OccurredAt: time.Now(),
	}
}
