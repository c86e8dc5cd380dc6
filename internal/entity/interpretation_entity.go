package entity

import (
	"time"

	"github.com/google/uuid"
)

// RunState tracks the pipeline phase of an interpretation run.
type RunState string

const (
	RunIdle                RunState = "idle"
	RunRetrievingPrimary   RunState = "retrieving-primary"
	RunRetrievingSecondary RunState = "retrieving-secondary"
	RunGenerating          RunState = "generating"
	RunFinalizing          RunState = "finalizing"
)

// Interpretation is the full snapshot of one run. The orchestrator replaces
// it wholesale on every transition so readers always see a consistent value.
type Interpretation struct {
	RunId      uuid.UUID         `json:"runId"`
	Question   string            `json:"question"`
	State      RunState          `json:"state"`
	Frameworks []FrameworkResult `json:"frameworks"`
	Citations  []Citation        `json:"citations"`
	Message    string            `json:"message,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}
