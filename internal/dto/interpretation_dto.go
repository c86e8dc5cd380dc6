package dto

import (
	"github.com/google/uuid"

	"witt-interpreter-be/internal/entity"
)

type StartRunRequest struct {
	Question string `json:"question" validate:"required"`
}

type StartRunResponse struct {
	RunId    uuid.UUID              `json:"runId"`
	Snapshot *entity.Interpretation `json:"snapshot"`
}

type RetryFrameworkResponse struct {
	RunId     uuid.UUID              `json:"runId"`
	Framework string                 `json:"framework"`
	Snapshot  *entity.Interpretation `json:"snapshot"`
}
