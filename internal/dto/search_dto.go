package dto

import (
	"time"

	"witt-interpreter-be/internal/entity"
)

type SearchRequest struct {
	Query          string `json:"query" validate:"required"`
	CollectionName string `json:"collectionName"`
}

type SearchResponse struct {
	Passages  []entity.Citation `json:"passages"`
	Query     string            `json:"query"`
	Count     int               `json:"count"`
	Timestamp time.Time         `json:"timestamp"`
}
