package pgvector

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// PassageEmbedding mirrors one stored point. Tags are kept comma-joined so a
// plain text column can serve the any-of match.
type PassageEmbedding struct {
	Id         string          `gorm:"primaryKey"`
	Collection string          `gorm:"not null;index"`
	Content    string          `gorm:"type:text"`
	Source     string          `gorm:"type:text"`
	Section    string          `gorm:"type:text"`
	Page       string          `gorm:"type:text"`
	Namespace  string          `gorm:"index"`
	Tags       string          `gorm:"type:text"`
	ChunkIndex int             `gorm:"default:0"`
	Embedding  pgvector.Vector `gorm:"type:vector(1536)"` // text-embedding-3-small uses 1536 dimensions
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime"`
}

func (PassageEmbedding) TableName() string {
	return "passage_embeddings"
}
