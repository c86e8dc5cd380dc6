package pgvector

import (
	"context"
	"fmt"
	"strings"

	"witt-interpreter-be/pkg/vectorstore"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store backs the vector contract with Postgres + pgvector through GORM.
type Store struct {
	db *gorm.DB
}

var _ vectorstore.Store = &Store{}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) EnsureCollection(ctx context.Context, _ string, _ int) error {
	// One table holds every collection; the column dimension is fixed by the
	// migration, so there is nothing per-collection to create.
	if err := s.db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS vector`).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).AutoMigrate(&PassageEmbedding{})
}

func (s *Store) Upsert(ctx context.Context, collection string, points []vectorstore.Point) error {
	if len(points) == 0 {
		return nil
	}
	models := make([]*PassageEmbedding, len(points))
	for i, p := range points {
		models[i] = &PassageEmbedding{
			Id:         p.Id,
			Collection: collection,
			Content:    p.Payload.Content,
			Source:     p.Payload.Metadata.Source,
			Section:    p.Payload.Metadata.Section,
			Page:       p.Payload.Metadata.Page,
			Namespace:  p.Payload.Metadata.Namespace,
			Tags:       strings.Join(p.Payload.Metadata.Tags, ","),
			ChunkIndex: p.Payload.Metadata.ChunkIdx,
			Embedding:  pgvector.NewVector(p.Vector),
		}
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(models).Error
}

func (s *Store) Search(ctx context.Context, collection string, vector []float32, filter *vectorstore.Filter, topK int) ([]vectorstore.Result, error) {
	if topK <= 0 {
		topK = 5
	}

	type row struct {
		PassageEmbedding
		Similarity float64
	}
	var rows []row

	queryVector := pgvector.NewVector(vector)

	// Cosine distance in pgvector is 1 - cosine_similarity
	query := s.db.WithContext(ctx).
		Table("passage_embeddings").
		Select("passage_embeddings.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("collection = ?", collection)

	query = applyFilter(query, filter)

	if err := query.Order("similarity DESC").Limit(topK).Scan(&rows).Error; err != nil {
		return nil, err
	}

	results := make([]vectorstore.Result, len(rows))
	for i, r := range rows {
		var tags []string
		if r.Tags != "" {
			tags = strings.Split(r.Tags, ",")
		}
		results[i] = vectorstore.Result{
			Id:    r.Id,
			Score: r.Similarity,
			Payload: vectorstore.Payload{
				Content: r.Content,
				Metadata: vectorstore.Metadata{
					Source:    r.Source,
					Section:   r.Section,
					Page:      r.Page,
					Namespace: r.Namespace,
					Tags:      tags,
					ChunkIdx:  r.ChunkIndex,
				},
			},
		}
	}
	return results, nil
}

func applyFilter(query *gorm.DB, filter *vectorstore.Filter) *gorm.DB {
	if filter == nil {
		return query
	}
	for _, c := range filter.Must {
		clauseSQL, args := conditionSQL(c)
		if clauseSQL != "" {
			query = query.Where(clauseSQL, args...)
		}
	}
	if len(filter.Should) > 0 {
		var parts []string
		var args []any
		for _, c := range filter.Should {
			clauseSQL, condArgs := conditionSQL(c)
			if clauseSQL == "" {
				continue
			}
			parts = append(parts, clauseSQL)
			args = append(args, condArgs...)
		}
		if len(parts) > 0 {
			query = query.Where("("+strings.Join(parts, " OR ")+")", args...)
		}
	}
	return query
}

func conditionSQL(c vectorstore.Condition) (string, []any) {
	switch c.Key {
	case "metadata.namespace":
		return "namespace = ?", []any{c.Value}
	case "metadata.source":
		return "source = ?", []any{c.Value}
	case "metadata.tags":
		values := c.AnyOf
		if len(values) == 0 && c.Value != "" {
			values = []string{c.Value}
		}
		var parts []string
		var args []any
		for _, v := range values {
			parts = append(parts, "(',' || tags || ',') LIKE ?")
			args = append(args, fmt.Sprintf("%%,%s,%%", v))
		}
		if len(parts) == 0 {
			return "", nil
		}
		return "(" + strings.Join(parts, " OR ") + ")", args
	default:
		return "", nil
	}
}
