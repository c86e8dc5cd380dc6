package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"witt-interpreter-be/pkg/vectorstore"
)

func seed(t *testing.T) *Store {
	t.Helper()
	store := NewStore()
	ctx := context.Background()
	require.NoError(t, store.EnsureCollection(ctx, "docs", 2))
	require.NoError(t, store.Upsert(ctx, "docs", []vectorstore.Point{
		{Id: "a", Vector: []float32{1, 0}, Payload: vectorstore.Payload{
			Content:  "alpha",
			Metadata: vectorstore.Metadata{Namespace: "witt-writings"},
		}},
		{Id: "b", Vector: []float32{0, 1}, Payload: vectorstore.Payload{
			Content:  "beta",
			Metadata: vectorstore.Metadata{Tags: []string{"Philosophy"}},
		}},
		{Id: "c", Vector: []float32{0.7, 0.7}, Payload: vectorstore.Payload{
			Content:  "gamma",
			Metadata: vectorstore.Metadata{Namespace: "transactional", Tags: []string{"transaction-theory"}},
		}},
	}))
	return store
}

func TestSearchOrdersByScore(t *testing.T) {
	store := seed(t)

	results, err := store.Search(context.Background(), "docs", []float32{1, 0}, nil, 10)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "a", results[0].Id)
	assert.Equal(t, "c", results[1].Id)
	assert.Equal(t, "b", results[2].Id)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestSearchShouldFilter(t *testing.T) {
	store := seed(t)

	filter := &vectorstore.Filter{
		Should: []vectorstore.Condition{
			{Key: "metadata.namespace", Value: "witt-writings"},
			{Key: "metadata.tags", AnyOf: []string{"wittgenstein", "philosophy"}},
		},
	}

	results, err := store.Search(context.Background(), "docs", []float32{1, 0}, filter, 10)
	require.NoError(t, err)
	require.Len(t, results, 2, "either namespace or a tag match qualifies")

	ids := []string{results[0].Id, results[1].Id}
	assert.Contains(t, ids, "a")
	assert.Contains(t, ids, "b", "tag matching is case-insensitive")
}

func TestSearchMustFilter(t *testing.T) {
	store := seed(t)

	filter := &vectorstore.Filter{
		Must: []vectorstore.Condition{
			{Key: "metadata.namespace", Value: "transactional"},
			{Key: "metadata.tags", AnyOf: []string{"transaction-theory"}},
		},
	}

	results, err := store.Search(context.Background(), "docs", []float32{1, 0}, filter, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "c", results[0].Id)
}

func TestSearchTopK(t *testing.T) {
	store := seed(t)

	results, err := store.Search(context.Background(), "docs", []float32{1, 0}, nil, 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestUpsertDimensionMismatch(t *testing.T) {
	store := seed(t)

	err := store.Upsert(context.Background(), "docs", []vectorstore.Point{
		{Id: "bad", Vector: []float32{1, 0, 0}},
	})
	assert.Error(t, err)
}

func TestUpsertReplacesById(t *testing.T) {
	store := seed(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "docs", []vectorstore.Point{
		{Id: "a", Vector: []float32{1, 0}, Payload: vectorstore.Payload{Content: "alpha v2"}},
	}))

	results, err := store.Search(ctx, "docs", []float32{1, 0}, nil, 10)
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, "alpha v2", results[0].Payload.Content)
}

func TestEnsureCollectionConflict(t *testing.T) {
	store := seed(t)

	assert.NoError(t, store.EnsureCollection(context.Background(), "docs", 2))
	assert.Error(t, store.EnsureCollection(context.Background(), "docs", 3))
}
