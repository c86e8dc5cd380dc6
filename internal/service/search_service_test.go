package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"witt-interpreter-be/internal/constant"
	"witt-interpreter-be/internal/entity"
	"witt-interpreter-be/pkg/vectorstore"
	memstore "witt-interpreter-be/pkg/vectorstore/memory"
)

func seedStore(t *testing.T, points []vectorstore.Point) *memstore.Store {
	t.Helper()
	store := memstore.NewStore()
	ctx := context.Background()
	require.NoError(t, store.EnsureCollection(ctx, constant.DefaultCollection, 2))
	require.NoError(t, store.Upsert(ctx, constant.DefaultCollection, points))
	return store
}

func TestSearchWittgenstein(t *testing.T) {
	store := seedStore(t, []vectorstore.Point{
		{
			Id:     "a",
			Vector: []float32{1, 0},
			Payload: vectorstore.Payload{
				Content: "1. The world is all that is the case.",
				Metadata: vectorstore.Metadata{
					Source:    "Tractatus §1",
					Namespace: constant.PrimaryNamespace,
				},
			},
		},
		{
			Id:     "b",
			Vector: []float32{0.9, 0.1},
			Payload: vectorstore.Payload{
				Content: "Meaning is use, see section 43 for the slogan.",
				Metadata: vectorstore.Metadata{
					Tags: []string{"wittgenstein"},
				},
			},
		},
		{
			Id:     "c",
			Vector: []float32{1, 0},
			Payload: vectorstore.Payload{
				Content: "A passage about commerce.",
				Metadata: vectorstore.Metadata{
					Namespace: constant.SecondaryNamespace,
					Tags:      []string{"transaction-theory"},
				},
			},
		},
	})

	svc := NewSearchService(store, &stubEmbedder{vector: []float32{1, 0}}, nopLogger{}, 5, 3)

	citations, err := svc.SearchWittgenstein(context.Background(), "what is the world?", "", "")
	require.NoError(t, err)
	require.Len(t, citations, 2)

	first := citations[0]
	assert.Equal(t, "witt-0", first.Id)
	assert.Equal(t, entity.OriginPrimary, first.Origin)
	assert.Equal(t, "The world is all that is the case.", first.Text, "leading list number should be stripped")
	assert.Equal(t, "Tractatus §1", first.Source)
	assert.Equal(t, "§1", first.Section)

	second := citations[1]
	assert.Equal(t, "witt-1", second.Id)
	assert.Equal(t, "Wittgenstein's Works", second.Source, "missing source falls back to the default label")
	assert.Equal(t, "§43", second.Section, "section is extracted from the passage body")
}

func TestSearchWittgensteinNoMatches(t *testing.T) {
	store := seedStore(t, []vectorstore.Point{
		{
			Id:     "c",
			Vector: []float32{1, 0},
			Payload: vectorstore.Payload{
				Content:  "A passage about commerce.",
				Metadata: vectorstore.Metadata{Namespace: constant.SecondaryNamespace},
			},
		},
	})

	svc := NewSearchService(store, &stubEmbedder{vector: []float32{1, 0}}, nopLogger{}, 5, 3)

	_, err := svc.SearchWittgenstein(context.Background(), "anything", "", "")
	assert.ErrorIs(t, err, ErrNoPassagesFound)
}

func TestSearchTransaction(t *testing.T) {
	store := seedStore(t, []vectorstore.Point{
		{
			Id:     "c",
			Vector: []float32{1, 0},
			Payload: vectorstore.Payload{
				Content:  "Value arises in the exchange itself.",
				Metadata: vectorstore.Metadata{Namespace: constant.SecondaryNamespace},
			},
		},
		{
			Id:     "d",
			Vector: []float32{0.8, 0.2},
			Payload: vectorstore.Payload{
				Content:  "Transactions as units of analysis.",
				Metadata: vectorstore.Metadata{Source: "Dewey & Bentley", Tags: []string{"transactions"}},
			},
		},
	})

	svc := NewSearchService(store, &stubEmbedder{vector: []float32{1, 0}}, nopLogger{}, 5, 3)

	citations, err := svc.SearchTransaction(context.Background(), "what is value?", "", "")
	require.NoError(t, err)
	require.Len(t, citations, 2)

	assert.Equal(t, "trans-0", citations[0].Id)
	assert.Equal(t, entity.OriginSecondary, citations[0].Origin)
	assert.Equal(t, "Transaction Theory", citations[0].Source, "missing source falls back to the default label")
	assert.Equal(t, "Dewey & Bentley", citations[1].Source)
}

func TestSearchTransactionEmptyIsNotAnError(t *testing.T) {
	store := seedStore(t, nil)
	svc := NewSearchService(store, &stubEmbedder{vector: []float32{1, 0}}, nopLogger{}, 5, 3)

	citations, err := svc.SearchTransaction(context.Background(), "anything", "", "")
	require.NoError(t, err)
	assert.Empty(t, citations)
}

func TestSearchWittgensteinRespectsTopK(t *testing.T) {
	points := make([]vectorstore.Point, 8)
	for i := range points {
		points[i] = vectorstore.Point{
			Id:     string(rune('a' + i)),
			Vector: []float32{1, 0},
			Payload: vectorstore.Payload{
				Content:  "passage",
				Metadata: vectorstore.Metadata{Namespace: constant.PrimaryNamespace},
			},
		}
	}
	store := seedStore(t, points)

	svc := NewSearchService(store, &stubEmbedder{vector: []float32{1, 0}}, nopLogger{}, 5, 3)
	citations, err := svc.SearchWittgenstein(context.Background(), "anything", "", "")
	require.NoError(t, err)
	assert.Len(t, citations, 5)
}
