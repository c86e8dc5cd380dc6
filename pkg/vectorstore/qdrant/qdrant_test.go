package qdrant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"witt-interpreter-be/pkg/vectorstore"
)

func TestEnsureCollection(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := NewStore(Config{URL: srv.URL})
	require.NoError(t, store.EnsureCollection(context.Background(), "docs", 1536))

	assert.Equal(t, "PUT /collections/docs", gotPath)
	vectors := gotBody["vectors"].(map[string]any)
	assert.EqualValues(t, 1536, vectors["size"])
	assert.Equal(t, "Cosine", vectors["distance"])
}

func TestSearchSendsFilterAndParsesResults(t *testing.T) {
	var gotBody map[string]any
	var gotAPIKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("api-key")
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{
			"result": []map[string]any{
				{
					"id":    "11111111-1111-1111-1111-111111111111",
					"score": 0.91,
					"payload": map[string]any{
						"content": "the world is all that is the case",
						"metadata": map[string]any{
							"source":    "Tractatus",
							"namespace": "witt-writings",
							"tags":      []string{"wittgenstein"},
						},
					},
				},
			},
		})
	}))
	defer srv.Close()

	store := NewStore(Config{URL: srv.URL, APIKey: "secret"})

	filter := &vectorstore.Filter{
		Should: []vectorstore.Condition{
			{Key: "metadata.namespace", Value: "witt-writings"},
			{Key: "metadata.tags", AnyOf: []string{"wittgenstein", "philosophy"}},
		},
	}
	results, err := store.Search(context.Background(), "docs", []float32{0.1, 0.2}, filter, 5)
	require.NoError(t, err)

	assert.Equal(t, "secret", gotAPIKey)
	assert.EqualValues(t, 5, gotBody["limit"])

	conds := gotBody["filter"].(map[string]any)["should"].([]any)
	require.Len(t, conds, 2)
	first := conds[0].(map[string]any)
	assert.Equal(t, "metadata.namespace", first["key"])
	assert.Equal(t, "witt-writings", first["match"].(map[string]any)["value"])
	second := conds[1].(map[string]any)
	assert.Len(t, second["match"].(map[string]any)["any"], 2)

	require.Len(t, results, 1)
	assert.Equal(t, 0.91, results[0].Score)
	assert.Equal(t, "the world is all that is the case", results[0].Payload.Content)
	assert.Equal(t, "witt-writings", results[0].Payload.Metadata.Namespace)
}

func TestSearchWithoutFilterOmitsIt(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{"result": []any{}})
	}))
	defer srv.Close()

	store := NewStore(Config{URL: srv.URL})
	_, err := store.Search(context.Background(), "docs", []float32{0.1}, nil, 3)
	require.NoError(t, err)

	_, hasFilter := gotBody["filter"]
	assert.False(t, hasFilter)
}

func TestSearchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	store := NewStore(Config{URL: srv.URL})
	_, err := store.Search(context.Background(), "docs", []float32{0.1}, nil, 3)
	assert.Error(t, err)
}
