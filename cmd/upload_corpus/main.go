package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"witt-interpreter-be/internal/config"
	"witt-interpreter-be/pkg/database"
	"witt-interpreter-be/pkg/embedding"
	"witt-interpreter-be/pkg/utils"
	"witt-interpreter-be/pkg/vectorstore"
	memstore "witt-interpreter-be/pkg/vectorstore/memory"
	"witt-interpreter-be/pkg/vectorstore/pgvector"
	"witt-interpreter-be/pkg/vectorstore/qdrant"
)

// upload_corpus ingests text files into the vector store so the retrieval
// endpoints have something to search. Each file is chunked, embedded and
// upserted with the namespace and tags the passage filters match on.
//
// Usage:
//
//	go run ./cmd/upload_corpus -dir ./corpus/wittgenstein -namespace witt-writings -tags wittgenstein,philosophy
//	go run ./cmd/upload_corpus -dir ./corpus/transactions -namespace transactional -tags transaction-theory
func main() {
	var (
		dir        = flag.String("dir", "", "directory of .txt/.md files to ingest")
		file       = flag.String("file", "", "single file to ingest (alternative to -dir)")
		namespace  = flag.String("namespace", "witt-writings", "namespace stored on every chunk")
		tags       = flag.String("tags", "wittgenstein,philosophy", "comma separated tags stored on every chunk")
		collection = flag.String("collection", "", "collection name (defaults to QDRANT_COLLECTION)")
		chunkSize  = flag.Int("chunk-size", 1500, "chunk size in characters")
		overlap    = flag.Int("overlap", 200, "chunk overlap in characters")
	)
	flag.Parse()

	if *dir == "" && *file == "" {
		log.Fatal("Error: one of -dir or -file is required")
	}

	cfg := config.Load()
	if *collection == "" {
		*collection = cfg.Vector.Collection
	}

	store := newStore(cfg)
	embedder := newEmbedder(cfg)

	ctx := context.Background()
	if err := store.EnsureCollection(ctx, *collection, embedder.Dimension()); err != nil {
		log.Fatalf("Error: failed to ensure collection %s: %v", *collection, err)
	}

	files, err := collectFiles(*dir, *file)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if len(files) == 0 {
		log.Fatal("Error: no .txt or .md files found")
	}

	tagList := splitTags(*tags)
	total := 0
	start := time.Now()

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Error: failed to read %s: %v", path, err)
		}

		chunks := utils.SplitText(string(content), *chunkSize, *overlap)
		log.Printf("[INFO] %s: %d chunks", path, len(chunks))

		vectors, err := embedder.EmbedBatch(ctx, chunks)
		if err != nil {
			log.Fatalf("Error: failed to embed %s: %v", path, err)
		}

		source := sourceName(path)
		points := make([]vectorstore.Point, len(chunks))
		for i, chunk := range chunks {
			points[i] = vectorstore.Point{
				Id:     pointId(source, i),
				Vector: vectors[i],
				Payload: vectorstore.Payload{
					Content: chunk,
					Metadata: vectorstore.Metadata{
						Source:    source,
						Namespace: *namespace,
						Tags:      tagList,
						ChunkIdx:  i,
					},
				},
			}
		}

		if err := store.Upsert(ctx, *collection, points); err != nil {
			log.Fatalf("Error: failed to upsert %s: %v", path, err)
		}
		total += len(points)
	}

	log.Printf("✅ Success: ingested %d chunks from %d files in %s", total, len(files), time.Since(start).Round(time.Millisecond))
}

func newStore(cfg *config.Config) vectorstore.Store {
	switch cfg.Vector.Backend {
	case "pgvector":
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Fatalf("Error: failed to connect to Postgres: %v", err)
		}
		return pgvector.NewStore(db)
	case "memory":
		return memstore.NewStore()
	default:
		return qdrant.NewStore(qdrant.Config{
			URL:     cfg.Vector.QdrantURL,
			APIKey:  cfg.Vector.QdrantKey,
			Timeout: 30 * time.Second,
		})
	}
}

func newEmbedder(cfg *config.Config) embedding.EmbeddingProvider {
	if cfg.Ai.EmbeddingProvider == "gemini" {
		return embedding.NewGeminiProvider(cfg.Ai.GeminiKey)
	}
	return embedding.NewOpenAIProvider(cfg.Ai.OpenAIKey, cfg.Ai.EmbeddingModel)
}

func collectFiles(dir, single string) ([]string, error) {
	if single != "" {
		return []string{single}, nil
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".txt", ".md":
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func sourceName(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ReplaceAll(name, "_", " ")
}

// pointId derives a stable UUID per chunk so re-ingesting a file overwrites
// its previous chunks instead of duplicating them. Qdrant only accepts UUID
// or integer point ids.
func pointId(source string, idx int) string {
	slug := strings.ToLower(strings.ReplaceAll(source, " ", "-"))
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s-%d", slug, idx))).String()
}
