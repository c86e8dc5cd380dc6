package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"witt-interpreter-be/internal/constant"
	"witt-interpreter-be/internal/entity"
	"witt-interpreter-be/internal/pkg/logger"
	"witt-interpreter-be/pkg/embedding"
	"witt-interpreter-be/pkg/vectorstore"
)

type ISearchService interface {
	// SearchWittgenstein retrieves primary-corpus passages. Zero hits are an
	// error because every downstream interpretation depends on them. A
	// non-empty apiKey overrides the embedding provider credential.
	SearchWittgenstein(ctx context.Context, query, collection, apiKey string) ([]entity.Citation, error)

	// SearchTransaction retrieves secondary-corpus passages. An empty result
	// is a valid outcome.
	SearchTransaction(ctx context.Context, query, collection, apiKey string) ([]entity.Citation, error)
}

type searchService struct {
	store         vectorstore.Store
	embedder      embedding.EmbeddingProvider
	logger        logger.ILogger
	primaryTopK   int
	secondaryTopK int
}

func NewSearchService(
	store vectorstore.Store,
	embedder embedding.EmbeddingProvider,
	sysLogger logger.ILogger,
	primaryTopK, secondaryTopK int,
) ISearchService {
	if primaryTopK <= 0 {
		primaryTopK = 5
	}
	if secondaryTopK <= 0 {
		secondaryTopK = 3
	}
	return &searchService{
		store:         store,
		embedder:      embedder,
		logger:        sysLogger,
		primaryTopK:   primaryTopK,
		secondaryTopK: secondaryTopK,
	}
}

var sectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)§\s*(\d+(\.\d+)*)`),
	regexp.MustCompile(`(?i)section\s*(\d+(\.\d+)*)`),
}

var leadingNumber = regexp.MustCompile(`^\d+\.\s+`)

func (s *searchService) SearchWittgenstein(ctx context.Context, query, collection, apiKey string) ([]entity.Citation, error) {
	if collection == "" {
		collection = constant.DefaultCollection
	}

	vector, err := s.embedder.Embed(ctx, query, embedOptions(apiKey)...)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	filter := &vectorstore.Filter{
		Should: []vectorstore.Condition{
			{Key: "metadata.namespace", Value: constant.PrimaryNamespace},
			{Key: "metadata.tags", AnyOf: constant.PrimaryTags},
		},
	}

	results, err := s.store.Search(ctx, collection, vector, filter, s.primaryTopK)
	if err != nil {
		return nil, fmt.Errorf("search primary corpus: %w", err)
	}

	if len(results) == 0 {
		s.logger.Warn("Search", "No Wittgenstein passages matched", map[string]interface{}{
			"query":      query,
			"collection": collection,
		})
		return nil, ErrNoPassagesFound
	}

	citations := make([]entity.Citation, len(results))
	for idx, result := range results {
		sourceInfo := result.Payload.Metadata.Source
		if sourceInfo == "" {
			sourceInfo = "Wittgenstein's Works"
		}

		section := result.Payload.Metadata.Section
		if section == "" {
			if match := extractSection(sourceInfo, result.Payload.Content); match != "" {
				section = "§" + match
			}
		}

		citations[idx] = entity.Citation{
			Id:      fmt.Sprintf("witt-%d", idx),
			Text:    strings.TrimSpace(leadingNumber.ReplaceAllString(result.Payload.Content, "")),
			Source:  sourceInfo,
			Section: section,
			Page:    result.Payload.Metadata.Page,
			Score:   result.Score,
			Origin:  entity.OriginPrimary,
		}
	}

	s.logger.Info("Search", "Primary corpus search complete", map[string]interface{}{
		"query": query,
		"count": len(citations),
	})
	return citations, nil
}

func (s *searchService) SearchTransaction(ctx context.Context, query, collection, apiKey string) ([]entity.Citation, error) {
	if collection == "" {
		collection = constant.DefaultCollection
	}

	vector, err := s.embedder.Embed(ctx, query, embedOptions(apiKey)...)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	filter := &vectorstore.Filter{
		Should: []vectorstore.Condition{
			{Key: "metadata.namespace", Value: constant.SecondaryNamespace},
			{Key: "metadata.tags", AnyOf: constant.SecondaryTags},
		},
	}

	results, err := s.store.Search(ctx, collection, vector, filter, s.secondaryTopK)
	if err != nil {
		return nil, fmt.Errorf("search secondary corpus: %w", err)
	}

	citations := make([]entity.Citation, len(results))
	for idx, result := range results {
		source := result.Payload.Metadata.Source
		if source == "" {
			source = "Transaction Theory"
		}
		citations[idx] = entity.Citation{
			Id:      fmt.Sprintf("trans-%d", idx),
			Text:    result.Payload.Content,
			Source:  source,
			Section: result.Payload.Metadata.Section,
			Page:    result.Payload.Metadata.Page,
			Score:   result.Score,
			Origin:  entity.OriginSecondary,
		}
	}

	s.logger.Info("Search", "Secondary corpus search complete", map[string]interface{}{
		"query": query,
		"count": len(citations),
	})
	return citations, nil
}

func embedOptions(apiKey string) []embedding.Option {
	if apiKey == "" {
		return nil
	}
	return []embedding.Option{embedding.WithAPIKey(apiKey)}
}

// extractSection pulls a section number out of the source label first, then
// the passage body.
func extractSection(sourceInfo, content string) string {
	for _, candidate := range []string{sourceInfo, content} {
		for _, pattern := range sectionPatterns {
			if m := pattern.FindStringSubmatch(candidate); m != nil {
				return m[1]
			}
		}
	}
	return ""
}
