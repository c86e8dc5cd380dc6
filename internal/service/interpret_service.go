package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"witt-interpreter-be/internal/constant"
	"witt-interpreter-be/internal/entity"
	"witt-interpreter-be/internal/pkg/logger"
	"witt-interpreter-be/pkg/llm"
)

type IInterpretService interface {
	// InterpretFramework generates a single-framework interpretation from
	// primary-corpus passages. apiKey overrides the configured credential when
	// non-empty.
	InterpretFramework(ctx context.Context, query string, passages []entity.Citation, framework *entity.FrameworkInfo, apiKey string) (*entity.FrameworkResult, error)

	// InterpretTransaction generates the cross-corpus interpretation. The
	// secondary passage list may be empty.
	InterpretTransaction(ctx context.Context, query string, wittPassages, transPassages []entity.Citation, apiKey string) (*entity.FrameworkResult, error)
}

type interpretService struct {
	provider         llm.LLMProvider
	logger           logger.ILogger
	frameworkModel   string
	transactionModel string
}

func NewInterpretService(provider llm.LLMProvider, sysLogger logger.ILogger, frameworkModel, transactionModel string) IInterpretService {
	return &interpretService{
		provider:         provider,
		logger:           sysLogger,
		frameworkModel:   frameworkModel,
		transactionModel: transactionModel,
	}
}

func (s *interpretService) InterpretFramework(ctx context.Context, query string, passages []entity.Citation, framework *entity.FrameworkInfo, apiKey string) (*entity.FrameworkResult, error) {
	excerpts := passageExcerpts(passages, constant.FrameworkPassageLimit, constant.FrameworkExcerptRunes)

	history := []llm.Message{
		{Role: "system", Content: fmt.Sprintf(constant.FrameworkSystemPromptV1, framework.Name)},
		{Role: "user", Content: fmt.Sprintf(constant.FrameworkUserPromptV1, query, excerpts, framework.Name)},
	}

	raw, err := s.chat(ctx, history, s.frameworkModel, apiKey)
	if err != nil {
		s.logger.Error("Interpret", "Framework generation failed", map[string]interface{}{
			"framework": framework.Id,
			"error":     err.Error(),
		})
		return nil, err
	}

	structured := parseStructured(raw, false)
	return &entity.FrameworkResult{
		Id:                framework.Id,
		Name:              framework.Name,
		Status:            entity.JobComplete,
		Interpretation:    structured.MainInterpretation,
		Structured:        structured,
		ReferencePassages: capPassages(passages, constant.FrameworkPassageLimit),
	}, nil
}

func (s *interpretService) InterpretTransaction(ctx context.Context, query string, wittPassages, transPassages []entity.Citation, apiKey string) (*entity.FrameworkResult, error) {
	wittExcerpts := passageExcerpts(wittPassages, constant.TransactionPassageLimit, constant.TransactionExcerptRunes)
	transExcerpts := passageExcerpts(transPassages, constant.TransactionPassageLimit, constant.TransactionExcerptRunes)
	if transExcerpts == "" {
		transExcerpts = "No Transaction Theory passages available."
	}

	history := []llm.Message{
		{Role: "system", Content: constant.TransactionSystemPromptV1},
		{Role: "user", Content: fmt.Sprintf(constant.TransactionUserPromptV1, query, wittExcerpts, transExcerpts)},
	}

	raw, err := s.chat(ctx, history, s.transactionModel, apiKey)
	if err != nil {
		s.logger.Error("Interpret", "Transaction generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	structured := parseStructured(raw, true)
	references := capPassages(wittPassages, constant.TransactionPassageLimit)
	references = append(references, capPassages(transPassages, constant.TransactionPassageLimit)...)

	info := constant.FrameworkById(constant.FrameworkTransactional)
	return &entity.FrameworkResult{
		Id:                info.Id,
		Name:              info.Name,
		Status:            entity.JobComplete,
		Interpretation:    structured.MainInterpretation,
		Structured:        structured,
		ReferencePassages: references,
	}, nil
}

func (s *interpretService) chat(ctx context.Context, history []llm.Message, model, apiKey string) (string, error) {
	options := []llm.Option{
		llm.WithModel(model),
		llm.WithTemperature(constant.GenerationTemperature),
		llm.WithMaxTokens(constant.GenerationMaxTokens),
		llm.WithJSONOutput(),
	}
	if apiKey != "" {
		options = append(options, llm.WithAPIKey(apiKey))
	}
	return s.provider.Chat(ctx, history, options...)
}

// parseStructured decodes the model's JSON answer, filling gaps with
// placeholders. Malformed JSON degrades to the raw text as the main
// interpretation rather than failing the job.
func parseStructured(raw string, crossCorpus bool) *entity.StructuredInterpretation {
	var structured entity.StructuredInterpretation
	if err := json.Unmarshal([]byte(raw), &structured); err != nil {
		degraded := &entity.StructuredInterpretation{
			MainInterpretation: raw,
			KeyInsights:        []string{constant.DegradedInsight},
			RelevantQuotes: []entity.RelevantQuote{{
				Text:        constant.DegradedQuoteText,
				Explanation: constant.DegradedQuoteExplanation,
			}},
		}
		if crossCorpus {
			degraded.RelevantQuotes[0].IsWittgenstein = true
		}
		return degraded
	}

	if structured.MainInterpretation == "" {
		structured.MainInterpretation = constant.FallbackInterpretation
	}
	if len(structured.KeyInsights) == 0 {
		structured.KeyInsights = []string{constant.FallbackInsight}
	}
	if len(structured.RelevantQuotes) == 0 {
		quote := entity.RelevantQuote{
			Text:        constant.FallbackQuoteText,
			Explanation: constant.FallbackQuoteExplanation,
		}
		if crossCorpus {
			quote.IsWittgenstein = true
		}
		structured.RelevantQuotes = []entity.RelevantQuote{quote}
	}
	return &structured
}

// passageExcerpts joins the first limit passages, each truncated to
// maxRunes, into the newline-separated block the prompts expect.
func passageExcerpts(passages []entity.Citation, limit, maxRunes int) string {
	if len(passages) > limit {
		passages = passages[:limit]
	}
	parts := make([]string, 0, len(passages))
	for _, p := range passages {
		text := p.Text
		if runes := []rune(text); len(runes) > maxRunes {
			text = string(runes[:maxRunes]) + "..."
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n\n")
}

func capPassages(passages []entity.Citation, limit int) []entity.Citation {
	if len(passages) > limit {
		passages = passages[:limit]
	}
	out := make([]entity.Citation, len(passages))
	copy(out, passages)
	return out
}
