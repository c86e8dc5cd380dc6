package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"witt-interpreter-be/internal/constant"
	"witt-interpreter-be/internal/dto"
	"witt-interpreter-be/internal/pkg/logger"
	"witt-interpreter-be/pkg/llm"
)

type IQuestionService interface {
	// ImproveQuestion rewrites a user question for philosophical precision.
	ImproveQuestion(ctx context.Context, question, apiKey string) (*dto.ImproveQuestionResponse, error)
}

type questionService struct {
	provider llm.LLMProvider
	logger   logger.ILogger
	model    string
}

func NewQuestionService(provider llm.LLMProvider, sysLogger logger.ILogger, model string) IQuestionService {
	return &questionService{
		provider: provider,
		logger:   sysLogger,
		model:    model,
	}
}

func (s *questionService) ImproveQuestion(ctx context.Context, question, apiKey string) (*dto.ImproveQuestionResponse, error) {
	history := []llm.Message{
		{Role: "system", Content: constant.QuestionImproveSystemPromptV1},
		{Role: "user", Content: fmt.Sprintf(constant.QuestionImprovePromptV1, question)},
	}

	options := []llm.Option{
		llm.WithModel(s.model),
		llm.WithTemperature(constant.GenerationTemperature),
		llm.WithMaxTokens(constant.GenerationMaxTokens),
		llm.WithJSONOutput(),
	}
	if apiKey != "" {
		options = append(options, llm.WithAPIKey(apiKey))
	}

	raw, err := s.provider.Chat(ctx, history, options...)
	if err != nil {
		s.logger.Error("Question", "Improvement failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	var res dto.ImproveQuestionResponse
	if err := json.Unmarshal([]byte(raw), &res); err != nil || strings.TrimSpace(res.ImprovedQuestion) == "" {
		// Keep the original question usable even when the model ignores the
		// output contract.
		return &dto.ImproveQuestionResponse{
			ImprovedQuestion: question,
			Explanation:      "The question could not be automatically improved.",
		}, nil
	}
	return &res, nil
}
