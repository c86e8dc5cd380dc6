package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"witt-interpreter-be/pkg/llm"
)

func TestImproveQuestion(t *testing.T) {
	provider := &fakeLLM{response: `{
		"improvedQuestion": "How does the private language argument bear on rule-following?",
		"explanation": "Sharper terminology."
	}`}
	svc := NewQuestionService(provider, nopLogger{}, "gpt-4")

	res, err := svc.ImproveQuestion(context.Background(), "what about private language?", "")
	require.NoError(t, err)

	assert.Equal(t, "How does the private language argument bear on rule-following?", res.ImprovedQuestion)
	assert.Equal(t, "Sharper terminology.", res.Explanation)
	assert.Equal(t, "gpt-4", provider.lastOptions.Model)
	assert.True(t, provider.lastOptions.JSONOutput)
	assert.Contains(t, provider.lastHistory[1].Content, "what about private language?")
}

func TestImproveQuestionKeepsOriginalOnMalformedOutput(t *testing.T) {
	provider := &fakeLLM{response: "not json at all"}
	svc := NewQuestionService(provider, nopLogger{}, "gpt-4")

	res, err := svc.ImproveQuestion(context.Background(), "original question", "")
	require.NoError(t, err)
	assert.Equal(t, "original question", res.ImprovedQuestion)
}

func TestImproveQuestionPropagatesProviderError(t *testing.T) {
	provider := &fakeLLM{err: llm.ErrInvalidCredential}
	svc := NewQuestionService(provider, nopLogger{}, "gpt-4")

	_, err := svc.ImproveQuestion(context.Background(), "q", "")
	assert.ErrorIs(t, err, llm.ErrInvalidCredential)
}
