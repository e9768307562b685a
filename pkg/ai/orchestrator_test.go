package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateNotConfigured(t *testing.T) {
	mock := NewMock(ProviderOpenAI)
	mock.Response = validReply
	orch := NewOrchestrator(ProviderOpenAI, zap.NewNop().Sugar(), mock)

	p, provider, err := orch.Generate(context.Background(), testContext(), ProviderClaude)
	assert.Nil(t, p)
	assert.Equal(t, ProviderClaude, provider)
	require.ErrorIs(t, err, ErrProviderNotConfigured)

	// rejected before any provider call
	assert.EqualValues(t, 0, mock.Calls())
}

func TestGenerateDefaultProvider(t *testing.T) {
	mock := NewMock(ProviderGemini)
	mock.Response = validReply
	orch := NewOrchestrator(ProviderGemini, zap.NewNop().Sugar(), mock)

	p, provider, err := orch.Generate(context.Background(), testContext(), "")
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, provider)
	assert.Equal(t, "Recursion and stack frames.", p.WeeklyAbstract)
	assert.EqualValues(t, 1, mock.Calls())
}

func TestGenerateProviderFailure(t *testing.T) {
	mock := NewMock(ProviderOpenAI)
	mock.Err = errors.New("connection refused")
	orch := NewOrchestrator(ProviderOpenAI, zap.NewNop().Sugar(), mock)

	p, _, err := orch.Generate(context.Background(), testContext(), "")
	assert.Nil(t, p)
	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, ProviderOpenAI, ge.Provider)
	assert.ErrorIs(t, err, mock.Err)
}

func TestGenerateMalformedReplyWrapped(t *testing.T) {
	mock := NewMock(ProviderClaude)
	mock.Response = "Sure! Here is your planning sheet:"
	orch := NewOrchestrator(ProviderClaude, zap.NewNop().Sugar(), mock)

	p, _, err := orch.Generate(context.Background(), testContext(), "")
	assert.Nil(t, p)

	// transport and format failures share one error shape
	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	var fe *FormatError
	assert.ErrorAs(t, err, &fe)
	assert.NotContains(t, err.Error(), mock.Response)
}

func TestJSONReminderPerProvider(t *testing.T) {
	openai := NewMock(ProviderOpenAI)
	openai.Response = validReply
	claude := NewMock(ProviderClaude)
	claude.Response = validReply
	orch := NewOrchestrator(ProviderOpenAI, zap.NewNop().Sugar(), openai, claude)

	_, _, err := orch.Generate(context.Background(), testContext(), ProviderOpenAI)
	require.NoError(t, err)
	assert.False(t, strings.HasSuffix(openai.LastPrompt, jsonReminder))

	_, _, err = orch.Generate(context.Background(), testContext(), ProviderClaude)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(claude.LastPrompt, jsonReminder))
}

func TestTestProvider(t *testing.T) {
	ok := NewMock(ProviderOpenAI)
	down := NewMock(ProviderGemini)
	down.Err = errors.New("401 unauthorized")
	orch := NewOrchestrator(ProviderOpenAI, zap.NewNop().Sugar(), ok, down)

	assert.True(t, orch.TestProvider(context.Background(), ProviderOpenAI))
	assert.False(t, orch.TestProvider(context.Background(), ProviderGemini))
	assert.False(t, orch.TestProvider(context.Background(), ProviderClaude))
}
