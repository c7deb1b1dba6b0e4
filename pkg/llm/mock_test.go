package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLogger() *zap.Logger {
	return zap.NewNop()
}

func TestMockClient_Defaults(t *testing.T) {
	m := NewMockClient()

	got, err := m.Complete(context.Background(), "hello", CompletionOptions{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1, m.CompleteCalls)
	assert.Equal(t, []string{"hello"}, m.Prompts)
	assert.Equal(t, "mock-model", m.GetModel())
}

func TestMockClient_FuncAndReset(t *testing.T) {
	m := NewMockClient()
	m.CompleteFunc = func(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
		assert.Equal(t, float32(0.3), opts.Temperature)
		return "SELECT 1", nil
	}

	got, err := m.Complete(context.Background(), "q", CompletionOptions{Temperature: 0.3, MaxTokens: 500})
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", got)

	m.Reset()
	assert.Zero(t, m.CompleteCalls)
	assert.Nil(t, m.Prompts)
}
