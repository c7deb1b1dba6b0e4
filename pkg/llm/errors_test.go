package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
	}{
		{"nil error", nil, ""},
		{"unauthorized", errors.New("status code 401: unauthorized"), ErrorTypeAuth},
		{"bad api key", errors.New("invalid api key provided"), ErrorTypeAuth},
		{"rate limited", errors.New("429 too many requests"), ErrorTypeRateLimit},
		{"connection refused", errors.New("dial tcp: connection refused"), ErrorTypeEndpoint},
		{"deadline", errors.New("context deadline exceeded"), ErrorTypeEndpoint},
		{"unknown", errors.New("something odd"), ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError(tt.err)
			if tt.err == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantType, got.Type)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassifyError_PreservesExisting(t *testing.T) {
	orig := &Error{Type: ErrorTypeAuth, Message: "authentication failed"}
	wrapped := fmt.Errorf("complete: %w", orig)

	got := ClassifyError(wrapped)
	assert.Same(t, orig, got)
}

func TestNewClient_Validation(t *testing.T) {
	logger := newTestLogger()

	_, err := NewClient(&Config{Model: "gpt-4"}, logger)
	assert.Error(t, err)

	_, err = NewClient(&Config{APIKey: "sk-test"}, logger)
	assert.Error(t, err)

	client, err := NewClient(&Config{APIKey: "sk-test", Model: "gpt-4"}, logger)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4", client.GetModel())
}
