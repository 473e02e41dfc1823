package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{APIKey: "sk-test"})

	assert.Equal(t, "https://api.openai.com/v1", client.cfg.BaseURL)
	assert.Equal(t, "gpt-4o-mini", client.cfg.Model)
	assert.NotNil(t, client.cfg.HTTPClient)
}

func TestComplete_Success(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  Your plan looks solid.  "}}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL})

	reply, err := client.Complete(context.Background(), "You are a financial planner.", "Summarize my plan.")

	require.NoError(t, err)
	assert.Equal(t, "Your plan looks solid.", reply)
	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.InDelta(t, 0.7, captured.Temperature, 0.0001)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
}

func TestComplete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL})

	_, err := client.Complete(context.Background(), "system", "user")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL})

	_, err := client.Complete(context.Background(), "system", "user")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestComplete_MissingAPIKey(t *testing.T) {
	client := NewClient(Config{})

	_, err := client.Complete(context.Background(), "system", "user")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}
