package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rgehrsitz/finhealth/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings(url string) config.AdvisorSettings {
	return config.AdvisorSettings{
		BaseURL: url,
		APIKey:  "test-key",
		Model:   "test/model",
		Referer: "http://localhost:3000",
		Timeout: 2 * time.Second,
	}
}

func TestOpenRouterClient_GetAdvice(t *testing.T) {
	var received chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "http://localhost:3000", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Keep going."}}]}`))
	}))
	defer server.Close()

	client := NewOpenRouterClient(testSettings(server.URL + "/"))
	reply, err := client.GetAdvice(context.Background(), []Message{
		{Role: RoleSystem, Content: "sys"},
		{Role: RoleAI, Content: "hello"},
		{Role: RoleUser, Content: "question"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Keep going.", reply)
	assert.Equal(t, "test/model", received.Model)
	require.Len(t, received.Messages, 3)
	assert.Equal(t, RoleSystem, received.Messages[0].Role)
	assert.Equal(t, RoleAssistant, received.Messages[1].Role, "ai is sent as assistant")
	assert.Equal(t, RoleUser, received.Messages[2].Role)
}

func TestOpenRouterClient_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"server error", http.StatusInternalServerError, `{}`, "unexpected status code 500"},
		{"unauthorized", http.StatusUnauthorized, `{"error":{"message":"bad key"}}`, "unexpected status code 401"},
		{"malformed body", http.StatusOK, `not json`, "malformed response"},
		{"no choices", http.StatusOK, `{"choices":[]}`, "no choices"},
		{"provider error", http.StatusOK, `{"error":{"message":"rate limited"}}`, "rate limited"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewOpenRouterClient(testSettings(server.URL))
			reply, err := client.GetAdvice(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnavailable))
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, reply)
		})
	}
}

func TestOpenRouterClient_NoAPIKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	s := testSettings(server.URL)
	s.APIKey = ""
	_, err := NewOpenRouterClient(s).GetAdvice(context.Background(), nil)

	require.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, called, "no request without a key")
}

func TestOpenRouterClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"late"}}]}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewOpenRouterClient(testSettings(server.URL)).GetAdvice(ctx, []Message{{Role: RoleUser, Content: "hi"}})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestWireRole(t *testing.T) {
	assert.Equal(t, RoleAssistant, WireRole(RoleAI))
	assert.Equal(t, RoleAssistant, WireRole(RoleAssistant))
	assert.Equal(t, RoleSystem, WireRole(RoleSystem))
	assert.Equal(t, RoleUser, WireRole(RoleUser))
	assert.Equal(t, RoleUser, WireRole("stranger"))
}

func TestDisabled(t *testing.T) {
	reply, err := Disabled{}.GetAdvice(context.Background(), nil)
	assert.Empty(t, reply)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
