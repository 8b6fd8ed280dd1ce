package gateway

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finboard/internal/domain"
)

func testClient(url string) *InsightClient {
	return &InsightClient{
		apiKey:     "test-key",
		apiURL:     url,
		model:      defaultModel,
		maxTokens:  256,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestInsightClient_InsightReturnsText(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("x-api-key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content": [{"type": "text", "text": "Trim the subscriptions."}]}`))
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).Insight(context.Background(), "Net worth: 100")
	require.NoError(t, err)
	assert.Equal(t, "Trim the subscriptions.", got)
	assert.Equal(t, "test-key", gotAuth)
}

func TestInsightClient_ServiceErrorPayloadBecomesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"type": "authentication_error", "message": "invalid x-api-key"}}`))
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).Insight(context.Background(), "summary")
	assert.ErrorContains(t, err, "invalid x-api-key")
	assert.Empty(t, got, "error prose never leaks into the text result")
}

func TestInsightClient_EmptyContentIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content": []}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Insight(context.Background(), "summary")
	assert.ErrorContains(t, err, "no text")
}

func TestInsightClient_ForecastSendsClampedHorizonPrompt(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content": [{"type": "text", "text": "OUTLOOK\nSteady."}]}`))
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).Forecast(context.Background(), domain.SeedData(), 12)
	require.NoError(t, err)
	assert.Equal(t, "OUTLOOK\nSteady.", got)
	assert.Contains(t, string(gotBody), "12-month forecast")
	assert.Contains(t, string(gotBody), "recurringExpenses", "the full aggregate rides along in the prompt")
}

func TestNewInsightClient_CredentialResolution(t *testing.T) {
	t.Run("environment value wins", func(t *testing.T) {
		t.Setenv("FINBOARD_API_KEY", "env-key")
		client, err := NewInsightClient("")
		require.NoError(t, err)
		assert.Equal(t, "env-key", client.apiKey)
	})

	t.Run("falls back to persisted settings", func(t *testing.T) {
		t.Setenv("FINBOARD_API_KEY", "")
		path := filepath.Join(t.TempDir(), "settings.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"apiKey": "settings-key"}`), 0o644))

		client, err := NewInsightClient(path)
		require.NoError(t, err)
		assert.Equal(t, "settings-key", client.apiKey)
	})

	t.Run("absence of both is terminal", func(t *testing.T) {
		t.Setenv("FINBOARD_API_KEY", "")
		_, err := NewInsightClient(filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorIs(t, err, ErrMissingCredential)
	})
}
