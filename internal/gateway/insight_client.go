package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"finboard/internal/domain"
)

const (
	defaultAPIURL    = "https://api.anthropic.com/v1/messages"
	defaultModel     = "claude-sonnet-4-20250514"
	anthropicVersion = "2023-06-01"
)

// ErrMissingCredential means no API key was found in the environment
// or the persisted settings. This is terminal configuration, not a
// retryable failure.
var ErrMissingCredential = errors.New("insight service API key is not configured")

// apiRequest is the generative-language request payload.
type apiRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// apiResponse is the generative-language response payload. A service
// side failure arrives in Error even on some 200-family statuses.
type apiResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// settings is the persisted local settings document holding the
// user-supplied credential fallback.
type settings struct {
	APIKey string `json:"apiKey"`
}

// InsightClient talks to the generative-language service. Failures are
// returned as errors, never folded into the text result, so callers
// don't have to sniff the reply for error prose.
type InsightClient struct {
	apiKey     string
	apiURL     string
	model      string
	maxTokens  int
	httpClient *http.Client
}

// NewInsightClient resolves the credential and tunables. The key comes
// from the FINBOARD_API_KEY environment value first, then from the
// persisted settings document at settingsPath; absence of both is a
// terminal error reported to the user.
func NewInsightClient(settingsPath string) (*InsightClient, error) {
	// Best effort: a missing .env file just means the environment is
	// already populated some other way.
	_ = godotenv.Load()

	apiKey := strings.TrimSpace(os.Getenv("FINBOARD_API_KEY"))
	if apiKey == "" {
		apiKey = keyFromSettings(settingsPath)
	}
	if apiKey == "" {
		return nil, ErrMissingCredential
	}

	model := strings.TrimSpace(os.Getenv("FINBOARD_MODEL"))
	if model == "" {
		model = defaultModel
	}

	maxTokens := 1024
	if v := os.Getenv("FINBOARD_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxTokens = n
		}
	}

	timeoutSeconds := 60
	if v := os.Getenv("FINBOARD_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeoutSeconds = n
		}
	}

	return &InsightClient{
		apiKey:     apiKey,
		apiURL:     defaultAPIURL,
		model:      model,
		maxTokens:  maxTokens,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
	}, nil
}

func keyFromSettings(path string) string {
	if path == "" {
		return ""
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var s settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s.APIKey)
}

// Insight returns one sentence of commentary on the summary text.
func (c *InsightClient) Insight(ctx context.Context, summary string) (string, error) {
	prompt := "You are a pragmatic personal-finance coach. Given the financial summary below, " +
		"reply with exactly one sentence of concrete, specific commentary. No preamble.\n\n" + summary
	return c.complete(ctx, prompt)
}

// Forecast returns a structured multi-month narrative forecast built
// from the full aggregate. The horizon is assumed pre-clamped by the
// caller.
func (c *InsightClient) Forecast(ctx context.Context, data domain.FinancialData, horizonMonths int) (string, error) {
	doc, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal financial data: %w", err)
	}
	prompt := fmt.Sprintf("You are a pragmatic personal-finance coach. Using the financial data below, "+
		"write a %d-month forecast with these headed sections: OUTLOOK, CASH FLOW, DEBT, ASSETS, RISKS. "+
		"Be concrete and use the numbers provided.\n\n%s", horizonMonths, doc)
	return c.complete(ctx, prompt)
}

func (c *InsightClient) complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(apiRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: 0.4,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call insight service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read insight response: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parse insight response (status %d): %w", resp.StatusCode, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("insight service error: %s: %s", parsed.Error.Type, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("insight service returned status %d", resp.StatusCode)
	}

	var text strings.Builder
	for _, block := range parsed.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	out := strings.TrimSpace(text.String())
	if out == "" {
		return "", errors.New("insight service returned no text")
	}
	return out, nil
}
