package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"golang-health-portal/configs"
	"golang-health-portal/internal/domain"
	"golang-health-portal/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure GeminiClientAdapter implements ReasoningClient interface
var _ output.ReasoningClient = (*GeminiClientAdapter)(nil)

// GeminiClientAdapter struct - Output adapter for the Gemini generateContent REST API
type GeminiClientAdapter struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	timeout    time.Duration
}

// NewGeminiClientAdapter func - Creates new Gemini client adapter
func NewGeminiClientAdapter(config configs.Gemini) (*GeminiClientAdapter, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	model := config.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 60 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	adapter := &GeminiClientAdapter{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     config.APIKey,
		model:      model,
		timeout:    timeout,
	}

	logrus.Infof("Gemini client adapter initialized with model: %s, timeout: %v", model, timeout)

	return adapter, nil
}

// Retry configuration constants
const (
	maxRetryAttempts  = 5
	initialDelay      = 500 * time.Millisecond
	maxDelay          = 8 * time.Second
	backoffMultiplier = 2
)

// Generation temperature per mode. Question and chat generation get a little
// variation, notes and analyses stay conservative.
var modeTemperature = map[domain.GenerationMode]float64{
	domain.GenerationModeQuestion: 0.7,
	domain.GenerationModeChat:     0.7,
	domain.GenerationModeNote:     0.2,
	domain.GenerationModeAnalysis: 0.2,
}

// Generate sends a prompt to the Gemini generateContent endpoint and returns
// the generated text. Each call carries its own deadline; on any failure no
// state has been touched and the caller may retry safely.
func (a *GeminiClientAdapter) Generate(ctx context.Context, prompt string, mode domain.GenerationMode) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	temperature := modeTemperature[mode]
	reqBody := generateContentAPIRequest{
		Contents: []contentAPI{
			{Parts: []partAPI{{Text: prompt}}},
		},
		GenerationConfig: &generationConfigAPI{Temperature: &temperature},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", a.baseURL, a.model)

	resp, err := a.retryWithBackoff(ctx, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-goog-api-key", a.apiKey)
		return a.httpClient.Do(req)
	})
	if err != nil {
		return "", fmt.Errorf("failed to send generate request: %w", err)
	}
	defer resp.Body.Close()

	var apiResp generateContentAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to parse generate response: %w", err)
	}

	if len(apiResp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	var text strings.Builder
	for _, part := range apiResp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("empty candidate in response")
	}

	logrus.Infof("Generation successful, mode: %s, tokens: %d", mode, apiResp.UsageMetadata.TotalTokenCount)

	return text.String(), nil
}

// retryWithBackoff executes an operation with exponential backoff retry logic
func (a *GeminiClientAdapter) retryWithBackoff(ctx context.Context, operation func() (*http.Response, error)) (*http.Response, error) {
	var lastErr error
	delay := initialDelay

	for attempt := 1; attempt <= maxRetryAttempts; attempt++ {
		resp, err := operation()

		if err != nil {
			if !a.isTransientError(err, 0) {
				return nil, err
			}
			lastErr = err
			logrus.Warnf("Gemini request attempt %d/%d failed with error: %v, retrying in %v", attempt, maxRetryAttempts, err, delay)
		} else if resp != nil {
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return resp, nil
			}

			// Don't retry on 4xx client errors
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				body, _ := io.ReadAll(resp.Body)
				resp.Body.Close()
				return nil, fmt.Errorf("%w: status %d - %s", domain.ErrInvalidRequest, resp.StatusCode, string(body))
			}

			// Retry on 5xx server errors
			if a.isTransientError(nil, resp.StatusCode) {
				body, _ := io.ReadAll(resp.Body)
				resp.Body.Close()
				lastErr = fmt.Errorf("server error: status %d - %s", resp.StatusCode, string(body))
				logrus.Warnf("Gemini request attempt %d/%d failed with status %d, retrying in %v", attempt, maxRetryAttempts, resp.StatusCode, delay)
			} else {
				// Anything else (3xx) is neither success nor retryable
				body, _ := io.ReadAll(resp.Body)
				resp.Body.Close()
				return nil, fmt.Errorf("unexpected status %d - %s", resp.StatusCode, string(body))
			}
		}

		// Check context before sleeping
		if attempt < maxRetryAttempts {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
			case <-time.After(delay):
			}

			delay = delay * backoffMultiplier
			if delay > maxDelay {
				delay = maxDelay
			}
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v after %d attempts", domain.ErrReasoningUnavailable, lastErr, maxRetryAttempts)
	}
	return nil, fmt.Errorf("%w: max retries exceeded", domain.ErrReasoningUnavailable)
}

// isTransientError determines if an error or status code is transient and should be retried
func (a *GeminiClientAdapter) isTransientError(err error, statusCode int) bool {
	// 5xx server errors are transient
	if statusCode >= 500 && statusCode < 600 {
		return true
	}

	// 4xx errors are NOT transient
	if statusCode >= 400 && statusCode < 500 {
		return false
	}

	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return true
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	errMsg := err.Error()
	transientPatterns := []string{
		"connection refused",
		"connection reset",
		"no such host",
		"network is unreachable",
		"i/o timeout",
		"EOF",
	}
	for _, pattern := range transientPatterns {
		if strings.Contains(strings.ToLower(errMsg), strings.ToLower(pattern)) {
			return true
		}
	}

	return false
}

// API request/response structures for the Gemini generateContent API

// partAPI represents one text part of a content block
type partAPI struct {
	Text string `json:"text"`
}

// contentAPI represents a content block in the API request
type contentAPI struct {
	Role  string    `json:"role,omitempty"`
	Parts []partAPI `json:"parts"`
}

// generationConfigAPI carries optional generation parameters
type generationConfigAPI struct {
	Temperature *float64 `json:"temperature,omitempty"`
}

// generateContentAPIRequest represents the request body for generateContent
type generateContentAPIRequest struct {
	Contents         []contentAPI         `json:"contents"`
	GenerationConfig *generationConfigAPI `json:"generationConfig,omitempty"`
}

// generateContentAPIResponse represents the response from generateContent
type generateContentAPIResponse struct {
	Candidates []struct {
		Content struct {
			Role  string    `json:"role"`
			Parts []partAPI `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}
