package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"golang-health-portal/configs"
	"golang-health-portal/internal/domain"
)

// candidateResponse builds a minimal generateContent response body carrying
// one candidate with the given text
func candidateResponse(text string) generateContentAPIResponse {
	var response generateContentAPIResponse
	response.Candidates = append(response.Candidates, struct {
		Content struct {
			Role  string    `json:"role"`
			Parts []partAPI `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	}{FinishReason: "STOP"})
	response.Candidates[0].Content.Role = "model"
	response.Candidates[0].Content.Parts = []partAPI{{Text: text}}
	response.UsageMetadata.TotalTokenCount = 18
	return response
}

// TestNewGeminiClientAdapterWithConfig tests adapter construction with valid config
func TestNewGeminiClientAdapterWithConfig(t *testing.T) {
	config := configs.Gemini{
		BaseURL: "http://localhost:5678",
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 30,
	}

	adapter, err := NewGeminiClientAdapter(config)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if adapter == nil {
		t.Fatal("expected adapter to be non-nil")
	}

	if adapter.baseURL != "http://localhost:5678" {
		t.Errorf("expected baseURL to be http://localhost:5678, got: %s", adapter.baseURL)
	}

	if adapter.model != "test-model" {
		t.Errorf("expected model to be test-model, got: %s", adapter.model)
	}

	if adapter.timeout != 30*time.Second {
		t.Errorf("expected timeout to be 30s, got: %v", adapter.timeout)
	}
}

// TestNewGeminiClientAdapterWithDefaultValues tests adapter construction with default values
func TestNewGeminiClientAdapterWithDefaultValues(t *testing.T) {
	config := configs.Gemini{
		BaseURL: "", // Empty - should default to the public endpoint
		APIKey:  "test-key",
		Model:   "",
		Timeout: 0, // Zero - should default to 60 seconds
	}

	adapter, err := NewGeminiClientAdapter(config)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if adapter.baseURL != "https://generativelanguage.googleapis.com" {
		t.Errorf("expected default baseURL, got: %s", adapter.baseURL)
	}

	if adapter.model != "gemini-2.0-flash" {
		t.Errorf("expected default model gemini-2.0-flash, got: %s", adapter.model)
	}

	if adapter.timeout != 60*time.Second {
		t.Errorf("expected default timeout to be 60s, got: %v", adapter.timeout)
	}
}

// TestNewGeminiClientAdapterRequiresAPIKey tests that a missing api key is rejected
func TestNewGeminiClientAdapterRequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClientAdapter(configs.Gemini{})
	if err == nil {
		t.Fatal("expected error for missing api key, got nil")
	}
}

// TestGenerateSuccess tests a generation round trip with a mock HTTP server
func TestGenerateSuccess(t *testing.T) {
	// Create mock server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request path
		if r.URL.Path != "/v1beta/models/test-model:generateContent" {
			t.Errorf("expected generateContent path, got: %s", r.URL.Path)
		}

		// Verify method
		if r.Method != http.MethodPost {
			t.Errorf("expected POST method, got: %s", r.Method)
		}

		// Verify auth header
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("expected api key header, got: %s", r.Header.Get("x-goog-api-key"))
		}

		// Decode request body to verify structure
		var reqBody generateContentAPIRequest
		if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if len(reqBody.Contents) != 1 || len(reqBody.Contents[0].Parts) != 1 {
			t.Errorf("expected one content with one part, got: %+v", reqBody.Contents)
		} else if reqBody.Contents[0].Parts[0].Text != "Describe the symptoms" {
			t.Errorf("expected the prompt in the request, got: %s", reqBody.Contents[0].Parts[0].Text)
		}

		// Question mode carries the higher temperature
		if reqBody.GenerationConfig == nil || reqBody.GenerationConfig.Temperature == nil {
			t.Error("expected a generation temperature")
		} else if *reqBody.GenerationConfig.Temperature != 0.7 {
			t.Errorf("expected temperature 0.7 for question mode, got: %v", *reqBody.GenerationConfig.Temperature)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(candidateResponse("When did the symptoms begin?"))
	}))
	defer server.Close()

	// Create adapter with mock server URL
	config := configs.Gemini{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 30,
	}

	adapter, err := NewGeminiClientAdapter(config)
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}

	text, err := adapter.Generate(context.Background(), "Describe the symptoms", domain.GenerationModeQuestion)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if text != "When did the symptoms begin?" {
		t.Errorf("expected the candidate text, got: %s", text)
	}
}

// TestGenerateJoinsMultipleParts tests that multi-part candidates are concatenated
func TestGenerateJoinsMultipleParts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := candidateResponse("## Subjective")
		response.Candidates[0].Content.Parts = append(response.Candidates[0].Content.Parts, partAPI{Text: "\n- chest pain"})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	adapter, err := NewGeminiClientAdapter(configs.Gemini{BaseURL: server.URL, APIKey: "test-key", Model: "test-model", Timeout: 30})
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}

	text, err := adapter.Generate(context.Background(), "transcript", domain.GenerationModeNote)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if text != "## Subjective\n- chest pain" {
		t.Errorf("expected joined parts, got: %s", text)
	}
}

// TestGenerateRetryFor5xxErrors tests retry behavior for 5xx server errors
func TestGenerateRetryFor5xxErrors(t *testing.T) {
	var requestCount int32

	// Create mock server that returns 503 twice then succeeds
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count := atomic.AddInt32(&requestCount, 1)

		if count <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Service temporarily unavailable"))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(candidateResponse("recovered"))
	}))
	defer server.Close()

	adapter, err := NewGeminiClientAdapter(configs.Gemini{BaseURL: server.URL, APIKey: "test-key", Model: "test-model", Timeout: 30})
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}

	text, err := adapter.Generate(context.Background(), "prompt", domain.GenerationModeQuestion)
	if err != nil {
		t.Fatalf("expected no error after retry, got: %v", err)
	}

	if text != "recovered" {
		t.Errorf("expected the response from the successful request, got: %s", text)
	}

	// Verify we made 3 requests (2 retries + 1 success)
	finalCount := atomic.LoadInt32(&requestCount)
	if finalCount != 3 {
		t.Errorf("expected 3 requests (2 failures + 1 success), got: %d", finalCount)
	}
}

// TestGenerateNoRetryFor4xxErrors tests that 4xx errors are not retried
func TestGenerateNoRetryFor4xxErrors(t *testing.T) {
	var requestCount int32

	// Create mock server that always returns 400 Bad Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requestCount, 1)

		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Invalid request"}`))
	}))
	defer server.Close()

	adapter, err := NewGeminiClientAdapter(configs.Gemini{BaseURL: server.URL, APIKey: "test-key", Model: "test-model", Timeout: 30})
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}

	_, err = adapter.Generate(context.Background(), "prompt", domain.GenerationModeQuestion)

	// Verify we got an error
	if err == nil {
		t.Fatal("expected error for 4xx response, got nil")
	}

	// Verify error wraps ErrInvalidRequest
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected error to wrap ErrInvalidRequest, got: %v", err)
	}

	// Verify we only made 1 request (no retry for 4xx)
	finalCount := atomic.LoadInt32(&requestCount)
	if finalCount != 1 {
		t.Errorf("expected exactly 1 request (no retry for 4xx), got: %d", finalCount)
	}
}

// TestGenerateRejectsRedirectStatus tests that a non-2xx, non-retryable
// status is surfaced as an error instead of being parsed as a response
func TestGenerateRejectsRedirectStatus(t *testing.T) {
	var requestCount int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(http.StatusNotModified)
	}))
	defer server.Close()

	adapter, err := NewGeminiClientAdapter(configs.Gemini{BaseURL: server.URL, APIKey: "test-key", Model: "test-model", Timeout: 30})
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}

	_, err = adapter.Generate(context.Background(), "prompt", domain.GenerationModeQuestion)
	if err == nil {
		t.Fatal("expected error for 3xx response, got nil")
	}

	// 3xx is not a client error and must not be retried either
	if errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected a plain status error, got ErrInvalidRequest: %v", err)
	}

	finalCount := atomic.LoadInt32(&requestCount)
	if finalCount != 1 {
		t.Errorf("expected exactly 1 request (no retry for 3xx), got: %d", finalCount)
	}
}

// TestGenerateEmptyCandidates tests that a response without candidates is an error
func TestGenerateEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	adapter, err := NewGeminiClientAdapter(configs.Gemini{BaseURL: server.URL, APIKey: "test-key", Model: "test-model", Timeout: 30})
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}

	_, err = adapter.Generate(context.Background(), "prompt", domain.GenerationModeQuestion)
	if err == nil {
		t.Fatal("expected error for empty candidates, got nil")
	}
}
