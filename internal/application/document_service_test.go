package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"golang-health-portal/internal/domain"
)

// Minimal payloads carrying the magic bytes of each supported format
var (
	pdfPayload  = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
	pngPayload  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}
	jpegPayload = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
)

func pdfItem(name string) domain.DocumentItem {
	return domain.DocumentItem{Name: name, Payload: pdfPayload, Kind: domain.DocumentKindPDF}
}

// TestAnalyzeDocumentsOneOutcomePerItem tests that every item gets exactly
// one outcome under its own name
func TestAnalyzeDocumentsOneOutcomePerItem(t *testing.T) {
	reasoning := &MockReasoningClient{
		GenerateFunc: func(ctx context.Context, prompt string, mode domain.GenerationMode) (string, error) {
			return "analysis text", nil
		},
	}
	srv := NewDocumentService(reasoning, 4, "English")

	request := domain.BatchAnalysisRequest{
		Items: []domain.DocumentItem{
			pdfItem("report.pdf"),
			{Name: "scan.png", Payload: pngPayload, Kind: domain.DocumentKindPNG},
			{Name: "photo.jpg", Payload: jpegPayload, Kind: domain.DocumentKindJPG},
		},
	}

	result, err := srv.AnalyzeDocuments(context.Background(), request)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(result.Outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(result.Outcomes))
	}
	for _, name := range []string{"report.pdf", "scan.png", "photo.jpg"} {
		outcome, ok := result.Outcomes[name]
		if !ok {
			t.Errorf("expected an outcome for %s", name)
			continue
		}
		if !outcome.Succeeded() {
			t.Errorf("expected %s to succeed, got error %q", name, outcome.Error)
		}
	}
	if !result.Success {
		t.Error("expected Success when items succeeded")
	}
}

// TestAnalyzeDocumentsFailureIsolation tests that a failing item never
// aborts the rest of the batch
func TestAnalyzeDocumentsFailureIsolation(t *testing.T) {
	reasoning := &MockReasoningClient{
		GenerateFunc: func(ctx context.Context, prompt string, mode domain.GenerationMode) (string, error) {
			if strings.Contains(prompt, "broken.pdf") {
				return "", errors.New("upstream 500")
			}
			return "analysis text", nil
		},
	}
	srv := NewDocumentService(reasoning, 4, "English")

	request := domain.BatchAnalysisRequest{
		Items: []domain.DocumentItem{
			pdfItem("report.pdf"),
			pdfItem("broken.pdf"),
			pdfItem("summary.pdf"),
		},
	}

	result, err := srv.AnalyzeDocuments(context.Background(), request)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if result.Outcomes["broken.pdf"].Error != "Failed to analyze document" {
		t.Errorf("expected generation failure message, got %q", result.Outcomes["broken.pdf"].Error)
	}
	for _, name := range []string{"report.pdf", "summary.pdf"} {
		if !result.Outcomes[name].Succeeded() {
			t.Errorf("expected %s to be unaffected by the failing item", name)
		}
	}
	if !result.Success {
		t.Error("expected Success while any item succeeded")
	}
}

// TestAnalyzeDocumentsValidationFailures tests the per-item validation
// messages
func TestAnalyzeDocumentsValidationFailures(t *testing.T) {
	reasoning := &MockReasoningClient{}
	srv := NewDocumentService(reasoning, 4, "English")

	tests := []struct {
		name    string
		item    domain.DocumentItem
		message string
	}{
		{
			name:    "unsupported kind",
			item:    domain.DocumentItem{Name: "notes.txt", Payload: []byte("plain text"), Kind: "txt"},
			message: "File type not allowed",
		},
		{
			name:    "empty payload",
			item:    domain.DocumentItem{Name: "empty.pdf", Payload: nil, Kind: domain.DocumentKindPDF},
			message: "Document is empty",
		},
		{
			name:    "content does not match declared kind",
			item:    domain.DocumentItem{Name: "fake.pdf", Payload: pngPayload, Kind: domain.DocumentKindPDF},
			message: "Failed to extract text from document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := srv.AnalyzeDocuments(context.Background(), domain.BatchAnalysisRequest{
				Items: []domain.DocumentItem{tt.item},
			})
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got := result.Outcomes[tt.item.Name].Error; got != tt.message {
				t.Errorf("expected %q, got %q", tt.message, got)
			}
			if result.Success {
				t.Error("expected Success false when the only item failed")
			}
		})
	}

	// Invalid items must never reach the reasoning service
	if len(reasoning.Prompts) != 0 {
		t.Errorf("expected no reasoning calls for invalid items, got %d", len(reasoning.Prompts))
	}
}

// TestAnalyzeDocumentsEmptyBatch tests that an empty batch is rejected
// before any dispatch
func TestAnalyzeDocumentsEmptyBatch(t *testing.T) {
	srv := NewDocumentService(&MockReasoningClient{}, 4, "English")

	_, err := srv.AnalyzeDocuments(context.Background(), domain.BatchAnalysisRequest{})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got: %v", err)
	}
}

// TestAnalyzeDocumentsAllFail tests that Success is false only when every
// item failed
func TestAnalyzeDocumentsAllFail(t *testing.T) {
	reasoning := &MockReasoningClient{
		GenerateFunc: func(ctx context.Context, prompt string, mode domain.GenerationMode) (string, error) {
			return "", errors.New("upstream down")
		},
	}
	srv := NewDocumentService(reasoning, 4, "English")

	result, err := srv.AnalyzeDocuments(context.Background(), domain.BatchAnalysisRequest{
		Items: []domain.DocumentItem{pdfItem("a.pdf"), pdfItem("b.pdf")},
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if result.Success {
		t.Error("expected Success false when every item failed")
	}
	if len(result.Outcomes) != 2 {
		t.Errorf("expected 2 outcomes, got %d", len(result.Outcomes))
	}
}

// TestAnalyzeDocumentsLanguageSelection tests the request language and the
// configured default
func TestAnalyzeDocumentsLanguageSelection(t *testing.T) {
	reasoning := &MockReasoningClient{
		GenerateFunc: func(ctx context.Context, prompt string, mode domain.GenerationMode) (string, error) {
			return "analysis text", nil
		},
	}
	srv := NewDocumentService(reasoning, 4, "English")

	if _, err := srv.AnalyzeDocuments(context.Background(), domain.BatchAnalysisRequest{
		Items:    []domain.DocumentItem{pdfItem("a.pdf")},
		Language: "Thai",
	}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !strings.Contains(reasoning.Prompts[0], "Thai") {
		t.Error("expected the requested language in the prompt")
	}

	if _, err := srv.AnalyzeDocuments(context.Background(), domain.BatchAnalysisRequest{
		Items: []domain.DocumentItem{pdfItem("a.pdf")},
	}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !strings.Contains(reasoning.Prompts[1], "English") {
		t.Error("expected the default language in the prompt")
	}
}

// TestAnalyzeDocumentsBoundedConcurrency tests that in-flight analyses never
// exceed the configured limit
func TestAnalyzeDocumentsBoundedConcurrency(t *testing.T) {
	const limit = 2
	var inFlight, peak int32
	var mu sync.Mutex

	reasoning := &MockReasoningClient{
		GenerateFunc: func(ctx context.Context, prompt string, mode domain.GenerationMode) (string, error) {
			current := atomic.AddInt32(&inFlight, 1)
			mu.Lock()
			if current > peak {
				peak = current
			}
			mu.Unlock()
			defer atomic.AddInt32(&inFlight, -1)
			return "analysis text", nil
		},
	}
	srv := NewDocumentService(reasoning, limit, "English")

	items := make([]domain.DocumentItem, 8)
	for i := range items {
		items[i] = pdfItem(fmt.Sprintf("doc-%d.pdf", i))
	}

	result, err := srv.AnalyzeDocuments(context.Background(), domain.BatchAnalysisRequest{Items: items})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(result.Outcomes) != len(items) {
		t.Errorf("expected %d outcomes, got %d", len(items), len(result.Outcomes))
	}
	if peak > limit {
		t.Errorf("expected at most %d concurrent analyses, observed %d", limit, peak)
	}
}

// TestAnalyzeDocumentsDuplicateNames tests that duplicate names collapse to
// a single outcome key
func TestAnalyzeDocumentsDuplicateNames(t *testing.T) {
	reasoning := &MockReasoningClient{
		GenerateFunc: func(ctx context.Context, prompt string, mode domain.GenerationMode) (string, error) {
			return "analysis text", nil
		},
	}
	srv := NewDocumentService(reasoning, 4, "English")

	result, err := srv.AnalyzeDocuments(context.Background(), domain.BatchAnalysisRequest{
		Items: []domain.DocumentItem{pdfItem("dup.pdf"), pdfItem("dup.pdf")},
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(result.Outcomes) != 1 {
		t.Errorf("expected duplicate names to share one outcome key, got %d", len(result.Outcomes))
	}
}
