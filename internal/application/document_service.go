package application

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"golang-health-portal/internal/domain"
	"golang-health-portal/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Default batch configuration applied when config values are unset
const (
	DefaultMaxConcurrency = 4
	DefaultLanguage       = "English"
)

// itemOutcome holds the result of a single document analysis
type itemOutcome struct {
	name    string
	outcome domain.DocumentOutcome
}

// DocumentService struct - Application service implementing batch document
// analysis. Items are dispatched independently against the reasoning service
// with bounded concurrency; a failure on one item is captured as that item's
// outcome and never aborts the rest of the batch.
type DocumentService struct {
	reasoning       output.ReasoningClient
	maxConcurrency  int
	defaultLanguage string
}

// NewDocumentService func - Creates new document analysis service
func NewDocumentService(reasoning output.ReasoningClient, maxConcurrency int, defaultLanguage string) *DocumentService {
	if maxConcurrency < 1 {
		maxConcurrency = DefaultMaxConcurrency
	}
	if defaultLanguage == "" {
		defaultLanguage = DefaultLanguage
	}
	return &DocumentService{
		reasoning:       reasoning,
		maxConcurrency:  maxConcurrency,
		defaultLanguage: defaultLanguage,
	}
}

// AnalyzeDocuments func - Use case: Analyze a batch of documents.
// Returns one outcome per item name. Duplicate names are not rejected; the
// later-processed item overwrites the earlier outcome for that key, matching
// the upstream contract. Success is false only when every item failed.
func (s *DocumentService) AnalyzeDocuments(ctx context.Context, request domain.BatchAnalysisRequest) (*domain.BatchAnalysisResult, error) {
	if len(request.Items) == 0 {
		return nil, fmt.Errorf("%w: no documents provided", domain.ErrInvalidInput)
	}

	language := request.Language
	if language == "" {
		language = s.defaultLanguage
	}

	// Worker pool semaphore
	sem := make(chan struct{}, s.maxConcurrency)
	results := make(chan itemOutcome, len(request.Items))
	var wg sync.WaitGroup

	for _, item := range request.Items {
		it := item // capture
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Acquire semaphore
			sem <- struct{}{}
			defer func() { <-sem }()

			results <- itemOutcome{name: it.Name, outcome: s.analyzeOne(ctx, it, language)}
		}()
	}

	// Close results when all goroutines complete
	go func() {
		wg.Wait()
		close(results)
	}()

	// Merge barrier: collect every outcome before responding
	outcomes := make(map[string]domain.DocumentOutcome, len(request.Items))
	succeeded := 0

	for res := range results {
		if res.outcome.Succeeded() {
			succeeded++
		}
		outcomes[res.name] = res.outcome
	}

	logrus.Infof("Analyzed batch of %d documents: %d succeeded, concurrency %d",
		len(request.Items), succeeded, s.maxConcurrency)

	return &domain.BatchAnalysisResult{
		Outcomes: outcomes,
		Success:  succeeded > 0,
	}, nil
}

// analyzeOne validates and analyzes a single document. Every failure path
// returns a failed outcome instead of an error so nothing escalates past
// this item.
func (s *DocumentService) analyzeOne(ctx context.Context, item domain.DocumentItem, language string) domain.DocumentOutcome {
	switch err := item.Validate(); {
	case errors.Is(err, domain.ErrUnsupportedDocument):
		return domain.FailedOutcome("File type not allowed")
	case errors.Is(err, domain.ErrEmptyDocument):
		return domain.FailedOutcome("Document is empty")
	}
	if !item.MatchesDeclaredKind() {
		return domain.FailedOutcome("Failed to extract text from document")
	}

	prompt := fmt.Sprintf(documentAnalysisPrompt,
		language,
		item.Name,
		item.Kind,
		base64.StdEncoding.EncodeToString(item.Payload),
	)

	analysis, err := s.reasoning.Generate(ctx, prompt, domain.GenerationModeAnalysis)
	if err != nil {
		logrus.Errorf("Failed to analyze document %s: %v", item.Name, err)
		return domain.FailedOutcome("Failed to analyze document")
	}

	return domain.SucceededOutcome(analysis)
}
