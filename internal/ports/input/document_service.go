package input

import (
	"context"

	"golang-health-portal/internal/domain"
)

// DocumentService interface - Input port (use case)
// Defines batch document analysis with per-item failure isolation: every
// submitted item yields exactly one outcome, and a failure on one item never
// prevents a result for the others.
type DocumentService interface {
	// AnalyzeDocuments processes every item in the request independently and
	// returns one outcome per item name. Fails with domain.ErrInvalidInput
	// only when the request contains no items at all; per-item problems are
	// captured in that item's outcome.
	AnalyzeDocuments(ctx context.Context, request domain.BatchAnalysisRequest) (*domain.BatchAnalysisResult, error)
}
