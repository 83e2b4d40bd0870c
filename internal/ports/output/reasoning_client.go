package output

import (
	"context"

	"golang-health-portal/internal/domain"
)

// ReasoningClient interface - Output port
// Defines what the application needs from the external text-generation
// service. The service is treated as opaque: callers hand it a fully built
// prompt (question context, accumulated transcript, or document content) and
// receive generated text or an error.
type ReasoningClient interface {
	// Generate sends a prompt to the reasoning service and returns the
	// generated text. The mode tells the adapter what kind of text is being
	// requested (interview question, clinical note, or document analysis).
	// Every call is bounded by the adapter's configured timeout; on timeout or
	// any other failure an error is returned and no state has been touched, so
	// the caller may safely retry.
	Generate(ctx context.Context, prompt string, mode domain.GenerationMode) (string, error)
}
