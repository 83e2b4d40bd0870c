package input

import (
	"context"

	"golang-health-portal/internal/domain"
)

// InterviewService interface - Input port (use case)
// Defines the clinical intake interview protocol: start a session, submit
// answers one round at a time, and receive either the next question or the
// generated clinical note once the configured number of questions is reached.
type InterviewService interface {
	// StartInterview creates a new interview session from a patient
	// description and returns the session ID together with the first question.
	// Fails with domain.ErrInvalidInput on an empty description and
	// domain.ErrGenerationFailed if the first question cannot be generated
	// (no session is created in that case).
	StartInterview(ctx context.Context, description string) (*domain.StartInterviewResult, error)

	// SubmitAnswer records an answer to the session's current question and
	// returns either the next question or, on the final round, the generated
	// note. If generation fails the session is left exactly as it was, so the
	// same answer may be resubmitted.
	SubmitAnswer(ctx context.Context, sessionID, answer string) (*domain.AnswerResult, error)
}
