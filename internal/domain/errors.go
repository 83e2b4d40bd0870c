package domain

import "errors"

// Interview protocol error types

var (
	// ErrInvalidInput indicates empty or malformed caller input
	ErrInvalidInput = errors.New("invalid input")

	// ErrSessionNotFound indicates the interview session does not exist or has expired
	ErrSessionNotFound = errors.New("interview session not found")

	// ErrSessionCompleted indicates the interview session has already finished
	ErrSessionCompleted = errors.New("interview session already complete")

	// ErrSessionBusy indicates another answer is being processed for the same session
	ErrSessionBusy = errors.New("interview session busy")
)

// Reasoning service error types

var (
	// ErrGenerationFailed indicates the reasoning service could not produce text
	ErrGenerationFailed = errors.New("text generation failed")

	// ErrReasoningUnavailable indicates the reasoning service is unavailable
	ErrReasoningUnavailable = errors.New("reasoning service unavailable")

	// ErrInvalidRequest indicates an invalid request was made (4xx client errors)
	ErrInvalidRequest = errors.New("invalid request")
)

// Document analysis error types

var (
	// ErrUnsupportedDocument indicates the document content kind is not supported
	ErrUnsupportedDocument = errors.New("unsupported document type")

	// ErrEmptyDocument indicates the document payload is empty
	ErrEmptyDocument = errors.New("document payload is empty")
)
