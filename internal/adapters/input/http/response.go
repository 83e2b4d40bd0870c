package http

import (
	"errors"
	"net/http"
	"time"

	"golang-health-portal/internal/domain"

	"github.com/google/uuid"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// Unauthorized response
	Unauthorized = Status{Code: http.StatusUnauthorized, Message: []string{"Sorry, We are not able to process your request. Please try again"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Sorry, The session no longer exists"}}
	// Conflict response
	Conflict = Status{Code: http.StatusConflict, Message: []string{"Sorry, The session cannot accept this request right now"}}
	// BadGateway response
	BadGateway = Status{Code: http.StatusBadGateway, Message: []string{"Sorry, Generation is unavailable. Please try again later"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

// statusFromError maps domain errors onto HTTP statuses. Callers can
// distinguish "your input was wrong", "try again later" and "the session no
// longer exists" without internal details leaking into the message.
func statusFromError(err error) Status {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return BadRequest
	case errors.Is(err, domain.ErrSessionNotFound):
		return NotFound
	case errors.Is(err, domain.ErrSessionCompleted), errors.Is(err, domain.ErrSessionBusy):
		return Conflict
	case errors.Is(err, domain.ErrGenerationFailed), errors.Is(err, domain.ErrReasoningUnavailable):
		return BadGateway
	default:
		return InternalServerError
	}
}

type (
	// StartInterviewResponse struct - HTTP response DTO for an interview start
	StartInterviewResponse struct {
		SessionID string `json:"session_id"`
		Question  string `json:"question"`
	}

	// AnswerResponse struct - HTTP response DTO for a submitted answer.
	// Complete tells the caller which of the two fields is populated.
	AnswerResponse struct {
		Complete  bool   `json:"complete"`
		Question  string `json:"question,omitempty"`
		SoapNotes string `json:"soap_notes,omitempty"`
	}

	// ChatResponse struct - HTTP response DTO for a chat reply
	ChatResponse struct {
		Message   string    `json:"message"`
		Timestamp time.Time `json:"timestamp"`
	}

	// BatchAnalysisResponse struct - HTTP response DTO for batch document analysis
	BatchAnalysisResponse struct {
		Results map[string]domain.DocumentOutcome `json:"results"`
		Success bool                              `json:"success"`
	}

	// ReportResponse struct - HTTP response DTO for a saved report
	ReportResponse struct {
		ID        *uuid.UUID         `json:"id,omitempty"`
		Title     *string            `json:"title,omitempty"`
		Content   *string            `json:"content,omitempty"`
		Type      *domain.ReportKind `json:"type,omitempty"`
		CreatedAt *time.Time         `json:"created_at,omitempty"`
	}
)
