package domain

import (
	"time"

	"github.com/google/uuid"
)

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// StartInterviewResult struct - Domain response to starting an interview
	StartInterviewResult struct {
		SessionID string
		Question  string
	}

	// AnswerResult struct - Domain response to an accepted answer. Exactly one
	// branch is populated: NextQuestion while the interview continues, or Note
	// once the final answer completed it. Completed distinguishes the two.
	AnswerResult struct {
		Completed    bool
		NextQuestion string
		Note         string
	}

	// ChatResult struct - Domain response to a chat message
	ChatResult struct {
		Reply     string
		Timestamp time.Time
	}

	// ReportRequest struct - Domain request to persist a generated artifact
	ReportRequest struct {
		OwnerID string
		Title   string
		Content string
		Kind    ReportKind
	}

	// ReportResponse struct - Domain response DTO for a saved report
	ReportResponse struct {
		ID        *uuid.UUID  `json:"id,omitempty"`
		Title     *string     `json:"title,omitempty"`
		Content   *string     `json:"content,omitempty"`
		Kind      *ReportKind `json:"type,omitempty"`
		CreatedAt *time.Time  `json:"created_at,omitempty"`
	}
)
