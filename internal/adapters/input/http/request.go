package http

type (
	// StartInterviewRequest struct - HTTP request DTO
	StartInterviewRequest struct {
		Description string `json:"description" validate:"required" form:"description"`
	}

	// SubmitAnswerRequest struct - HTTP request DTO
	SubmitAnswerRequest struct {
		SessionID string `json:"session_id" validate:"required" form:"session_id"`
		Answer    string `json:"answer" validate:"required" form:"answer"`
	}

	// ChatRequest struct - HTTP request DTO
	ChatRequest struct {
		Message string `json:"message" validate:"required" form:"message"`
	}

	// CheckInteractionsRequest struct - HTTP request DTO
	CheckInteractionsRequest struct {
		Medications []string `json:"medications" validate:"required"`
	}

	// CheckConditionsRequest struct - HTTP request DTO
	CheckConditionsRequest struct {
		Symptoms []string `json:"symptoms" validate:"required"`
	}

	// SaveReportRequest struct - HTTP request DTO
	SaveReportRequest struct {
		Title   string `json:"title" validate:"required,max=200"`
		Content string `json:"content" validate:"required"`
		Type    string `json:"type" validate:"required,oneof=note analysis"`
	}
)
