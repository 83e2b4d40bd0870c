package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang-health-portal/internal/domain"
	"golang-health-portal/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Default interview configuration applied when config values are unset
const (
	DefaultTotalQuestions = 1
	DefaultSessionTimeout = 30 * time.Minute
)

// InterviewService struct - Application service implementing the intake
// interview use cases. Owns the session state machine: NotStarted -> Active
// -> Complete, completion driven solely by the configured question count.
type InterviewService struct {
	sessions       output.SessionStore
	reasoning      output.ReasoningClient
	totalQuestions int
	sessionTimeout time.Duration
}

// NewInterviewService func - Creates new interview service.
// totalQuestions below 1 and a non-positive timeout fall back to defaults.
func NewInterviewService(sessions output.SessionStore, reasoning output.ReasoningClient, totalQuestions int, sessionTimeout time.Duration) *InterviewService {
	if totalQuestions < 1 {
		totalQuestions = DefaultTotalQuestions
	}
	if sessionTimeout <= 0 {
		sessionTimeout = DefaultSessionTimeout
	}
	return &InterviewService{
		sessions:       sessions,
		reasoning:      reasoning,
		totalQuestions: totalQuestions,
		sessionTimeout: sessionTimeout,
	}
}

// StartInterview func - Use case: Start a new intake interview
func (s *InterviewService) StartInterview(ctx context.Context, description string) (*domain.StartInterviewResult, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}

	question, err := s.reasoning.Generate(ctx, fmt.Sprintf(firstQuestionPrompt, description), domain.GenerationModeQuestion)
	if err != nil {
		logrus.Errorf("Failed to generate first interview question: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	session := domain.NewInterviewSession(uuid.NewString(), question, s.sessionTimeout)
	if err := s.sessions.CreateSession(session); err != nil {
		return nil, err
	}

	logrus.Infof("Started interview session %s, total questions: %d", session.ID, s.totalQuestions)

	return &domain.StartInterviewResult{
		SessionID: session.ID,
		Question:  question,
	}, nil
}

// SubmitAnswer func - Use case: Record an answer to the session's current
// question. Either advances to the next question or, on the final round,
// generates the clinical note and completes the session.
//
// The session is mutated only after the dependent generation call succeeds:
// a GenerationError leaves the session exactly as it was, so the caller may
// retry the same answer.
func (s *InterviewService) SubmitAnswer(ctx context.Context, sessionID, answer string) (*domain.AnswerResult, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, fmt.Errorf("%w: answer is required", domain.ErrInvalidInput)
	}
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session_id is required", domain.ErrInvalidInput)
	}

	session, err := s.sessions.AcquireSession(sessionID)
	if err != nil {
		return nil, err
	}
	defer s.sessions.ReleaseSession(sessionID)

	if session.Status == domain.InterviewStatusComplete {
		return nil, domain.ErrSessionCompleted
	}

	// Prospective transcript including the answer being submitted. Built on a
	// copy so a failed generation call leaves the session untouched.
	transcript := append(session.Transcript(), domain.QuestionAnswer{
		Question: session.CurrentQuestion,
		Answer:   answer,
	})

	if len(transcript) >= s.totalQuestions {
		note, err := s.generateNote(ctx, transcript)
		if err != nil {
			logrus.Errorf("Failed to generate note for session %s: %v", sessionID, err)
			return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
		}

		session.Complete(answer)

		// The caller receives the note in this response; the session has been
		// consumed and is discarded to bound memory.
		if err := s.sessions.DeleteSession(sessionID); err != nil {
			logrus.Warnf("Failed to delete completed session %s: %v", sessionID, err)
		}

		logrus.Infof("Interview session %s complete after %d questions", sessionID, session.QuestionsAsked)

		return &domain.AnswerResult{Completed: true, Note: note}, nil
	}

	nextQuestion, err := s.reasoning.Generate(ctx, fmt.Sprintf(nextQuestionPrompt, formatTranscript(transcript)), domain.GenerationModeQuestion)
	if err != nil {
		logrus.Errorf("Failed to generate next question for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	session.Advance(answer, nextQuestion)

	return &domain.AnswerResult{NextQuestion: nextQuestion}, nil
}

// generateNote sends the ordered transcript to the reasoning service and
// returns the structured clinical note. Pure transformation: no session
// state is touched here.
func (s *InterviewService) generateNote(ctx context.Context, transcript []domain.QuestionAnswer) (string, error) {
	note, err := s.reasoning.Generate(ctx, fmt.Sprintf(soapNotePrompt, formatTranscript(transcript)), domain.GenerationModeNote)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(note) == "" {
		return "", fmt.Errorf("reasoning service returned an empty note")
	}
	return note, nil
}
