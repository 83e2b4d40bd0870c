package domain

import "time"

// InterviewStatus type
type InterviewStatus string

const (
	// InterviewStatusActive const - interview is waiting for answers
	InterviewStatusActive InterviewStatus = "ACTIVE"
	// InterviewStatusComplete const - all questions answered, note generated
	InterviewStatusComplete InterviewStatus = "COMPLETE"
)

// QuestionAnswer represents one question/answer pair of the interview transcript
type QuestionAnswer struct {
	Question string
	Answer   string
}

// InterviewSession represents one in-progress or completed clinical intake interview.
// History holds the transcript in submission order; the order is significant
// because it defines the transcript fed into note generation.
type InterviewSession struct {
	ID              string           // Opaque session identifier (UUID v4)
	CurrentQuestion string           // Question awaiting an answer; empty once complete
	History         []QuestionAnswer // Accepted question/answer pairs in submission order
	QuestionsAsked  int              // Count of accepted answers, monotonically increasing
	Status          InterviewStatus
	LastAccessTime  time.Time     // For session expiration checking
	timeout         time.Duration // Configurable session timeout
}

// NewInterviewSession creates a new active interview session holding its
// first question, with a configurable expiry timeout
func NewInterviewSession(id, firstQuestion string, timeout time.Duration) *InterviewSession {
	return &InterviewSession{
		ID:              id,
		CurrentQuestion: firstQuestion,
		History:         make([]QuestionAnswer, 0),
		QuestionsAsked:  0,
		Status:          InterviewStatusActive,
		LastAccessTime:  time.Now(),
		timeout:         timeout,
	}
}

// IsExpired checks if the session has exceeded the configured timeout
func (s *InterviewSession) IsExpired() bool {
	return time.Since(s.LastAccessTime) > s.timeout
}

// Advance records an accepted answer to the current question and stores the
// next question, keeping the session active. Callers must only invoke this
// after the next question has been successfully generated, so a generation
// failure never leaves a partially mutated session.
func (s *InterviewSession) Advance(answer, nextQuestion string) {
	s.History = append(s.History, QuestionAnswer{Question: s.CurrentQuestion, Answer: answer})
	s.QuestionsAsked++
	s.CurrentQuestion = nextQuestion
}

// Complete records the final accepted answer and transitions the session to
// its terminal state. CurrentQuestion is cleared; the session accepts no
// further answers.
func (s *InterviewSession) Complete(answer string) {
	s.History = append(s.History, QuestionAnswer{Question: s.CurrentQuestion, Answer: answer})
	s.QuestionsAsked++
	s.CurrentQuestion = ""
	s.Status = InterviewStatusComplete
}

// Transcript returns a copy of the interview history in submission order
func (s *InterviewSession) Transcript() []QuestionAnswer {
	if len(s.History) == 0 {
		return []QuestionAnswer{}
	}

	// Return a copy to prevent external modification
	transcript := make([]QuestionAnswer, len(s.History))
	copy(transcript, s.History)
	return transcript
}
