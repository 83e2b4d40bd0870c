package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang-health-portal/internal/domain"
	"golang-health-portal/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// ChatService struct - Application service implementing the health assistant
// conversation. Stateless: every message is answered on its own against the
// reasoning service, with no server-held conversation state.
type ChatService struct {
	reasoning output.ReasoningClient
}

// NewChatService func - Creates new chat service
func NewChatService(reasoning output.ReasoningClient) *ChatService {
	return &ChatService{
		reasoning: reasoning,
	}
}

// SendMessage func - Use case: Answer a single free-form patient message
func (s *ChatService) SendMessage(ctx context.Context, message string) (*domain.ChatResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}

	reply, err := s.reasoning.Generate(ctx, fmt.Sprintf(chatPrompt, message), domain.GenerationModeChat)
	if err != nil {
		logrus.Errorf("Failed to generate chat reply: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	if strings.TrimSpace(reply) == "" {
		return nil, fmt.Errorf("%w: reasoning service returned an empty reply", domain.ErrGenerationFailed)
	}

	return &domain.ChatResult{
		Reply:     reply,
		Timestamp: time.Now().UTC(),
	}, nil
}
