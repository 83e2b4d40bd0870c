package input

import (
	"context"

	"golang-health-portal/internal/domain"
)

// ChatService interface - Input port (use case)
// A stateless health assistant conversation: each message is answered on its
// own, without server-held conversation state.
type ChatService interface {
	// SendMessage answers a single free-form message. Fails with
	// domain.ErrInvalidInput on an empty message and
	// domain.ErrGenerationFailed if no reply can be generated.
	SendMessage(ctx context.Context, message string) (*domain.ChatResult, error)
}
