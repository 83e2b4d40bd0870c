package http

import (
	"golang-health-portal/internal/ports/input"
	"golang-health-portal/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ChatHandler struct - Primary/Driving adapter for the health assistant chat
type ChatHandler struct {
	chat      input.ChatService
	validator validator.Validator
}

// NewChatHandler func - Creates new chat handler
func NewChatHandler(chat input.ChatService) *ChatHandler {
	return &ChatHandler{
		chat:      chat,
		validator: validator.New(),
	}
}

// SendMessage func
/* health assistant chat */
// SendMessage godoc
// @Summary Send chat message
// @Description Answer a free-form patient message as a supportive health assistant
// @Tags CHAT
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/chat	[post]
// @Produce json
// @param SendMessage body ChatRequest true "SendMessage"
func (hdl *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var request ChatRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			"message is required",
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	result, err := hdl.chat.SendMessage(c.Context(), request.Message)
	if err != nil {
		logrus.Errorln(err)
		status := statusFromError(err)
		return c.Status(status.Code).JSON(ResponseBody{Status: status})
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ChatResponse{
		Message:   result.Reply,
		Timestamp: result.Timestamp,
	}})
}
