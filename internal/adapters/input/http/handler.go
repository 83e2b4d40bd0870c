package http

import (
	"golang-health-portal/internal/ports/input"
	"golang-health-portal/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	interview input.InterviewService
	db        *gorm.DB
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(interview input.InterviewService, db *gorm.DB) *HTTPHandler {
	return &HTTPHandler{
		interview: interview,
		db:        db,
		validator: validator.New(),
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := hdl.db.DB()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	err = sqlDB.Ping()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// StartInterview func
/* start intake interview */
// StartInterview godoc
// @Summary Start intake interview
// @Description Start a new clinical intake interview from a patient description
// @Tags INTERVIEW
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/interview/start	[post]
// @Produce json
// @param StartInterview body StartInterviewRequest true "StartInterview"
func (hdl *HTTPHandler) StartInterview(c *fiber.Ctx) error {
	var request StartInterviewRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			"description is required",
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	result, err := hdl.interview.StartInterview(c.Context(), request.Description)
	if err != nil {
		logrus.Errorln(err)
		status := statusFromError(err)
		return c.Status(status.Code).JSON(ResponseBody{Status: status})
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: StartInterviewResponse{
		SessionID: result.SessionID,
		Question:  result.Question,
	}})
}

// SubmitAnswer func
/* submit interview answer */
// SubmitAnswer godoc
// @Summary Submit interview answer
// @Description Submit an answer to the session's current question; returns the next question or the generated SOAP notes
// @Tags INTERVIEW
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/interview/answer	[post]
// @Produce json
// @param SubmitAnswer body SubmitAnswerRequest true "SubmitAnswer"
func (hdl *HTTPHandler) SubmitAnswer(c *fiber.Ctx) error {
	var request SubmitAnswerRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			"session_id and answer are required",
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	result, err := hdl.interview.SubmitAnswer(c.Context(), request.SessionID, request.Answer)
	if err != nil {
		logrus.Errorln(err)
		status := statusFromError(err)
		return c.Status(status.Code).JSON(ResponseBody{Status: status})
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: AnswerResponse{
		Complete:  result.Completed,
		Question:  result.NextQuestion,
		SoapNotes: result.Note,
	}})
}
