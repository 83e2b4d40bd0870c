package http

import (
	"golang-health-portal/internal/ports/input"
	"golang-health-portal/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ReferenceHandler struct - Primary/Driving adapter for reference lookups
type ReferenceHandler struct {
	reference input.ReferenceService
	validator validator.Validator
}

// NewReferenceHandler func - Creates new reference handler
func NewReferenceHandler(reference input.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		reference: reference,
		validator: validator.New(),
	}
}

// GetMedications func
/* list medications */
// GetMedications godoc
// @Summary List medications
// @Description List the medication directory
// @Tags REFERENCE
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/medications	[get]
// @Produce json
func (hdl *ReferenceHandler) GetMedications(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: hdl.reference.ListMedications()})
}

// CheckInteractions func
/* check medication interactions */
// CheckInteractions godoc
// @Summary Check medication interactions
// @Description Return known interactions between the selected medications
// @Tags REFERENCE
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/check-interactions	[post]
// @Produce json
// @param CheckInteractions body CheckInteractionsRequest true "CheckInteractions"
func (hdl *ReferenceHandler) CheckInteractions(c *fiber.Ctx) error {
	var request CheckInteractionsRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: hdl.reference.CheckInteractions(request.Medications)})
}

// GetSymptoms func
/* list symptoms */
// GetSymptoms godoc
// @Summary List symptoms
// @Description List the symptom directory
// @Tags REFERENCE
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/symptoms	[get]
// @Produce json
func (hdl *ReferenceHandler) GetSymptoms(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: hdl.reference.ListSymptoms()})
}

// CheckConditions func
/* check conditions */
// CheckConditions godoc
// @Summary Check conditions
// @Description Return conditions matching at least one of the reported symptoms
// @Tags REFERENCE
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/check-conditions	[post]
// @Produce json
// @param CheckConditions body CheckConditionsRequest true "CheckConditions"
func (hdl *ReferenceHandler) CheckConditions(c *fiber.Ctx) error {
	var request CheckConditionsRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: hdl.reference.CheckConditions(request.Symptoms)})
}
