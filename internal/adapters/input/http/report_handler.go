package http

import (
	"golang-health-portal/internal/domain"
	"golang-health-portal/internal/ports/input"
	"golang-health-portal/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Owner identity header. Authentication itself lives outside this service;
// the gateway in front of it sets this header.
const ownerHeader = "X-Owner-ID"

// ReportHandler struct - Primary/Driving adapter for saved reports
type ReportHandler struct {
	reports   input.ReportService
	validator validator.Validator
}

// NewReportHandler func - Creates new report handler
func NewReportHandler(reports input.ReportService) *ReportHandler {
	return &ReportHandler{
		reports:   reports,
		validator: validator.New(),
	}
}

// SaveReport func
/* save report */
// SaveReport godoc
// @Summary Save report
// @Description Persist a generated note or document analysis for the caller
// @Tags REPORTS
// @Accept application/json
// @Success 201 {object} map[string]interface{}
// @Router /v1/api/reports/save	[post]
// @Produce json
// @param X-Owner-ID header string true "owner identity"
// @param SaveReport body SaveReportRequest true "SaveReport"
func (hdl *ReportHandler) SaveReport(c *fiber.Ctx) error {
	owner := c.Get(ownerHeader)
	if owner == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{Status: Unauthorized})
	}

	var request SaveReportRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			"title, content and a type of note or analysis are required",
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	result, err := hdl.reports.SaveReport(domain.ReportRequest{
		OwnerID: owner,
		Title:   request.Title,
		Content: request.Content,
		Kind:    domain.ReportKind(request.Type),
	})
	if err != nil {
		logrus.Errorln(err)
		status := statusFromError(err)
		return c.Status(status.Code).JSON(ResponseBody{Status: status})
	}

	return c.Status(fiber.StatusCreated).JSON(ResponseBody{Status: Success, Data: ReportResponse{
		ID:        result.ID,
		Title:     result.Title,
		Type:      result.Kind,
		CreatedAt: result.CreatedAt,
	}})
}

// GetReports func
/* list reports */
// GetReports godoc
// @Summary List reports
// @Description List the caller's saved reports, newest first
// @Tags REPORTS
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/reports	[get]
// @Produce json
// @param X-Owner-ID header string true "owner identity"
func (hdl *ReportHandler) GetReports(c *fiber.Ctx) error {
	owner := c.Get(ownerHeader)
	if owner == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{Status: Unauthorized})
	}

	result, err := hdl.reports.ListReports(owner)
	if err != nil {
		logrus.Errorln(err)
		status := statusFromError(err)
		return c.Status(status.Code).JSON(ResponseBody{Status: status})
	}

	data := make([]ReportResponse, 0, len(result))
	for _, report := range result {
		data = append(data, ReportResponse{
			ID:        report.ID,
			Title:     report.Title,
			Content:   report.Content,
			Type:      report.Kind,
			CreatedAt: report.CreatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: data})
}
