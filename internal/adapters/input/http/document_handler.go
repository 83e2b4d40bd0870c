package http

import (
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"golang-health-portal/internal/domain"
	"golang-health-portal/internal/ports/input"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// DocumentHandler struct - Primary/Driving adapter for document analysis
type DocumentHandler struct {
	documents input.DocumentService
}

// NewDocumentHandler func - Creates new document handler
func NewDocumentHandler(documents input.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documents: documents,
	}
}

// ProcessDocuments func
/* batch document analysis */
// ProcessDocuments godoc
// @Summary Analyze documents
// @Description Analyze a batch of medical documents; every uploaded file yields an independent result or error
// @Tags DOCUMENTS
// @Accept multipart/form-data
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/documents/process	[post]
// @Produce json
// @param documents formData file true "documents"
// @param language formData string false "output language"
func (hdl *DocumentHandler) ProcessDocuments(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	files := form.File["documents"]
	if len(files) == 0 {
		msg := ResponseBody{Status: BadRequest}
		msg.Status.Message = []string{"No documents provided"}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	items := make([]domain.DocumentItem, 0, len(files))
	for _, file := range files {
		payload, err := readUpload(file)
		if err != nil {
			logrus.Errorf("Failed to read upload %s: %v", file.Filename, err)
			payload = nil // captured as a per-item failure downstream
		}
		items = append(items, domain.DocumentItem{
			Name:    file.Filename,
			Payload: payload,
			Kind:    kindFromFilename(file.Filename),
		})
	}

	request := domain.BatchAnalysisRequest{
		Items:    items,
		Language: c.FormValue("language"),
	}

	result, err := hdl.documents.AnalyzeDocuments(c.Context(), request)
	if err != nil {
		logrus.Errorln(err)
		status := statusFromError(err)
		return c.Status(status.Code).JSON(ResponseBody{Status: status})
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: BatchAnalysisResponse{
		Results: result.Outcomes,
		Success: result.Success,
	}})
}

// readUpload drains one multipart file into memory
func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// kindFromFilename derives the declared content kind from the uploaded file
// name. Unknown extensions map onto an unsupported kind and fail per item.
func kindFromFilename(name string) domain.DocumentKind {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return domain.DocumentKind(ext)
}
