package application

import (
	"fmt"

	"golang-health-portal/internal/domain"
	"golang-health-portal/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// ReportService struct - Application service implementing report persistence
// use cases. A save failure is reported to the caller but never invalidates
// the generated artifact, which the caller already holds.
type ReportService struct {
	repo output.ReportRepository
}

// NewReportService func - Creates new report service
func NewReportService(repo output.ReportRepository) *ReportService {
	return &ReportService{
		repo: repo,
	}
}

// SaveReport func - Use case: Persist a generated artifact under its owner
func (s *ReportService) SaveReport(request domain.ReportRequest) (*domain.ReportResponse, error) {
	if request.OwnerID == "" || request.Title == "" || request.Content == "" {
		return nil, fmt.Errorf("%w: owner, title and content are required", domain.ErrInvalidInput)
	}
	if request.Kind != domain.ReportKindNote && request.Kind != domain.ReportKindAnalysis {
		return nil, fmt.Errorf("%w: invalid report type: %s", domain.ErrInvalidInput, request.Kind)
	}

	result, err := s.repo.SaveReport(request)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	logrus.Infof("Saved %s report %s for owner %s", request.Kind, result.ID, request.OwnerID)

	return result, nil
}

// ListReports func - Use case: List the owner's saved reports, newest first
func (s *ReportService) ListReports(ownerID string) ([]domain.ReportResponse, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", domain.ErrInvalidInput)
	}
	return s.repo.ListReports(ownerID)
}
