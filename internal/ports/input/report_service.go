package input

import "golang-health-portal/internal/domain"

// ReportService interface - Input port (use case)
// Persisting and listing generated artifacts per caller identity. A save
// failure is reported to the caller but never invalidates the artifact
// itself, which the caller already holds.
type ReportService interface {
	SaveReport(request domain.ReportRequest) (*domain.ReportResponse, error)
	ListReports(ownerID string) ([]domain.ReportResponse, error)
}
