package output

import "golang-health-portal/internal/domain"

// ReportRepository interface - Output port
// Defines what the application needs for persisting generated artifacts
// (clinical notes and document analyses) under a caller identity.
type ReportRepository interface {
	// SaveReport persists a generated artifact and returns the stored record.
	SaveReport(request domain.ReportRequest) (*domain.ReportResponse, error)

	// ListReports returns the caller's saved reports, newest first.
	ListReports(ownerID string) ([]domain.ReportResponse, error)
}
