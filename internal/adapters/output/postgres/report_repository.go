package postgres

import (
	"golang-health-portal/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReportRepository struct - Secondary/Driven adapter for PostgreSQL
type ReportRepository struct {
	dbGorm *gorm.DB
}

// NewReportRepository func - Creates new PostgreSQL repository
func NewReportRepository(dbGorm *gorm.DB) *ReportRepository {
	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbGorm)
	return &ReportRepository{
		dbGorm: dbGorm,
	}
}

// SaveReport func - Persists a generated artifact in the database
func (p *ReportRepository) SaveReport(request domain.ReportRequest) (*domain.ReportResponse, error) {
	report := domain.SavedReport{
		OwnerID: &request.OwnerID,
		Title:   &request.Title,
		Content: &request.Content,
		Kind:    &request.Kind,
	}

	if err := p.dbGorm.Create(&report).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	response := domain.ReportResponse{
		ID:        report.ID,
		Title:     report.Title,
		Content:   report.Content,
		Kind:      report.Kind,
		CreatedAt: report.CreatedAt,
	}
	return &response, nil
}

// ListReports func - Returns the owner's saved reports, newest first
func (p *ReportRepository) ListReports(ownerID string) ([]domain.ReportResponse, error) {
	var reports []domain.SavedReport

	err := p.dbGorm.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	responses := make([]domain.ReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, domain.ReportResponse{
			ID:        report.ID,
			Title:     report.Title,
			Content:   report.Content,
			Kind:      report.Kind,
			CreatedAt: report.CreatedAt,
		})
	}
	return responses, nil
}
