package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportKind type
type ReportKind string

const (
	// ReportKindNote const - a generated clinical note
	ReportKindNote ReportKind = "note"
	// ReportKindAnalysis const - a generated document analysis
	ReportKindAnalysis ReportKind = "analysis"
)

// SavedReport struct - Core domain entity for a persisted artifact
type SavedReport struct {
	ID        *uuid.UUID      `gorm:"type:uuid;primary_key;"`
	OwnerID   *string         `gorm:"type:varchar(64);not null;index"`
	Title     *string         `gorm:"type:varchar(200);not null;"`
	Content   *string         `gorm:"type:TEXT;not null;"`
	Kind      *ReportKind     `gorm:"type:varchar(8);not null;"`
	CreatedAt *time.Time      `gorm:"type:timestamp"`
	UpdatedAt *time.Time      `gorm:"type:timestamp"`
	DeletedAt *gorm.DeletedAt `gorm:"type:timestamp"`
}

// TableName func
func (r *SavedReport) TableName() string {
	return "saved_reports"
}

// BeforeCreate hook - generates UUID before creating
func (r *SavedReport) BeforeCreate(tx *gorm.DB) (err error) {
	uuid, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	r.ID = &uuid
	return nil
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(&SavedReport{})
	if err != nil {
		panic(err)
	}
}
