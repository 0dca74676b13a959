package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/marslan-elation/Jobs-Handler/internal/database"
	"github.com/marslan-elation/Jobs-Handler/internal/dtos"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB opens a fresh in-memory database with the full schema.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, or every pooled conn would get its own :memory: db
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func validJobRequest() *dtos.JobCreationRequest {
	return &dtos.JobCreationRequest{
		JobTitle:         "Backend Engineer",
		Platform:         "LinkedIn",
		JobType:          "Full-time",
		LocationType:     "Onsite",
		JobLink:          "https://example.com/job/1",
		SharedExperience: "3 years",
		ActualExperience: "4 years",
		ResumeLink:       "https://drive.example.com/resume",
		AppliedDate:      "2026-08-01",
		Country:          "Germany",
		City:             "Berlin",
		Currency:         "EUR",
		Status:           "Pending",
		SalaryOffered:    60000,
		SalaryExpected:   65000,
	}
}
