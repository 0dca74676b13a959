package services

import (
	"errors"
	"strings"

	"github.com/marslan-elation/Jobs-Handler/internal/dtos"
	"github.com/marslan-elation/Jobs-Handler/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

// List returns every job application, newest first. No pagination; the
// dashboard filters and sorts client-side.
func (s *JobService) List() ([]models.JobApplication, error) {
	var jobs []models.JobApplication
	if err := s.DB.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) Create(req *dtos.JobCreationRequest) (*models.JobApplication, error) {
	// Same field order as the submission form; the first empty one is reported.
	required := []struct {
		name  string
		value string
	}{
		{"jobTitle", req.JobTitle},
		{"platform", req.Platform},
		{"jobType", req.JobType},
		{"locationType", req.LocationType},
		{"jobLink", req.JobLink},
		{"sharedExperience", req.SharedExperience},
		{"actualExperience", req.ActualExperience},
		{"resumeLink", req.ResumeLink},
		{"appliedDate", req.AppliedDate},
		{"country", req.Country},
		{"currency", req.Currency},
		{"status", req.Status},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, &ValidationError{Field: f.name}
		}
	}
	// city is required unless the position is remote
	if !strings.EqualFold(strings.TrimSpace(req.LocationType), "Remote") &&
		strings.TrimSpace(req.City) == "" {
		return nil, &ValidationError{Field: "city"}
	}
	if req.SalaryOffered < 0 {
		return nil, &ValidationError{Field: "salaryOffered", Message: "salaryOffered must not be negative"}
	}
	if req.SalaryExpected < 0 {
		return nil, &ValidationError{Field: "salaryExpected", Message: "salaryExpected must not be negative"}
	}

	perAnnum := true
	if req.IsSalaryPerAnnum != nil {
		perAnnum = *req.IsSalaryPerAnnum
	}

	job := &models.JobApplication{
		Company:          req.Company,
		Platform:         req.Platform,
		JobType:          req.JobType,
		LocationType:     req.LocationType,
		JobLink:          req.JobLink,
		JobTitle:         req.JobTitle,
		SharedExperience: req.SharedExperience,
		ActualExperience: req.ActualExperience,
		Country:          req.Country,
		City:             req.City,
		SalaryOffered:    req.SalaryOffered,
		SalaryExpected:   req.SalaryExpected,
		Currency:         req.Currency,
		Status:           req.Status,
		ResumeLink:       req.ResumeLink,
		AppliedDate:      req.AppliedDate,
		CoverLetter:      req.CoverLetter,
		AdditionalInfo:   req.AdditionalInfo,
		IsSalaryPerAnnum: perAnnum,
		IsActive:         true,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) GetByID(id string) (*models.JobApplication, error) {
	var job models.JobApplication
	err := s.DB.First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdatePartial applies only the fields present in the patch. The
// city/locationType rule is NOT re-checked here, so a patch can leave a
// record inconsistent; create-time validation is the only gate.
func (s *JobService) UpdatePartial(id string, patch *dtos.JobPatchRequest) (*models.JobApplication, error) {
	job, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Company != nil {
		job.Company = *patch.Company
	}
	if patch.Platform != nil {
		job.Platform = *patch.Platform
	}
	if patch.JobType != nil {
		job.JobType = *patch.JobType
	}
	if patch.LocationType != nil {
		job.LocationType = *patch.LocationType
	}
	if patch.JobLink != nil {
		job.JobLink = *patch.JobLink
	}
	if patch.JobTitle != nil {
		job.JobTitle = *patch.JobTitle
	}
	if patch.SharedExperience != nil {
		job.SharedExperience = *patch.SharedExperience
	}
	if patch.ActualExperience != nil {
		job.ActualExperience = *patch.ActualExperience
	}
	if patch.Country != nil {
		job.Country = *patch.Country
	}
	if patch.City != nil {
		job.City = *patch.City
	}
	if patch.SalaryOffered != nil {
		job.SalaryOffered = *patch.SalaryOffered
	}
	if patch.SalaryExpected != nil {
		job.SalaryExpected = *patch.SalaryExpected
	}
	if patch.Currency != nil {
		job.Currency = *patch.Currency
	}
	if patch.Status != nil {
		job.Status = *patch.Status
	}
	if patch.ResumeLink != nil {
		job.ResumeLink = *patch.ResumeLink
	}
	if patch.AppliedDate != nil {
		job.AppliedDate = *patch.AppliedDate
	}
	if patch.CoverLetter != nil {
		job.CoverLetter = *patch.CoverLetter
	}
	if patch.AdditionalInfo != nil {
		job.AdditionalInfo = *patch.AdditionalInfo
	}
	if patch.IsSalaryPerAnnum != nil {
		job.IsSalaryPerAnnum = *patch.IsSalaryPerAnnum
	}
	if patch.IsActive != nil {
		job.IsActive = *patch.IsActive
	}

	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// ToggleActive flips isActive. Read-then-write with no compare-and-swap:
// two concurrent toggles race, last writer wins. Known limitation.
func (s *JobService) ToggleActive(id string) (*models.JobApplication, error) {
	job, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	job.IsActive = !job.IsActive
	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Delete is idempotent: removing an id that does not exist is still success.
func (s *JobService) Delete(id string) error {
	return s.DB.Delete(&models.JobApplication{}, "id = ?", id).Error
}
