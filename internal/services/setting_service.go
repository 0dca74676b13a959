package services

import (
	"errors"
	"strings"

	"github.com/marslan-elation/Jobs-Handler/internal/dtos"
	"github.com/marslan-elation/Jobs-Handler/internal/models"
	"gorm.io/gorm"
)

type SettingService struct {
	DB *gorm.DB
}

func NewSettingService(db *gorm.DB) *SettingService {
	return &SettingService{
		DB: db,
	}
}

// Get returns the singleton setting, or nil when none exists yet. Reading
// never creates one.
func (s *SettingService) Get() (*models.JobAppSetting, error) {
	var setting models.JobAppSetting
	err := s.DB.First(&setting, "id = ?", models.JobAppSettingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Upsert creates the singleton on first write, otherwise updates it in
// place. localCurrency is always overwritten; convertCurrency only when the
// key was present in the request.
func (s *SettingService) Upsert(req *dtos.SettingRequest) (*models.JobAppSetting, error) {
	if req.ConvertCurrency != nil && *req.ConvertCurrency &&
		strings.TrimSpace(req.LocalCurrency) == "" {
		return nil, &ValidationError{Field: "localCurrency", Message: "localCurrency is required"}
	}

	setting, err := s.Get()
	if err != nil {
		return nil, err
	}

	if setting == nil {
		setting = &models.JobAppSetting{
			ID:            models.JobAppSettingID,
			LocalCurrency: req.LocalCurrency,
		}
		if req.ConvertCurrency != nil {
			setting.ConvertCurrency = *req.ConvertCurrency
		}
		if err := s.DB.Create(setting).Error; err != nil {
			return nil, err
		}
		return setting, nil
	}

	setting.LocalCurrency = req.LocalCurrency
	if req.ConvertCurrency != nil {
		setting.ConvertCurrency = *req.ConvertCurrency
	}
	if err := s.DB.Save(setting).Error; err != nil {
		return nil, err
	}
	return setting, nil
}
