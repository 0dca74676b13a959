package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/marslan-elation/Jobs-Handler/internal/dtos"
	"github.com/marslan-elation/Jobs-Handler/internal/models"
	"gorm.io/gorm"
)

type OutreachService struct {
	DB *gorm.DB
}

func NewOutreachService(db *gorm.DB) *OutreachService {
	return &OutreachService{
		DB: db,
	}
}

func (s *OutreachService) List() ([]models.Outreach, error) {
	var list []models.Outreach
	if err := s.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *OutreachService) Create(req *dtos.OutreachCreationRequest) (*models.Outreach, error) {
	if strings.TrimSpace(req.ContactEmail) == "" {
		return nil, &ValidationError{Field: "contactEmail"}
	}
	if strings.TrimSpace(req.Company) == "" {
		return nil, &ValidationError{Field: "company"}
	}

	status := req.Status
	if status == "" {
		status = "Sent"
	}

	logs := req.Logs
	for i := range logs {
		if logs[i].Timestamp.IsZero() {
			logs[i].Timestamp = time.Now()
		}
		if logs[i].Type == "" {
			logs[i].Type = "Sent"
		}
	}

	outreach := &models.Outreach{
		Subject:      req.Subject,
		MessageBody:  req.MessageBody,
		ContactEmail: req.ContactEmail,
		Company:      req.Company,
		JobRole:      req.JobRole,
		Tags:         SplitTags(req.Tags),
		Status:       status,
		FollowUpDate: req.FollowUpDate,
		ResponseDate: req.ResponseDate,
		IsActive:     true,
		Logs:         logs,
		UserID:       req.UserID,
	}
	if err := s.DB.Create(outreach).Error; err != nil {
		return nil, err
	}
	return outreach, nil
}

func (s *OutreachService) GetByID(id string) (*models.Outreach, error) {
	var outreach models.Outreach
	err := s.DB.First(&outreach, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &outreach, nil
}

// UpdateMerge shallow-merges the raw JSON body into the stored record: every
// key present in the body overwrites the stored field. This is deliberately
// looser than the named-field job patch and must stay that way.
func (s *OutreachService) UpdateMerge(id string, body []byte) (*models.Outreach, error) {
	outreach, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, outreach); err != nil {
		return nil, &ValidationError{Message: "Invalid JSON format: " + err.Error()}
	}
	// identity is not patchable
	outreach.ID = id
	if err := s.DB.Save(outreach).Error; err != nil {
		return nil, err
	}
	return outreach, nil
}

func (s *OutreachService) ToggleActive(id string) (*models.Outreach, error) {
	outreach, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	outreach.IsActive = !outreach.IsActive
	if err := s.DB.Save(outreach).Error; err != nil {
		return nil, err
	}
	return outreach, nil
}

// Delete fails with ErrNotFound for unknown ids, unlike job deletion.
func (s *OutreachService) Delete(id string) error {
	res := s.DB.Delete(&models.Outreach{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SplitTags turns a comma-separated string into a de-duplicated tag set,
// dropping empties.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
