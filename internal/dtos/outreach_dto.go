package dtos

import "github.com/marslan-elation/Jobs-Handler/internal/models"

type OutreachCreationRequest struct {
	ContactEmail string `json:"contactEmail"`
	Company      string `json:"company"`

	// Optional Fields
	Subject      string               `json:"subject"`
	MessageBody  string               `json:"messageBody"`
	JobRole      string               `json:"jobRole"`
	Tags         string               `json:"tags"` // comma-separated, split server-side
	Status       string               `json:"status"`
	FollowUpDate string               `json:"followUpDate"`
	ResponseDate string               `json:"responseDate"`
	Logs         []models.OutreachLog `json:"logs"`
	UserID       string               `json:"user"`
}
