package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobAppSettingID is the fixed primary key of the singleton settings record.
// Storing it under a well-known key means a second instance can never be
// created by a racing upsert.
const JobAppSettingID = "job-application"

// JobApplication is one tracked application. Records are identified by an
// opaque app-generated id, not an auto-increment.
type JobApplication struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Company          string  `json:"company"` // optional
	Platform         string  `gorm:"not null" json:"platform"`
	JobType          string  `gorm:"not null" json:"jobType"`
	LocationType     string  `gorm:"not null" json:"locationType"` // Remote | Onsite | Hybrid
	JobLink          string  `gorm:"not null" json:"jobLink"`
	JobTitle         string  `gorm:"not null" json:"jobTitle"`
	SharedExperience string  `gorm:"type:text" json:"sharedExperience"`
	ActualExperience string  `gorm:"type:text" json:"actualExperience"`
	Country          string  `json:"country"`
	City             string  `json:"city"` // required unless LocationType is Remote
	SalaryOffered    float64 `json:"salaryOffered"`
	SalaryExpected   float64 `json:"salaryExpected"`
	Currency         string  `json:"currency"`
	Status           string  `json:"status"` // Pending | Interviewed | Offered | Rejected by Company | Rejected by Me
	ResumeLink       string  `json:"resumeLink"`
	AppliedDate      string  `json:"appliedDate"` // YYYY-MM-DD
	CoverLetter      string  `gorm:"type:text" json:"coverLetter"`    // optional
	AdditionalInfo   string  `gorm:"type:text" json:"additionalInfo"` // optional rich text
	IsSalaryPerAnnum bool    `json:"isSalaryPerAnnum"`
	IsActive         bool    `json:"isActive"`
}

func (j *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

// OutreachLog is one entry in an outreach record's activity trail. Stored
// inline as part of the parent's JSON logs column.
type OutreachLog struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"` // Sent | Response | Follow-Up
}

// Outreach is a tracked networking/contact attempt toward a company.
type Outreach struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Subject      string        `json:"subject"`
	MessageBody  string        `gorm:"type:text" json:"messageBody"`
	ContactEmail string        `gorm:"not null" json:"contactEmail"`
	Company      string        `gorm:"not null" json:"company"`
	JobRole      string        `json:"jobRole"`
	Tags         []string      `gorm:"serializer:json" json:"tags"`
	Status       string        `json:"status"`       // Sent | Followed Up | Responded | Accepted | Rejected | No Reply
	FollowUpDate string        `json:"followUpDate"` // YYYY-MM-DD, optional
	ResponseDate string        `json:"responseDate"` // YYYY-MM-DD, optional
	IsActive     bool          `json:"isActive"`
	Logs         []OutreachLog `gorm:"serializer:json" json:"logs"`

	// Weak reference to the owning user: id only, no cascade.
	UserID string `gorm:"index" json:"user,omitempty"`
}

func (o *Outreach) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// JobAppSetting is the singleton dashboard setting controlling currency
// conversion of displayed salaries. ConvertCurrency=true requires a
// non-empty LocalCurrency; the service enforces it on every upsert.
type JobAppSetting struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	LocalCurrency   string `json:"localCurrency"`
	ConvertCurrency bool   `json:"convertCurrency"`
}

// User is the persisted auth credential record. The password hash is never
// serialized to clients. Users are provisioned by cmd/createadmin, not over
// the API.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Username *string `gorm:"uniqueIndex" json:"username,omitempty"` // alternate login key
	Password string  `gorm:"not null" json:"-"`                     // bcrypt hash
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Permission records a per-module access level for a user. It is migrated
// and writable but checked by no handler; request handling establishes
// authentication only.
type Permission struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID      string `gorm:"index" json:"user"`
	Module      string `json:"module"`                            // outreach | jobs
	AccessLevel string `gorm:"default:'read'" json:"accessLevel"` // read | write | admin
}

func (p *Permission) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
