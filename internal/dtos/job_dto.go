package dtos

type JobCreationRequest struct {
	JobTitle         string  `json:"jobTitle"`
	Platform         string  `json:"platform"`
	JobType          string  `json:"jobType"`
	LocationType     string  `json:"locationType"`
	JobLink          string  `json:"jobLink"`
	SharedExperience string  `json:"sharedExperience"`
	ActualExperience string  `json:"actualExperience"`
	ResumeLink       string  `json:"resumeLink"`
	AppliedDate      string  `json:"appliedDate"`
	Country          string  `json:"country"`
	City             string  `json:"city"` // required unless locationType is Remote
	Currency         string  `json:"currency"`
	Status           string  `json:"status"`
	SalaryOffered    float64 `json:"salaryOffered"`
	SalaryExpected   float64 `json:"salaryExpected"`

	// Optional Fields
	Company          string `json:"company"`
	CoverLetter      string `json:"coverLetter"`
	AdditionalInfo   string `json:"additionalInfo"`
	IsSalaryPerAnnum *bool  `json:"isSalaryPerAnnum"` // defaults to true
}

// JobPatchRequest carries a partial update. Only the named fields below can
// be patched; anything else in the body is ignored. Nil means "not present",
// so a patch may legitimately set a field to its zero value.
type JobPatchRequest struct {
	Company          *string  `json:"company"`
	Platform         *string  `json:"platform"`
	JobType          *string  `json:"jobType"`
	LocationType     *string  `json:"locationType"`
	JobLink          *string  `json:"jobLink"`
	JobTitle         *string  `json:"jobTitle"`
	SharedExperience *string  `json:"sharedExperience"`
	ActualExperience *string  `json:"actualExperience"`
	Country          *string  `json:"country"`
	City             *string  `json:"city"`
	SalaryOffered    *float64 `json:"salaryOffered"`
	SalaryExpected   *float64 `json:"salaryExpected"`
	Currency         *string  `json:"currency"`
	Status           *string  `json:"status"`
	ResumeLink       *string  `json:"resumeLink"`
	AppliedDate      *string  `json:"appliedDate"`
	CoverLetter      *string  `json:"coverLetter"`
	AdditionalInfo   *string  `json:"additionalInfo"`
	IsSalaryPerAnnum *bool    `json:"isSalaryPerAnnum"`
	IsActive         *bool    `json:"isActive"`
}
