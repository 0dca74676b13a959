package dtos

// SettingRequest upserts the singleton job-application setting.
// ConvertCurrency is a pointer so an absent key preserves the stored value.
type SettingRequest struct {
	LocalCurrency   string `json:"localCurrency"`
	ConvertCurrency *bool  `json:"convertCurrency"`
}
