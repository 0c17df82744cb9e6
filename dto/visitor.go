package dto

import "time"

type InitVisitorRequest struct {
	// Optional id from a previous session. Absent or unknown ids both lead
	// to a fresh visitor row.
	VisitorID  string `json:"visitor_id" validate:"omitempty,max=64"`
	Platform   string `json:"platform" validate:"omitempty,oneof=ios android web"`
	AppVersion string `json:"app_version" validate:"omitempty,max=32"`
	Country    string `json:"country" validate:"omitempty,max=64"`

	// Preference overrides. Zero means "not supplied".
	SourceLanguageID uint `json:"source_language_id" validate:"omitempty,min=1"`
	TargetLanguageID uint `json:"target_language_id" validate:"omitempty,min=1"`
}

func (r InitVisitorRequest) Validate() error {
	return GetValidator().Struct(r)
}

type InitVisitorResponse struct {
	VisitorID        string `json:"visitor_id"`
	SourceLanguageID uint   `json:"source_language_id"`
	TargetLanguageID uint   `json:"target_language_id"`
	IsNew            bool   `json:"is_new"`
}

type UpdatePreferencesRequest struct {
	VisitorID        string `json:"visitor_id" validate:"required,max=64"`
	SourceLanguageID uint   `json:"source_language_id" validate:"required,min=1"`
	TargetLanguageID uint   `json:"target_language_id" validate:"required,min=1"`
}

func (r UpdatePreferencesRequest) Validate() error {
	return GetValidator().Struct(r)
}

type VisitorResponse struct {
	ID               string    `json:"id"`
	SourceLanguageID uint      `json:"source_language_id"`
	TargetLanguageID uint      `json:"target_language_id"`
	Platform         string    `json:"platform"`
	AppVersion       string    `json:"app_version"`
	Country          string    `json:"country"`
	FirstSeenAt      time.Time `json:"first_seen_at"`
	LastSeenAt       time.Time `json:"last_seen_at"`
}
