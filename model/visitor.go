package model

import (
	"time"
)

// Visitor is an anonymous app install. The id is an opaque server-issued
// capability string, handed out once and never reassigned.
type Visitor struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	SourceLanguageID uint      `json:"source_language_id" gorm:"not null"`
	TargetLanguageID uint      `json:"target_language_id" gorm:"not null"`
	Platform         string    `json:"platform"`
	AppVersion       string    `json:"app_version"`
	Country          string    `json:"country"`
	FirstSeenAt      time.Time `json:"first_seen_at" gorm:"not null"`
	LastSeenAt       time.Time `json:"last_seen_at" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"not null"`
}

func (Visitor) TableName() string {
	return "visitors"
}
