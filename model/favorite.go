package model

import (
	"time"
)

// Favorite marks a word as saved by a visitor. The composite unique index is
// what keeps a concurrent double-toggle from producing two rows for the same
// pair; a duplicate insert fails loudly at the store instead.
type Favorite struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	VisitorID        string    `json:"visitor_id" gorm:"not null;uniqueIndex:idx_visitor_word"`
	WordID           uint      `json:"word_id" gorm:"not null;uniqueIndex:idx_visitor_word"`
	TargetLanguageID uint      `json:"target_language_id" gorm:"not null;index"`
	CreatedAt        time.Time `json:"created_at" gorm:"not null"`
}

func (Favorite) TableName() string {
	return "favorites"
}
