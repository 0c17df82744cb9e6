package model

import (
	"time"
)

// SourceLanguage is the learner's own language ("my language"). Its id space
// is independent from TargetLanguage.
type SourceLanguage struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Code string `json:"code" gorm:"uniqueIndex;not null"`
	Name string `json:"name" gorm:"not null"`
}

func (SourceLanguage) TableName() string {
	return "source_languages"
}

// TargetLanguage is a language being learned. Every word belongs to exactly
// one target language.
type TargetLanguage struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Code string `json:"code" gorm:"uniqueIndex;not null"`
	Name string `json:"name" gorm:"not null"`
}

func (TargetLanguage) TableName() string {
	return "target_languages"
}

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

func (Category) TableName() string {
	return "categories"
}

type Word struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	TargetLanguageID uint      `json:"target_language_id" gorm:"not null;index"`
	Text             string    `json:"text" gorm:"not null"`
	Pronunciation    string    `json:"pronunciation"`
	Definition       string    `json:"definition"`
	ExampleSentence  string    `json:"example_sentence"`
	ExampleSentence2 string    `json:"example_sentence_2"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Word) TableName() string {
	return "words"
}

// WordCategory links words and categories many-to-many.
type WordCategory struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	WordID     uint `json:"word_id" gorm:"not null;uniqueIndex:idx_word_category"`
	CategoryID uint `json:"category_id" gorm:"not null;uniqueIndex:idx_word_category"`
}

func (WordCategory) TableName() string {
	return "word_categories"
}
