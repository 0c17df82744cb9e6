package seeders

import (
	"log"

	"github.com/kelimeapp/vocab_api/model"
	"gorm.io/gorm"
)

// LanguageSeeder loads the source and target language reference tables.
type LanguageSeeder struct {
	db *gorm.DB
}

func NewLanguageSeeder(db *gorm.DB) *LanguageSeeder {
	return &LanguageSeeder{db: db}
}

func (s *LanguageSeeder) SeedLanguages() error {
	for _, language := range s.getSourceLanguages() {
		var existing model.SourceLanguage
		if err := s.db.Where("id = ?", language.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&language).Error; err != nil {
					log.Printf("Error creating source language %s: %v", language.Code, err)
					return err
				}
				log.Printf("Created source language: %s", language.Name)
			} else {
				return err
			}
		} else {
			log.Printf("Source language %s already exists, skipping", language.Name)
		}
	}

	for _, language := range s.getTargetLanguages() {
		var existing model.TargetLanguage
		if err := s.db.Where("id = ?", language.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&language).Error; err != nil {
					log.Printf("Error creating target language %s: %v", language.Code, err)
					return err
				}
				log.Printf("Created target language: %s", language.Name)
			} else {
				return err
			}
		} else {
			log.Printf("Target language %s already exists, skipping", language.Name)
		}
	}

	log.Println("Language seeding completed successfully")
	return nil
}

func (s *LanguageSeeder) getSourceLanguages() []model.SourceLanguage {
	return []model.SourceLanguage{
		{ID: 1, Code: "tr", Name: "Türkçe"},
		{ID: 2, Code: "en", Name: "English"},
		{ID: 3, Code: "de", Name: "Deutsch"},
		{ID: 4, Code: "ar", Name: "العربية"},
	}
}

func (s *LanguageSeeder) getTargetLanguages() []model.TargetLanguage {
	return []model.TargetLanguage{
		{ID: 1, Code: "en", Name: "English"},
		{ID: 2, Code: "de", Name: "Deutsch"},
		{ID: 3, Code: "fr", Name: "Français"},
		{ID: 4, Code: "es", Name: "Español"},
	}
}
