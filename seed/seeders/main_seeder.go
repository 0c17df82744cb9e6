package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in dependency order
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	// 1. Languages first (words depend on them)
	languageSeeder := NewLanguageSeeder(s.db)
	if err := languageSeeder.SeedLanguages(); err != nil {
		log.Printf("Language seeding failed: %v", err)
		return err
	}

	// 2. Categories (no dependencies)
	categorySeeder := NewCategorySeeder(s.db)
	if err := categorySeeder.SeedCategories(); err != nil {
		log.Printf("Category seeding failed: %v", err)
		return err
	}

	// 3. Words (depend on languages and categories)
	wordSeeder := NewWordSeeder(s.db)
	if err := wordSeeder.SeedWords(); err != nil {
		log.Printf("Word seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}
