package seeders

import (
	"log"

	"github.com/kelimeapp/vocab_api/model"
	"gorm.io/gorm"
)

type CategorySeeder struct {
	db *gorm.DB
}

func NewCategorySeeder(db *gorm.DB) *CategorySeeder {
	return &CategorySeeder{db: db}
}

func (s *CategorySeeder) SeedCategories() error {
	for _, category := range s.getCategories() {
		var existing model.Category
		if err := s.db.Where("id = ?", category.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&category).Error; err != nil {
					log.Printf("Error creating category %s: %v", category.Name, err)
					return err
				}
				log.Printf("Created category: %s", category.Name)
			} else {
				return err
			}
		} else {
			log.Printf("Category %s already exists, skipping", category.Name)
		}
	}

	log.Println("Category seeding completed successfully")
	return nil
}

func (s *CategorySeeder) getCategories() []model.Category {
	return []model.Category{
		{ID: 1, Name: "Basics"},
		{ID: 2, Name: "Food & Drink"},
		{ID: 3, Name: "Travel"},
		{ID: 4, Name: "Animals"},
		{ID: 5, Name: "Work & School"},
		{ID: 6, Name: "Verbs"},
	}
}
