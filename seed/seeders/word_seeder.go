package seeders

import (
	"log"

	"github.com/kelimeapp/vocab_api/model"
	"gorm.io/gorm"
)

// WordSeeder loads a starter word set with category links. Word ids are fixed
// so reruns stay idempotent.
type WordSeeder struct {
	db *gorm.DB
}

func NewWordSeeder(db *gorm.DB) *WordSeeder {
	return &WordSeeder{db: db}
}

type seedWord struct {
	word       model.Word
	categories []uint
}

func (s *WordSeeder) SeedWords() error {
	for _, entry := range s.getWords() {
		var existing model.Word
		if err := s.db.Where("id = ?", entry.word.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&entry.word).Error; err != nil {
					log.Printf("Error creating word %s: %v", entry.word.Text, err)
					return err
				}
				log.Printf("Created word: %s", entry.word.Text)
			} else {
				return err
			}
		} else {
			log.Printf("Word %s already exists, skipping", entry.word.Text)
		}

		for _, categoryID := range entry.categories {
			link := model.WordCategory{WordID: entry.word.ID, CategoryID: categoryID}
			if err := s.db.Where("word_id = ? AND category_id = ?", link.WordID, link.CategoryID).
				FirstOrCreate(&link).Error; err != nil {
				log.Printf("Error linking word %d to category %d: %v", link.WordID, link.CategoryID, err)
				return err
			}
		}
	}

	log.Println("Word seeding completed successfully")
	return nil
}

func (s *WordSeeder) getWords() []seedWord {
	return []seedWord{
		{
			word: model.Word{
				ID: 1, TargetLanguageID: 1, Text: "hello",
				Pronunciation:   "/həˈloʊ/",
				Definition:      "merhaba",
				ExampleSentence: "Hello, how are you?",
			},
			categories: []uint{1},
		},
		{
			word: model.Word{
				ID: 2, TargetLanguageID: 1, Text: "water",
				Pronunciation:    "/ˈwɔːtər/",
				Definition:       "su",
				ExampleSentence:  "Can I have a glass of water?",
				ExampleSentence2: "The water is cold.",
			},
			categories: []uint{1, 2},
		},
		{
			word: model.Word{
				ID: 3, TargetLanguageID: 1, Text: "bread",
				Pronunciation:   "/brɛd/",
				Definition:      "ekmek",
				ExampleSentence: "We need to buy bread.",
			},
			categories: []uint{2},
		},
		{
			word: model.Word{
				ID: 4, TargetLanguageID: 1, Text: "airport",
				Pronunciation:   "/ˈɛərpɔːrt/",
				Definition:      "havalimanı",
				ExampleSentence: "The airport is far from the city.",
			},
			categories: []uint{3},
		},
		{
			word: model.Word{
				ID: 5, TargetLanguageID: 1, Text: "ticket",
				Pronunciation:    "/ˈtɪkɪt/",
				Definition:       "bilet",
				ExampleSentence:  "I bought a ticket to London.",
				ExampleSentence2: "Keep your ticket with you.",
			},
			categories: []uint{3},
		},
		{
			word: model.Word{
				ID: 6, TargetLanguageID: 1, Text: "cat",
				Pronunciation:   "/kæt/",
				Definition:      "kedi",
				ExampleSentence: "The cat is sleeping on the sofa.",
			},
			categories: []uint{4},
		},
		{
			word: model.Word{
				ID: 7, TargetLanguageID: 1, Text: "dog",
				Pronunciation:   "/dɒɡ/",
				Definition:      "köpek",
				ExampleSentence: "My dog loves long walks.",
			},
			categories: []uint{4},
		},
		{
			word: model.Word{
				ID: 8, TargetLanguageID: 1, Text: "meeting",
				Pronunciation:   "/ˈmiːtɪŋ/",
				Definition:      "toplantı",
				ExampleSentence: "The meeting starts at nine.",
			},
			categories: []uint{5},
		},
		{
			word: model.Word{
				ID: 9, TargetLanguageID: 1, Text: "to run",
				Pronunciation:    "/rʌn/",
				Definition:       "koşmak",
				ExampleSentence:  "I run every morning.",
				ExampleSentence2: "She ran to catch the bus.",
			},
			categories: []uint{6},
		},
		{
			word: model.Word{
				ID: 10, TargetLanguageID: 1, Text: "to eat",
				Pronunciation:   "/iːt/",
				Definition:      "yemek yemek",
				ExampleSentence: "We eat dinner at seven.",
			},
			categories: []uint{2, 6},
		},
		{
			word: model.Word{
				ID: 11, TargetLanguageID: 2, Text: "Wasser",
				Pronunciation:   "/ˈvasɐ/",
				Definition:      "su",
				ExampleSentence: "Ein Glas Wasser, bitte.",
			},
			categories: []uint{1, 2},
		},
		{
			word: model.Word{
				ID: 12, TargetLanguageID: 2, Text: "Hund",
				Pronunciation:   "/hʊnt/",
				Definition:      "köpek",
				ExampleSentence: "Der Hund schläft im Garten.",
			},
			categories: []uint{4},
		},
	}
}
