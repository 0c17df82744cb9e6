package services

import (
	"testing"

	"github.com/kelimeapp/vocab_api/model"
	"github.com/kelimeapp/vocab_api/services/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Visitor{},
		&model.SourceLanguage{},
		&model.TargetLanguage{},
		&model.Category{},
		&model.Word{},
		&model.WordCategory{},
		&model.Favorite{},
	))

	return db
}

func newTestVisitorService(db *gorm.DB) *VisitorService {
	return &VisitorService{
		visitorRepo: repositories.NewVisitorRepository(db),
		defaults:    PreferencePair{SourceLanguageID: 1, TargetLanguageID: 1},
	}
}

func newTestFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{
		wordRepo:     repositories.NewWordRepository(db),
		favoriteRepo: repositories.NewFavoriteRepository(db),
	}
}

func newTestWordService(db *gorm.DB) *WordService {
	return &WordService{
		wordRepo:     repositories.NewWordRepository(db),
		favoriteRepo: repositories.NewFavoriteRepository(db),
	}
}

func seedWord(t *testing.T, db *gorm.DB, id, targetLanguageID uint, text string, categoryIDs ...uint) {
	t.Helper()

	require.NoError(t, db.Create(&model.Word{
		ID:               id,
		TargetLanguageID: targetLanguageID,
		Text:             text,
		Definition:       text + " definition",
	}).Error)

	for _, categoryID := range categoryIDs {
		require.NoError(t, db.Create(&model.WordCategory{WordID: id, CategoryID: categoryID}).Error)
	}
}
