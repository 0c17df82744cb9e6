package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/kelimeapp/vocab_api/model"
	"gorm.io/gorm"
)

type FavoriteRepository struct {
	BaseRepository
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *FavoriteRepository) GetFavorite(visitorID string, wordID uint) (*model.Favorite, error) {
	var favorite model.Favorite
	if err := ds.db.Where("visitor_id = ? AND word_id = ?", visitorID, wordID).First(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (ds *FavoriteRepository) CreateFavorite(favorite *model.Favorite) error {
	id, _ := uuid.NewV7()
	favorite.ID = id.String()
	favorite.CreatedAt = time.Now()
	return ds.db.Create(favorite).Error
}

// DeleteFavorite removes the edge and reports how many rows went away, so a
// failed delete is never mistaken for a removal.
func (ds *FavoriteRepository) DeleteFavorite(visitorID string, wordID uint) (int64, error) {
	result := ds.db.Where("visitor_id = ? AND word_id = ?", visitorID, wordID).Delete(&model.Favorite{})
	return result.RowsAffected, result.Error
}

func (ds *FavoriteRepository) CountFavorites(visitorID string, wordID uint) (int64, error) {
	var count int64
	err := ds.db.Model(&model.Favorite{}).
		Where("visitor_id = ? AND word_id = ?", visitorID, wordID).
		Count(&count).Error
	return count, err
}

// ListFavoriteWordIDs returns the visitor's favorited word ids, newest first,
// optionally restricted to one target language.
func (ds *FavoriteRepository) ListFavoriteWordIDs(visitorID string, targetLanguageID *uint) ([]uint, error) {
	query := ds.db.Model(&model.Favorite{}).
		Where("visitor_id = ?", visitorID).
		Order("created_at DESC")

	if targetLanguageID != nil {
		query = query.Where("target_language_id = ?", *targetLanguageID)
	}

	var ids []uint
	if err := query.Pluck("word_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// ListFavoriteWords joins through to the words, keeping the newest-favorited
// ordering from the edge table.
func (ds *FavoriteRepository) ListFavoriteWords(visitorID string, targetLanguageID *uint) ([]model.Word, error) {
	query := ds.db.Model(&model.Word{}).
		Joins("JOIN favorites ON favorites.word_id = words.id").
		Where("favorites.visitor_id = ?", visitorID).
		Order("favorites.created_at DESC")

	if targetLanguageID != nil {
		query = query.Where("favorites.target_language_id = ?", *targetLanguageID)
	}

	var words []model.Word
	if err := query.Find(&words).Error; err != nil {
		return nil, err
	}
	return words, nil
}

// FavoritedSet answers "which of these words has this visitor favorited" in
// one query. Annotation never looks at another visitor's edges.
func (ds *FavoriteRepository) FavoritedSet(visitorID string, wordIDs []uint) (map[uint]bool, error) {
	favorited := make(map[uint]bool, len(wordIDs))
	if visitorID == "" || len(wordIDs) == 0 {
		return favorited, nil
	}

	var ids []uint
	if err := ds.db.Model(&model.Favorite{}).
		Where("visitor_id = ? AND word_id IN ?", visitorID, wordIDs).
		Pluck("word_id", &ids).Error; err != nil {
		return nil, err
	}

	for _, id := range ids {
		favorited[id] = true
	}
	return favorited, nil
}
