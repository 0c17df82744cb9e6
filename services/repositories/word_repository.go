package repositories

import (
	"github.com/kelimeapp/vocab_api/model"
	"gorm.io/gorm"
)

type WordRepository struct {
	BaseRepository
}

func NewWordRepository(db *gorm.DB) *WordRepository {
	return &WordRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *WordRepository) GetWord(id uint) (*model.Word, error) {
	var word model.Word
	if err := ds.db.Where("id = ?", id).First(&word).Error; err != nil {
		return nil, err
	}
	return &word, nil
}

// ListWordIDs returns the candidate pool for a target language. Only ids are
// fetched; sampling happens in the service so the store never decides
// randomness.
func (ds *WordRepository) ListWordIDs(targetLanguageID uint) ([]uint, error) {
	var ids []uint
	if err := ds.db.Model(&model.Word{}).
		Where("target_language_id = ?", targetLanguageID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (ds *WordRepository) ListWordIDsByCategory(targetLanguageID, categoryID uint) ([]uint, error) {
	var ids []uint
	if err := ds.db.Model(&model.Word{}).
		Joins("JOIN word_categories ON word_categories.word_id = words.id").
		Where("words.target_language_id = ? AND word_categories.category_id = ?", targetLanguageID, categoryID).
		Pluck("words.id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (ds *WordRepository) GetWordsByIDs(ids []uint) ([]model.Word, error) {
	var words []model.Word
	if len(ids) == 0 {
		return words, nil
	}
	if err := ds.db.Where("id IN ?", ids).Find(&words).Error; err != nil {
		return nil, err
	}
	return words, nil
}

func (ds *WordRepository) ListSourceLanguages() ([]model.SourceLanguage, error) {
	var languages []model.SourceLanguage
	if err := ds.db.Order("id").Find(&languages).Error; err != nil {
		return nil, err
	}
	return languages, nil
}

func (ds *WordRepository) ListTargetLanguages() ([]model.TargetLanguage, error) {
	var languages []model.TargetLanguage
	if err := ds.db.Order("id").Find(&languages).Error; err != nil {
		return nil, err
	}
	return languages, nil
}

func (ds *WordRepository) ListCategories() ([]model.Category, error) {
	var categories []model.Category
	if err := ds.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
