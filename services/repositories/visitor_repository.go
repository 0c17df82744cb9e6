package repositories

import (
	"time"

	"github.com/kelimeapp/vocab_api/model"
	"gorm.io/gorm"
)

type VisitorRepository struct {
	BaseRepository
}

func NewVisitorRepository(db *gorm.DB) *VisitorRepository {
	return &VisitorRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *VisitorRepository) GetVisitor(id string) (*model.Visitor, error) {
	var visitor model.Visitor
	if err := ds.db.Where("id = ?", id).First(&visitor).Error; err != nil {
		return nil, err
	}
	return &visitor, nil
}

func (ds *VisitorRepository) CreateVisitor(visitor *model.Visitor) error {
	now := time.Now()
	if visitor.FirstSeenAt.IsZero() {
		visitor.FirstSeenAt = now
	}
	if visitor.LastSeenAt.IsZero() {
		visitor.LastSeenAt = now
	}
	visitor.CreatedAt = now
	visitor.UpdatedAt = now

	return ds.db.Create(visitor).Error
}

// TouchLastSeen refreshes the activity timestamp on every resolve.
func (ds *VisitorRepository) TouchLastSeen(id string) error {
	now := time.Now()
	return ds.db.Model(&model.Visitor{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_seen_at": now,
			"updated_at":   now,
		}).Error
}

// UpdatePreferences overwrites both language preferences together and
// refreshes last-seen. Returns the number of rows touched so the caller can
// distinguish an unknown visitor.
func (ds *VisitorRepository) UpdatePreferences(id string, sourceLanguageID, targetLanguageID uint) (int64, error) {
	now := time.Now()
	result := ds.db.Model(&model.Visitor{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"source_language_id": sourceLanguageID,
			"target_language_id": targetLanguageID,
			"last_seen_at":       now,
			"updated_at":         now,
		})
	return result.RowsAffected, result.Error
}
