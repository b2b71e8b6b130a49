package repository

import (
	"errors"

	"moim/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultRecurringEventRepository struct{}

func NewRecurringEventRepository() *DefaultRecurringEventRepository {
	return &DefaultRecurringEventRepository{}
}

func (r *DefaultRecurringEventRepository) FindOwned(tx *gorm.DB, id, userID int) (*entity.RecurringEvent, error) {
	var series entity.RecurringEvent
	err := tx.Where("id = ? AND user_id = ?", id, userID).First(&series).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &series, err
}

func (r *DefaultRecurringEventRepository) Save(tx *gorm.DB, series *entity.RecurringEvent) error {
	return tx.Save(series).Error
}

// UpdateVersioned mirrors the event repository's guard: the WHERE clause
// carries the observed version, zero rows means the guard failed.
func (r *DefaultRecurringEventRepository) UpdateVersioned(tx *gorm.DB, id, userID, version int, changes map[string]any) (int64, error) {
	changes["version"] = gorm.Expr("version + 1")
	res := tx.Model(&entity.RecurringEvent{}).
		Where("id = ? AND user_id = ? AND version = ?", id, userID, version).
		Updates(changes)
	return res.RowsAffected, res.Error
}

func (r *DefaultRecurringEventRepository) SoftDelete(tx *gorm.DB, series *entity.RecurringEvent) error {
	return tx.Delete(series).Error
}
