package repository

import (
	"errors"
	"time"

	"moim/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

// DefaultEventRepository is stateless: every method takes the unit-of-work
// handle explicitly so multi-row mutations always run on the caller's
// transaction. Pass the base *gorm.DB for standalone statements.
type DefaultEventRepository struct{}

func NewEventRepository() *DefaultEventRepository {
	return &DefaultEventRepository{}
}

func (r *DefaultEventRepository) FindOwned(tx *gorm.DB, id, userID int) (*entity.Event, error) {
	var ev entity.Event
	err := tx.Where("id = ? AND user_id = ?", id, userID).
		Preload("Location").
		First(&ev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ev, err
}

func (r *DefaultEventRepository) FindByUserID(tx *gorm.DB, userID int) ([]*entity.Event, error) {
	var events []*entity.Event
	err := tx.Where("user_id = ?", userID).
		Preload("Location").
		Preload("RecurringEvent").
		Order("start_time asc").
		Find(&events).Error
	return events, err
}

func (r *DefaultEventRepository) FindBySeriesID(tx *gorm.DB, seriesID int) ([]*entity.Event, error) {
	var events []*entity.Event
	err := tx.Where("recurring_event_id = ?", seriesID).
		Preload("Location").
		Preload("RecurringEvent").
		Order("start_time asc").
		Find(&events).Error
	return events, err
}

func (r *DefaultEventRepository) Save(tx *gorm.DB, event *entity.Event) error {
	return tx.Save(event).Error
}

// UpdateVersioned applies changes to a single owned event, guarded by the
// version the caller last observed. Returns the number of rows touched:
// zero means the guard did not match (stale version, gone, or not owned).
func (r *DefaultEventRepository) UpdateVersioned(tx *gorm.DB, id, userID, version int, changes map[string]any) (int64, error) {
	changes["version"] = gorm.Expr("version + 1")
	res := tx.Model(&entity.Event{}).
		Where("id = ? AND user_id = ? AND version = ?", id, userID, version).
		Updates(changes)
	return res.RowsAffected, res.Error
}

// UpdateSiblings bulk-updates every live occurrence of a series except the
// one named by exceptID (which the engine updates under its version guard),
// bumping each sibling's version.
func (r *DefaultEventRepository) UpdateSiblings(tx *gorm.DB, seriesID, userID, exceptID int, changes map[string]any) error {
	changes["version"] = gorm.Expr("version + 1")
	return tx.Model(&entity.Event{}).
		Where("recurring_event_id = ? AND user_id = ? AND id <> ?", seriesID, userID, exceptID).
		Updates(changes).Error
}

func (r *DefaultEventRepository) SoftDelete(tx *gorm.DB, event *entity.Event) error {
	return tx.Delete(event).Error
}

func (r *DefaultEventRepository) SoftDeleteBySeriesID(tx *gorm.DB, seriesID, userID int) error {
	return tx.Where("recurring_event_id = ? AND user_id = ?", seriesID, userID).
		Delete(&entity.Event{}).Error
}

// SoftDeleteBySeriesFrom tombstones every occurrence of the series starting
// at or after the given instant. Used by the this-and-future split.
func (r *DefaultEventRepository) SoftDeleteBySeriesFrom(tx *gorm.DB, seriesID, userID int, from time.Time) error {
	return tx.Where("recurring_event_id = ? AND user_id = ? AND start_time >= ?", seriesID, userID, from).
		Delete(&entity.Event{}).Error
}
