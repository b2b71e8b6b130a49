package cleanup

import (
	"testing"
	"time"

	"moim/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.Location{}, &entity.RecurringEvent{}, &entity.Event{}))
	return db
}

func seedTombstone(t *testing.T, db *gorm.DB, title string, deletedAt time.Time) {
	t.Helper()

	ev := &entity.Event{
		Title:     title,
		StartTime: time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC),
		ColorCode: "#123456",
		Version:   1,
		UserID:    1,
	}
	require.NoError(t, db.Create(ev).Error)
	require.NoError(t, db.Delete(ev).Error)
	require.NoError(t, db.Unscoped().Model(&entity.Event{}).
		Where("id = ?", ev.ID).
		Update("deleted_at", deletedAt).Error)
}

func TestRunPurgesOnlyAgedTombstones(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()

	seedTombstone(t, db, "ancient", now.Add(-100*24*time.Hour))
	seedTombstone(t, db, "recent", now.Add(-24*time.Hour))

	live := &entity.Event{
		Title:     "live",
		StartTime: now,
		EndTime:   now.Add(time.Hour),
		ColorCode: "#123456",
		Version:   1,
		UserID:    1,
	}
	require.NoError(t, db.Create(live).Error)

	NewPurger(db, 90).Run()

	var total int64
	require.NoError(t, db.Unscoped().Model(&entity.Event{}).Count(&total).Error)
	assert.Equal(t, int64(2), total)

	var gone int64
	require.NoError(t, db.Unscoped().Model(&entity.Event{}).Where("title = ?", "ancient").Count(&gone).Error)
	assert.Zero(t, gone)

	var stillLive int64
	require.NoError(t, db.Model(&entity.Event{}).Count(&stillLive).Error)
	assert.Equal(t, int64(1), stillLive)
}
