// Package cleanup hosts the administrative housekeeping job that purges
// aged soft-deleted rows. It runs outside the scheduling engine and never
// touches live data: only tombstones older than the retention period are
// physically removed.
package cleanup

import (
	"time"

	"moim/cmd/internal/domain/entity"

	"github.com/labstack/gommon/log"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type Purger struct {
	DB        *gorm.DB
	Retention time.Duration
}

func NewPurger(db *gorm.DB, retentionDays int) *Purger {
	return &Purger{
		DB:        db,
		Retention: time.Duration(retentionDays) * 24 * time.Hour,
	}
}

// Schedule registers the purger on the given cron runner.
func (p *Purger) Schedule(c *cron.Cron, spec string) error {
	_, err := c.AddFunc(spec, p.Run)
	return err
}

func (p *Purger) Run() {
	cutoff := time.Now().UTC().Add(-p.Retention)

	for _, model := range []any{&entity.Event{}, &entity.RecurringEvent{}, &entity.Location{}} {
		res := p.DB.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
			Delete(model)
		if res.Error != nil {
			log.Errorf("failed to purge soft-deleted rows (%T): %v", model, res.Error)
			continue
		}
		if res.RowsAffected > 0 {
			log.Infof("purged %d soft-deleted rows (%T)", res.RowsAffected, model)
		}
	}
}
