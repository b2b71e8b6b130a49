package entity

import (
	"time"

	"gorm.io/gorm"
)

// RecurringEvent is the series definition: an RRULE plus the template
// fields stamped onto every occurrence when the series is expanded.
// EndDate is always resolved before the first expansion, so a series
// never generates occurrences without an upper bound.
type RecurringEvent struct {
	ID          int       `gorm:"primaryKey"`
	Rule        string    `gorm:"not null"` // RRULE body, e.g. FREQ=WEEKLY;INTERVAL=1
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	Title       string    `gorm:"not null"`
	Description *string
	ColorCode   string `gorm:"not null"`
	Version     int    `gorm:"not null;default:1"`
	UserID      int    `gorm:"not null;index"`
	LocationID  *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	// Relations
	Location *Location `gorm:"foreignKey:LocationID;references:ID"`
}
