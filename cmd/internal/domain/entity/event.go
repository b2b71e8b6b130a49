package entity

import (
	"time"

	"gorm.io/gorm"
)

// Event is a single calendar occurrence. Standalone events carry a nil
// RecurringEventID; expanded occurrences point at their series.
type Event struct {
	ID               int       `gorm:"primaryKey"`
	Title            string    `gorm:"not null"`
	Description      *string
	StartTime        time.Time `gorm:"not null;index"`
	EndTime          time.Time `gorm:"not null"`
	IsAllDay         bool      `gorm:"not null"`
	ColorCode        string    `gorm:"not null"`
	Version          int       `gorm:"not null;default:1"`
	UserID           int       `gorm:"not null;index"` // References: users(id), owned by the identity provider
	LocationID       *int
	RecurringEventID *int `gorm:"index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`

	// Relations
	Location       *Location       `gorm:"foreignKey:LocationID;references:ID"`
	RecurringEvent *RecurringEvent `gorm:"foreignKey:RecurringEventID;references:ID"`
}
