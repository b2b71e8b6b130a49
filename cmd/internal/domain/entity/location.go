package entity

import (
	"time"

	"gorm.io/gorm"
)

// Location is immutable once created; events and series only hold a
// reference, so it carries no version column.
type Location struct {
	ID        int `gorm:"primaryKey"`
	NameEn    *string
	NameKo    *string
	Address   string  `gorm:"not null"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
