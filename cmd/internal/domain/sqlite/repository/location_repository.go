package repository

import (
	"moim/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultLocationRepository struct{}

func NewLocationRepository() *DefaultLocationRepository {
	return &DefaultLocationRepository{}
}

func (r *DefaultLocationRepository) Save(tx *gorm.DB, location *entity.Location) error {
	return tx.Save(location).Error
}
