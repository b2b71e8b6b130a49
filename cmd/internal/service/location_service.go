package service

import (
	"moim/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type LocationRepository interface {
	Save(tx *gorm.DB, location *entity.Location) error
}

type LocationRequest struct {
	NameEn    *string `json:"name_en" validate:"omitempty,max=120"`
	NameKo    *string `json:"name_ko" validate:"omitempty,max=120"`
	Address   string  `json:"address" validate:"required,max=255"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

type LocationResponse struct {
	ID        int     `json:"id"`
	NameEn    *string `json:"name_en"`
	NameKo    *string `json:"name_ko"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type DefaultLocationService struct {
	LocationRepo LocationRepository
}

func NewLocationService(locationRepo LocationRepository) *DefaultLocationService {
	return &DefaultLocationService{LocationRepo: locationRepo}
}

// CreateLocationIfNeeded inserts a location row for the request and returns
// its id, on the caller's transaction. A nil request resolves to no location.
// Rows are append-only; events and series only ever hold the reference.
func (l *DefaultLocationService) CreateLocationIfNeeded(tx *gorm.DB, req *LocationRequest) (*int, error) {
	if req == nil {
		return nil, nil
	}

	location := &entity.Location{
		NameEn:    req.NameEn,
		NameKo:    req.NameKo,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := l.LocationRepo.Save(tx, location); err != nil {
		return nil, err
	}
	return &location.ID, nil
}

func toLocationResponse(loc *entity.Location) *LocationResponse {
	return &LocationResponse{
		ID:        loc.ID,
		NameEn:    loc.NameEn,
		NameKo:    loc.NameKo,
		Address:   loc.Address,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}
}
