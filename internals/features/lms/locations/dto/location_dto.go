package dto

import (
	"time"

	"coursehub_backend/internals/features/lms/locations/model"
)

type CreateLocationRequest struct {
	LocationName     string `json:"location_name" validate:"required,min=2,max=150"`
	LocationAddress  string `json:"location_address" validate:"omitempty,max=1000"`
	LocationCity     string `json:"location_city" validate:"omitempty,max=100"`
	LocationCapacity int    `json:"location_capacity" validate:"omitempty,gte=0"`
}

type UpdateLocationRequest struct {
	LocationName     *string `json:"location_name" validate:"omitempty,min=2,max=150"`
	LocationAddress  *string `json:"location_address" validate:"omitempty,max=1000"`
	LocationCity     *string `json:"location_city" validate:"omitempty,max=100"`
	LocationCapacity *int    `json:"location_capacity" validate:"omitempty,gte=0"`
	LocationIsActive *bool   `json:"location_is_active"`
}

type LocationDTO struct {
	LocationID        string    `json:"location_id"`
	LocationName      string    `json:"location_name"`
	LocationAddress   string    `json:"location_address"`
	LocationCity      string    `json:"location_city"`
	LocationCapacity  int       `json:"location_capacity"`
	LocationIsActive  bool      `json:"location_is_active"`
	LocationCreatedAt time.Time `json:"location_created_at"`
}

func ToLocationDTO(m model.LocationModel) LocationDTO {
	return LocationDTO{
		LocationID:        m.LocationID,
		LocationName:      m.LocationName,
		LocationAddress:   m.LocationAddress,
		LocationCity:      m.LocationCity,
		LocationCapacity:  m.LocationCapacity,
		LocationIsActive:  m.LocationIsActive,
		LocationCreatedAt: m.LocationCreatedAt,
	}
}
