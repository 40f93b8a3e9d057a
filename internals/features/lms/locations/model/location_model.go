package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LocationModel struct {
	LocationID        string    `gorm:"column:location_id;primaryKey;type:uuid" json:"location_id"`
	LocationName      string    `gorm:"column:location_name;type:varchar(150);not null" json:"location_name"`
	LocationAddress   string    `gorm:"column:location_address;type:text" json:"location_address"`
	LocationCity      string    `gorm:"column:location_city;type:varchar(100);index" json:"location_city"`
	LocationCapacity  int       `gorm:"column:location_capacity;default:0" json:"location_capacity"`
	LocationIsActive  bool      `gorm:"column:location_is_active;not null;default:true" json:"location_is_active"`
	LocationCreatedAt time.Time `gorm:"column:location_created_at;autoCreateTime" json:"location_created_at"`
	LocationUpdatedAt time.Time `gorm:"column:location_updated_at;autoUpdateTime" json:"location_updated_at"`
}

func (LocationModel) TableName() string {
	return "locations"
}

func (l *LocationModel) BeforeCreate(tx *gorm.DB) error {
	if l.LocationID == "" {
		l.LocationID = uuid.NewString()
	}
	return nil
}
