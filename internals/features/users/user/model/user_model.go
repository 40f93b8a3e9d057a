package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID        string    `gorm:"column:user_id;primaryKey;type:uuid" json:"user_id"`
	UserFirstName string    `gorm:"column:user_first_name;type:varchar(100)" json:"user_first_name"`
	UserLastName  string    `gorm:"column:user_last_name;type:varchar(100)" json:"user_last_name"`
	UserEmail     string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`
	UserPassword  string    `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	UserRole      string    `gorm:"column:user_role;type:varchar(20);not null;default:'student'" json:"user_role"`
	UserPhone     string    `gorm:"column:user_phone;type:varchar(30)" json:"user_phone"`
	UserIsActive  bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	return nil
}
