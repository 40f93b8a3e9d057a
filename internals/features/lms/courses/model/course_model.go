package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID          string    `gorm:"column:course_id;primaryKey;type:uuid" json:"course_id"`
	CourseTitle       string    `gorm:"column:course_title;type:varchar(255);not null" json:"course_title"`
	CourseSlug        string    `gorm:"column:course_slug;type:varchar(160);not null;uniqueIndex" json:"course_slug"`
	CourseDescription string    `gorm:"column:course_description;type:text" json:"course_description"`
	CourseLevel       string    `gorm:"column:course_level;type:varchar(30);default:'beginner'" json:"course_level"`
	CoursePrice       float64   `gorm:"column:course_price;default:0" json:"course_price"`
	CourseIsActive    bool      `gorm:"column:course_is_active;not null;default:true" json:"course_is_active"`
	CourseCreatedAt   time.Time `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt   time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`

	// Sessions ikut ter-load saat butuh daftar sesi (Preload("Sessions"))
	Sessions []CourseSessionModel `gorm:"foreignKey:CourseSessionCourseID;references:CourseID" json:"sessions,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == "" {
		m.CourseID = uuid.NewString()
	}
	return nil
}
