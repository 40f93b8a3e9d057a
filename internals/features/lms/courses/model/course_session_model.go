package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TimeBlock adalah rentang tanggal hari-hari kelas yang berurutan di dalam satu sesi.
type TimeBlock struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type CourseSessionModel struct {
	CourseSessionID       string                         `gorm:"column:course_session_id;primaryKey;type:uuid" json:"course_session_id"`
	CourseSessionCourseID string                         `gorm:"column:course_session_course_id;type:uuid;not null;index" json:"course_session_course_id"`
	CourseSessionName     string                         `gorm:"column:course_session_name;type:varchar(150);not null" json:"course_session_name"`
	CourseSessionOrder    int                            `gorm:"column:course_session_order;default:0" json:"course_session_order"`
	// Disimpan sebagai dokumen JSON, bukan tabel terpisah
	CourseSessionTimeBlocks datatypes.JSONSlice[TimeBlock] `gorm:"column:course_session_time_blocks" json:"course_session_time_blocks"`
	CourseSessionCreatedAt  time.Time                      `gorm:"column:course_session_created_at;autoCreateTime" json:"course_session_created_at"`
	CourseSessionUpdatedAt  time.Time                      `gorm:"column:course_session_updated_at;autoUpdateTime" json:"course_session_updated_at"`
}

func (CourseSessionModel) TableName() string {
	return "course_sessions"
}

func (m *CourseSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseSessionID == "" {
		m.CourseSessionID = uuid.NewString()
	}
	return nil
}
