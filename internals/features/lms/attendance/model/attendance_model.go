package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	scheduleModel "coursehub_backend/internals/features/lms/class_schedules/model"
	courseModel "coursehub_backend/internals/features/lms/courses/model"
	userModel "coursehub_backend/internals/features/users/user/model"
)

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
)

// AttendanceModel = absensi satu student untuk satu occurrence kelas.
// Invariant: maksimal satu row per (class_schedule_id, student_id) — dijaga
// lewat upsert di service, bukan unique constraint.
type AttendanceModel struct {
	AttendanceID              string           `gorm:"column:attendance_id;primaryKey;type:uuid" json:"attendance_id"`
	AttendanceClassScheduleID string           `gorm:"column:attendance_class_schedule_id;type:uuid;not null;index;index:idx_attendance_schedule_student,priority:1" json:"attendance_class_schedule_id"`
	AttendanceCourseID        string           `gorm:"column:attendance_course_id;type:uuid;not null;index" json:"attendance_course_id"`
	AttendanceSessionID       string           `gorm:"column:attendance_session_id;type:uuid;not null" json:"attendance_session_id"`
	AttendanceStudentID       string           `gorm:"column:attendance_student_id;type:uuid;not null;index;index:idx_attendance_schedule_student,priority:2" json:"attendance_student_id"`
	AttendanceMarkedBy        string           `gorm:"column:attendance_marked_by;type:uuid;index" json:"attendance_marked_by"`
	AttendanceStatus          AttendanceStatus `gorm:"column:attendance_status;type:varchar(10);not null;index" json:"attendance_status"`
	AttendanceNotes           *string          `gorm:"column:attendance_notes;type:text" json:"attendance_notes,omitempty"`
	AttendanceMarkedAt        time.Time        `gorm:"column:attendance_marked_at;not null;index:idx_attendance_marked_at,sort:desc" json:"attendance_marked_at"`
	AttendanceCreatedAt       time.Time        `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt       time.Time        `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`

	// Referensi ter-populate (Preload); nil kalau tidak diminta
	Student       *userModel.UserModel              `gorm:"foreignKey:AttendanceStudentID;references:UserID" json:"student,omitempty"`
	Marker        *userModel.UserModel              `gorm:"foreignKey:AttendanceMarkedBy;references:UserID" json:"marker,omitempty"`
	Course        *courseModel.CourseModel          `gorm:"foreignKey:AttendanceCourseID;references:CourseID" json:"course,omitempty"`
	ClassSchedule *scheduleModel.ClassScheduleModel `gorm:"foreignKey:AttendanceClassScheduleID;references:ClassScheduleID" json:"class_schedule,omitempty"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == "" {
		m.AttendanceID = uuid.NewString()
	}
	if m.AttendanceMarkedAt.IsZero() {
		m.AttendanceMarkedAt = time.Now()
	}
	return nil
}
