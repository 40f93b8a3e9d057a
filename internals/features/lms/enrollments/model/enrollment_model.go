package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "coursehub_backend/internals/features/lms/courses/model"
	userModel "coursehub_backend/internals/features/users/user/model"
)

type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelled"
)

// EnrollmentModel mengikat student ke satu sesi course.
// Satu student hanya boleh punya satu enrollment per sesi.
type EnrollmentModel struct {
	EnrollmentID        string           `gorm:"column:enrollment_id;primaryKey;type:uuid" json:"enrollment_id"`
	EnrollmentStudentID string           `gorm:"column:enrollment_student_id;type:uuid;not null;index;uniqueIndex:uq_enrollment_student_session,priority:1" json:"enrollment_student_id"`
	EnrollmentCourseID  string           `gorm:"column:enrollment_course_id;type:uuid;not null;index" json:"enrollment_course_id"`
	EnrollmentSessionID string           `gorm:"column:enrollment_session_id;type:uuid;not null;uniqueIndex:uq_enrollment_student_session,priority:2" json:"enrollment_session_id"`
	EnrollmentStatus    EnrollmentStatus `gorm:"column:enrollment_status;type:varchar(20);not null;default:'active';index" json:"enrollment_status"`
	EnrollmentCreatedAt time.Time        `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time        `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at"`

	Student *userModel.UserModel     `gorm:"foreignKey:EnrollmentStudentID;references:UserID" json:"student,omitempty"`
	Course  *courseModel.CourseModel `gorm:"foreignKey:EnrollmentCourseID;references:CourseID" json:"course,omitempty"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}

func (m *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnrollmentID == "" {
		m.EnrollmentID = uuid.NewString()
	}
	return nil
}
