package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	courseModel "coursehub_backend/internals/features/lms/courses/model"
	userModel "coursehub_backend/internals/features/users/user/model"
)

// CertificateModel = bukti kelulusan satu student untuk satu sesi course.
type CertificateModel struct {
	CertificateID        string         `gorm:"column:certificate_id;primaryKey;type:uuid" json:"certificate_id"`
	CertificateNumber    string         `gorm:"column:certificate_number;type:varchar(60);not null;uniqueIndex" json:"certificate_number"`
	CertificateStudentID string         `gorm:"column:certificate_student_id;type:uuid;not null;index" json:"certificate_student_id"`
	CertificateCourseID  string         `gorm:"column:certificate_course_id;type:uuid;not null;index" json:"certificate_course_id"`
	CertificateSessionID string         `gorm:"column:certificate_session_id;type:uuid;not null" json:"certificate_session_id"`
	// metadata bebas: skor, predikat, nama penandatangan, dst
	CertificateMetadata  datatypes.JSON `gorm:"column:certificate_metadata" json:"certificate_metadata,omitempty"`
	CertificateIssuedAt  time.Time      `gorm:"column:certificate_issued_at;not null" json:"certificate_issued_at"`
	CertificateCreatedAt time.Time      `gorm:"column:certificate_created_at;autoCreateTime" json:"certificate_created_at"`

	Student *userModel.UserModel     `gorm:"foreignKey:CertificateStudentID;references:UserID" json:"student,omitempty"`
	Course  *courseModel.CourseModel `gorm:"foreignKey:CertificateCourseID;references:CourseID" json:"course,omitempty"`
}

func (CertificateModel) TableName() string {
	return "certificates"
}

func (m *CertificateModel) BeforeCreate(tx *gorm.DB) error {
	if m.CertificateID == "" {
		m.CertificateID = uuid.NewString()
	}
	if m.CertificateIssuedAt.IsZero() {
		m.CertificateIssuedAt = time.Now()
	}
	return nil
}
