package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	courseModel "coursehub_backend/internals/features/lms/courses/model"
)

type CorporateRequestStatus string

const (
	CorporateRequestStatusPending  CorporateRequestStatus = "pending"
	CorporateRequestStatusApproved CorporateRequestStatus = "approved"
	CorporateRequestStatusRejected CorporateRequestStatus = "rejected"
)

// CorporateRequestModel = permintaan in-house training dari perusahaan.
type CorporateRequestModel struct {
	CorporateRequestID           string                 `gorm:"column:corporate_request_id;primaryKey;type:uuid" json:"corporate_request_id"`
	CorporateRequestCompanyName  string                 `gorm:"column:corporate_request_company_name;type:varchar(200);not null" json:"corporate_request_company_name"`
	CorporateRequestContactName  string                 `gorm:"column:corporate_request_contact_name;type:varchar(150);not null" json:"corporate_request_contact_name"`
	CorporateRequestContactEmail string                 `gorm:"column:corporate_request_contact_email;type:varchar(255);not null" json:"corporate_request_contact_email"`
	CorporateRequestContactPhone string                 `gorm:"column:corporate_request_contact_phone;type:varchar(30)" json:"corporate_request_contact_phone"`
	CorporateRequestCourseID     string                 `gorm:"column:corporate_request_course_id;type:uuid;not null;index" json:"corporate_request_course_id"`
	CorporateRequestHeadcount    int                    `gorm:"column:corporate_request_headcount;default:0" json:"corporate_request_headcount"`
	// hari preferensi pelaksanaan, contoh: {monday,wednesday}
	CorporateRequestWeekdays     pq.StringArray         `gorm:"column:corporate_request_weekdays;type:text[]" json:"corporate_request_weekdays"`
	CorporateRequestNotes        string                 `gorm:"column:corporate_request_notes;type:text" json:"corporate_request_notes"`
	CorporateRequestStatus       CorporateRequestStatus `gorm:"column:corporate_request_status;type:varchar(20);not null;default:'pending';index" json:"corporate_request_status"`
	CorporateRequestCreatedAt    time.Time              `gorm:"column:corporate_request_created_at;autoCreateTime" json:"corporate_request_created_at"`
	CorporateRequestUpdatedAt    time.Time              `gorm:"column:corporate_request_updated_at;autoUpdateTime" json:"corporate_request_updated_at"`

	Course *courseModel.CourseModel `gorm:"foreignKey:CorporateRequestCourseID;references:CourseID" json:"course,omitempty"`
}

func (CorporateRequestModel) TableName() string {
	return "corporate_requests"
}

func (m *CorporateRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.CorporateRequestID == "" {
		m.CorporateRequestID = uuid.NewString()
	}
	return nil
}
