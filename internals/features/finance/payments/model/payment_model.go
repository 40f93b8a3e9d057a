package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentModel "coursehub_backend/internals/features/lms/enrollments/model"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
	PaymentStatusRefund  PaymentStatus = "refunded"
)

// PaymentModel = catatan pembayaran satu enrollment. Integrasi payment
// gateway eksternal di luar scope; status diubah manual oleh admin.
type PaymentModel struct {
	PaymentID           string        `gorm:"column:payment_id;primaryKey;type:uuid" json:"payment_id"`
	PaymentEnrollmentID string        `gorm:"column:payment_enrollment_id;type:uuid;not null;index" json:"payment_enrollment_id"`
	PaymentAmount       float64       `gorm:"column:payment_amount;not null" json:"payment_amount"`
	PaymentMethod       string        `gorm:"column:payment_method;type:varchar(30)" json:"payment_method"`
	PaymentStatus       PaymentStatus `gorm:"column:payment_status;type:varchar(20);not null;default:'pending';index" json:"payment_status"`
	PaymentPaidAt       *time.Time    `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`
	PaymentCreatedAt    time.Time     `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt    time.Time     `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`

	Enrollment *enrollmentModel.EnrollmentModel `gorm:"foreignKey:PaymentEnrollmentID;references:EnrollmentID" json:"enrollment,omitempty"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == "" {
		m.PaymentID = uuid.NewString()
	}
	return nil
}
