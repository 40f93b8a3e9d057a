package dto

import (
	"time"

	"coursehub_backend/internals/features/finance/payments/model"
)

type CreatePaymentRequest struct {
	PaymentEnrollmentID string  `json:"payment_enrollment_id" validate:"required,uuid"`
	PaymentAmount       float64 `json:"payment_amount" validate:"required,gt=0"`
	PaymentMethod       string  `json:"payment_method" validate:"omitempty,oneof=transfer cash card"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending paid failed refunded"`
}

type PaymentDTO struct {
	PaymentID           string     `json:"payment_id"`
	PaymentEnrollmentID string     `json:"payment_enrollment_id"`
	PaymentAmount       float64    `json:"payment_amount"`
	PaymentMethod       string     `json:"payment_method"`
	PaymentStatus       string     `json:"payment_status"`
	PaymentPaidAt       *time.Time `json:"payment_paid_at,omitempty"`
	PaymentCreatedAt    time.Time  `json:"payment_created_at"`
}

func ToPaymentDTO(m model.PaymentModel) PaymentDTO {
	return PaymentDTO{
		PaymentID:           m.PaymentID,
		PaymentEnrollmentID: m.PaymentEnrollmentID,
		PaymentAmount:       m.PaymentAmount,
		PaymentMethod:       m.PaymentMethod,
		PaymentStatus:       string(m.PaymentStatus),
		PaymentPaidAt:       m.PaymentPaidAt,
		PaymentCreatedAt:    m.PaymentCreatedAt,
	}
}

func ToPaymentDTOs(ms []model.PaymentModel) []PaymentDTO {
	out := make([]PaymentDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPaymentDTO(m))
	}
	return out
}
