package dto

import (
	"time"

	"coursehub_backend/internals/features/lms/corporate/model"
)

type CreateCorporateRequestRequest struct {
	CorporateRequestCompanyName  string   `json:"corporate_request_company_name" validate:"required,min=2,max=200"`
	CorporateRequestContactName  string   `json:"corporate_request_contact_name" validate:"required,min=2,max=150"`
	CorporateRequestContactEmail string   `json:"corporate_request_contact_email" validate:"required,email"`
	CorporateRequestContactPhone string   `json:"corporate_request_contact_phone" validate:"omitempty,max=30"`
	CorporateRequestCourseID     string   `json:"corporate_request_course_id" validate:"required,uuid"`
	CorporateRequestHeadcount    int      `json:"corporate_request_headcount" validate:"omitempty,gte=1"`
	CorporateRequestWeekdays     []string `json:"corporate_request_weekdays" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	CorporateRequestNotes        string   `json:"corporate_request_notes" validate:"omitempty,max=2000"`
}

type UpdateCorporateRequestStatusRequest struct {
	CorporateRequestStatus string `json:"corporate_request_status" validate:"required,oneof=pending approved rejected"`
}

type CorporateRequestDTO struct {
	CorporateRequestID           string    `json:"corporate_request_id"`
	CorporateRequestCompanyName  string    `json:"corporate_request_company_name"`
	CorporateRequestContactName  string    `json:"corporate_request_contact_name"`
	CorporateRequestContactEmail string    `json:"corporate_request_contact_email"`
	CorporateRequestContactPhone string    `json:"corporate_request_contact_phone"`
	CorporateRequestCourseID     string    `json:"corporate_request_course_id"`
	CorporateRequestHeadcount    int       `json:"corporate_request_headcount"`
	CorporateRequestWeekdays     []string  `json:"corporate_request_weekdays"`
	CorporateRequestNotes        string    `json:"corporate_request_notes"`
	CorporateRequestStatus       string    `json:"corporate_request_status"`
	CorporateRequestCreatedAt    time.Time `json:"corporate_request_created_at"`

	CourseTitle string `json:"course_title,omitempty"`
}

func ToCorporateRequestDTO(m model.CorporateRequestModel) CorporateRequestDTO {
	out := CorporateRequestDTO{
		CorporateRequestID:           m.CorporateRequestID,
		CorporateRequestCompanyName:  m.CorporateRequestCompanyName,
		CorporateRequestContactName:  m.CorporateRequestContactName,
		CorporateRequestContactEmail: m.CorporateRequestContactEmail,
		CorporateRequestContactPhone: m.CorporateRequestContactPhone,
		CorporateRequestCourseID:     m.CorporateRequestCourseID,
		CorporateRequestHeadcount:    m.CorporateRequestHeadcount,
		CorporateRequestWeekdays:     m.CorporateRequestWeekdays,
		CorporateRequestNotes:        m.CorporateRequestNotes,
		CorporateRequestStatus:       string(m.CorporateRequestStatus),
		CorporateRequestCreatedAt:    m.CorporateRequestCreatedAt,
	}
	if m.Course != nil {
		out.CourseTitle = m.Course.CourseTitle
	}
	return out
}

func ToCorporateRequestDTOs(ms []model.CorporateRequestModel) []CorporateRequestDTO {
	out := make([]CorporateRequestDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToCorporateRequestDTO(m))
	}
	return out
}
