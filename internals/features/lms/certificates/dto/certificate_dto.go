package dto

import (
	"encoding/json"
	"time"

	"coursehub_backend/internals/features/lms/certificates/model"
)

type IssueCertificateRequest struct {
	CertificateStudentID string          `json:"certificate_student_id" validate:"required,uuid"`
	CertificateCourseID  string          `json:"certificate_course_id" validate:"required,uuid"`
	CertificateSessionID string          `json:"certificate_session_id" validate:"required,uuid"`
	CertificateMetadata  json.RawMessage `json:"certificate_metadata" validate:"omitempty"`
}

type CertificateDTO struct {
	CertificateID        string          `json:"certificate_id"`
	CertificateNumber    string          `json:"certificate_number"`
	CertificateStudentID string          `json:"certificate_student_id"`
	CertificateCourseID  string          `json:"certificate_course_id"`
	CertificateSessionID string          `json:"certificate_session_id"`
	CertificateMetadata  json.RawMessage `json:"certificate_metadata,omitempty"`
	CertificateIssuedAt  time.Time       `json:"certificate_issued_at"`

	StudentName string `json:"student_name,omitempty"`
	CourseTitle string `json:"course_title,omitempty"`
}

func ToCertificateDTO(m model.CertificateModel) CertificateDTO {
	out := CertificateDTO{
		CertificateID:        m.CertificateID,
		CertificateNumber:    m.CertificateNumber,
		CertificateStudentID: m.CertificateStudentID,
		CertificateCourseID:  m.CertificateCourseID,
		CertificateSessionID: m.CertificateSessionID,
		CertificateMetadata:  json.RawMessage(m.CertificateMetadata),
		CertificateIssuedAt:  m.CertificateIssuedAt,
	}
	if m.Student != nil {
		out.StudentName = m.Student.UserFirstName + " " + m.Student.UserLastName
	}
	if m.Course != nil {
		out.CourseTitle = m.Course.CourseTitle
	}
	return out
}

func ToCertificateDTOs(ms []model.CertificateModel) []CertificateDTO {
	out := make([]CertificateDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToCertificateDTO(m))
	}
	return out
}
