package dto

import (
	"time"

	"coursehub_backend/internals/features/lms/enrollments/model"
)

type CreateEnrollmentRequest struct {
	EnrollmentCourseID  string `json:"enrollment_course_id" validate:"required,uuid"`
	EnrollmentSessionID string `json:"enrollment_session_id" validate:"required,uuid"`
	// kosong = pakai user dari token (student mendaftarkan dirinya sendiri)
	EnrollmentStudentID string `json:"enrollment_student_id" validate:"omitempty,uuid"`
}

type UpdateEnrollmentRequest struct {
	EnrollmentStatus *string `json:"enrollment_status" validate:"omitempty,oneof=active completed cancelled"`
}

type EnrollmentDTO struct {
	EnrollmentID        string    `json:"enrollment_id"`
	EnrollmentStudentID string    `json:"enrollment_student_id"`
	EnrollmentCourseID  string    `json:"enrollment_course_id"`
	EnrollmentSessionID string    `json:"enrollment_session_id"`
	EnrollmentStatus    string    `json:"enrollment_status"`
	EnrollmentCreatedAt time.Time `json:"enrollment_created_at"`

	StudentName string `json:"student_name,omitempty"`
	CourseTitle string `json:"course_title,omitempty"`
}

func ToEnrollmentDTO(m model.EnrollmentModel) EnrollmentDTO {
	out := EnrollmentDTO{
		EnrollmentID:        m.EnrollmentID,
		EnrollmentStudentID: m.EnrollmentStudentID,
		EnrollmentCourseID:  m.EnrollmentCourseID,
		EnrollmentSessionID: m.EnrollmentSessionID,
		EnrollmentStatus:    string(m.EnrollmentStatus),
		EnrollmentCreatedAt: m.EnrollmentCreatedAt,
	}
	if m.Student != nil {
		out.StudentName = m.Student.UserFirstName + " " + m.Student.UserLastName
	}
	if m.Course != nil {
		out.CourseTitle = m.Course.CourseTitle
	}
	return out
}

func ToEnrollmentDTOs(ms []model.EnrollmentModel) []EnrollmentDTO {
	out := make([]EnrollmentDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToEnrollmentDTO(m))
	}
	return out
}
