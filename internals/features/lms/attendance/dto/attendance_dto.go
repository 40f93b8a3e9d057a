package dto

import (
	"time"

	"coursehub_backend/internals/features/lms/attendance/model"
)

/* ============================
   Request DTO
============================ */

type MarkAttendanceRequest struct {
	AttendanceClassScheduleID string  `json:"attendance_class_schedule_id" validate:"required,uuid"`
	AttendanceCourseID        string  `json:"attendance_course_id" validate:"required,uuid"`
	AttendanceSessionID       string  `json:"attendance_session_id" validate:"required,uuid"`
	AttendanceStudentID       string  `json:"attendance_student_id" validate:"required,uuid"`
	AttendanceStatus          string  `json:"attendance_status" validate:"required,oneof=present absent"`
	AttendanceNotes           *string `json:"attendance_notes" validate:"omitempty,max=500"`
}

type BulkMarkStudentEntry struct {
	AttendanceStudentID string  `json:"attendance_student_id" validate:"required,uuid"`
	AttendanceStatus    string  `json:"attendance_status" validate:"required,oneof=present absent"`
	AttendanceNotes     *string `json:"attendance_notes" validate:"omitempty,max=500"`
}

// Catatan: daftar students boleh kosong di level DTO; penolakan list kosong
// adalah aturan bisnis (InvalidArgument) di service, bukan aturan parsing.
type BulkMarkAttendanceRequest struct {
	AttendanceClassScheduleID string                 `json:"attendance_class_schedule_id" validate:"required,uuid"`
	AttendanceCourseID        string                 `json:"attendance_course_id" validate:"required,uuid"`
	AttendanceSessionID       string                 `json:"attendance_session_id" validate:"required,uuid"`
	Students                  []BulkMarkStudentEntry `json:"students" validate:"omitempty,dive"`
}

// Partial update: hanya field non-nil yang diubah.
type UpdateAttendanceRequest struct {
	AttendanceStatus          *string `json:"attendance_status" validate:"omitempty,oneof=present absent"`
	AttendanceNotes           *string `json:"attendance_notes" validate:"omitempty,max=500"`
	AttendanceClassScheduleID *string `json:"attendance_class_schedule_id" validate:"omitempty,uuid"`
	AttendanceCourseID        *string `json:"attendance_course_id" validate:"omitempty,uuid"`
	AttendanceSessionID       *string `json:"attendance_session_id" validate:"omitempty,uuid"`
	AttendanceStudentID       *string `json:"attendance_student_id" validate:"omitempty,uuid"`
}

// Filter equality opsional; string kosong = tidak difilter. Semua di-AND-kan.
type AttendanceFilter struct {
	ClassScheduleID string `query:"class_schedule_id"`
	CourseID        string `query:"course_id"`
	SessionID       string `query:"session_id"`
	StudentID       string `query:"student_id"`
	MarkedBy        string `query:"marked_by"`
	Status          string `query:"status"`
}

/* ============================
   Response DTO
============================ */

// Summary objects: pembeda eksplisit antara id mentah dan referensi ter-resolve.

type UserSummary struct {
	UserID        string `json:"user_id"`
	UserFirstName string `json:"user_first_name"`
	UserLastName  string `json:"user_last_name"`
	UserEmail     string `json:"user_email"`
}

type CourseSummary struct {
	CourseID    string `json:"course_id"`
	CourseTitle string `json:"course_title"`
	CourseSlug  string `json:"course_slug"`
}

type ClassScheduleSummary struct {
	ClassScheduleID        string    `json:"class_schedule_id"`
	ClassScheduleDate      time.Time `json:"class_schedule_date"`
	ClassScheduleStartTime string    `json:"class_schedule_start_time"`
	ClassScheduleEndTime   string    `json:"class_schedule_end_time"`
}

type AttendanceDTO struct {
	AttendanceID              string    `json:"attendance_id"`
	AttendanceClassScheduleID string    `json:"attendance_class_schedule_id"`
	AttendanceCourseID        string    `json:"attendance_course_id"`
	AttendanceSessionID       string    `json:"attendance_session_id"`
	AttendanceStudentID       string    `json:"attendance_student_id"`
	AttendanceMarkedBy        string    `json:"attendance_marked_by"`
	AttendanceStatus          string    `json:"attendance_status"`
	AttendanceNotes           *string   `json:"attendance_notes,omitempty"`
	AttendanceMarkedAt        time.Time `json:"attendance_marked_at"`
	AttendanceCreatedAt       time.Time `json:"attendance_created_at"`
	AttendanceUpdatedAt       time.Time `json:"attendance_updated_at"`

	Student       *UserSummary          `json:"student,omitempty"`
	Marker        *UserSummary          `json:"marker,omitempty"`
	Course        *CourseSummary        `json:"course,omitempty"`
	ClassSchedule *ClassScheduleSummary `json:"class_schedule,omitempty"`
}

type BulkMarkResultDTO struct {
	Created int             `json:"created"`
	Updated int             `json:"updated"`
	Total   int             `json:"total"`
	Records []AttendanceDTO `json:"records"`
}

type AttendanceStatsDTO struct {
	CourseID             string `json:"course_id"`
	StudentID            string `json:"student_id"`
	SessionID            string `json:"session_id"`
	TotalClasses         int    `json:"total_classes"`
	MarkedCount          int64  `json:"marked_count"`
	PresentCount         int64  `json:"present_count"`
	AbsentCount          int64  `json:"absent_count"`
	AttendancePercentage int    `json:"attendance_percentage"`
}

type PassFailStudentResult struct {
	StudentID         string `json:"student_id"`
	StudentName       string `json:"student_name"`
	StudentEmail      string `json:"student_email,omitempty"`
	TotalClasses      int    `json:"total_classes"`
	PresentCount      int    `json:"present_count"`
	AbsentCount       int    `json:"absent_count"`
	Result            string `json:"result"` // PASS | FAIL
	CertificateIssued bool   `json:"certificate_issued"`
}

type PassFailSummaryDTO struct {
	ClassScheduleID string                  `json:"class_schedule_id"`
	CourseID        string                  `json:"course_id"`
	SessionID       string                  `json:"session_id"`
	TotalStudents   int                     `json:"total_students"`
	PassedStudents  int                     `json:"passed_students"`
	FailedStudents  int                     `json:"failed_students"`
	Results         []PassFailStudentResult `json:"results"`
}

/* ============================
   Converter
============================ */

func ToAttendanceDTO(m model.AttendanceModel) AttendanceDTO {
	out := AttendanceDTO{
		AttendanceID:              m.AttendanceID,
		AttendanceClassScheduleID: m.AttendanceClassScheduleID,
		AttendanceCourseID:        m.AttendanceCourseID,
		AttendanceSessionID:       m.AttendanceSessionID,
		AttendanceStudentID:       m.AttendanceStudentID,
		AttendanceMarkedBy:        m.AttendanceMarkedBy,
		AttendanceStatus:          string(m.AttendanceStatus),
		AttendanceNotes:           m.AttendanceNotes,
		AttendanceMarkedAt:        m.AttendanceMarkedAt,
		AttendanceCreatedAt:       m.AttendanceCreatedAt,
		AttendanceUpdatedAt:       m.AttendanceUpdatedAt,
	}

	if m.Student != nil {
		out.Student = &UserSummary{
			UserID:        m.Student.UserID,
			UserFirstName: m.Student.UserFirstName,
			UserLastName:  m.Student.UserLastName,
			UserEmail:     m.Student.UserEmail,
		}
	}
	if m.Marker != nil {
		out.Marker = &UserSummary{
			UserID:        m.Marker.UserID,
			UserFirstName: m.Marker.UserFirstName,
			UserLastName:  m.Marker.UserLastName,
			UserEmail:     m.Marker.UserEmail,
		}
	}
	if m.Course != nil {
		out.Course = &CourseSummary{
			CourseID:    m.Course.CourseID,
			CourseTitle: m.Course.CourseTitle,
			CourseSlug:  m.Course.CourseSlug,
		}
	}
	if m.ClassSchedule != nil {
		out.ClassSchedule = &ClassScheduleSummary{
			ClassScheduleID:        m.ClassSchedule.ClassScheduleID,
			ClassScheduleDate:      m.ClassSchedule.ClassScheduleDate,
			ClassScheduleStartTime: m.ClassSchedule.ClassScheduleStartTime,
			ClassScheduleEndTime:   m.ClassSchedule.ClassScheduleEndTime,
		}
	}
	return out
}

func ToAttendanceDTOs(ms []model.AttendanceModel) []AttendanceDTO {
	out := make([]AttendanceDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAttendanceDTO(m))
	}
	return out
}
