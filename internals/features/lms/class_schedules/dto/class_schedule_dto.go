package dto

import (
	"time"

	"coursehub_backend/internals/features/lms/class_schedules/model"
)

type CreateClassScheduleRequest struct {
	ClassScheduleCourseID     string    `json:"class_schedule_course_id" validate:"required,uuid"`
	ClassScheduleSessionID    string    `json:"class_schedule_session_id" validate:"required,uuid"`
	ClassScheduleInstructorID *string   `json:"class_schedule_instructor_id" validate:"omitempty,uuid"`
	ClassScheduleLocationID   *string   `json:"class_schedule_location_id" validate:"omitempty,uuid"`
	ClassScheduleDate         time.Time `json:"class_schedule_date" validate:"required"`
	ClassScheduleStartTime    string    `json:"class_schedule_start_time" validate:"omitempty,len=5"`
	ClassScheduleEndTime      string    `json:"class_schedule_end_time" validate:"omitempty,len=5"`
	ClassScheduleCapacity     int       `json:"class_schedule_capacity" validate:"omitempty,gte=0"`
}

type UpdateClassScheduleRequest struct {
	ClassScheduleInstructorID *string    `json:"class_schedule_instructor_id" validate:"omitempty,uuid"`
	ClassScheduleLocationID   *string    `json:"class_schedule_location_id" validate:"omitempty,uuid"`
	ClassScheduleDate         *time.Time `json:"class_schedule_date"`
	ClassScheduleStartTime    *string    `json:"class_schedule_start_time" validate:"omitempty,len=5"`
	ClassScheduleEndTime      *string    `json:"class_schedule_end_time" validate:"omitempty,len=5"`
	ClassScheduleCapacity     *int       `json:"class_schedule_capacity" validate:"omitempty,gte=0"`
	ClassScheduleStatus       *string    `json:"class_schedule_status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

type ClassScheduleFilter struct {
	CourseID     string `query:"course_id"`
	SessionID    string `query:"session_id"`
	InstructorID string `query:"instructor_id"`
	LocationID   string `query:"location_id"`
	Status       string `query:"status"`
	DateFrom     string `query:"date_from"` // YYYY-MM-DD
	DateTo       string `query:"date_to"`
}

type ClassScheduleDTO struct {
	ClassScheduleID           string    `json:"class_schedule_id"`
	ClassScheduleCourseID     string    `json:"class_schedule_course_id"`
	ClassScheduleSessionID    string    `json:"class_schedule_session_id"`
	ClassScheduleInstructorID *string   `json:"class_schedule_instructor_id,omitempty"`
	ClassScheduleLocationID   *string   `json:"class_schedule_location_id,omitempty"`
	ClassScheduleDate         time.Time `json:"class_schedule_date"`
	ClassScheduleStartTime    string    `json:"class_schedule_start_time"`
	ClassScheduleEndTime      string    `json:"class_schedule_end_time"`
	ClassScheduleCapacity     int       `json:"class_schedule_capacity"`
	ClassScheduleStatus       string    `json:"class_schedule_status"`

	CourseTitle    string `json:"course_title,omitempty"`
	InstructorName string `json:"instructor_name,omitempty"`
	LocationName   string `json:"location_name,omitempty"`
}

func ToClassScheduleDTO(m model.ClassScheduleModel) ClassScheduleDTO {
	out := ClassScheduleDTO{
		ClassScheduleID:           m.ClassScheduleID,
		ClassScheduleCourseID:     m.ClassScheduleCourseID,
		ClassScheduleSessionID:    m.ClassScheduleSessionID,
		ClassScheduleInstructorID: m.ClassScheduleInstructorID,
		ClassScheduleLocationID:   m.ClassScheduleLocationID,
		ClassScheduleDate:         m.ClassScheduleDate,
		ClassScheduleStartTime:    m.ClassScheduleStartTime,
		ClassScheduleEndTime:      m.ClassScheduleEndTime,
		ClassScheduleCapacity:     m.ClassScheduleCapacity,
		ClassScheduleStatus:       string(m.ClassScheduleStatus),
	}
	if m.Course != nil {
		out.CourseTitle = m.Course.CourseTitle
	}
	if m.Instructor != nil {
		out.InstructorName = m.Instructor.UserFirstName + " " + m.Instructor.UserLastName
	}
	if m.Location != nil {
		out.LocationName = m.Location.LocationName
	}
	return out
}

func ToClassScheduleDTOs(ms []model.ClassScheduleModel) []ClassScheduleDTO {
	out := make([]ClassScheduleDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToClassScheduleDTO(m))
	}
	return out
}
