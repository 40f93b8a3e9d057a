package dto

import (
	"time"

	"coursehub_backend/internals/features/lms/courses/model"
)

/* ============================
   Request DTO
============================ */

type CreateCourseRequest struct {
	CourseTitle       string  `json:"course_title" validate:"required,min=3,max=255"`
	CourseDescription string  `json:"course_description" validate:"omitempty,max=5000"`
	CourseLevel       string  `json:"course_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	CoursePrice       float64 `json:"course_price" validate:"omitempty,gte=0"`
}

type UpdateCourseRequest struct {
	CourseTitle       *string  `json:"course_title" validate:"omitempty,min=3,max=255"`
	CourseDescription *string  `json:"course_description" validate:"omitempty,max=5000"`
	CourseLevel       *string  `json:"course_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	CoursePrice       *float64 `json:"course_price" validate:"omitempty,gte=0"`
	CourseIsActive    *bool    `json:"course_is_active"`
}

type TimeBlockRequest struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

type CreateCourseSessionRequest struct {
	CourseSessionName       string             `json:"course_session_name" validate:"required,min=2,max=150"`
	CourseSessionOrder      int                `json:"course_session_order" validate:"omitempty,gte=0"`
	CourseSessionTimeBlocks []TimeBlockRequest `json:"course_session_time_blocks" validate:"omitempty,dive"`
}

type UpdateCourseSessionRequest struct {
	CourseSessionName       *string            `json:"course_session_name" validate:"omitempty,min=2,max=150"`
	CourseSessionOrder      *int               `json:"course_session_order" validate:"omitempty,gte=0"`
	CourseSessionTimeBlocks []TimeBlockRequest `json:"course_session_time_blocks" validate:"omitempty,dive"`
}

/* ============================
   Response DTO
============================ */

type CourseSessionDTO struct {
	CourseSessionID         string            `json:"course_session_id"`
	CourseSessionCourseID   string            `json:"course_session_course_id"`
	CourseSessionName       string            `json:"course_session_name"`
	CourseSessionOrder      int               `json:"course_session_order"`
	CourseSessionTimeBlocks []model.TimeBlock `json:"course_session_time_blocks"`
	CourseSessionCreatedAt  time.Time         `json:"course_session_created_at"`
}

type CourseDTO struct {
	CourseID          string             `json:"course_id"`
	CourseTitle       string             `json:"course_title"`
	CourseSlug        string             `json:"course_slug"`
	CourseDescription string             `json:"course_description"`
	CourseLevel       string             `json:"course_level"`
	CoursePrice       float64            `json:"course_price"`
	CourseIsActive    bool               `json:"course_is_active"`
	CourseCreatedAt   time.Time          `json:"course_created_at"`
	Sessions          []CourseSessionDTO `json:"sessions,omitempty"`
}

func ToCourseSessionDTO(m model.CourseSessionModel) CourseSessionDTO {
	return CourseSessionDTO{
		CourseSessionID:         m.CourseSessionID,
		CourseSessionCourseID:   m.CourseSessionCourseID,
		CourseSessionName:       m.CourseSessionName,
		CourseSessionOrder:      m.CourseSessionOrder,
		CourseSessionTimeBlocks: m.CourseSessionTimeBlocks,
		CourseSessionCreatedAt:  m.CourseSessionCreatedAt,
	}
}

func ToCourseDTO(m model.CourseModel) CourseDTO {
	out := CourseDTO{
		CourseID:          m.CourseID,
		CourseTitle:       m.CourseTitle,
		CourseSlug:        m.CourseSlug,
		CourseDescription: m.CourseDescription,
		CourseLevel:       m.CourseLevel,
		CoursePrice:       m.CoursePrice,
		CourseIsActive:    m.CourseIsActive,
		CourseCreatedAt:   m.CourseCreatedAt,
	}
	for _, s := range m.Sessions {
		out.Sessions = append(out.Sessions, ToCourseSessionDTO(s))
	}
	return out
}
