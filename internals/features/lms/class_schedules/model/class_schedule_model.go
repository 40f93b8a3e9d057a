package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "coursehub_backend/internals/features/lms/courses/model"
	locationModel "coursehub_backend/internals/features/lms/locations/model"
	userModel "coursehub_backend/internals/features/users/user/model"
)

type ScheduleStatus string

const (
	ScheduleStatusScheduled ScheduleStatus = "scheduled"
	ScheduleStatusCompleted ScheduleStatus = "completed"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
)

// ClassScheduleModel = satu occurrence kelas yang jadi target absensi.
type ClassScheduleModel struct {
	ClassScheduleID           string         `gorm:"column:class_schedule_id;primaryKey;type:uuid" json:"class_schedule_id"`
	ClassScheduleCourseID     string         `gorm:"column:class_schedule_course_id;type:uuid;not null;index" json:"class_schedule_course_id"`
	ClassScheduleSessionID    string         `gorm:"column:class_schedule_session_id;type:uuid;not null;index" json:"class_schedule_session_id"`
	ClassScheduleInstructorID *string        `gorm:"column:class_schedule_instructor_id;type:uuid" json:"class_schedule_instructor_id,omitempty"`
	ClassScheduleLocationID   *string        `gorm:"column:class_schedule_location_id;type:uuid" json:"class_schedule_location_id,omitempty"`
	ClassScheduleDate         time.Time      `gorm:"column:class_schedule_date;type:date;not null;index" json:"class_schedule_date"`
	ClassScheduleStartTime    string         `gorm:"column:class_schedule_start_time;type:varchar(5)" json:"class_schedule_start_time"`
	ClassScheduleEndTime      string         `gorm:"column:class_schedule_end_time;type:varchar(5)" json:"class_schedule_end_time"`
	ClassScheduleCapacity     int            `gorm:"column:class_schedule_capacity;default:0" json:"class_schedule_capacity"`
	ClassScheduleStatus       ScheduleStatus `gorm:"column:class_schedule_status;type:varchar(20);not null;default:'scheduled'" json:"class_schedule_status"`
	ClassScheduleCreatedAt    time.Time      `gorm:"column:class_schedule_created_at;autoCreateTime" json:"class_schedule_created_at"`
	ClassScheduleUpdatedAt    time.Time      `gorm:"column:class_schedule_updated_at;autoUpdateTime" json:"class_schedule_updated_at"`

	Course     *courseModel.CourseModel     `gorm:"foreignKey:ClassScheduleCourseID;references:CourseID" json:"course,omitempty"`
	Instructor *userModel.UserModel         `gorm:"foreignKey:ClassScheduleInstructorID;references:UserID" json:"instructor,omitempty"`
	Location   *locationModel.LocationModel `gorm:"foreignKey:ClassScheduleLocationID;references:LocationID" json:"location,omitempty"`
}

func (ClassScheduleModel) TableName() string {
	return "class_schedules"
}

func (m *ClassScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassScheduleID == "" {
		m.ClassScheduleID = uuid.NewString()
	}
	return nil
}
