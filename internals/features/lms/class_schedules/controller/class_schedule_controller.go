package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/class_schedules/dto"
	"coursehub_backend/internals/features/lms/class_schedules/model"
	helper "coursehub_backend/internals/helpers"
)

var validateSchedule = validator.New()

type ClassScheduleController struct {
	DB *gorm.DB
}

func NewClassScheduleController(db *gorm.DB) *ClassScheduleController {
	return &ClassScheduleController{DB: db}
}

// =============================
// ➕ Create
// =============================
func (ctrl *ClassScheduleController) CreateSchedule(c *fiber.Ctx) error {
	var body dto.CreateClassScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSchedule.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	schedule := model.ClassScheduleModel{
		ClassScheduleCourseID:     body.ClassScheduleCourseID,
		ClassScheduleSessionID:    body.ClassScheduleSessionID,
		ClassScheduleInstructorID: body.ClassScheduleInstructorID,
		ClassScheduleLocationID:   body.ClassScheduleLocationID,
		ClassScheduleDate:         body.ClassScheduleDate,
		ClassScheduleStartTime:    body.ClassScheduleStartTime,
		ClassScheduleEndTime:      body.ClassScheduleEndTime,
		ClassScheduleCapacity:     body.ClassScheduleCapacity,
		ClassScheduleStatus:       model.ScheduleStatusScheduled,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}

	return helper.JsonCreated(c, "Jadwal dibuat", dto.ToClassScheduleDTO(schedule))
}

func (ctrl *ClassScheduleController) filteredQuery(c *fiber.Ctx, f dto.ClassScheduleFilter) *gorm.DB {
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.ClassScheduleModel{})
	if v := strings.TrimSpace(f.CourseID); v != "" {
		q = q.Where("class_schedule_course_id = ?", v)
	}
	if v := strings.TrimSpace(f.SessionID); v != "" {
		q = q.Where("class_schedule_session_id = ?", v)
	}
	if v := strings.TrimSpace(f.InstructorID); v != "" {
		q = q.Where("class_schedule_instructor_id = ?", v)
	}
	if v := strings.TrimSpace(f.LocationID); v != "" {
		q = q.Where("class_schedule_location_id = ?", v)
	}
	if v := strings.TrimSpace(f.Status); v != "" {
		q = q.Where("class_schedule_status = ?", v)
	}
	if v := strings.TrimSpace(f.DateFrom); v != "" {
		q = q.Where("class_schedule_date >= ?", v)
	}
	if v := strings.TrimSpace(f.DateTo); v != "" {
		q = q.Where("class_schedule_date <= ?", v)
	}
	return q
}

// =============================
// 📄 List (paginated + filter)
// =============================
func (ctrl *ClassScheduleController) GetSchedules(c *fiber.Ctx) error {
	var filter dto.ClassScheduleFilter
	if err := c.QueryParser(&filter); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query params")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.filteredQuery(c, filter).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung jadwal")
	}

	var rows []model.ClassScheduleModel
	err := ctrl.filteredQuery(c, filter).
		Preload("Course").Preload("Instructor").Preload("Location").
		Order("class_schedule_date ASC, class_schedule_start_time ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	return helper.JsonList(c, "Daftar jadwal",
		dto.ToClassScheduleDTOs(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// 🔍 Detail
// =============================
func (ctrl *ClassScheduleController) GetScheduleByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var schedule model.ClassScheduleModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Course").Preload("Instructor").Preload("Location").
		First(&schedule, "class_schedule_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	return helper.JsonOK(c, "Detail jadwal", dto.ToClassScheduleDTO(schedule))
}

// =============================
// 🔄 Update (partial)
// =============================
func (ctrl *ClassScheduleController) UpdateSchedule(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateClassScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSchedule.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var schedule model.ClassScheduleModel
	err := ctrl.DB.WithContext(c.UserContext()).
		First(&schedule, "class_schedule_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	if body.ClassScheduleInstructorID != nil {
		schedule.ClassScheduleInstructorID = body.ClassScheduleInstructorID
	}
	if body.ClassScheduleLocationID != nil {
		schedule.ClassScheduleLocationID = body.ClassScheduleLocationID
	}
	if body.ClassScheduleDate != nil {
		schedule.ClassScheduleDate = *body.ClassScheduleDate
	}
	if body.ClassScheduleStartTime != nil {
		schedule.ClassScheduleStartTime = *body.ClassScheduleStartTime
	}
	if body.ClassScheduleEndTime != nil {
		schedule.ClassScheduleEndTime = *body.ClassScheduleEndTime
	}
	if body.ClassScheduleCapacity != nil {
		schedule.ClassScheduleCapacity = *body.ClassScheduleCapacity
	}
	if body.ClassScheduleStatus != nil {
		schedule.ClassScheduleStatus = model.ScheduleStatus(*body.ClassScheduleStatus)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}
	return helper.JsonUpdated(c, "Jadwal diperbarui", dto.ToClassScheduleDTO(schedule))
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *ClassScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.ClassScheduleModel{}, "class_schedule_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jadwal")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Jadwal dihapus", fiber.Map{"class_schedule_id": id})
}
