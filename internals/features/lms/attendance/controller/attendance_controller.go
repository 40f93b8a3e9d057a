package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"coursehub_backend/internals/features/lms/attendance/dto"
	"coursehub_backend/internals/features/lms/attendance/service"
	helper "coursehub_backend/internals/helpers"
)

var validateAttendance = validator.New()

type AttendanceController struct {
	Service *service.AttendanceService
}

func NewAttendanceController(svc *service.AttendanceService) *AttendanceController {
	return &AttendanceController{Service: svc}
}

// mapServiceError menerjemahkan error taksonomi service ke status HTTP.
func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyStudentList):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAttendanceNotFound),
		errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrSessionNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses absensi")
	}
}

// =============================
// ✅ Mark (upsert satu student)
// =============================
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var body dto.MarkAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttendance.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	markedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	rec, created, err := ctrl.Service.Mark(c.UserContext(), body, markedBy)
	if err != nil {
		return mapServiceError(c, err)
	}

	if created {
		return helper.JsonCreated(c, "Absensi tercatat", rec)
	}
	return helper.JsonUpdated(c, "Absensi diperbarui", rec)
}

// =============================
// 📦 Bulk mark
// =============================
func (ctrl *AttendanceController) BulkMarkAttendance(c *fiber.Ctx) error {
	var body dto.BulkMarkAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttendance.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	markedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	result, err := ctrl.Service.BulkMark(c.UserContext(), body, markedBy)
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.JsonOK(c, "Bulk absensi selesai", result)
}

// =============================
// 📄 List (paginated, default)
// =============================
func (ctrl *AttendanceController) GetAttendancePaginated(c *fiber.Ctx) error {
	var filter dto.AttendanceFilter
	if err := c.QueryParser(&filter); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query params")
	}

	paging := helper.ResolvePaging(c, service.DefaultPageSize, service.MaxPageSize)

	rows, pagination, err := ctrl.Service.FindPaginated(c.UserContext(), filter, paging.Page, paging.PerPage)
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.JsonList(c, "Daftar absensi", rows, pagination)
}

// =============================
// 📄 List (semua, tanpa paging)
// =============================
func (ctrl *AttendanceController) GetAllAttendance(c *fiber.Ctx) error {
	var filter dto.AttendanceFilter
	if err := c.QueryParser(&filter); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query params")
	}

	rows, err := ctrl.Service.FindAll(c.UserContext(), filter)
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.JsonOK(c, "Daftar absensi", rows)
}

// =============================
// 📊 Statistik kehadiran
// =============================
func (ctrl *AttendanceController) GetAttendanceStats(c *fiber.Ctx) error {
	courseID := c.Params("course_id")
	studentID := c.Params("student_id")
	sessionID := c.Params("session_id")

	stats, err := ctrl.Service.GetAttendanceStats(c.UserContext(), courseID, studentID, sessionID)
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.JsonOK(c, "Statistik kehadiran", stats)
}

// =============================
// 🏁 Pass/Fail
// =============================
func (ctrl *AttendanceController) CheckPassFailStatus(c *fiber.Ctx) error {
	classScheduleID := c.Params("class_schedule_id")
	courseID := c.Params("course_id")
	sessionID := c.Params("session_id")

	summary, err := ctrl.Service.CheckPassFailStatus(c.UserContext(), classScheduleID, courseID, sessionID)
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.JsonOK(c, "Hasil pass/fail", summary)
}

// =============================
// 🔄 Update (partial)
// =============================
func (ctrl *AttendanceController) UpdateAttendance(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttendance.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	rec, err := ctrl.Service.Update(c.UserContext(), id, body)
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.JsonUpdated(c, "Absensi diperbarui", rec)
}

// =============================
// 🗑️ Delete (toleran)
// =============================
func (ctrl *AttendanceController) DeleteAttendance(c *fiber.Ctx) error {
	id := c.Params("id")

	deleted, err := ctrl.Service.Remove(c.UserContext(), id)
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.JsonDeleted(c, "Selesai", fiber.Map{"deleted": deleted})
}
