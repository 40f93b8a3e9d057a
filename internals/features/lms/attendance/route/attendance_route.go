package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/attendance/controller"
	"coursehub_backend/internals/features/lms/attendance/service"
	cache "coursehub_backend/internals/helpers/cache"
	"coursehub_backend/internals/middlewares"
)

// AllAttendanceRoutes: semua endpoint absensi (butuh auth; di-mount di group private).
func AllAttendanceRoutes(api fiber.Router, db *gorm.DB, c *cache.Cache) {
	svc := service.NewAttendanceService(db, c)
	ctrl := controller.NewAttendanceController(svc)

	attendance := api.Group("/attendance")
	attendance.Post("/", ctrl.MarkAttendance)
	attendance.Post("/bulk", middlewares.BulkWriteRateLimiter(), ctrl.BulkMarkAttendance)
	attendance.Get("/", ctrl.GetAttendancePaginated)
	attendance.Get("/all", ctrl.GetAllAttendance)
	attendance.Get("/stats/:course_id/:student_id/:session_id", ctrl.GetAttendanceStats)
	attendance.Get("/pass-fail/:class_schedule_id/:course_id/:session_id", ctrl.CheckPassFailStatus)
	attendance.Patch("/:id", ctrl.UpdateAttendance)
	attendance.Delete("/:id", ctrl.DeleteAttendance)
}
