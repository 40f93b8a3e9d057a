package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/class_schedules/controller"
)

// ClassSchedulePublicRoutes: jadwal bisa dilihat tanpa login.
func ClassSchedulePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassScheduleController(db)

	schedules := api.Group("/class-schedules")
	schedules.Get("/", ctrl.GetSchedules)
	schedules.Get("/:id", ctrl.GetScheduleByID)
}

// ClassScheduleAdminRoutes: mutasi jadwal (group private).
func ClassScheduleAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassScheduleController(db)

	schedules := api.Group("/class-schedules")
	schedules.Post("/", ctrl.CreateSchedule)
	schedules.Put("/:id", ctrl.UpdateSchedule)
	schedules.Delete("/:id", ctrl.DeleteSchedule)
}
