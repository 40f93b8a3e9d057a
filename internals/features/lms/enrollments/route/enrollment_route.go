package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/enrollments/controller"
)

// AllEnrollmentRoutes: semua butuh auth (group private).
func AllEnrollmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEnrollmentController(db)

	enrollments := api.Group("/enrollments")
	enrollments.Post("/", ctrl.CreateEnrollment)
	enrollments.Get("/", ctrl.GetEnrollments)
	enrollments.Patch("/:id", ctrl.UpdateEnrollment)
	enrollments.Delete("/:id", ctrl.DeleteEnrollment)
}
