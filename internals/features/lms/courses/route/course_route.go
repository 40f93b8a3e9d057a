package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/courses/controller"
)

// CoursePublicRoutes: katalog course (read-only, tanpa auth).
func CoursePublicRoutes(api fiber.Router, db *gorm.DB) {
	courseCtrl := controller.NewCourseController(db)
	sessionCtrl := controller.NewCourseSessionController(db)

	courses := api.Group("/courses")
	courses.Get("/", courseCtrl.GetCourses)
	courses.Get("/:slug_or_id", courseCtrl.GetCourseBySlugOrID)
	courses.Get("/:course_id/sessions", sessionCtrl.GetSessionsByCourse)
}

// CourseAdminRoutes: mutasi course & sesi (di-mount di group private).
func CourseAdminRoutes(api fiber.Router, db *gorm.DB) {
	courseCtrl := controller.NewCourseController(db)
	sessionCtrl := controller.NewCourseSessionController(db)

	courses := api.Group("/courses")
	courses.Post("/", courseCtrl.CreateCourse)
	courses.Put("/:id", courseCtrl.UpdateCourse)
	courses.Delete("/:id", courseCtrl.DeleteCourse)

	courses.Post("/:course_id/sessions", sessionCtrl.CreateSession)
	courses.Put("/sessions/:id", sessionCtrl.UpdateSession)
	courses.Delete("/sessions/:id", sessionCtrl.DeleteSession)
}
