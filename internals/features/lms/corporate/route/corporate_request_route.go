package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/corporate/controller"
)

// CorporatePublicRoutes: form permintaan training bisa dikirim tanpa login.
func CorporatePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCorporateRequestController(db)

	corporate := api.Group("/corporate-requests")
	corporate.Post("/", ctrl.CreateRequest)
}

func CorporateAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCorporateRequestController(db)

	corporate := api.Group("/corporate-requests")
	corporate.Get("/", ctrl.GetRequests)
	corporate.Patch("/:id/status", ctrl.UpdateRequestStatus)
}
