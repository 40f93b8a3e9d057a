package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/finance/payments/controller"
)

// AllPaymentRoutes: semua endpoint pembayaran (group private).
func AllPaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	payments := api.Group("/payments")
	payments.Post("/", ctrl.CreatePayment)
	payments.Get("/", ctrl.GetPayments)
	payments.Patch("/:id/status", ctrl.UpdatePaymentStatus)
}
