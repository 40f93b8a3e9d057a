package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/locations/controller"
)

func LocationPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLocationController(db)

	locations := api.Group("/locations")
	locations.Get("/", ctrl.GetLocations)
	locations.Get("/:id", ctrl.GetLocationByID)
}

func LocationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLocationController(db)

	locations := api.Group("/locations")
	locations.Post("/", ctrl.CreateLocation)
	locations.Put("/:id", ctrl.UpdateLocation)
	locations.Delete("/:id", ctrl.DeleteLocation)
}
