package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/blogs/controller"
)

func BlogPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBlogController(db)

	blogs := api.Group("/blogs")
	blogs.Get("/", ctrl.GetPublishedBlogs)
	blogs.Get("/:slug", ctrl.GetBlogBySlug)
}

func BlogAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBlogController(db)

	blogs := api.Group("/blogs")
	blogs.Post("/", ctrl.CreateBlog)
	blogs.Put("/:id", ctrl.UpdateBlog)
	blogs.Delete("/:id", ctrl.DeleteBlog)
}
