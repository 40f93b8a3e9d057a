package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/blogs/dto"
	"coursehub_backend/internals/features/lms/blogs/model"
	helper "coursehub_backend/internals/helpers"
)

var validateBlog = validator.New()

type BlogController struct {
	DB *gorm.DB
}

func NewBlogController(db *gorm.DB) *BlogController {
	return &BlogController{DB: db}
}

// =============================
// ➕ Create (multipart: field teks + optional file "cover")
// =============================
func (ctrl *BlogController) CreateBlog(c *fiber.Ctx) error {
	var body dto.CreateBlogRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBlog.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	authorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:       "blogs",
		SlugColumn:  "blog_slug",
		DefaultBase: "post",
	}, body.BlogTitle)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}

	blog := model.BlogModel{
		BlogAuthorID: authorID,
		BlogTitle:    body.BlogTitle,
		BlogSlug:     slug,
		BlogContent:  body.BlogContent,
		BlogTags:     body.BlogTags,
	}

	// cover opsional; dikonversi ke webp sebelum disimpan
	if fh, err := c.FormFile("cover"); err == nil && fh != nil {
		url, err := helper.SaveImageAsWebP("blogs", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Cover tidak valid")
		}
		blog.BlogCoverURL = &url
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&blog).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan blog")
	}
	return helper.JsonCreated(c, "Blog dibuat", dto.ToBlogDTO(blog))
}

// =============================
// 📄 List publik (published saja; ?tag= filter array)
// =============================
func (ctrl *BlogController) GetPublishedBlogs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.BlogModel{}).
		Where("blog_is_published = ?", true)
	if tag := c.Query("tag"); tag != "" {
		q = q.Where("? = ANY(blog_tags)", tag)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung blog")
	}

	var rows []model.BlogModel
	if err := q.Preload("Author").
		Order("blog_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil blog")
	}

	return helper.JsonList(c, "Daftar blog",
		dto.ToBlogDTOs(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// 🔍 Detail by slug
// =============================
func (ctrl *BlogController) GetBlogBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var blog model.BlogModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Author").
		First(&blog, "blog_slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Blog tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil blog")
	}
	return helper.JsonOK(c, "Detail blog", dto.ToBlogDTO(blog))
}

// =============================
// 🔄 Update (partial; cover bisa diganti)
// =============================
func (ctrl *BlogController) UpdateBlog(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateBlogRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBlog.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var blog model.BlogModel
	err := ctrl.DB.WithContext(c.UserContext()).First(&blog, "blog_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Blog tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil blog")
	}

	if body.BlogTitle != nil && *body.BlogTitle != blog.BlogTitle {
		blog.BlogTitle = *body.BlogTitle
		slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
			Table:       "blogs",
			SlugColumn:  "blog_slug",
			DefaultBase: "post",
		}, *body.BlogTitle)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		blog.BlogSlug = slug
	}
	if body.BlogContent != nil {
		blog.BlogContent = *body.BlogContent
	}
	if body.BlogTags != nil {
		blog.BlogTags = body.BlogTags
	}
	if body.BlogIsPublished != nil {
		blog.BlogIsPublished = *body.BlogIsPublished
	}

	if fh, err := c.FormFile("cover"); err == nil && fh != nil {
		url, err := helper.SaveImageAsWebP("blogs", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Cover tidak valid")
		}
		blog.BlogCoverURL = &url
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&blog).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan blog")
	}
	return helper.JsonUpdated(c, "Blog diperbarui", dto.ToBlogDTO(blog))
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *BlogController) DeleteBlog(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.BlogModel{}, "blog_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus blog")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Blog tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Blog dihapus", fiber.Map{"blog_id": id})
}
