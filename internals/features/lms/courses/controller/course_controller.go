package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/courses/dto"
	"coursehub_backend/internals/features/lms/courses/model"
	helper "coursehub_backend/internals/helpers"
)

var validateCourse = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// =============================
// ➕ Create course (slug otomatis dari title)
// =============================
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:       "courses",
		SlugColumn:  "course_slug",
		DefaultBase: "course",
	}, body.CourseTitle)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}

	level := body.CourseLevel
	if level == "" {
		level = "beginner"
	}

	course := model.CourseModel{
		CourseTitle:       body.CourseTitle,
		CourseSlug:        slug,
		CourseDescription: body.CourseDescription,
		CourseLevel:       level,
		CoursePrice:       body.CoursePrice,
		CourseIsActive:    true,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan course")
	}

	return helper.JsonCreated(c, "Course dibuat", dto.ToCourseDTO(course))
}

// =============================
// 📄 List courses (paginated)
// =============================
func (ctrl *CourseController) GetCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.CourseModel{})
	if level := c.Query("level"); level != "" {
		q = q.Where("course_level = ?", level)
	}
	if c.Query("active") != "" {
		q = q.Where("course_is_active = ?", c.QueryBool("active"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung course")
	}

	var rows []model.CourseModel
	if err := q.Order("course_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	out := make([]dto.CourseDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToCourseDTO(r))
	}
	return helper.JsonList(c, "Daftar course", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// 🔍 Detail by id atau slug (termasuk sessions)
// =============================
func (ctrl *CourseController) GetCourseBySlugOrID(c *fiber.Ctx) error {
	key := c.Params("slug_or_id")

	var course model.CourseModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("course_session_order ASC")
		}).
		Where("course_id = ? OR course_slug = ?", key, key).
		First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	return helper.JsonOK(c, "Detail course", dto.ToCourseDTO(course))
}

// =============================
// 🔄 Update (partial)
// =============================
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var course model.CourseModel
	err := ctrl.DB.WithContext(c.UserContext()).First(&course, "course_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	if body.CourseTitle != nil && *body.CourseTitle != course.CourseTitle {
		course.CourseTitle = *body.CourseTitle
		slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
			Table:       "courses",
			SlugColumn:  "course_slug",
			DefaultBase: "course",
		}, *body.CourseTitle)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		course.CourseSlug = slug
	}
	if body.CourseDescription != nil {
		course.CourseDescription = *body.CourseDescription
	}
	if body.CourseLevel != nil {
		course.CourseLevel = *body.CourseLevel
	}
	if body.CoursePrice != nil {
		course.CoursePrice = *body.CoursePrice
	}
	if body.CourseIsActive != nil {
		course.CourseIsActive = *body.CourseIsActive
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan course")
	}
	return helper.JsonUpdated(c, "Course diperbarui", dto.ToCourseDTO(course))
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Course dihapus", fiber.Map{"course_id": id})
}
