package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/courses/dto"
	"coursehub_backend/internals/features/lms/courses/model"
	helper "coursehub_backend/internals/helpers"
)

type CourseSessionController struct {
	DB *gorm.DB
}

func NewCourseSessionController(db *gorm.DB) *CourseSessionController {
	return &CourseSessionController{DB: db}
}

func toTimeBlocks(in []dto.TimeBlockRequest) datatypes.JSONSlice[model.TimeBlock] {
	blocks := make([]model.TimeBlock, 0, len(in))
	for _, b := range in {
		blocks = append(blocks, model.TimeBlock{StartDate: b.StartDate, EndDate: b.EndDate})
	}
	return datatypes.NewJSONSlice(blocks)
}

// =============================
// ➕ Create session di bawah course
// =============================
func (ctrl *CourseSessionController) CreateSession(c *fiber.Ctx) error {
	courseID := c.Params("course_id")

	var body dto.CreateCourseSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// pastikan parent course ada
	var exists int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.CourseModel{}).
		Where("course_id = ?", courseID).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengecek course")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	session := model.CourseSessionModel{
		CourseSessionCourseID:   courseID,
		CourseSessionName:       body.CourseSessionName,
		CourseSessionOrder:      body.CourseSessionOrder,
		CourseSessionTimeBlocks: toTimeBlocks(body.CourseSessionTimeBlocks),
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sesi")
	}

	return helper.JsonCreated(c, "Sesi dibuat", dto.ToCourseSessionDTO(session))
}

// =============================
// 📄 List sessions satu course
// =============================
func (ctrl *CourseSessionController) GetSessionsByCourse(c *fiber.Ctx) error {
	courseID := c.Params("course_id")

	var rows []model.CourseSessionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("course_session_course_id = ?", courseID).
		Order("course_session_order ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}

	out := make([]dto.CourseSessionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToCourseSessionDTO(r))
	}
	return helper.JsonOK(c, "Daftar sesi", out)
}

// =============================
// 🔄 Update session (partial; time blocks diganti utuh)
// =============================
func (ctrl *CourseSessionController) UpdateSession(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateCourseSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var session model.CourseSessionModel
	err := ctrl.DB.WithContext(c.UserContext()).
		First(&session, "course_session_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}

	if body.CourseSessionName != nil {
		session.CourseSessionName = *body.CourseSessionName
	}
	if body.CourseSessionOrder != nil {
		session.CourseSessionOrder = *body.CourseSessionOrder
	}
	if body.CourseSessionTimeBlocks != nil {
		session.CourseSessionTimeBlocks = toTimeBlocks(body.CourseSessionTimeBlocks)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sesi")
	}
	return helper.JsonUpdated(c, "Sesi diperbarui", dto.ToCourseSessionDTO(session))
}

// =============================
// 🗑️ Delete session
// =============================
func (ctrl *CourseSessionController) DeleteSession(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.CourseSessionModel{}, "course_session_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sesi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Sesi dihapus", fiber.Map{"course_session_id": id})
}
