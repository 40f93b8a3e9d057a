package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/enrollments/dto"
	"coursehub_backend/internals/features/lms/enrollments/model"
	helper "coursehub_backend/internals/helpers"
)

var validateEnrollment = validator.New()

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// =============================
// ➕ Enroll (student sendiri atau admin atas nama student)
// =============================
func (ctrl *EnrollmentController) CreateEnrollment(c *fiber.Ctx) error {
	var body dto.CreateEnrollmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEnrollment.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studentID := body.EnrollmentStudentID
	if studentID == "" {
		fromToken, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		studentID = fromToken
	}

	// satu enrollment per (student, session)
	var dup int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.EnrollmentModel{}).
		Where("enrollment_student_id = ? AND enrollment_session_id = ?", studentID, body.EnrollmentSessionID).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengecek enrollment")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Student sudah terdaftar di sesi ini")
	}

	enr := model.EnrollmentModel{
		EnrollmentStudentID: studentID,
		EnrollmentCourseID:  body.EnrollmentCourseID,
		EnrollmentSessionID: body.EnrollmentSessionID,
		EnrollmentStatus:    model.EnrollmentStatusActive,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&enr).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan enrollment")
	}

	return helper.JsonCreated(c, "Enrollment dibuat", dto.ToEnrollmentDTO(enr))
}

// =============================
// 📄 List (filter student/course/session/status)
// =============================
func (ctrl *EnrollmentController) GetEnrollments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.EnrollmentModel{})
	if v := c.Query("student_id"); v != "" {
		q = q.Where("enrollment_student_id = ?", v)
	}
	if v := c.Query("course_id"); v != "" {
		q = q.Where("enrollment_course_id = ?", v)
	}
	if v := c.Query("session_id"); v != "" {
		q = q.Where("enrollment_session_id = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("enrollment_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung enrollment")
	}

	var rows []model.EnrollmentModel
	if err := q.Preload("Student").Preload("Course").
		Order("enrollment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil enrollment")
	}

	return helper.JsonList(c, "Daftar enrollment",
		dto.ToEnrollmentDTOs(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// 🔄 Update status
// =============================
func (ctrl *EnrollmentController) UpdateEnrollment(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateEnrollmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEnrollment.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var enr model.EnrollmentModel
	err := ctrl.DB.WithContext(c.UserContext()).First(&enr, "enrollment_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil enrollment")
	}

	if body.EnrollmentStatus != nil {
		enr.EnrollmentStatus = model.EnrollmentStatus(*body.EnrollmentStatus)
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&enr).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan enrollment")
	}
	return helper.JsonUpdated(c, "Enrollment diperbarui", dto.ToEnrollmentDTO(enr))
}

// =============================
// 🗑️ Cancel (hapus)
// =============================
func (ctrl *EnrollmentController) DeleteEnrollment(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.EnrollmentModel{}, "enrollment_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus enrollment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Enrollment dihapus", fiber.Map{"enrollment_id": id})
}
