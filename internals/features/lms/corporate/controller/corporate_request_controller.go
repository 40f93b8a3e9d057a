package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/corporate/dto"
	"coursehub_backend/internals/features/lms/corporate/model"
	helper "coursehub_backend/internals/helpers"
)

var validateCorporate = validator.New()

type CorporateRequestController struct {
	DB *gorm.DB
}

func NewCorporateRequestController(db *gorm.DB) *CorporateRequestController {
	return &CorporateRequestController{DB: db}
}

// =============================
// ➕ Submit (publik, dari form landing page)
// =============================
func (ctrl *CorporateRequestController) CreateRequest(c *fiber.Ctx) error {
	var body dto.CreateCorporateRequestRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCorporate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req := model.CorporateRequestModel{
		CorporateRequestCompanyName:  body.CorporateRequestCompanyName,
		CorporateRequestContactName:  body.CorporateRequestContactName,
		CorporateRequestContactEmail: body.CorporateRequestContactEmail,
		CorporateRequestContactPhone: body.CorporateRequestContactPhone,
		CorporateRequestCourseID:     body.CorporateRequestCourseID,
		CorporateRequestHeadcount:    body.CorporateRequestHeadcount,
		CorporateRequestWeekdays:     body.CorporateRequestWeekdays,
		CorporateRequestNotes:        body.CorporateRequestNotes,
		CorporateRequestStatus:       model.CorporateRequestStatusPending,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&req).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan permintaan")
	}

	return helper.JsonCreated(c, "Permintaan training terkirim", dto.ToCorporateRequestDTO(req))
}

// =============================
// 📄 List (admin)
// =============================
func (ctrl *CorporateRequestController) GetRequests(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.CorporateRequestModel{})
	if v := c.Query("status"); v != "" {
		q = q.Where("corporate_request_status = ?", v)
	}
	if v := c.Query("course_id"); v != "" {
		q = q.Where("corporate_request_course_id = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung permintaan")
	}

	var rows []model.CorporateRequestModel
	if err := q.Preload("Course").
		Order("corporate_request_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil permintaan")
	}

	return helper.JsonList(c, "Daftar permintaan training",
		dto.ToCorporateRequestDTOs(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// 🔄 Approve / reject
// =============================
func (ctrl *CorporateRequestController) UpdateRequestStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateCorporateRequestStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCorporate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var req model.CorporateRequestModel
	err := ctrl.DB.WithContext(c.UserContext()).
		First(&req, "corporate_request_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Permintaan tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil permintaan")
	}

	req.CorporateRequestStatus = model.CorporateRequestStatus(body.CorporateRequestStatus)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&req).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan permintaan")
	}
	return helper.JsonUpdated(c, "Status permintaan diperbarui", dto.ToCorporateRequestDTO(req))
}
