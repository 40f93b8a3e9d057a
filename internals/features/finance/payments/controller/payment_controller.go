package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/finance/payments/dto"
	"coursehub_backend/internals/features/finance/payments/model"
	helper "coursehub_backend/internals/helpers"
)

var validatePayment = validator.New()

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// =============================
// ➕ Create (status awal pending)
// =============================
func (ctrl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	var body dto.CreatePaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePayment.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	payment := model.PaymentModel{
		PaymentEnrollmentID: body.PaymentEnrollmentID,
		PaymentAmount:       body.PaymentAmount,
		PaymentMethod:       body.PaymentMethod,
		PaymentStatus:       model.PaymentStatusPending,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pembayaran")
	}
	return helper.JsonCreated(c, "Pembayaran dibuat", dto.ToPaymentDTO(payment))
}

// =============================
// 📄 List (filter enrollment/status)
// =============================
func (ctrl *PaymentController) GetPayments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.PaymentModel{})
	if v := c.Query("enrollment_id"); v != "" {
		q = q.Where("payment_enrollment_id = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("payment_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pembayaran")
	}

	var rows []model.PaymentModel
	if err := q.Order("payment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pembayaran")
	}

	return helper.JsonList(c, "Daftar pembayaran",
		dto.ToPaymentDTOs(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// 🔄 Update status (paid → isi paid_at)
// =============================
func (ctrl *PaymentController) UpdatePaymentStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdatePaymentStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePayment.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var payment model.PaymentModel
	err := ctrl.DB.WithContext(c.UserContext()).First(&payment, "payment_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pembayaran")
	}

	payment.PaymentStatus = model.PaymentStatus(body.PaymentStatus)
	if payment.PaymentStatus == model.PaymentStatusPaid && payment.PaymentPaidAt == nil {
		now := time.Now()
		payment.PaymentPaidAt = &now
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pembayaran")
	}
	return helper.JsonUpdated(c, "Status pembayaran diperbarui", dto.ToPaymentDTO(payment))
}
