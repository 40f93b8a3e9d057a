package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/certificates/dto"
	"coursehub_backend/internals/features/lms/certificates/model"
	helper "coursehub_backend/internals/helpers"
)

var validateCertificate = validator.New()

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

// nomor sertifikat: CERT-YYYY-XXXXXXXX (8 hex pertama uuid)
func newCertificateNumber() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("CERT-%d-%s", time.Now().Year(), short)
}

// =============================
// 🎓 Issue (satu sertifikat per student per sesi)
// =============================
func (ctrl *CertificateController) IssueCertificate(c *fiber.Ctx) error {
	var body dto.IssueCertificateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCertificate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var dup int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.CertificateModel{}).
		Where("certificate_student_id = ? AND certificate_session_id = ?",
			body.CertificateStudentID, body.CertificateSessionID).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengecek sertifikat")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Sertifikat sudah terbit untuk sesi ini")
	}

	cert := model.CertificateModel{
		CertificateNumber:    newCertificateNumber(),
		CertificateStudentID: body.CertificateStudentID,
		CertificateCourseID:  body.CertificateCourseID,
		CertificateSessionID: body.CertificateSessionID,
	}
	if len(body.CertificateMetadata) > 0 {
		cert.CertificateMetadata = datatypes.JSON(body.CertificateMetadata)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&cert).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan sertifikat")
	}
	return helper.JsonCreated(c, "Sertifikat diterbitkan", dto.ToCertificateDTO(cert))
}

// =============================
// 🔍 Verifikasi publik by number
// =============================
func (ctrl *CertificateController) VerifyCertificate(c *fiber.Ctx) error {
	number := c.Params("number")

	var cert model.CertificateModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Student").Preload("Course").
		First(&cert, "certificate_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memverifikasi sertifikat")
	}
	return helper.JsonOK(c, "Sertifikat valid", dto.ToCertificateDTO(cert))
}

// =============================
// 📄 List milik satu student
// =============================
func (ctrl *CertificateController) GetCertificatesByStudent(c *fiber.Ctx) error {
	studentID := c.Params("student_id")

	var rows []model.CertificateModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Course").
		Where("certificate_student_id = ?", studentID).
		Order("certificate_issued_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sertifikat")
	}
	return helper.JsonOK(c, "Daftar sertifikat", dto.ToCertificateDTOs(rows))
}

// =============================
// 🗑️ Revoke
// =============================
func (ctrl *CertificateController) RevokeCertificate(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.CertificateModel{}, "certificate_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencabut sertifikat")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Sertifikat dicabut", fiber.Map{"certificate_id": id})
}
