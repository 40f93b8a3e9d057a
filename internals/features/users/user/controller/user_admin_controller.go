package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/constants"
	"coursehub_backend/internals/features/users/user/dto"
	"coursehub_backend/internals/features/users/user/model"
	helper "coursehub_backend/internals/helpers"
)

type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

func requireAdmin(c *fiber.Ctx) error {
	if helper.GetRoleFromToken(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya admin")
	}
	return nil
}

// =============================
// 📄 List users (admin)
// =============================
func (ctrl *UserAdminController) GetUsers(c *fiber.Ctx) error {
	if err := requireAdmin(c); err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.UserModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("user_email ILIKE ? OR user_first_name ILIKE ? OR user_last_name ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var rows []model.UserModel
	if err := q.Order("user_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	out := make([]dto.UserDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToUserDTO(r))
	}
	return helper.JsonList(c, "Daftar user", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// 🔄 Ganti role (admin)
// =============================
func (ctrl *UserAdminController) UpdateUserRole(c *fiber.Ctx) error {
	if err := requireAdmin(c); err != nil {
		return err
	}

	id := c.Params("id")

	var body struct {
		UserRole string `json:"user_role"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !constants.AllowedRoles[body.UserRole] {
		return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal")
	}

	var user model.UserModel
	err := ctrl.DB.WithContext(c.UserContext()).First(&user, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	user.UserRole = body.UserRole
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan user")
	}
	return helper.JsonUpdated(c, "Role diperbarui", dto.ToUserDTO(user))
}

// =============================
// 🚫 Aktif/nonaktifkan user (admin)
// =============================
func (ctrl *UserAdminController) SetUserActive(c *fiber.Ctx) error {
	if err := requireAdmin(c); err != nil {
		return err
	}

	id := c.Params("id")

	var body struct {
		UserIsActive bool `json:"user_is_active"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var user model.UserModel
	err := ctrl.DB.WithContext(c.UserContext()).First(&user, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	user.UserIsActive = body.UserIsActive
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan user")
	}
	return helper.JsonUpdated(c, "Status user diperbarui", dto.ToUserDTO(user))
}
