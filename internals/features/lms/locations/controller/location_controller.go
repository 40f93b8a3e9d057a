package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/lms/locations/dto"
	"coursehub_backend/internals/features/lms/locations/model"
	helper "coursehub_backend/internals/helpers"
)

var validateLocation = validator.New()

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

func (ctrl *LocationController) CreateLocation(c *fiber.Ctx) error {
	var body dto.CreateLocationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLocation.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	loc := model.LocationModel{
		LocationName:     body.LocationName,
		LocationAddress:  body.LocationAddress,
		LocationCity:     body.LocationCity,
		LocationCapacity: body.LocationCapacity,
		LocationIsActive: true,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&loc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan lokasi")
	}
	return helper.JsonCreated(c, "Lokasi dibuat", dto.ToLocationDTO(loc))
}

func (ctrl *LocationController) GetLocations(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.LocationModel{})
	if city := c.Query("city"); city != "" {
		q = q.Where("location_city = ?", city)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung lokasi")
	}

	var rows []model.LocationModel
	if err := q.Order("location_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lokasi")
	}

	out := make([]dto.LocationDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToLocationDTO(r))
	}
	return helper.JsonList(c, "Daftar lokasi", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *LocationController) GetLocationByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var loc model.LocationModel
	err := ctrl.DB.WithContext(c.UserContext()).First(&loc, "location_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lokasi")
	}
	return helper.JsonOK(c, "Detail lokasi", dto.ToLocationDTO(loc))
}

func (ctrl *LocationController) UpdateLocation(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateLocationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLocation.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var loc model.LocationModel
	err := ctrl.DB.WithContext(c.UserContext()).First(&loc, "location_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lokasi")
	}

	if body.LocationName != nil {
		loc.LocationName = *body.LocationName
	}
	if body.LocationAddress != nil {
		loc.LocationAddress = *body.LocationAddress
	}
	if body.LocationCity != nil {
		loc.LocationCity = *body.LocationCity
	}
	if body.LocationCapacity != nil {
		loc.LocationCapacity = *body.LocationCapacity
	}
	if body.LocationIsActive != nil {
		loc.LocationIsActive = *body.LocationIsActive
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&loc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan lokasi")
	}
	return helper.JsonUpdated(c, "Lokasi diperbarui", dto.ToLocationDTO(loc))
}

func (ctrl *LocationController) DeleteLocation(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.LocationModel{}, "location_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus lokasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Lokasi dihapus", fiber.Map{"location_id": id})
}
