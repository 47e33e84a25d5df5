package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	DioceseModel "github.com/rodrigospisila/parish-backend/internals/features/organization/dioceses/model"
	"github.com/rodrigospisila/parish-backend/internals/features/organization/parishes/dto"
	"github.com/rodrigospisila/parish-backend/internals/features/organization/parishes/model"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
	"github.com/rodrigospisila/parish-backend/internals/hierarchy"
)

type ParishController struct {
	DB       *gorm.DB
	Resolver *hierarchy.Resolver
}

func NewParishController(db *gorm.DB) *ParishController {
	return &ParishController{DB: db, Resolver: hierarchy.NewResolver(db)}
}

// POST /parishes — parent diocese must exist, creator must manage it.
func (ctrl *ParishController) CreateParish(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.ParishRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var diocese DioceseModel.DioceseModel
	if err := ctrl.DB.First(&diocese, "diocese_id = ?", req.ParishDioceseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Diocese not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check diocese")
	}

	ok, err := ctrl.Resolver.CanManageDiocese(p, req.ParishDioceseID)
	if err != nil && !errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot create parishes in this diocese")
	}

	parish := req.ToModel()
	if err := ctrl.DB.Create(parish).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create parish")
	}
	return helper.JsonCreated(c, "Parish created", parish)
}

// GET /parishes?diocese_id=
func (ctrl *ParishController) GetParishes(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)
	base := ctrl.Resolver.ScopeParishes(ctrl.DB.Model(&model.ParishModel{}), p)
	if dioceseID := c.Query("diocese_id"); dioceseID != "" {
		id, err := uuid.Parse(dioceseID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid diocese_id filter")
		}
		base = base.Where("parish_diocese_id = ?", id)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count parishes")
	}

	var parishes []model.ParishModel
	if err := base.Order("parish_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&parishes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list parishes")
	}
	return helper.JsonList(c, "Parishes fetched", parishes, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /parishes/:id
func (ctrl *ParishController) GetParish(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parish id")
	}

	var parish model.ParishModel
	err = ctrl.Resolver.ScopeParishes(ctrl.DB.Model(&model.ParishModel{}), p).
		Where("parish_id = ?", id).First(&parish).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Parish not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch parish")
	}
	return helper.JsonOK(c, "Parish fetched", parish)
}

// PUT /parishes/:id
func (ctrl *ParishController) UpdateParish(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parish id")
	}

	var req dto.ParishRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	ok, err := ctrl.Resolver.CanManageParish(p, id)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Parish not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this parish")
	}

	var parish model.ParishModel
	if err := ctrl.DB.First(&parish, "parish_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Parish not found")
	}
	req.ApplyToModel(&parish)
	if err := ctrl.DB.Save(&parish).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update parish")
	}
	return helper.JsonOK(c, "Parish updated", parish)
}

// DELETE /parishes/:id
func (ctrl *ParishController) DeleteParish(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parish id")
	}

	ok, err := ctrl.Resolver.CanManageParish(p, id)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Parish not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this parish")
	}

	if err := ctrl.DB.Delete(&model.ParishModel{}, "parish_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete parish")
	}
	return helper.JsonDeleted(c, "Parish deleted")
}
