package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/features/organization/dioceses/dto"
	"github.com/rodrigospisila/parish-backend/internals/features/organization/dioceses/model"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
	"github.com/rodrigospisila/parish-backend/internals/hierarchy"
)

type DioceseController struct {
	DB       *gorm.DB
	Resolver *hierarchy.Resolver
}

func NewDioceseController(db *gorm.DB) *DioceseController {
	return &DioceseController{DB: db, Resolver: hierarchy.NewResolver(db)}
}

// POST /dioceses (SYSTEM_ADMIN only, gated at the route)
func (ctrl *DioceseController) CreateDiocese(c *fiber.Ctx) error {
	var req dto.DioceseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	diocese := req.ToModel()
	if err := ctrl.DB.Create(diocese).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create diocese")
	}
	return helper.JsonCreated(c, "Diocese created", diocese)
}

// GET /dioceses
func (ctrl *DioceseController) GetDioceses(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)
	base := ctrl.Resolver.ScopeDioceses(ctrl.DB.Model(&model.DioceseModel{}), p)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count dioceses")
	}

	var dioceses []model.DioceseModel
	if err := base.Order("diocese_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&dioceses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list dioceses")
	}
	return helper.JsonList(c, "Dioceses fetched", dioceses, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /dioceses/:id
func (ctrl *DioceseController) GetDiocese(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid diocese id")
	}

	var diocese model.DioceseModel
	err = ctrl.Resolver.ScopeDioceses(ctrl.DB.Model(&model.DioceseModel{}), p).
		Where("diocese_id = ?", id).First(&diocese).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Diocese not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch diocese")
	}
	return helper.JsonOK(c, "Diocese fetched", diocese)
}

// PUT /dioceses/:id
func (ctrl *DioceseController) UpdateDiocese(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid diocese id")
	}

	var req dto.DioceseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	ok, err := ctrl.Resolver.CanManageDiocese(p, id)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Diocese not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this diocese")
	}

	var diocese model.DioceseModel
	if err := ctrl.DB.First(&diocese, "diocese_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Diocese not found")
	}
	req.ApplyToModel(&diocese)
	if err := ctrl.DB.Save(&diocese).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update diocese")
	}
	return helper.JsonOK(c, "Diocese updated", diocese)
}

// DELETE /dioceses/:id (SYSTEM_ADMIN only, gated at the route)
func (ctrl *DioceseController) DeleteDiocese(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid diocese id")
	}

	res := ctrl.DB.Delete(&model.DioceseModel{}, "diocese_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete diocese")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Diocese not found")
	}
	return helper.JsonDeleted(c, "Diocese deleted")
}
