package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/features/pastorals/dto"
	"github.com/rodrigospisila/parish-backend/internals/features/pastorals/model"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
)

// GlobalPastoralController manages the shared pastoral catalog. Writes are
// SYSTEM_ADMIN only (route-gated); reads are open to any authenticated user.
type GlobalPastoralController struct {
	DB *gorm.DB
}

func NewGlobalPastoralController(db *gorm.DB) *GlobalPastoralController {
	return &GlobalPastoralController{DB: db}
}

// POST /pastorals/global
func (ctrl *GlobalPastoralController) CreateGlobalPastoral(c *fiber.Ctx) error {
	var req dto.GlobalPastoralRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	pastoral := req.ToModel()
	if err := ctrl.DB.Create(pastoral).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A pastoral with this name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create pastoral")
	}
	return helper.JsonCreated(c, "Global pastoral created", pastoral)
}

// GET /pastorals/global
func (ctrl *GlobalPastoralController) GetGlobalPastorals(c *fiber.Ctx) error {
	var pastorals []model.GlobalPastoralModel
	if err := ctrl.DB.Order("global_pastoral_name ASC").Find(&pastorals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list pastorals")
	}
	return helper.JsonList(c, "Global pastorals fetched", pastorals, nil)
}

// GET /pastorals/global/:id
func (ctrl *GlobalPastoralController) GetGlobalPastoral(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pastoral id")
	}
	var pastoral model.GlobalPastoralModel
	if err := ctrl.DB.First(&pastoral, "global_pastoral_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Global pastoral not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch pastoral")
	}
	return helper.JsonOK(c, "Global pastoral fetched", pastoral)
}

// PUT /pastorals/global/:id
func (ctrl *GlobalPastoralController) UpdateGlobalPastoral(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pastoral id")
	}

	var req dto.GlobalPastoralRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var pastoral model.GlobalPastoralModel
	if err := ctrl.DB.First(&pastoral, "global_pastoral_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Global pastoral not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch pastoral")
	}
	req.ApplyToModel(&pastoral)
	if err := ctrl.DB.Save(&pastoral).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A pastoral with this name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update pastoral")
	}
	return helper.JsonOK(c, "Global pastoral updated", pastoral)
}

// DELETE /pastorals/global/:id
func (ctrl *GlobalPastoralController) DeleteGlobalPastoral(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pastoral id")
	}
	res := ctrl.DB.Delete(&model.GlobalPastoralModel{}, "global_pastoral_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete pastoral")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Global pastoral not found")
	}
	return helper.JsonDeleted(c, "Global pastoral deleted")
}
