package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/features/organization/communities/dto"
	"github.com/rodrigospisila/parish-backend/internals/features/organization/communities/model"
	ParishModel "github.com/rodrigospisila/parish-backend/internals/features/organization/parishes/model"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
	"github.com/rodrigospisila/parish-backend/internals/hierarchy"
)

type CommunityController struct {
	DB       *gorm.DB
	Resolver *hierarchy.Resolver
}

func NewCommunityController(db *gorm.DB) *CommunityController {
	return &CommunityController{DB: db, Resolver: hierarchy.NewResolver(db)}
}

// POST /communities — parent parish must exist, creator must manage it.
func (ctrl *CommunityController) CreateCommunity(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CommunityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var parish ParishModel.ParishModel
	if err := ctrl.DB.First(&parish, "parish_id = ?", req.CommunityParishID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Parish not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check parish")
	}

	ok, err := ctrl.Resolver.CanManageParish(p, req.CommunityParishID)
	if err != nil && !errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot create communities in this parish")
	}

	community := req.ToModel()
	if err := ctrl.DB.Create(community).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create community")
	}
	return helper.JsonCreated(c, "Community created", community)
}

// GET /communities?parish_id=
func (ctrl *CommunityController) GetCommunities(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)
	base := ctrl.Resolver.ScopeCommunities(ctrl.DB.Model(&model.CommunityModel{}), p)
	if parishID := c.Query("parish_id"); parishID != "" {
		id, err := uuid.Parse(parishID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parish_id filter")
		}
		base = base.Where("community_parish_id = ?", id)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count communities")
	}

	var communities []model.CommunityModel
	if err := base.Order("community_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&communities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list communities")
	}
	return helper.JsonList(c, "Communities fetched", communities, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /communities/:id
func (ctrl *CommunityController) GetCommunity(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid community id")
	}

	var community model.CommunityModel
	err = ctrl.Resolver.ScopeCommunities(ctrl.DB.Model(&model.CommunityModel{}), p).
		Where("community_id = ?", id).First(&community).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Community not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch community")
	}
	return helper.JsonOK(c, "Community fetched", community)
}

// PUT /communities/:id
func (ctrl *CommunityController) UpdateCommunity(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid community id")
	}

	var req dto.CommunityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	ok, err := ctrl.Resolver.CanManageCommunity(p, id)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Community not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this community")
	}

	var community model.CommunityModel
	if err := ctrl.DB.First(&community, "community_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Community not found")
	}
	req.ApplyToModel(&community)
	if err := ctrl.DB.Save(&community).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update community")
	}
	return helper.JsonOK(c, "Community updated", community)
}

// DELETE /communities/:id
func (ctrl *CommunityController) DeleteCommunity(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid community id")
	}

	ok, err := ctrl.Resolver.CanManageCommunity(p, id)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Community not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this community")
	}

	if err := ctrl.DB.Delete(&model.CommunityModel{}, "community_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete community")
	}
	return helper.JsonDeleted(c, "Community deleted")
}
