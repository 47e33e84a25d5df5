package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/features/news/dto"
	"github.com/rodrigospisila/parish-backend/internals/features/news/model"
	CommunityModel "github.com/rodrigospisila/parish-backend/internals/features/organization/communities/model"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
	"github.com/rodrigospisila/parish-backend/internals/hierarchy"
)

type NewsController struct {
	DB       *gorm.DB
	Resolver *hierarchy.Resolver
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{DB: db, Resolver: hierarchy.NewResolver(db)}
}

// POST /news
func (ctrl *NewsController) CreateNews(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var community CommunityModel.CommunityModel
	if err := ctrl.DB.First(&community, "community_id = ?", req.CommunityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Community not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check community")
	}

	ok, err := ctrl.Resolver.CanManageCommunity(p, req.CommunityID)
	if err != nil && !errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot publish news in this community")
	}

	news := req.ToModel()
	if err := ctrl.DB.Create(news).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create news")
	}
	return helper.JsonCreated(c, "News created", news)
}

// GET /news?community_id=&category=
// Urgent items sort first, then newest publication date.
func (ctrl *NewsController) GetNews(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)
	base := ctrl.Resolver.ScopeNews(ctrl.DB.Model(&model.NewsModel{}), p)
	if communityID := c.Query("community_id"); communityID != "" {
		id, err := uuid.Parse(communityID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid community_id filter")
		}
		base = base.Where("news_community_id = ?", id)
	}
	if category := c.Query("category"); category != "" {
		base = base.Where("news_category = ?", category)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count news")
	}

	var items []model.NewsModel
	if err := base.Order("news_is_urgent DESC, news_published_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list news")
	}
	return helper.JsonList(c, "News fetched", items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /news/recent?limit=
func (ctrl *NewsController) GetRecentNews(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 50 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid limit, expected 1-50")
		}
		limit = n
	}

	var items []model.NewsModel
	if err := ctrl.Resolver.ScopeNews(ctrl.DB.Model(&model.NewsModel{}), p).
		Order("news_published_at DESC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list recent news")
	}
	return helper.JsonOK(c, "Recent news fetched", items)
}

// GET /news/urgent
func (ctrl *NewsController) GetUrgentNews(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var items []model.NewsModel
	if err := ctrl.Resolver.ScopeNews(ctrl.DB.Model(&model.NewsModel{}), p).
		Where("news_is_urgent = ?", true).
		Order("news_published_at DESC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list urgent news")
	}
	return helper.JsonOK(c, "Urgent news fetched", items)
}

// GET /news/:id
func (ctrl *NewsController) GetNewsItem(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid news id")
	}

	var news model.NewsModel
	err = ctrl.Resolver.ScopeNews(ctrl.DB.Model(&model.NewsModel{}), p).
		Where("news_id = ?", id).First(&news).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "News not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch news")
	}
	return helper.JsonOK(c, "News fetched", news)
}

// PUT /news/:id
func (ctrl *NewsController) UpdateNews(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid news id")
	}

	var req dto.NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	news, err := ctrl.loadManaged(c, p, id)
	if err != nil {
		return err
	}

	req.ApplyToModel(news)
	if err := ctrl.DB.Save(news).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update news")
	}
	return helper.JsonOK(c, "News updated", news)
}

// DELETE /news/:id
func (ctrl *NewsController) DeleteNews(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid news id")
	}

	if _, err := ctrl.loadManaged(c, p, id); err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&model.NewsModel{}, "news_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete news")
	}
	return helper.JsonDeleted(c, "News deleted")
}

func (ctrl *NewsController) loadManaged(c *fiber.Ctx, p hierarchy.Principal, id uuid.UUID) (*model.NewsModel, error) {
	var news model.NewsModel
	err := ctrl.Resolver.ScopeNews(ctrl.DB.Model(&model.NewsModel{}), p).
		Where("news_id = ?", id).First(&news).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "News not found")
	}
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch news")
	}

	ok, err := ctrl.Resolver.CanManageCommunity(p, news.NewsCommunityID)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "News not found")
	}
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this news")
	}
	return &news, nil
}
