package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/features/mass_intentions/dto"
	"github.com/rodrigospisila/parish-backend/internals/features/mass_intentions/model"
	CommunityModel "github.com/rodrigospisila/parish-backend/internals/features/organization/communities/model"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
	"github.com/rodrigospisila/parish-backend/internals/hierarchy"
)

type MassIntentionController struct {
	DB       *gorm.DB
	Resolver *hierarchy.Resolver
}

func NewMassIntentionController(db *gorm.DB) *MassIntentionController {
	return &MassIntentionController{DB: db, Resolver: hierarchy.NewResolver(db)}
}

// guardIntention loads the intention through the caller's read scope and
// checks write permission on its community. Out-of-scope rows read as 404.
func (ctrl *MassIntentionController) guardIntention(c *fiber.Ctx, p hierarchy.Principal, id uuid.UUID) (*model.MassIntentionModel, error) {
	var intention model.MassIntentionModel
	err := ctrl.Resolver.ScopeMassIntentions(ctrl.DB.Model(&model.MassIntentionModel{}), p).
		Where("mass_intention_id = ?", id).First(&intention).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Mass intention not found")
	}
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch mass intention")
	}

	ok, err := ctrl.Resolver.CanManageCommunity(p, intention.MassIntentionCommunityID)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Mass intention not found")
	}
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this mass intention")
	}
	return &intention, nil
}

// POST /mass-intentions
func (ctrl *MassIntentionController) CreateMassIntention(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.MassIntentionRequest
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
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot register mass intentions in this community")
	}

	intention := req.ToModel()
	if err := ctrl.DB.Create(intention).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create mass intention")
	}
	return helper.JsonCreated(c, "Mass intention created", intention)
}

// GET /mass-intentions?community_id=&type=&is_paid=
func (ctrl *MassIntentionController) GetMassIntentions(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)
	base := ctrl.Resolver.ScopeMassIntentions(ctrl.DB.Model(&model.MassIntentionModel{}), p)
	if communityID := c.Query("community_id"); communityID != "" {
		id, err := uuid.Parse(communityID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid community_id filter")
		}
		base = base.Where("mass_intention_community_id = ?", id)
	}
	if intentionType := c.Query("type"); intentionType != "" {
		base = base.Where("mass_intention_type = ?", intentionType)
	}
	if isPaid := c.Query("is_paid"); isPaid != "" {
		base = base.Where("mass_intention_is_paid = ?", isPaid == "true")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count mass intentions")
	}

	var intentions []model.MassIntentionModel
	if err := base.Order("mass_intention_requested_date ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&intentions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list mass intentions")
	}
	return helper.JsonList(c, "Mass intentions fetched", intentions, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /mass-intentions/upcoming
func (ctrl *MassIntentionController) GetUpcomingMassIntentions(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var intentions []model.MassIntentionModel
	if err := ctrl.Resolver.ScopeMassIntentions(ctrl.DB.Model(&model.MassIntentionModel{}), p).
		Where("mass_intention_requested_date >= ?", time.Now()).
		Order("mass_intention_requested_date ASC").
		Limit(50).
		Find(&intentions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list upcoming mass intentions")
	}
	return helper.JsonOK(c, "Upcoming mass intentions fetched", intentions)
}

// GET /mass-intentions/pending — unpaid only.
func (ctrl *MassIntentionController) GetPendingMassIntentions(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var intentions []model.MassIntentionModel
	if err := ctrl.Resolver.ScopeMassIntentions(ctrl.DB.Model(&model.MassIntentionModel{}), p).
		Where("mass_intention_is_paid = ?", false).
		Order("mass_intention_requested_date ASC").
		Find(&intentions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list pending mass intentions")
	}
	return helper.JsonOK(c, "Pending mass intentions fetched", intentions)
}

// GET /mass-intentions/date/:date — intentions requested for one calendar day.
func (ctrl *MassIntentionController) GetMassIntentionsByDate(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	day, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	var intentions []model.MassIntentionModel
	if err := ctrl.Resolver.ScopeMassIntentions(ctrl.DB.Model(&model.MassIntentionModel{}), p).
		Where("mass_intention_requested_date >= ? AND mass_intention_requested_date < ?", day, day.AddDate(0, 0, 1)).
		Order("mass_intention_requested_date ASC").
		Find(&intentions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list mass intentions")
	}
	return helper.JsonOK(c, "Mass intentions fetched", intentions)
}

// GET /mass-intentions/stats
func (ctrl *MassIntentionController) GetMassIntentionStats(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	base := ctrl.Resolver.ScopeMassIntentions(ctrl.DB.Model(&model.MassIntentionModel{}), p)

	var total, paid int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if err := base.Session(&gorm.Session{}).Where("mass_intention_is_paid = ?", true).Count(&paid).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	var paidRevenue, pendingRevenue float64
	if err := base.Session(&gorm.Session{}).Where("mass_intention_is_paid = ?", true).
		Select("COALESCE(SUM(mass_intention_amount), 0)").Scan(&paidRevenue).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if err := base.Session(&gorm.Session{}).Where("mass_intention_is_paid = ?", false).
		Select("COALESCE(SUM(mass_intention_amount), 0)").Scan(&pendingRevenue).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	return helper.JsonOK(c, "Mass intention stats", fiber.Map{
		"total":           total,
		"paid":            paid,
		"pending":         total - paid,
		"paid_revenue":    paidRevenue,
		"pending_revenue": pendingRevenue,
	})
}

// GET /mass-intentions/:id
func (ctrl *MassIntentionController) GetMassIntention(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid mass intention id")
	}

	var intention model.MassIntentionModel
	err = ctrl.Resolver.ScopeMassIntentions(ctrl.DB.Model(&model.MassIntentionModel{}), p).
		Where("mass_intention_id = ?", id).First(&intention).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Mass intention not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch mass intention")
	}
	return helper.JsonOK(c, "Mass intention fetched", intention)
}

// PUT /mass-intentions/:id
func (ctrl *MassIntentionController) UpdateMassIntention(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid mass intention id")
	}

	var req dto.MassIntentionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	intention, err := ctrl.guardIntention(c, p, id)
	if err != nil {
		return err
	}

	intention.MassIntentionFor = req.IntentionFor
	intention.MassIntentionType = req.Type
	intention.MassIntentionRequestedDate = req.RequestedDate
	intention.MassIntentionNotes = req.Notes
	intention.MassIntentionAmount = req.Amount
	intention.MassIntentionRequestedBy = req.RequestedBy
	if err := ctrl.DB.Save(intention).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update mass intention")
	}
	return helper.JsonOK(c, "Mass intention updated", intention)
}

// PATCH /mass-intentions/:id/pay
func (ctrl *MassIntentionController) PayMassIntention(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid mass intention id")
	}

	var req dto.MassIntentionPayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	intention, err := ctrl.guardIntention(c, p, id)
	if err != nil {
		return err
	}
	if intention.MassIntentionIsPaid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Mass intention is already paid")
	}

	now := time.Now()
	intention.MassIntentionIsPaid = true
	intention.MassIntentionPaidAt = &now
	intention.MassIntentionPaymentMethod = req.PaymentMethod
	if err := ctrl.DB.Save(intention).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update mass intention")
	}
	return helper.JsonOK(c, "Mass intention paid", intention)
}

// PATCH /mass-intentions/:id/unpay
func (ctrl *MassIntentionController) UnpayMassIntention(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid mass intention id")
	}

	intention, err := ctrl.guardIntention(c, p, id)
	if err != nil {
		return err
	}
	if !intention.MassIntentionIsPaid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Mass intention is not paid")
	}

	intention.MassIntentionIsPaid = false
	intention.MassIntentionPaidAt = nil
	intention.MassIntentionPaymentMethod = ""
	if err := ctrl.DB.Save(intention).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update mass intention")
	}
	return helper.JsonOK(c, "Mass intention payment cleared", intention)
}

// DELETE /mass-intentions/:id
func (ctrl *MassIntentionController) DeleteMassIntention(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid mass intention id")
	}

	if _, err := ctrl.guardIntention(c, p, id); err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&model.MassIntentionModel{}, "mass_intention_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete mass intention")
	}
	return helper.JsonDeleted(c, "Mass intention deleted")
}
