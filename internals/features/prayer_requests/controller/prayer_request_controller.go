package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	MemberModel "github.com/rodrigospisila/parish-backend/internals/features/members/model"
	CommunityModel "github.com/rodrigospisila/parish-backend/internals/features/organization/communities/model"
	"github.com/rodrigospisila/parish-backend/internals/features/prayer_requests/dto"
	"github.com/rodrigospisila/parish-backend/internals/features/prayer_requests/model"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
	"github.com/rodrigospisila/parish-backend/internals/hierarchy"
)

type PrayerRequestController struct {
	DB       *gorm.DB
	Resolver *hierarchy.Resolver
}

func NewPrayerRequestController(db *gorm.DB) *PrayerRequestController {
	return &PrayerRequestController{DB: db, Resolver: hierarchy.NewResolver(db)}
}

// POST /prayer-requests — any authenticated faithful may submit; the
// request lands as PENDING until a coordinator moderates it.
func (ctrl *PrayerRequestController) CreatePrayerRequest(c *fiber.Ctx) error {
	if _, err := helper.CurrentPrincipal(c); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.PrayerRequestRequest
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
	if req.MemberID != nil {
		var member MemberModel.MemberModel
		if err := ctrl.DB.First(&member, "member_id = ?", *req.MemberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check member")
		}
	}

	request := req.ToModel()
	if err := ctrl.DB.Create(request).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create prayer request")
	}
	return helper.JsonCreated(c, "Prayer request created", request)
}

// GET /prayer-requests?community_id=&category=&status=
func (ctrl *PrayerRequestController) GetPrayerRequests(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)
	base := ctrl.Resolver.ScopePrayerRequests(ctrl.DB.Model(&model.PrayerRequestModel{}), p)
	if communityID := c.Query("community_id"); communityID != "" {
		id, err := uuid.Parse(communityID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid community_id filter")
		}
		base = base.Where("prayer_request_community_id = ?", id)
	}
	if category := c.Query("category"); category != "" {
		base = base.Where("prayer_request_category = ?", category)
	}
	if status := c.Query("status"); status != "" {
		base = base.Where("prayer_request_status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count prayer requests")
	}

	var requests []model.PrayerRequestModel
	if err := base.Order("prayer_request_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&requests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list prayer requests")
	}
	return helper.JsonList(c, "Prayer requests fetched", requests, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /prayer-requests/approved — community feed in the public shape.
func (ctrl *PrayerRequestController) GetApprovedPrayerRequests(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var requests []model.PrayerRequestModel
	if err := ctrl.Resolver.ScopePrayerRequests(ctrl.DB.Model(&model.PrayerRequestModel{}), p).
		Where("prayer_request_status = ?", model.PrayerStatusApproved).
		Order("prayer_request_created_at DESC").
		Find(&requests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list approved prayer requests")
	}

	public := make([]dto.PublicPrayerRequest, 0, len(requests))
	for i := range requests {
		public = append(public, dto.ToPublic(&requests[i]))
	}
	return helper.JsonOK(c, "Approved prayer requests fetched", public)
}

// GET /prayer-requests/pending — moderation queue.
func (ctrl *PrayerRequestController) GetPendingPrayerRequests(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var requests []model.PrayerRequestModel
	if err := ctrl.Resolver.ScopePrayerRequests(ctrl.DB.Model(&model.PrayerRequestModel{}), p).
		Where("prayer_request_status = ?", model.PrayerStatusPending).
		Order("prayer_request_created_at ASC").
		Find(&requests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list pending prayer requests")
	}
	return helper.JsonOK(c, "Pending prayer requests fetched", requests)
}

// GET /prayer-requests/stats
func (ctrl *PrayerRequestController) GetPrayerRequestStats(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	base := ctrl.Resolver.ScopePrayerRequests(ctrl.DB.Model(&model.PrayerRequestModel{}), p)

	var total, pending, approved, rejected int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if err := base.Session(&gorm.Session{}).Where("prayer_request_status = ?", model.PrayerStatusPending).Count(&pending).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if err := base.Session(&gorm.Session{}).Where("prayer_request_status = ?", model.PrayerStatusApproved).Count(&approved).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if err := base.Session(&gorm.Session{}).Where("prayer_request_status = ?", model.PrayerStatusRejected).Count(&rejected).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	var totalPrayers int64
	if err := base.Session(&gorm.Session{}).
		Select("COALESCE(SUM(prayer_request_prayer_count), 0)").Scan(&totalPrayers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	return helper.JsonOK(c, "Prayer request stats", fiber.Map{
		"total":         total,
		"pending":       pending,
		"approved":      approved,
		"rejected":      rejected,
		"total_prayers": totalPrayers,
	})
}

// GET /prayer-requests/:id
func (ctrl *PrayerRequestController) GetPrayerRequest(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid prayer request id")
	}

	var request model.PrayerRequestModel
	err = ctrl.Resolver.ScopePrayerRequests(ctrl.DB.Model(&model.PrayerRequestModel{}), p).
		Where("prayer_request_id = ?", id).First(&request).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Prayer request not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch prayer request")
	}
	return helper.JsonOK(c, "Prayer request fetched", request)
}

// PUT /prayer-requests/:id
func (ctrl *PrayerRequestController) UpdatePrayerRequest(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid prayer request id")
	}

	var req dto.PrayerRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	request, err := ctrl.loadManaged(c, p, id)
	if err != nil {
		return err
	}

	request.PrayerRequestTitle = req.Title
	request.PrayerRequestDescription = req.Description
	request.PrayerRequestCategory = req.Category
	request.PrayerRequestIsAnonymous = req.IsAnonymous
	if err := ctrl.DB.Save(request).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update prayer request")
	}
	return helper.JsonOK(c, "Prayer request updated", request)
}

// PATCH /prayer-requests/:id/approve
func (ctrl *PrayerRequestController) ApprovePrayerRequest(c *fiber.Ctx) error {
	return ctrl.moderate(c, model.PrayerStatusApproved, "Prayer request is already approved", "Prayer request approved")
}

// PATCH /prayer-requests/:id/reject
func (ctrl *PrayerRequestController) RejectPrayerRequest(c *fiber.Ctx) error {
	return ctrl.moderate(c, model.PrayerStatusRejected, "Prayer request is already rejected", "Prayer request rejected")
}

func (ctrl *PrayerRequestController) moderate(c *fiber.Ctx, status, repeatMsg, okMsg string) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid prayer request id")
	}

	request, err := ctrl.loadManaged(c, p, id)
	if err != nil {
		return err
	}
	if request.PrayerRequestStatus == status {
		return helper.JsonError(c, fiber.StatusBadRequest, repeatMsg)
	}

	request.PrayerRequestStatus = status
	if err := ctrl.DB.Save(request).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update prayer request")
	}
	return helper.JsonOK(c, okMsg, request)
}

// POST /prayer-requests/:id/pray — only approved requests accumulate prayers.
func (ctrl *PrayerRequestController) PrayForRequest(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid prayer request id")
	}

	var request model.PrayerRequestModel
	err = ctrl.Resolver.ScopePrayerRequests(ctrl.DB.Model(&model.PrayerRequestModel{}), p).
		Where("prayer_request_id = ?", id).First(&request).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Prayer request not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch prayer request")
	}
	if request.PrayerRequestStatus != model.PrayerStatusApproved {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only approved prayer requests can receive prayers")
	}

	if err := ctrl.DB.Model(&model.PrayerRequestModel{}).
		Where("prayer_request_id = ?", id).
		UpdateColumn("prayer_request_prayer_count", gorm.Expr("prayer_request_prayer_count + 1")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register prayer")
	}
	request.PrayerRequestPrayerCount++
	return helper.JsonOK(c, "Prayer registered", request)
}

// DELETE /prayer-requests/:id
func (ctrl *PrayerRequestController) DeletePrayerRequest(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid prayer request id")
	}

	if _, err := ctrl.loadManaged(c, p, id); err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&model.PrayerRequestModel{}, "prayer_request_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete prayer request")
	}
	return helper.JsonDeleted(c, "Prayer request deleted")
}

func (ctrl *PrayerRequestController) loadManaged(c *fiber.Ctx, p hierarchy.Principal, id uuid.UUID) (*model.PrayerRequestModel, error) {
	var request model.PrayerRequestModel
	err := ctrl.Resolver.ScopePrayerRequests(ctrl.DB.Model(&model.PrayerRequestModel{}), p).
		Where("prayer_request_id = ?", id).First(&request).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Prayer request not found")
	}
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch prayer request")
	}

	ok, err := ctrl.Resolver.CanManageCommunity(p, request.PrayerRequestCommunityID)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Prayer request not found")
	}
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this prayer request")
	}
	return &request, nil
}
