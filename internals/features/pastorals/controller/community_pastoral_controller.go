package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	MemberModel "github.com/rodrigospisila/parish-backend/internals/features/members/model"
	CommunityModel "github.com/rodrigospisila/parish-backend/internals/features/organization/communities/model"
	"github.com/rodrigospisila/parish-backend/internals/features/pastorals/dto"
	"github.com/rodrigospisila/parish-backend/internals/features/pastorals/model"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
	"github.com/rodrigospisila/parish-backend/internals/hierarchy"
)

type CommunityPastoralController struct {
	DB       *gorm.DB
	Resolver *hierarchy.Resolver
}

func NewCommunityPastoralController(db *gorm.DB) *CommunityPastoralController {
	return &CommunityPastoralController{DB: db, Resolver: hierarchy.NewResolver(db)}
}

func (ctrl *CommunityPastoralController) guardPastoral(c *fiber.Ctx, p hierarchy.Principal, pastoralID uuid.UUID) error {
	ok, err := ctrl.Resolver.CanManageCommunityPastoral(p, pastoralID)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Community pastoral not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this pastoral")
	}
	return nil
}

// POST /pastorals
func (ctrl *CommunityPastoralController) CreateCommunityPastoral(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CommunityPastoralRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var global model.GlobalPastoralModel
	if err := ctrl.DB.First(&global, "global_pastoral_id = ?", req.CommunityPastoralGlobalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Global pastoral not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check global pastoral")
	}
	var community CommunityModel.CommunityModel
	if err := ctrl.DB.First(&community, "community_id = ?", req.CommunityPastoralCommunityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Community not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check community")
	}

	ok, err := ctrl.Resolver.CanManageCommunity(p, req.CommunityPastoralCommunityID)
	if err != nil && !errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage pastorals of this community")
	}

	pastoral := req.ToModel()
	if err := ctrl.DB.Create(pastoral).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create community pastoral")
	}
	return helper.JsonCreated(c, "Community pastoral created", pastoral)
}

// GET /pastorals?community_id=
func (ctrl *CommunityPastoralController) GetCommunityPastorals(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	base := ctrl.Resolver.ScopeCommunityPastorals(ctrl.DB.Model(&model.CommunityPastoralModel{}), p)
	if communityID := c.Query("community_id"); communityID != "" {
		id, err := uuid.Parse(communityID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid community_id filter")
		}
		base = base.Where("community_pastorals.community_pastoral_community_id = ?", id)
	}

	var pastorals []model.CommunityPastoralModel
	if err := base.Order("community_pastorals.community_pastoral_created_at ASC").Find(&pastorals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list community pastorals")
	}
	return helper.JsonList(c, "Community pastorals fetched", pastorals, nil)
}

// GET /pastorals/:id
func (ctrl *CommunityPastoralController) GetCommunityPastoral(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pastoral id")
	}

	var pastoral model.CommunityPastoralModel
	err = ctrl.Resolver.ScopeCommunityPastorals(ctrl.DB.Model(&model.CommunityPastoralModel{}), p).
		Where("community_pastorals.community_pastoral_id = ?", id).First(&pastoral).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Community pastoral not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch community pastoral")
	}
	return helper.JsonOK(c, "Community pastoral fetched", pastoral)
}

// PUT /pastorals/:id
func (ctrl *CommunityPastoralController) UpdateCommunityPastoral(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pastoral id")
	}

	var req dto.CommunityPastoralRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	if err := ctrl.guardPastoral(c, p, id); err != nil {
		return err
	}

	var pastoral model.CommunityPastoralModel
	if err := ctrl.DB.First(&pastoral, "community_pastoral_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Community pastoral not found")
	}
	pastoral.CommunityPastoralDescription = req.CommunityPastoralDescription
	pastoral.CommunityPastoralMission = req.CommunityPastoralMission
	pastoral.CommunityPastoralPhotoURL = req.CommunityPastoralPhotoURL
	pastoral.CommunityPastoralNotes = req.CommunityPastoralNotes
	pastoral.CommunityPastoralFoundedAt = req.CommunityPastoralFoundedAt
	if req.CommunityPastoralStatus != "" {
		pastoral.CommunityPastoralStatus = req.CommunityPastoralStatus
	}
	if err := ctrl.DB.Save(&pastoral).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update community pastoral")
	}
	return helper.JsonOK(c, "Community pastoral updated", pastoral)
}

// DELETE /pastorals/:id
func (ctrl *CommunityPastoralController) DeleteCommunityPastoral(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pastoral id")
	}

	if err := ctrl.guardPastoral(c, p, id); err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pastoral_member_community_pastoral_id = ?", id).
			Delete(&model.PastoralMemberModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pastoral_group_pastoral_id = ?", id).
			Delete(&model.PastoralGroupModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.CommunityPastoralModel{}, "community_pastoral_id = ?", id).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete community pastoral")
	}
	return helper.JsonDeleted(c, "Community pastoral deleted")
}

/* ===============================
   Pastoral members
================================= */

// POST /pastorals/:id/members
func (ctrl *CommunityPastoralController) AddPastoralMember(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	pastoralID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pastoral id")
	}

	var req dto.PastoralMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	if err := ctrl.guardPastoral(c, p, pastoralID); err != nil {
		return err
	}

	var member MemberModel.MemberModel
	if err := ctrl.DB.First(&member, "member_id = ?", req.PastoralMemberMemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check member")
	}

	var count int64
	if err := ctrl.DB.Model(&model.PastoralMemberModel{}).
		Where("pastoral_member_community_pastoral_id = ? AND pastoral_member_member_id = ?", pastoralID, req.PastoralMemberMemberID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check membership")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Member already belongs to this pastoral")
	}

	role := req.PastoralMemberRole
	if role == "" {
		role = "MEMBER"
	}
	membership := model.PastoralMemberModel{
		PastoralMemberCommunityPastoralID: pastoralID,
		PastoralMemberMemberID:            req.PastoralMemberMemberID,
		PastoralMemberGroupID:             req.PastoralMemberGroupID,
		PastoralMemberRole:                role,
		PastoralMemberIsActive:            true,
	}
	if err := ctrl.DB.Create(&membership).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Member already belongs to this pastoral")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add pastoral member")
	}
	return helper.JsonCreated(c, "Pastoral member added", membership)
}

// GET /pastorals/:id/members
func (ctrl *CommunityPastoralController) GetPastoralMembers(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	pastoralID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pastoral id")
	}

	var pastoral model.CommunityPastoralModel
	err = ctrl.Resolver.ScopeCommunityPastorals(ctrl.DB.Model(&model.CommunityPastoralModel{}), p).
		Where("community_pastorals.community_pastoral_id = ?", pastoralID).First(&pastoral).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Community pastoral not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch community pastoral")
	}

	var memberships []model.PastoralMemberModel
	if err := ctrl.DB.Where("pastoral_member_community_pastoral_id = ?", pastoralID).
		Order("pastoral_member_joined_at ASC").Find(&memberships).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list pastoral members")
	}
	return helper.JsonList(c, "Pastoral members fetched", memberships, nil)
}

// GET /pastorals/:id/coordinators
func (ctrl *CommunityPastoralController) GetPastoralCoordinators(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	pastoralID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pastoral id")
	}

	var pastoral model.CommunityPastoralModel
	err = ctrl.Resolver.ScopeCommunityPastorals(ctrl.DB.Model(&model.CommunityPastoralModel{}), p).
		Where("community_pastorals.community_pastoral_id = ?", pastoralID).First(&pastoral).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Community pastoral not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch community pastoral")
	}

	var coordinators []model.PastoralMemberModel
	if err := ctrl.DB.
		Where("pastoral_member_community_pastoral_id = ? AND pastoral_member_role IN ? AND pastoral_member_is_active = ?",
			pastoralID, []string{"COORDINATOR", "VICE_COORDINATOR"}, true).
		Find(&coordinators).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list coordinators")
	}
	return helper.JsonList(c, "Pastoral coordinators fetched", coordinators, nil)
}

// PUT /pastorals/:id/members/:memberId
func (ctrl *CommunityPastoralController) UpdatePastoralMember(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	pastoralID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pastoral id")
	}
	membershipID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid membership id")
	}

	var req dto.PastoralMemberUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	if err := ctrl.guardPastoral(c, p, pastoralID); err != nil {
		return err
	}

	var membership model.PastoralMemberModel
	if err := ctrl.DB.
		Where("pastoral_member_id = ? AND pastoral_member_community_pastoral_id = ?", membershipID, pastoralID).
		First(&membership).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pastoral membership not found")
	}

	if req.PastoralMemberRole != "" {
		membership.PastoralMemberRole = req.PastoralMemberRole
	}
	membership.PastoralMemberGroupID = req.PastoralMemberGroupID
	if req.PastoralMemberIsActive != nil {
		membership.PastoralMemberIsActive = *req.PastoralMemberIsActive
	}
	if err := ctrl.DB.Save(&membership).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update pastoral member")
	}
	return helper.JsonOK(c, "Pastoral member updated", membership)
}

// DELETE /pastorals/:id/members/:memberId
func (ctrl *CommunityPastoralController) RemovePastoralMember(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	pastoralID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pastoral id")
	}
	membershipID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid membership id")
	}

	if err := ctrl.guardPastoral(c, p, pastoralID); err != nil {
		return err
	}

	res := ctrl.DB.
		Where("pastoral_member_id = ? AND pastoral_member_community_pastoral_id = ?", membershipID, pastoralID).
		Delete(&model.PastoralMemberModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove pastoral member")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pastoral membership not found")
	}
	return helper.JsonDeleted(c, "Pastoral member removed")
}

/* ===============================
   Pastoral groups
================================= */

// POST /pastorals/groups
func (ctrl *CommunityPastoralController) CreatePastoralGroup(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.PastoralGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	if err := ctrl.guardPastoral(c, p, req.PastoralGroupPastoralID); err != nil {
		return err
	}

	if req.PastoralGroupParentID != nil {
		var parent model.PastoralGroupModel
		if err := ctrl.DB.
			Where("pastoral_group_id = ? AND pastoral_group_pastoral_id = ?", *req.PastoralGroupParentID, req.PastoralGroupPastoralID).
			First(&parent).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Parent group not found in this pastoral")
		}
	}

	status := req.PastoralGroupStatus
	if status == "" {
		status = "ACTIVE"
	}
	group := model.PastoralGroupModel{
		PastoralGroupPastoralID:  req.PastoralGroupPastoralID,
		PastoralGroupParentID:    req.PastoralGroupParentID,
		PastoralGroupName:        req.PastoralGroupName,
		PastoralGroupDescription: req.PastoralGroupDescription,
		PastoralGroupStatus:      status,
	}
	if err := ctrl.DB.Create(&group).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create pastoral group")
	}
	return helper.JsonCreated(c, "Pastoral group created", group)
}

// GET /pastorals/:id/groups
func (ctrl *CommunityPastoralController) GetPastoralGroups(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	pastoralID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid pastoral id")
	}

	var pastoral model.CommunityPastoralModel
	err = ctrl.Resolver.ScopeCommunityPastorals(ctrl.DB.Model(&model.CommunityPastoralModel{}), p).
		Where("community_pastorals.community_pastoral_id = ?", pastoralID).First(&pastoral).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Community pastoral not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch community pastoral")
	}

	var groups []model.PastoralGroupModel
	if err := ctrl.DB.Where("pastoral_group_pastoral_id = ?", pastoralID).
		Order("pastoral_group_name ASC").Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list pastoral groups")
	}
	return helper.JsonList(c, "Pastoral groups fetched", groups, nil)
}

// DELETE /pastorals/groups/:groupId
func (ctrl *CommunityPastoralController) DeletePastoralGroup(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var group model.PastoralGroupModel
	if err := ctrl.DB.First(&group, "pastoral_group_id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pastoral group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch pastoral group")
	}
	if err := ctrl.guardPastoral(c, p, group.PastoralGroupPastoralID); err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.PastoralMemberModel{}).
			Where("pastoral_member_group_id = ?", groupID).
			Update("pastoral_member_group_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.PastoralGroupModel{}).
			Where("pastoral_group_parent_id = ?", groupID).
			Update("pastoral_group_parent_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PastoralGroupModel{}, "pastoral_group_id = ?", groupID).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete pastoral group")
	}
	return helper.JsonDeleted(c, "Pastoral group deleted")
}
