package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/features/members/dto"
	"github.com/rodrigospisila/parish-backend/internals/features/members/model"
	CommunityModel "github.com/rodrigospisila/parish-backend/internals/features/organization/communities/model"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
	"github.com/rodrigospisila/parish-backend/internals/hierarchy"
)

type MemberController struct {
	DB       *gorm.DB
	Resolver *hierarchy.Resolver
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db, Resolver: hierarchy.NewResolver(db)}
}

func (ctrl *MemberController) checkUnique(cpf, email *string, excludeID *uuid.UUID) (string, error) {
	if cpf != nil && *cpf != "" {
		q := ctrl.DB.Model(&model.MemberModel{}).Where("member_cpf = ?", *cpf)
		if excludeID != nil {
			q = q.Where("member_id <> ?", *excludeID)
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count > 0 {
			return "CPF already registered", nil
		}
	}
	if email != nil && *email != "" {
		q := ctrl.DB.Model(&model.MemberModel{}).Where("member_email = ?", *email)
		if excludeID != nil {
			q = q.Where("member_id <> ?", *excludeID)
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count > 0 {
			return "Email already registered", nil
		}
	}
	return "", nil
}

// POST /members
func (ctrl *MemberController) CreateMember(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var community CommunityModel.CommunityModel
	if err := ctrl.DB.First(&community, "community_id = ?", req.MemberCommunityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Community not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check community")
	}

	ok, err := ctrl.Resolver.CanManageCommunity(p, req.MemberCommunityID)
	if err != nil && !errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage members of this community")
	}

	if msg, err := ctrl.checkUnique(req.MemberCPF, req.MemberEmail, nil); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check uniqueness")
	} else if msg != "" {
		return helper.JsonError(c, fiber.StatusConflict, msg)
	}

	member, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.DB.Create(member).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "CPF or email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create member")
	}
	return helper.JsonCreated(c, "Member created", member)
}

// GET /members?community_id=&status=
func (ctrl *MemberController) GetMembers(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)
	base := ctrl.Resolver.ScopeMembers(ctrl.DB.Model(&model.MemberModel{}), p)
	if communityID := c.Query("community_id"); communityID != "" {
		id, err := uuid.Parse(communityID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid community_id filter")
		}
		base = base.Where("members.member_community_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		base = base.Where("members.member_status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count members")
	}

	var members []model.MemberModel
	if err := base.Order("members.member_full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list members")
	}
	return helper.JsonList(c, "Members fetched", members, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /members/search?name=
func (ctrl *MemberController) SearchMembers(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	name := c.Query("name")
	if name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query parameter 'name' is required")
	}

	var members []model.MemberModel
	err = ctrl.Resolver.ScopeMembers(ctrl.DB.Model(&model.MemberModel{}), p).
		Where("members.member_full_name ILIKE ?", "%"+name+"%").
		Order("members.member_full_name ASC").
		Limit(50).
		Find(&members).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to search members")
	}
	return helper.JsonList(c, "Members found", members, nil)
}

// GET /members/:id
func (ctrl *MemberController) GetMember(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var member model.MemberModel
	err = ctrl.Resolver.ScopeMembers(ctrl.DB.Model(&model.MemberModel{}), p).
		Where("members.member_id = ?", id).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch member")
	}
	return helper.JsonOK(c, "Member fetched", member)
}

// PUT /members/:id
func (ctrl *MemberController) UpdateMember(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var req dto.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	ok, err := ctrl.Resolver.CanManageMember(p, id)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this member")
	}

	if msg, err := ctrl.checkUnique(req.MemberCPF, req.MemberEmail, &id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check uniqueness")
	} else if msg != "" {
		return helper.JsonError(c, fiber.StatusConflict, msg)
	}

	var member model.MemberModel
	if err := ctrl.DB.First(&member, "member_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
	}
	if err := req.ApplyToModel(&member); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.DB.Save(&member).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "CPF or email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update member")
	}
	return helper.JsonOK(c, "Member updated", member)
}

// DELETE /members/:id
func (ctrl *MemberController) DeleteMember(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	ok, err := ctrl.Resolver.CanManageMember(p, id)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this member")
	}

	if err := ctrl.DB.Delete(&model.MemberModel{}, "member_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete member")
	}
	return helper.JsonDeleted(c, "Member deleted")
}

// GET /members/:id/export — LGPD data portability: the full record as held.
func (ctrl *MemberController) ExportMember(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var member model.MemberModel
	if err := ctrl.DB.First(&member, "member_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch member")
	}

	// Members may always export their own record.
	selfOwned := member.MemberUserID != nil && *member.MemberUserID == p.ID
	if !selfOwned {
		ok, err := ctrl.Resolver.CanManageMember(p, id)
		if err != nil && !errors.Is(err, hierarchy.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusForbidden, "You cannot export this member's data")
		}
	}

	return helper.JsonOK(c, "Member data exported", fiber.Map{
		"exported_at": time.Now().UTC(),
		"member":      member,
	})
}

// POST /members/:id/anonymize — LGPD erasure: blanks PII in place so
// sacramental links survive while the person becomes unidentifiable.
func (ctrl *MemberController) AnonymizeMember(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	ok, err := ctrl.Resolver.CanManageMember(p, id)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this member")
	}

	var member model.MemberModel
	if err := ctrl.DB.First(&member, "member_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
	}
	if !member.MemberConsentGiven {
		return helper.JsonError(c, fiber.StatusBadRequest, "Member has no recorded consent to process")
	}

	updates := map[string]any{
		"member_full_name":   "Anonymized member",
		"member_birth_date":  nil,
		"member_cpf":         nil,
		"member_rg":          "",
		"member_photo_url":   "",
		"member_phone":       "",
		"member_email":       nil,
		"member_address":     "",
		"member_city":        "",
		"member_state":       "",
		"member_zip_code":    "",
		"member_father_name": "",
		"member_mother_name": "",
		"member_occupation":  "",
		"member_status":      model.MemberStatusDeceased,
		"member_user_id":     nil,
	}
	if err := ctrl.DB.Model(&member).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to anonymize member")
	}
	return helper.JsonOK(c, "Member anonymized", nil)
}

// PATCH /members/:id/consent
func (ctrl *MemberController) UpdateConsent(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var req dto.ConsentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	ok, err := ctrl.Resolver.CanManageMember(p, id)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this member")
	}

	updates := map[string]any{"member_consent_given": req.ConsentGiven}
	if req.ConsentGiven {
		updates["member_consent_date"] = time.Now()
	} else {
		updates["member_consent_date"] = nil
	}
	if err := ctrl.DB.Model(&model.MemberModel{}).
		Where("member_id = ?", id).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update consent")
	}
	return helper.JsonOK(c, "Consent updated", nil)
}
