package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/constants"
	AuthModel "github.com/rodrigospisila/parish-backend/internals/features/users/auth/model"
	"github.com/rodrigospisila/parish-backend/internals/features/users/users/dto"
	"github.com/rodrigospisila/parish-backend/internals/features/users/users/model"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
	"github.com/rodrigospisila/parish-backend/internals/hierarchy"
)

type UserController struct {
	DB       *gorm.DB
	Resolver *hierarchy.Resolver
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Resolver: hierarchy.NewResolver(db)}
}

// rankGuard enforces the "never an equal or higher role" rule and keeps the
// target inside the caller's scope. SYSTEM_ADMIN bypasses both.
func (ctrl *UserController) rankGuard(c *fiber.Ctx, p hierarchy.Principal, targetRole string, dioceseID, parishID, communityID *uuid.UUID) error {
	if p.Role == constants.RoleSystemAdmin {
		return nil
	}
	if constants.RoleRank(targetRole) >= constants.RoleRank(p.Role) {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot assign a role equal to or higher than your own")
	}

	var (
		ok  bool
		err error
	)
	switch {
	case communityID != nil:
		ok, err = ctrl.Resolver.CanManageCommunity(p, *communityID)
	case parishID != nil:
		ok, err = ctrl.Resolver.CanManageParish(p, *parishID)
	case dioceseID != nil:
		ok, err = ctrl.Resolver.CanManageDiocese(p, *dioceseID)
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage users outside your scope")
	}
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Scope not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage users outside your scope")
	}
	return nil
}

// POST /users
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	if err := ctrl.rankGuard(c, p, req.Role, req.DioceseID, req.ParishID, req.CommunityID); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		Email:       req.Email,
		Password:    string(hashed),
		Name:        req.Name,
		Phone:       req.Phone,
		Role:        req.Role,
		IsActive:    true,
		DioceseID:   req.DioceseID,
		ParishID:    req.ParishID,
		CommunityID: req.CommunityID,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}
	return helper.JsonCreated(c, "User created", user)
}

// GET /users?q=
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)
	base := ctrl.Resolver.ScopeUsers(ctrl.DB.Model(&model.UserModel{}), p)
	if q := c.Query("q"); q != "" {
		base = base.Where("name ILIKE ? OR email ILIKE ?", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := base.Order("name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list users")
	}
	return helper.JsonList(c, "Users fetched", users, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /users/:id
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	// Self lookup bypasses the scope filter.
	if id == p.ID {
		var user model.UserModel
		if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonOK(c, "User fetched", user)
	}

	var user model.UserModel
	err = ctrl.Resolver.ScopeUsers(ctrl.DB.Model(&model.UserModel{}), p).
		Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return helper.JsonOK(c, "User fetched", user)
}

// PUT /users/:id
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var user model.UserModel
	err = ctrl.Resolver.ScopeUsers(ctrl.DB.Model(&model.UserModel{}), p).
		Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	// Both the user's current role and the requested one must sit below the
	// caller's rank.
	if p.Role != constants.RoleSystemAdmin &&
		constants.RoleRank(user.Role) >= constants.RoleRank(p.Role) {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage a user of equal or higher role")
	}
	if err := ctrl.rankGuard(c, p, req.Role, req.DioceseID, req.ParishID, req.CommunityID); err != nil {
		return err
	}

	user.Name = req.Name
	user.Phone = req.Phone
	user.Role = req.Role
	user.DioceseID = req.DioceseID
	user.ParishID = req.ParishID
	user.CommunityID = req.CommunityID
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.JsonOK(c, "User updated", user)
}

// DELETE /users/:id
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.UserModel
	err = ctrl.Resolver.ScopeUsers(ctrl.DB.Model(&model.UserModel{}), p).
		Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	if p.Role != constants.RoleSystemAdmin &&
		constants.RoleRank(user.Role) >= constants.RoleRank(p.Role) {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot delete a user of equal or higher role")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&AuthModel.RefreshTokenModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	return helper.JsonDeleted(c, "User deleted")
}

// PATCH /users/:id/password — self service, or SYSTEM_ADMIN without the
// current password.
func (ctrl *UserController) ChangePassword(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	if id != p.ID && p.Role != constants.RoleSystemAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only change your own password")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if id == p.ID {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Current password is incorrect")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	updates := map[string]any{
		"password":              string(hashed),
		"force_password_change": false,
	}
	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change password")
	}
	return helper.JsonOK(c, "Password changed", nil)
}

// POST /users/:id/reset-password — admin hands out a temporary password and
// the user must change it on next login.
func (ctrl *UserController) ResetPassword(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var user model.UserModel
	err = ctrl.Resolver.ScopeUsers(ctrl.DB.Model(&model.UserModel{}), p).
		Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	if p.Role != constants.RoleSystemAdmin &&
		constants.RoleRank(user.Role) >= constants.RoleRank(p.Role) {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot reset a password of a user with equal or higher role")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.TemporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	updates := map[string]any{
		"password":              string(hashed),
		"force_password_change": true,
	}
	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}
	return helper.JsonOK(c, "Password reset, user must change it on next login", nil)
}
