package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/configs"
	"github.com/rodrigospisila/parish-backend/internals/constants"
	MemberModel "github.com/rodrigospisila/parish-backend/internals/features/members/model"
	CommunityModel "github.com/rodrigospisila/parish-backend/internals/features/organization/communities/model"
	"github.com/rodrigospisila/parish-backend/internals/features/users/auth/dto"
	AuthModel "github.com/rodrigospisila/parish-backend/internals/features/users/auth/model"
	"github.com/rodrigospisila/parish-backend/internals/features/users/auth/service"
	UserModel "github.com/rodrigospisila/parish-backend/internals/features/users/users/model"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /auth/register
// Creates the user and, when a community id is sent, the member record in a
// single transaction.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var existing UserModel.UserModel
	if err := ctrl.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}

	if req.CommunityID != nil {
		var community CommunityModel.CommunityModel
		if err := ctrl.DB.First(&community, "community_id = ?", *req.CommunityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Community not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check community")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := UserModel.UserModel{
		Email:       req.Email,
		Password:    string(hashed),
		Name:        req.Name,
		Phone:       req.Phone,
		Role:        constants.RoleFaithful,
		IsActive:    true,
		CommunityID: req.CommunityID,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if req.CommunityID == nil {
			return nil
		}
		email := req.Email
		member := MemberModel.MemberModel{
			MemberCommunityID: *req.CommunityID,
			MemberFullName:    req.Name,
			MemberPhone:       req.Phone,
			MemberEmail:       &email,
			MemberStatus:      MemberModel.MemberStatusActive,
			MemberUserID:      &user.ID,
		}
		if req.BirthDate != nil {
			if bd, err := time.Parse("2006-01-02", *req.BirthDate); err == nil {
				member.MemberBirthDate = &bd
			}
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register")
	}

	pair, err := service.IssueTokenPair(ctrl.DB, &user)
	if err != nil {
		configs.Log.WithError(err).Error("token issuance failed after register")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.JsonCreated(c, "Registered", fiber.Map{
		"user":   user,
		"tokens": pair,
	})
}

// POST /auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var user UserModel.UserModel
	if err := ctrl.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	now := time.Now()
	user.LastLogin = &now
	if err := ctrl.DB.Model(&user).Update("last_login", now).Error; err != nil {
		configs.Log.WithError(err).Warn("failed to stamp last_login")
	}

	pair, err := service.IssueTokenPair(ctrl.DB, &user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.JsonOK(c, "Logged in", fiber.Map{
		"user":   user,
		"tokens": pair,
	})
}

// POST /auth/refresh
// The presented token must still exist as a row; redemption deletes it, so a
// replay of the same token fails even if the signature is valid.
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	userID, err := service.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	var row AuthModel.RefreshTokenModel
	if err := ctrl.DB.Where("token = ?", req.RefreshToken).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token already used or revoked")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check refresh token")
	}

	// One-shot: burn the row before anything else.
	if err := ctrl.DB.Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to rotate refresh token")
	}

	if time.Now().After(row.ExpiresAt) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token expired")
	}
	if row.UserID != userID {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	var user UserModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	pair, err := service.IssueTokenPair(ctrl.DB, &user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	return helper.JsonOK(c, "Token refreshed", pair)
}

// POST /auth/logout — revokes every refresh token the user holds.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if err := ctrl.DB.Where("user_id = ?", userID).
		Delete(&AuthModel.RefreshTokenModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to logout")
	}
	return helper.JsonOK(c, "Logged out", nil)
}

// GET /auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var user UserModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "Current user", user)
}
