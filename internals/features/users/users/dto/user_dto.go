package dto

import (
	"github.com/google/uuid"
)

type UserCreateRequest struct {
	Email       string     `json:"email" validate:"required,email"`
	Password    string     `json:"password" validate:"required,min=6"`
	Name        string     `json:"name" validate:"required,min=3,max=150"`
	Phone       string     `json:"phone"`
	Role        string     `json:"role" validate:"required,oneof=SYSTEM_ADMIN DIOCESAN_ADMIN PARISH_ADMIN COMMUNITY_COORDINATOR PASTORAL_COORDINATOR VOLUNTEER FAITHFUL"`
	DioceseID   *uuid.UUID `json:"diocese_id,omitempty"`
	ParishID    *uuid.UUID `json:"parish_id,omitempty"`
	CommunityID *uuid.UUID `json:"community_id,omitempty"`
}

type UserUpdateRequest struct {
	Name        string     `json:"name" validate:"required,min=3,max=150"`
	Phone       string     `json:"phone"`
	Role        string     `json:"role" validate:"required,oneof=SYSTEM_ADMIN DIOCESAN_ADMIN PARISH_ADMIN COMMUNITY_COORDINATOR PASTORAL_COORDINATOR VOLUNTEER FAITHFUL"`
	IsActive    *bool      `json:"is_active,omitempty"`
	DioceseID   *uuid.UUID `json:"diocese_id,omitempty"`
	ParishID    *uuid.UUID `json:"parish_id,omitempty"`
	CommunityID *uuid.UUID `json:"community_id,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type ResetPasswordRequest struct {
	TemporaryPassword string `json:"temporary_password" validate:"required,min=6"`
}
