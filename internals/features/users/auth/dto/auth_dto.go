package dto

import (
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email       string     `json:"email" validate:"required,email"`
	Password    string     `json:"password" validate:"required,min=6"`
	Name        string     `json:"name" validate:"required,min=3,max=150"`
	Phone       string     `json:"phone"`
	CommunityID *uuid.UUID `json:"community_id,omitempty"`
	BirthDate   *string    `json:"birth_date,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
