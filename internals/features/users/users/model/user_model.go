package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel holds the login identity. Scope ids are nullable: a SYSTEM_ADMIN
// carries none, a DIOCESAN_ADMIN only a diocese, and so on down the tree.
type UserModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email               string     `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	Password            string     `gorm:"type:text;not null" json:"-"`
	Name                string     `gorm:"type:varchar(150);not null" json:"name"`
	Phone               string     `gorm:"type:varchar(30)" json:"phone"`
	Role                string     `gorm:"type:varchar(30);not null;default:'FAITHFUL'" json:"role"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	ForcePasswordChange bool       `gorm:"default:false" json:"force_password_change"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
	DioceseID           *uuid.UUID `gorm:"type:uuid" json:"diocese_id,omitempty"`
	ParishID            *uuid.UUID `gorm:"type:uuid" json:"parish_id,omitempty"`
	CommunityID         *uuid.UUID `gorm:"type:uuid" json:"community_id,omitempty"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
