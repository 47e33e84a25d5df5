package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel is one issued refresh token. Redemption deletes the row,
// so a token can only ever be exchanged once.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Token     string    `gorm:"type:text;uniqueIndex;not null" json:"token"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
