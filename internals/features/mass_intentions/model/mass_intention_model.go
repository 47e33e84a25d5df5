package model

import (
	"time"

	"github.com/google/uuid"
)

// Intention types.
const (
	IntentionTypeDeceased     = "DECEASED"
	IntentionTypeThanksgiving = "THANKSGIVING"
	IntentionTypeHealing      = "HEALING"
	IntentionTypeBirthday     = "BIRTHDAY"
	IntentionTypeOther        = "OTHER"
)

type MassIntentionModel struct {
	MassIntentionID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"mass_intention_id"`
	MassIntentionCommunityID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"mass_intention_community_id"`
	MassIntentionFor           string     `gorm:"column:mass_intention_for;type:varchar(200);not null" json:"mass_intention_for"`
	MassIntentionType          string     `gorm:"type:varchar(20);not null;default:'OTHER'" json:"mass_intention_type"`
	MassIntentionRequestedDate time.Time  `gorm:"not null;index" json:"mass_intention_requested_date"`
	MassIntentionNotes         string     `gorm:"type:text" json:"mass_intention_notes"`
	MassIntentionAmount        float64    `gorm:"type:decimal(10,2);default:0" json:"mass_intention_amount"`
	MassIntentionRequestedBy   string     `gorm:"type:varchar(150)" json:"mass_intention_requested_by"`
	MassIntentionIsPaid        bool       `gorm:"default:false" json:"mass_intention_is_paid"`
	MassIntentionPaidAt        *time.Time `json:"mass_intention_paid_at,omitempty"`
	MassIntentionPaymentMethod string     `gorm:"type:varchar(50)" json:"mass_intention_payment_method"`
	MassIntentionCreatedAt     time.Time  `gorm:"autoCreateTime" json:"mass_intention_created_at"`
	MassIntentionUpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"mass_intention_updated_at"`
}

func (MassIntentionModel) TableName() string {
	return "mass_intentions"
}
