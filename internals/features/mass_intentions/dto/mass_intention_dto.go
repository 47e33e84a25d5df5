package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/rodrigospisila/parish-backend/internals/features/mass_intentions/model"
)

type MassIntentionRequest struct {
	CommunityID   uuid.UUID `json:"community_id" validate:"required"`
	IntentionFor  string    `json:"intention_for" validate:"required,min=2,max=200"`
	Type          string    `json:"type" validate:"required,oneof=DECEASED THANKSGIVING HEALING BIRTHDAY OTHER"`
	RequestedDate time.Time `json:"requested_date" validate:"required"`
	Notes         string    `json:"notes" validate:"omitempty,max=2000"`
	Amount        float64   `json:"amount" validate:"omitempty,gte=0"`
	RequestedBy   string    `json:"requested_by" validate:"omitempty,max=150"`
}

func (r *MassIntentionRequest) ToModel() *model.MassIntentionModel {
	return &model.MassIntentionModel{
		MassIntentionCommunityID:   r.CommunityID,
		MassIntentionFor:           r.IntentionFor,
		MassIntentionType:          r.Type,
		MassIntentionRequestedDate: r.RequestedDate,
		MassIntentionNotes:         r.Notes,
		MassIntentionAmount:        r.Amount,
		MassIntentionRequestedBy:   r.RequestedBy,
	}
}

type MassIntentionPayRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,max=50"`
}
