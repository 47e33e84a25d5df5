package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/rodrigospisila/parish-backend/internals/features/prayer_requests/model"
)

type PrayerRequestRequest struct {
	CommunityID uuid.UUID  `json:"community_id" validate:"required"`
	MemberID    *uuid.UUID `json:"member_id"`
	Title       string     `json:"title" validate:"required,min=3,max=200"`
	Description string     `json:"description" validate:"required"`
	Category    string     `json:"category" validate:"required,oneof=HEALTH FAMILY WORK GRATITUDE SPIRITUAL OTHER"`
	IsAnonymous bool       `json:"is_anonymous"`
}

func (r *PrayerRequestRequest) ToModel() *model.PrayerRequestModel {
	return &model.PrayerRequestModel{
		PrayerRequestCommunityID: r.CommunityID,
		PrayerRequestMemberID:    r.MemberID,
		PrayerRequestTitle:       r.Title,
		PrayerRequestDescription: r.Description,
		PrayerRequestCategory:    r.Category,
		PrayerRequestIsAnonymous: r.IsAnonymous,
		PrayerRequestStatus:      model.PrayerStatusPending,
	}
}

// PublicPrayerRequest is the read shape for the approved feed. Anonymous
// requests never expose the requesting member.
type PublicPrayerRequest struct {
	ID          uuid.UUID  `json:"id"`
	CommunityID uuid.UUID  `json:"community_id"`
	MemberID    *uuid.UUID `json:"member_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	IsAnonymous bool       `json:"is_anonymous"`
	PrayerCount int        `json:"prayer_count"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ToPublic(m *model.PrayerRequestModel) PublicPrayerRequest {
	pub := PublicPrayerRequest{
		ID:          m.PrayerRequestID,
		CommunityID: m.PrayerRequestCommunityID,
		Title:       m.PrayerRequestTitle,
		Description: m.PrayerRequestDescription,
		Category:    m.PrayerRequestCategory,
		IsAnonymous: m.PrayerRequestIsAnonymous,
		PrayerCount: m.PrayerRequestPrayerCount,
		CreatedAt:   m.PrayerRequestCreatedAt,
	}
	if !m.PrayerRequestIsAnonymous {
		pub.MemberID = m.PrayerRequestMemberID
	}
	return pub
}
