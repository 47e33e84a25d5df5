package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PrayerCategoryHealth    = "HEALTH"
	PrayerCategoryFamily    = "FAMILY"
	PrayerCategoryWork      = "WORK"
	PrayerCategoryGratitude = "GRATITUDE"
	PrayerCategorySpiritual = "SPIRITUAL"
	PrayerCategoryOther     = "OTHER"
)

const (
	PrayerStatusPending  = "PENDING"
	PrayerStatusApproved = "APPROVED"
	PrayerStatusRejected = "REJECTED"
)

type PrayerRequestModel struct {
	PrayerRequestID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"prayer_request_id"`
	PrayerRequestCommunityID uuid.UUID  `gorm:"type:uuid;not null;index" json:"prayer_request_community_id"`
	PrayerRequestMemberID    *uuid.UUID `gorm:"type:uuid;index" json:"prayer_request_member_id,omitempty"`
	PrayerRequestTitle       string     `gorm:"type:varchar(200);not null" json:"prayer_request_title"`
	PrayerRequestDescription string     `gorm:"type:text;not null" json:"prayer_request_description"`
	PrayerRequestCategory    string     `gorm:"type:varchar(20);not null;default:'OTHER'" json:"prayer_request_category"`
	PrayerRequestIsAnonymous bool       `gorm:"default:false" json:"prayer_request_is_anonymous"`
	PrayerRequestStatus      string     `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"prayer_request_status"`
	PrayerRequestPrayerCount int        `gorm:"default:0" json:"prayer_request_prayer_count"`
	PrayerRequestCreatedAt   time.Time  `gorm:"autoCreateTime" json:"prayer_request_created_at"`
	PrayerRequestUpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"prayer_request_updated_at"`
}

func (PrayerRequestModel) TableName() string {
	return "prayer_requests"
}
