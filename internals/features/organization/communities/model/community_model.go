package model

import (
	"time"

	"github.com/google/uuid"
)

type CommunityModel struct {
	CommunityID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"community_id"`
	CommunityParishID        uuid.UUID `gorm:"type:uuid;not null;index" json:"community_parish_id"`
	CommunityName            string    `gorm:"type:varchar(150);not null" json:"community_name"`
	CommunityAddress         string    `gorm:"type:text" json:"community_address"`
	CommunityCity            string    `gorm:"type:varchar(100)" json:"community_city"`
	CommunityState           string    `gorm:"type:varchar(50)" json:"community_state"`
	CommunityZipCode         string    `gorm:"type:varchar(20)" json:"community_zip_code"`
	CommunityPhone           string    `gorm:"type:varchar(30)" json:"community_phone"`
	CommunityEmail           string    `gorm:"type:varchar(150)" json:"community_email"`
	CommunityLogoURL         string    `gorm:"type:text" json:"community_logo_url"`
	CommunityCoordinatorName string    `gorm:"type:varchar(150)" json:"community_coordinator_name"`
	CommunityLatitude        *float64  `gorm:"type:decimal(9,6)" json:"community_latitude,omitempty"`
	CommunityLongitude       *float64  `gorm:"type:decimal(9,6)" json:"community_longitude,omitempty"`
	CommunityStatus          string    `gorm:"type:varchar(20);default:'ACTIVE'" json:"community_status"`
	CommunityCreatedAt       time.Time `gorm:"autoCreateTime" json:"community_created_at"`
	CommunityUpdatedAt       time.Time `gorm:"autoUpdateTime" json:"community_updated_at"`
}

func (CommunityModel) TableName() string {
	return "communities"
}
