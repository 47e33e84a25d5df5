package model

import (
	"time"

	"github.com/google/uuid"
)

type NewsModel struct {
	NewsID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"news_id"`
	NewsCommunityID uuid.UUID `gorm:"type:uuid;not null;index" json:"news_community_id"`
	NewsTitle       string    `gorm:"type:varchar(200);not null" json:"news_title"`
	NewsContent     string    `gorm:"type:text;not null" json:"news_content"`
	NewsCategory    string    `gorm:"type:varchar(50)" json:"news_category"`
	NewsImageURL    string    `gorm:"type:text" json:"news_image_url"`
	NewsIsUrgent    bool      `gorm:"default:false" json:"news_is_urgent"`
	NewsPublishedAt time.Time `gorm:"not null;index" json:"news_published_at"`
	NewsCreatedAt   time.Time `gorm:"autoCreateTime" json:"news_created_at"`
	NewsUpdatedAt   time.Time `gorm:"autoUpdateTime" json:"news_updated_at"`
}

func (NewsModel) TableName() string {
	return "news"
}
