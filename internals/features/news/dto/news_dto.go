package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/rodrigospisila/parish-backend/internals/features/news/model"
)

type NewsRequest struct {
	CommunityID uuid.UUID  `json:"community_id" validate:"required"`
	Title       string     `json:"title" validate:"required,min=3,max=200"`
	Content     string     `json:"content" validate:"required"`
	Category    string     `json:"category" validate:"omitempty,max=50"`
	ImageURL    string     `json:"image_url" validate:"omitempty,url"`
	IsUrgent    bool       `json:"is_urgent"`
	PublishedAt *time.Time `json:"published_at"`
}

func (r *NewsRequest) ToModel() *model.NewsModel {
	publishedAt := time.Now()
	if r.PublishedAt != nil {
		publishedAt = *r.PublishedAt
	}
	return &model.NewsModel{
		NewsCommunityID: r.CommunityID,
		NewsTitle:       r.Title,
		NewsContent:     r.Content,
		NewsCategory:    r.Category,
		NewsImageURL:    r.ImageURL,
		NewsIsUrgent:    r.IsUrgent,
		NewsPublishedAt: publishedAt,
	}
}

func (r *NewsRequest) ApplyToModel(m *model.NewsModel) {
	m.NewsTitle = r.Title
	m.NewsContent = r.Content
	m.NewsCategory = r.Category
	m.NewsImageURL = r.ImageURL
	m.NewsIsUrgent = r.IsUrgent
	if r.PublishedAt != nil {
		m.NewsPublishedAt = *r.PublishedAt
	}
}
