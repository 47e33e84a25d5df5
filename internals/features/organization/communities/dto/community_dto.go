package dto

import (
	"github.com/google/uuid"

	"github.com/rodrigospisila/parish-backend/internals/features/organization/communities/model"
)

type CommunityRequest struct {
	CommunityParishID        uuid.UUID `json:"community_parish_id" validate:"required"`
	CommunityName            string    `json:"community_name" validate:"required,min=3,max=150"`
	CommunityAddress         string    `json:"community_address"`
	CommunityCity            string    `json:"community_city"`
	CommunityState           string    `json:"community_state"`
	CommunityZipCode         string    `json:"community_zip_code"`
	CommunityPhone           string    `json:"community_phone"`
	CommunityEmail           string    `json:"community_email" validate:"omitempty,email"`
	CommunityLogoURL         string    `json:"community_logo_url"`
	CommunityCoordinatorName string    `json:"community_coordinator_name"`
	CommunityLatitude        *float64  `json:"community_latitude,omitempty"`
	CommunityLongitude       *float64  `json:"community_longitude,omitempty"`
	CommunityStatus          string    `json:"community_status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r *CommunityRequest) ToModel() *model.CommunityModel {
	status := r.CommunityStatus
	if status == "" {
		status = "ACTIVE"
	}
	return &model.CommunityModel{
		CommunityParishID:        r.CommunityParishID,
		CommunityName:            r.CommunityName,
		CommunityAddress:         r.CommunityAddress,
		CommunityCity:            r.CommunityCity,
		CommunityState:           r.CommunityState,
		CommunityZipCode:         r.CommunityZipCode,
		CommunityPhone:           r.CommunityPhone,
		CommunityEmail:           r.CommunityEmail,
		CommunityLogoURL:         r.CommunityLogoURL,
		CommunityCoordinatorName: r.CommunityCoordinatorName,
		CommunityLatitude:        r.CommunityLatitude,
		CommunityLongitude:       r.CommunityLongitude,
		CommunityStatus:          status,
	}
}

func (r *CommunityRequest) ApplyToModel(m *model.CommunityModel) {
	m.CommunityName = r.CommunityName
	m.CommunityAddress = r.CommunityAddress
	m.CommunityCity = r.CommunityCity
	m.CommunityState = r.CommunityState
	m.CommunityZipCode = r.CommunityZipCode
	m.CommunityPhone = r.CommunityPhone
	m.CommunityEmail = r.CommunityEmail
	m.CommunityLogoURL = r.CommunityLogoURL
	m.CommunityCoordinatorName = r.CommunityCoordinatorName
	m.CommunityLatitude = r.CommunityLatitude
	m.CommunityLongitude = r.CommunityLongitude
	if r.CommunityStatus != "" {
		m.CommunityStatus = r.CommunityStatus
	}
}
