package dto

import (
	"github.com/google/uuid"

	"github.com/rodrigospisila/parish-backend/internals/features/organization/parishes/model"
)

type ParishRequest struct {
	ParishDioceseID  uuid.UUID `json:"parish_diocese_id" validate:"required"`
	ParishName       string    `json:"parish_name" validate:"required,min=3,max=150"`
	ParishAddress    string    `json:"parish_address"`
	ParishCity       string    `json:"parish_city"`
	ParishState      string    `json:"parish_state"`
	ParishZipCode    string    `json:"parish_zip_code"`
	ParishPhone      string    `json:"parish_phone"`
	ParishEmail      string    `json:"parish_email" validate:"omitempty,email"`
	ParishWebsite    string    `json:"parish_website"`
	ParishLogoURL    string    `json:"parish_logo_url"`
	ParishPriestName string    `json:"parish_priest_name"`
	ParishLatitude   *float64  `json:"parish_latitude,omitempty"`
	ParishLongitude  *float64  `json:"parish_longitude,omitempty"`
	ParishStatus     string    `json:"parish_status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r *ParishRequest) ToModel() *model.ParishModel {
	status := r.ParishStatus
	if status == "" {
		status = "ACTIVE"
	}
	return &model.ParishModel{
		ParishDioceseID:  r.ParishDioceseID,
		ParishName:       r.ParishName,
		ParishAddress:    r.ParishAddress,
		ParishCity:       r.ParishCity,
		ParishState:      r.ParishState,
		ParishZipCode:    r.ParishZipCode,
		ParishPhone:      r.ParishPhone,
		ParishEmail:      r.ParishEmail,
		ParishWebsite:    r.ParishWebsite,
		ParishLogoURL:    r.ParishLogoURL,
		ParishPriestName: r.ParishPriestName,
		ParishLatitude:   r.ParishLatitude,
		ParishLongitude:  r.ParishLongitude,
		ParishStatus:     status,
	}
}

func (r *ParishRequest) ApplyToModel(m *model.ParishModel) {
	m.ParishName = r.ParishName
	m.ParishAddress = r.ParishAddress
	m.ParishCity = r.ParishCity
	m.ParishState = r.ParishState
	m.ParishZipCode = r.ParishZipCode
	m.ParishPhone = r.ParishPhone
	m.ParishEmail = r.ParishEmail
	m.ParishWebsite = r.ParishWebsite
	m.ParishLogoURL = r.ParishLogoURL
	m.ParishPriestName = r.ParishPriestName
	m.ParishLatitude = r.ParishLatitude
	m.ParishLongitude = r.ParishLongitude
	if r.ParishStatus != "" {
		m.ParishStatus = r.ParishStatus
	}
}
