package dto

import (
	"github.com/rodrigospisila/parish-backend/internals/features/organization/dioceses/model"
)

type DioceseRequest struct {
	DioceseName       string `json:"diocese_name" validate:"required,min=3,max=150"`
	DioceseAddress    string `json:"diocese_address"`
	DioceseCity       string `json:"diocese_city"`
	DioceseState      string `json:"diocese_state"`
	DioceseZipCode    string `json:"diocese_zip_code"`
	DiocesePhone      string `json:"diocese_phone"`
	DioceseEmail      string `json:"diocese_email" validate:"omitempty,email"`
	DioceseWebsite    string `json:"diocese_website"`
	DioceseLogoURL    string `json:"diocese_logo_url"`
	DioceseBishopName string `json:"diocese_bishop_name"`
	DioceseStatus     string `json:"diocese_status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r *DioceseRequest) ToModel() *model.DioceseModel {
	status := r.DioceseStatus
	if status == "" {
		status = "ACTIVE"
	}
	return &model.DioceseModel{
		DioceseName:       r.DioceseName,
		DioceseAddress:    r.DioceseAddress,
		DioceseCity:       r.DioceseCity,
		DioceseState:      r.DioceseState,
		DioceseZipCode:    r.DioceseZipCode,
		DiocesePhone:      r.DiocesePhone,
		DioceseEmail:      r.DioceseEmail,
		DioceseWebsite:    r.DioceseWebsite,
		DioceseLogoURL:    r.DioceseLogoURL,
		DioceseBishopName: r.DioceseBishopName,
		DioceseStatus:     status,
	}
}

func (r *DioceseRequest) ApplyToModel(m *model.DioceseModel) {
	m.DioceseName = r.DioceseName
	m.DioceseAddress = r.DioceseAddress
	m.DioceseCity = r.DioceseCity
	m.DioceseState = r.DioceseState
	m.DioceseZipCode = r.DioceseZipCode
	m.DiocesePhone = r.DiocesePhone
	m.DioceseEmail = r.DioceseEmail
	m.DioceseWebsite = r.DioceseWebsite
	m.DioceseLogoURL = r.DioceseLogoURL
	m.DioceseBishopName = r.DioceseBishopName
	if r.DioceseStatus != "" {
		m.DioceseStatus = r.DioceseStatus
	}
}
