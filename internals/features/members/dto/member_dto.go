package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rodrigospisila/parish-backend/internals/features/members/model"
)

type MemberRequest struct {
	MemberCommunityID uuid.UUID  `json:"member_community_id" validate:"required"`
	MemberFullName    string     `json:"member_full_name" validate:"required,min=3,max=150"`
	MemberBirthDate   *string    `json:"member_birth_date,omitempty"`
	MemberCPF         *string    `json:"member_cpf,omitempty"`
	MemberRG          string     `json:"member_rg"`
	MemberPhotoURL    string     `json:"member_photo_url"`
	MemberPhone       string     `json:"member_phone"`
	MemberEmail       *string    `json:"member_email,omitempty" validate:"omitempty,email"`
	MemberAddress     string     `json:"member_address"`
	MemberCity        string     `json:"member_city"`
	MemberState       string     `json:"member_state"`
	MemberZipCode     string     `json:"member_zip_code"`
	MemberFatherName  string     `json:"member_father_name"`
	MemberMotherName  string     `json:"member_mother_name"`
	MemberSpouseID    *uuid.UUID `json:"member_spouse_id,omitempty"`
	MemberOccupation  string     `json:"member_occupation"`
	MemberStatus      string     `json:"member_status" validate:"omitempty,oneof=ACTIVE INACTIVE TRANSFERRED DECEASED"`
}

type ConsentRequest struct {
	ConsentGiven bool `json:"consent_given"`
}

func parseBirthDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, fmt.Errorf("invalid birth date, want YYYY-MM-DD")
	}
	return &t, nil
}

func (r *MemberRequest) ToModel() (*model.MemberModel, error) {
	birthDate, err := parseBirthDate(r.MemberBirthDate)
	if err != nil {
		return nil, err
	}
	status := r.MemberStatus
	if status == "" {
		status = model.MemberStatusActive
	}
	return &model.MemberModel{
		MemberCommunityID: r.MemberCommunityID,
		MemberFullName:    r.MemberFullName,
		MemberBirthDate:   birthDate,
		MemberCPF:         r.MemberCPF,
		MemberRG:          r.MemberRG,
		MemberPhotoURL:    r.MemberPhotoURL,
		MemberPhone:       r.MemberPhone,
		MemberEmail:       r.MemberEmail,
		MemberAddress:     r.MemberAddress,
		MemberCity:        r.MemberCity,
		MemberState:       r.MemberState,
		MemberZipCode:     r.MemberZipCode,
		MemberFatherName:  r.MemberFatherName,
		MemberMotherName:  r.MemberMotherName,
		MemberSpouseID:    r.MemberSpouseID,
		MemberOccupation:  r.MemberOccupation,
		MemberStatus:      status,
	}, nil
}

func (r *MemberRequest) ApplyToModel(m *model.MemberModel) error {
	birthDate, err := parseBirthDate(r.MemberBirthDate)
	if err != nil {
		return err
	}
	m.MemberFullName = r.MemberFullName
	m.MemberBirthDate = birthDate
	m.MemberCPF = r.MemberCPF
	m.MemberRG = r.MemberRG
	m.MemberPhotoURL = r.MemberPhotoURL
	m.MemberPhone = r.MemberPhone
	m.MemberEmail = r.MemberEmail
	m.MemberAddress = r.MemberAddress
	m.MemberCity = r.MemberCity
	m.MemberState = r.MemberState
	m.MemberZipCode = r.MemberZipCode
	m.MemberFatherName = r.MemberFatherName
	m.MemberMotherName = r.MemberMotherName
	m.MemberSpouseID = r.MemberSpouseID
	m.MemberOccupation = r.MemberOccupation
	if r.MemberStatus != "" {
		m.MemberStatus = r.MemberStatus
	}
	return nil
}
