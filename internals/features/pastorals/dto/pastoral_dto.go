package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/rodrigospisila/parish-backend/internals/features/pastorals/model"
)

type GlobalPastoralRequest struct {
	GlobalPastoralName        string `json:"global_pastoral_name" validate:"required,min=3,max=150"`
	GlobalPastoralDescription string `json:"global_pastoral_description"`
	GlobalPastoralMission     string `json:"global_pastoral_mission"`
	GlobalPastoralIconURL     string `json:"global_pastoral_icon_url"`
	GlobalPastoralColorHex    string `json:"global_pastoral_color_hex" validate:"omitempty,hexcolor"`
	GlobalPastoralStatus      string `json:"global_pastoral_status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r *GlobalPastoralRequest) ToModel() *model.GlobalPastoralModel {
	status := r.GlobalPastoralStatus
	if status == "" {
		status = "ACTIVE"
	}
	return &model.GlobalPastoralModel{
		GlobalPastoralName:        r.GlobalPastoralName,
		GlobalPastoralDescription: r.GlobalPastoralDescription,
		GlobalPastoralMission:     r.GlobalPastoralMission,
		GlobalPastoralIconURL:     r.GlobalPastoralIconURL,
		GlobalPastoralColorHex:    r.GlobalPastoralColorHex,
		GlobalPastoralStatus:      status,
	}
}

func (r *GlobalPastoralRequest) ApplyToModel(m *model.GlobalPastoralModel) {
	m.GlobalPastoralName = r.GlobalPastoralName
	m.GlobalPastoralDescription = r.GlobalPastoralDescription
	m.GlobalPastoralMission = r.GlobalPastoralMission
	m.GlobalPastoralIconURL = r.GlobalPastoralIconURL
	m.GlobalPastoralColorHex = r.GlobalPastoralColorHex
	if r.GlobalPastoralStatus != "" {
		m.GlobalPastoralStatus = r.GlobalPastoralStatus
	}
}

type CommunityPastoralRequest struct {
	CommunityPastoralGlobalID    uuid.UUID  `json:"community_pastoral_global_id" validate:"required"`
	CommunityPastoralCommunityID uuid.UUID  `json:"community_pastoral_community_id" validate:"required"`
	CommunityPastoralDescription string     `json:"community_pastoral_description"`
	CommunityPastoralMission     string     `json:"community_pastoral_mission"`
	CommunityPastoralPhotoURL    string     `json:"community_pastoral_photo_url"`
	CommunityPastoralNotes       string     `json:"community_pastoral_notes"`
	CommunityPastoralFoundedAt   *time.Time `json:"community_pastoral_founded_at,omitempty"`
	CommunityPastoralStatus      string     `json:"community_pastoral_status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r *CommunityPastoralRequest) ToModel() *model.CommunityPastoralModel {
	status := r.CommunityPastoralStatus
	if status == "" {
		status = "ACTIVE"
	}
	return &model.CommunityPastoralModel{
		CommunityPastoralGlobalID:    r.CommunityPastoralGlobalID,
		CommunityPastoralCommunityID: r.CommunityPastoralCommunityID,
		CommunityPastoralDescription: r.CommunityPastoralDescription,
		CommunityPastoralMission:     r.CommunityPastoralMission,
		CommunityPastoralPhotoURL:    r.CommunityPastoralPhotoURL,
		CommunityPastoralNotes:       r.CommunityPastoralNotes,
		CommunityPastoralFoundedAt:   r.CommunityPastoralFoundedAt,
		CommunityPastoralStatus:      status,
	}
}

type PastoralGroupRequest struct {
	PastoralGroupPastoralID  uuid.UUID  `json:"pastoral_group_pastoral_id" validate:"required"`
	PastoralGroupParentID    *uuid.UUID `json:"pastoral_group_parent_id,omitempty"`
	PastoralGroupName        string     `json:"pastoral_group_name" validate:"required,min=2,max=150"`
	PastoralGroupDescription string     `json:"pastoral_group_description"`
	PastoralGroupStatus      string     `json:"pastoral_group_status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type PastoralMemberRequest struct {
	PastoralMemberMemberID uuid.UUID  `json:"pastoral_member_member_id" validate:"required"`
	PastoralMemberGroupID  *uuid.UUID `json:"pastoral_member_group_id,omitempty"`
	PastoralMemberRole     string     `json:"pastoral_member_role" validate:"omitempty,oneof=COORDINATOR VICE_COORDINATOR MEMBER"`
}

type PastoralMemberUpdateRequest struct {
	PastoralMemberGroupID  *uuid.UUID `json:"pastoral_member_group_id,omitempty"`
	PastoralMemberRole     string     `json:"pastoral_member_role" validate:"omitempty,oneof=COORDINATOR VICE_COORDINATOR MEMBER"`
	PastoralMemberIsActive *bool      `json:"pastoral_member_is_active,omitempty"`
}
