package model

import (
	"time"

	"github.com/google/uuid"
)

// GlobalPastoralModel is the diocese-wide catalog entry a community pastoral
// instantiates.
type GlobalPastoralModel struct {
	GlobalPastoralID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"global_pastoral_id"`
	GlobalPastoralName        string    `gorm:"type:varchar(150);not null;uniqueIndex" json:"global_pastoral_name"`
	GlobalPastoralDescription string    `gorm:"type:text" json:"global_pastoral_description"`
	GlobalPastoralMission     string    `gorm:"type:text" json:"global_pastoral_mission"`
	GlobalPastoralIconURL     string    `gorm:"type:text" json:"global_pastoral_icon_url"`
	GlobalPastoralColorHex    string    `gorm:"type:varchar(7)" json:"global_pastoral_color_hex"`
	GlobalPastoralStatus      string    `gorm:"type:varchar(20);default:'ACTIVE'" json:"global_pastoral_status"`
	GlobalPastoralCreatedAt   time.Time `gorm:"autoCreateTime" json:"global_pastoral_created_at"`
	GlobalPastoralUpdatedAt   time.Time `gorm:"autoUpdateTime" json:"global_pastoral_updated_at"`
}

func (GlobalPastoralModel) TableName() string {
	return "global_pastorals"
}

type CommunityPastoralModel struct {
	CommunityPastoralID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"community_pastoral_id"`
	CommunityPastoralGlobalID    uuid.UUID  `gorm:"column:community_pastoral_global_id;type:uuid;not null;index" json:"community_pastoral_global_id"`
	CommunityPastoralCommunityID uuid.UUID  `gorm:"type:uuid;not null;index" json:"community_pastoral_community_id"`
	CommunityPastoralDescription string     `gorm:"type:text" json:"community_pastoral_description"`
	CommunityPastoralMission     string     `gorm:"type:text" json:"community_pastoral_mission"`
	CommunityPastoralPhotoURL    string     `gorm:"type:text" json:"community_pastoral_photo_url"`
	CommunityPastoralNotes       string     `gorm:"type:text" json:"community_pastoral_notes"`
	CommunityPastoralFoundedAt   *time.Time `json:"community_pastoral_founded_at,omitempty"`
	CommunityPastoralStatus      string     `gorm:"type:varchar(20);default:'ACTIVE'" json:"community_pastoral_status"`
	CommunityPastoralCreatedAt   time.Time  `gorm:"autoCreateTime" json:"community_pastoral_created_at"`
	CommunityPastoralUpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"community_pastoral_updated_at"`
}

func (CommunityPastoralModel) TableName() string {
	return "community_pastorals"
}

type PastoralGroupModel struct {
	PastoralGroupID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"pastoral_group_id"`
	PastoralGroupPastoralID  uuid.UUID  `gorm:"column:pastoral_group_pastoral_id;type:uuid;not null;index" json:"pastoral_group_pastoral_id"`
	PastoralGroupParentID    *uuid.UUID `gorm:"type:uuid" json:"pastoral_group_parent_id,omitempty"`
	PastoralGroupName        string     `gorm:"type:varchar(150);not null" json:"pastoral_group_name"`
	PastoralGroupDescription string     `gorm:"type:text" json:"pastoral_group_description"`
	PastoralGroupStatus      string     `gorm:"type:varchar(20);default:'ACTIVE'" json:"pastoral_group_status"`
	PastoralGroupCreatedAt   time.Time  `gorm:"autoCreateTime" json:"pastoral_group_created_at"`
	PastoralGroupUpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"pastoral_group_updated_at"`
}

func (PastoralGroupModel) TableName() string {
	return "pastoral_groups"
}

// PastoralMemberModel links a member to a community pastoral. The
// COORDINATOR role here is what the hierarchy resolver consults for the
// pastoral-coordinator event grant.
type PastoralMemberModel struct {
	PastoralMemberID                  uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"pastoral_member_id"`
	PastoralMemberCommunityPastoralID uuid.UUID  `gorm:"type:uuid;not null;index:idx_pastoral_member_unique,unique" json:"pastoral_member_community_pastoral_id"`
	PastoralMemberMemberID            uuid.UUID  `gorm:"type:uuid;not null;index:idx_pastoral_member_unique,unique" json:"pastoral_member_member_id"`
	PastoralMemberGroupID             *uuid.UUID `gorm:"type:uuid" json:"pastoral_member_group_id,omitempty"`
	PastoralMemberRole                string     `gorm:"type:varchar(30);not null;default:'MEMBER'" json:"pastoral_member_role"`
	PastoralMemberIsActive            bool       `gorm:"default:true" json:"pastoral_member_is_active"`
	PastoralMemberJoinedAt            time.Time  `gorm:"autoCreateTime" json:"pastoral_member_joined_at"`
	PastoralMemberUpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"pastoral_member_updated_at"`
}

func (PastoralMemberModel) TableName() string {
	return "pastoral_members"
}
