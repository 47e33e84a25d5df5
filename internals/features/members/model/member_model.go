package model

import (
	"time"

	"github.com/google/uuid"
)

// Member statuses.
const (
	MemberStatusActive      = "ACTIVE"
	MemberStatusInactive    = "INACTIVE"
	MemberStatusTransferred = "TRANSFERRED"
	MemberStatusDeceased    = "DECEASED"
)

type MemberModel struct {
	MemberID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"member_id"`
	MemberCommunityID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"member_community_id"`
	MemberFullName     string     `gorm:"type:varchar(150);not null" json:"member_full_name"`
	MemberBirthDate    *time.Time `json:"member_birth_date,omitempty"`
	MemberCPF          *string    `gorm:"type:varchar(14);uniqueIndex" json:"member_cpf,omitempty"`
	MemberRG           string     `gorm:"type:varchar(20)" json:"member_rg"`
	MemberPhotoURL     string     `gorm:"type:text" json:"member_photo_url"`
	MemberPhone        string     `gorm:"type:varchar(30)" json:"member_phone"`
	MemberEmail        *string    `gorm:"type:varchar(150);uniqueIndex" json:"member_email,omitempty"`
	MemberAddress      string     `gorm:"type:text" json:"member_address"`
	MemberCity         string     `gorm:"type:varchar(100)" json:"member_city"`
	MemberState        string     `gorm:"type:varchar(50)" json:"member_state"`
	MemberZipCode      string     `gorm:"type:varchar(20)" json:"member_zip_code"`
	MemberFatherName   string     `gorm:"type:varchar(150)" json:"member_father_name"`
	MemberMotherName   string     `gorm:"type:varchar(150)" json:"member_mother_name"`
	MemberSpouseID     *uuid.UUID `gorm:"type:uuid" json:"member_spouse_id,omitempty"`
	MemberOccupation   string     `gorm:"type:varchar(100)" json:"member_occupation"`
	MemberStatus       string     `gorm:"type:varchar(20);default:'ACTIVE'" json:"member_status"`
	MemberConsentGiven bool       `gorm:"default:false" json:"member_consent_given"`
	MemberConsentDate  *time.Time `json:"member_consent_date,omitempty"`
	MemberUserID       *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"member_user_id,omitempty"`
	MemberCreatedAt    time.Time  `gorm:"autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"member_updated_at"`
}

func (MemberModel) TableName() string {
	return "members"
}
