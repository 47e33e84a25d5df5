package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MassScheduleTypeRegular = "REGULAR"
	MassScheduleTypeSpecial = "SPECIAL"
)

type MassScheduleModel struct {
	MassScheduleID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"mass_schedule_id"`
	MassScheduleCommunityID uuid.UUID  `gorm:"type:uuid;not null;index" json:"mass_schedule_community_id"`
	MassScheduleDayOfWeek   int        `gorm:"not null" json:"mass_schedule_day_of_week"`
	MassScheduleTime        string     `gorm:"type:varchar(5);not null" json:"mass_schedule_time"`
	MassScheduleType        string     `gorm:"type:varchar(20);not null;default:'REGULAR'" json:"mass_schedule_type"`
	MassScheduleNotes       string     `gorm:"type:text" json:"mass_schedule_notes"`
	MassScheduleIsSpecial   bool       `gorm:"default:false" json:"mass_schedule_is_special"`
	MassScheduleSpecialDate *time.Time `json:"mass_schedule_special_date,omitempty"`
	MassScheduleCreatedAt   time.Time  `gorm:"autoCreateTime" json:"mass_schedule_created_at"`
	MassScheduleUpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"mass_schedule_updated_at"`
}

func (MassScheduleModel) TableName() string {
	return "mass_schedules"
}
