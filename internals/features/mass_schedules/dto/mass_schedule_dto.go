package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/rodrigospisila/parish-backend/internals/features/mass_schedules/model"
)

type MassScheduleRequest struct {
	CommunityID uuid.UUID  `json:"community_id" validate:"required"`
	DayOfWeek   *int       `json:"day_of_week" validate:"required,gte=0,lte=6"`
	Time        string     `json:"time" validate:"required,len=5"`
	Type        string     `json:"type" validate:"required,oneof=REGULAR SPECIAL"`
	Notes       string     `json:"notes" validate:"omitempty,max=2000"`
	IsSpecial   bool       `json:"is_special"`
	SpecialDate *time.Time `json:"special_date"`
}

func (r *MassScheduleRequest) ToModel() *model.MassScheduleModel {
	return &model.MassScheduleModel{
		MassScheduleCommunityID: r.CommunityID,
		MassScheduleDayOfWeek:   *r.DayOfWeek,
		MassScheduleTime:        r.Time,
		MassScheduleType:        r.Type,
		MassScheduleNotes:       r.Notes,
		MassScheduleIsSpecial:   r.IsSpecial,
		MassScheduleSpecialDate: r.SpecialDate,
	}
}

func (r *MassScheduleRequest) ApplyToModel(m *model.MassScheduleModel) {
	m.MassScheduleCommunityID = r.CommunityID
	m.MassScheduleDayOfWeek = *r.DayOfWeek
	m.MassScheduleTime = r.Time
	m.MassScheduleType = r.Type
	m.MassScheduleNotes = r.Notes
	m.MassScheduleIsSpecial = r.IsSpecial
	m.MassScheduleSpecialDate = r.SpecialDate
}
