package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/rodrigospisila/parish-backend/internals/features/events/model"
	"github.com/rodrigospisila/parish-backend/internals/features/events/service"
)

type EventRequest struct {
	EventCommunityID      uuid.UUID                  `json:"event_community_id" validate:"required"`
	EventTitle            string                     `json:"event_title" validate:"required,min=3,max=200"`
	EventDescription      string                     `json:"event_description"`
	EventType             string                     `json:"event_type" validate:"required,oneof=MASS MEETING ACTIVITY FORMATION CELEBRATION OTHER"`
	EventStartDate        time.Time                  `json:"event_start_date" validate:"required"`
	EventEndDate          *time.Time                 `json:"event_end_date,omitempty"`
	EventLocation         string                     `json:"event_location"`
	EventIsRecurring      bool                       `json:"event_is_recurring"`
	EventRecurrenceConfig *service.RecurrenceConfig  `json:"event_recurrence_config,omitempty"`
	EventMaxParticipants  *int                       `json:"event_max_participants,omitempty" validate:"omitempty,min=1"`
	EventIsPublic         *bool                      `json:"event_is_public,omitempty"`
	EventStatus           string                     `json:"event_status" validate:"omitempty,oneof=SCHEDULED CANCELLED COMPLETED"`
}

func (r *EventRequest) ToModel() (*model.EventModel, error) {
	status := r.EventStatus
	if status == "" {
		status = "SCHEDULED"
	}
	isPublic := true
	if r.EventIsPublic != nil {
		isPublic = *r.EventIsPublic
	}

	m := &model.EventModel{
		EventCommunityID:     r.EventCommunityID,
		EventTitle:           r.EventTitle,
		EventDescription:     r.EventDescription,
		EventType:            r.EventType,
		EventStartDate:       r.EventStartDate,
		EventEndDate:         r.EventEndDate,
		EventLocation:        r.EventLocation,
		EventIsRecurring:     r.EventIsRecurring,
		EventMaxParticipants: r.EventMaxParticipants,
		EventIsPublic:        isPublic,
		EventStatus:          status,
	}
	if r.EventIsRecurring && r.EventRecurrenceConfig != nil {
		raw, err := sonic.Marshal(r.EventRecurrenceConfig)
		if err != nil {
			return nil, err
		}
		m.EventRecurrenceConfig = datatypes.JSON(raw)
	}
	return m, nil
}

type EventDuplicateRequest struct {
	TargetDates []time.Time `json:"target_dates" validate:"required,min=1,max=30"`
}

type EventParticipantRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
}

type EventPastoralRequest struct {
	CommunityPastoralID uuid.UUID `json:"community_pastoral_id" validate:"required"`
	Role                string    `json:"role"`
	IsLeader            bool      `json:"is_leader"`
}

type EventPastoralAssignmentRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	Role     string    `json:"role"`
	Notes    string    `json:"notes"`
}
