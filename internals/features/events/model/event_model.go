package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Event types.
const (
	EventTypeMass        = "MASS"
	EventTypeMeeting     = "MEETING"
	EventTypeActivity    = "ACTIVITY"
	EventTypeFormation   = "FORMATION"
	EventTypeCelebration = "CELEBRATION"
	EventTypeOther       = "OTHER"
)

type EventModel struct {
	EventID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventCommunityID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"event_community_id"`
	EventTitle            string         `gorm:"type:varchar(200);not null" json:"event_title"`
	EventDescription      string         `gorm:"type:text" json:"event_description"`
	EventType             string         `gorm:"type:varchar(20);not null;default:'OTHER'" json:"event_type"`
	EventStartDate        time.Time      `gorm:"not null;index" json:"event_start_date"`
	EventEndDate          *time.Time     `json:"event_end_date,omitempty"`
	EventLocation         string         `gorm:"type:text" json:"event_location"`
	EventIsRecurring      bool           `gorm:"default:false" json:"event_is_recurring"`
	EventRecurrenceConfig datatypes.JSON `gorm:"type:jsonb" json:"event_recurrence_config,omitempty"`
	EventMaxParticipants  *int           `json:"event_max_participants,omitempty"`
	EventIsPublic         bool           `gorm:"default:true" json:"event_is_public"`
	EventStatus           string         `gorm:"type:varchar(20);default:'SCHEDULED'" json:"event_status"`
	EventCreatedAt        time.Time      `gorm:"autoCreateTime" json:"event_created_at"`
	EventUpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}

type EventParticipantModel struct {
	EventParticipantID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"event_participant_id"`
	EventParticipantEventID   uuid.UUID `gorm:"type:uuid;not null;index:idx_event_participant_unique,unique" json:"event_participant_event_id"`
	EventParticipantMemberID  uuid.UUID `gorm:"type:uuid;not null;index:idx_event_participant_unique,unique" json:"event_participant_member_id"`
	EventParticipantCreatedAt time.Time `gorm:"autoCreateTime" json:"event_participant_created_at"`
}

func (EventParticipantModel) TableName() string {
	return "event_participants"
}

// EventPastoralModel links a community pastoral to an event. It is the edge
// the hierarchy resolver walks for the pastoral-coordinator grant.
type EventPastoralModel struct {
	EventPastoralID                  uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"event_pastoral_id"`
	EventPastoralEventID             uuid.UUID `gorm:"type:uuid;not null;index:idx_event_pastoral_unique,unique" json:"event_pastoral_event_id"`
	EventPastoralCommunityPastoralID uuid.UUID `gorm:"type:uuid;not null;index:idx_event_pastoral_unique,unique" json:"event_pastoral_community_pastoral_id"`
	EventPastoralRole                string    `gorm:"type:varchar(100)" json:"event_pastoral_role"`
	EventPastoralIsLeader            bool      `gorm:"default:false" json:"event_pastoral_is_leader"`
	EventPastoralCreatedAt           time.Time `gorm:"autoCreateTime" json:"event_pastoral_created_at"`
}

func (EventPastoralModel) TableName() string {
	return "event_pastorals"
}

type EventPastoralAssignmentModel struct {
	EventPastoralAssignmentID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"event_pastoral_assignment_id"`
	EventPastoralAssignmentEventPastoralID uuid.UUID  `gorm:"type:uuid;not null;index" json:"event_pastoral_assignment_event_pastoral_id"`
	EventPastoralAssignmentMemberID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"event_pastoral_assignment_member_id"`
	EventPastoralAssignmentRole            string     `gorm:"type:varchar(100)" json:"event_pastoral_assignment_role"`
	EventPastoralAssignmentNotes           string     `gorm:"type:text" json:"event_pastoral_assignment_notes"`
	EventPastoralAssignmentCheckedIn       bool       `gorm:"default:false" json:"event_pastoral_assignment_checked_in"`
	EventPastoralAssignmentCheckedInAt     *time.Time `json:"event_pastoral_assignment_checked_in_at,omitempty"`
	EventPastoralAssignmentCreatedAt       time.Time  `gorm:"autoCreateTime" json:"event_pastoral_assignment_created_at"`
}

func (EventPastoralAssignmentModel) TableName() string {
	return "event_pastoral_assignments"
}
