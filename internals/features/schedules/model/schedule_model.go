package model

import (
	"time"

	"github.com/google/uuid"
)

// Assignment statuses.
const (
	AssignmentStatusPending   = "PENDING"
	AssignmentStatusConfirmed = "CONFIRMED"
	AssignmentStatusDeclined  = "DECLINED"
)

// ScheduleModel is a service roster attached to an event (e.g. the liturgy
// team for one Sunday mass).
type ScheduleModel struct {
	ScheduleID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_id"`
	ScheduleEventID     uuid.UUID `gorm:"type:uuid;not null;index" json:"schedule_event_id"`
	ScheduleTitle       string    `gorm:"type:varchar(200);not null" json:"schedule_title"`
	ScheduleDescription string    `gorm:"type:text" json:"schedule_description"`
	ScheduleDate        time.Time `gorm:"not null;index" json:"schedule_date"`
	ScheduleCreatedAt   time.Time `gorm:"autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt   time.Time `gorm:"autoUpdateTime" json:"schedule_updated_at"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}

type ScheduleAssignmentModel struct {
	ScheduleAssignmentID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_assignment_id"`
	ScheduleAssignmentScheduleID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_schedule_assignment_unique,unique" json:"schedule_assignment_schedule_id"`
	ScheduleAssignmentMemberID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_schedule_assignment_unique,unique" json:"schedule_assignment_member_id"`
	ScheduleAssignmentRole        string     `gorm:"type:varchar(100);not null;index:idx_schedule_assignment_unique,unique" json:"schedule_assignment_role"`
	ScheduleAssignmentNotes       string     `gorm:"type:text" json:"schedule_assignment_notes"`
	ScheduleAssignmentStatus      string     `gorm:"type:varchar(20);not null;default:'PENDING'" json:"schedule_assignment_status"`
	ScheduleAssignmentCheckedIn   bool       `gorm:"default:false" json:"schedule_assignment_checked_in"`
	ScheduleAssignmentCheckedInAt *time.Time `json:"schedule_assignment_checked_in_at,omitempty"`
	ScheduleAssignmentCreatedAt   time.Time  `gorm:"autoCreateTime" json:"schedule_assignment_created_at"`
	ScheduleAssignmentUpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"schedule_assignment_updated_at"`
}

func (ScheduleAssignmentModel) TableName() string {
	return "schedule_assignments"
}
