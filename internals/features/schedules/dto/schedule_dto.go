package dto

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleRequest struct {
	ScheduleEventID     uuid.UUID `json:"schedule_event_id" validate:"required"`
	ScheduleTitle       string    `json:"schedule_title" validate:"required,min=3,max=200"`
	ScheduleDescription string    `json:"schedule_description"`
	ScheduleDate        time.Time `json:"schedule_date" validate:"required"`
}

type ScheduleAssignmentRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	Role     string    `json:"role" validate:"required,min=2,max=100"`
	Notes    string    `json:"notes"`
}
