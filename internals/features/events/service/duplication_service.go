package service

import (
	"time"

	"github.com/rodrigospisila/parish-backend/internals/features/events/model"
)

// CloneEventForDates builds one clone per target date. Each clone keeps the
// source's metadata and duration, starts over as SCHEDULED, and carries no
// recurrence and none of the source's links.
func CloneEventForDates(source *model.EventModel, targets []time.Time) []model.EventModel {
	clones := make([]model.EventModel, 0, len(targets))
	for _, target := range targets {
		clone := model.EventModel{
			EventCommunityID:     source.EventCommunityID,
			EventTitle:           source.EventTitle,
			EventDescription:     source.EventDescription,
			EventType:            source.EventType,
			EventStartDate:       target,
			EventLocation:        source.EventLocation,
			EventIsRecurring:     false,
			EventMaxParticipants: source.EventMaxParticipants,
			EventIsPublic:        source.EventIsPublic,
			EventStatus:          "SCHEDULED",
		}
		if source.EventEndDate != nil {
			end := target.Add(source.EventEndDate.Sub(source.EventStartDate))
			clone.EventEndDate = &end
		}
		clones = append(clones, clone)
	}
	return clones
}
