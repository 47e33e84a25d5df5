package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/rodrigospisila/parish-backend/internals/features/events/model"
)

func sourceEvent() *model.EventModel {
	start := time.Date(2026, 3, 7, 19, 0, 0, 0, time.UTC)
	end := start.Add(2*time.Hour + 30*time.Minute)
	max := 40
	return &model.EventModel{
		EventID:               uuid.New(),
		EventCommunityID:      uuid.New(),
		EventTitle:            "Vigília de Oração",
		EventDescription:      "Vigília mensal",
		EventType:             model.EventTypeCelebration,
		EventStartDate:        start,
		EventEndDate:          &end,
		EventLocation:         "Capela São José",
		EventIsRecurring:      true,
		EventRecurrenceConfig: datatypes.JSON([]byte(`{"frequency":"MONTHLY","interval":1}`)),
		EventMaxParticipants:  &max,
		EventIsPublic:         true,
		EventStatus:           "COMPLETED",
	}
}

func TestCloneEventForDatesCountAndDuration(t *testing.T) {
	source := sourceEvent()
	targets := []time.Time{
		time.Date(2026, 4, 4, 19, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC),
		time.Date(2026, 6, 6, 19, 0, 0, 0, time.UTC),
	}

	clones := CloneEventForDates(source, targets)
	require.Len(t, clones, len(targets))

	duration := source.EventEndDate.Sub(source.EventStartDate)
	for i, clone := range clones {
		assert.Equal(t, targets[i], clone.EventStartDate)
		require.NotNil(t, clone.EventEndDate)
		assert.Equal(t, duration, clone.EventEndDate.Sub(clone.EventStartDate))
	}
}

func TestCloneEventForDatesDropsRecurrenceAndState(t *testing.T) {
	source := sourceEvent()
	clones := CloneEventForDates(source, []time.Time{
		time.Date(2026, 4, 4, 19, 0, 0, 0, time.UTC),
	})
	require.Len(t, clones, 1)

	clone := clones[0]
	assert.False(t, clone.EventIsRecurring)
	assert.Empty(t, clone.EventRecurrenceConfig)
	assert.Equal(t, "SCHEDULED", clone.EventStatus)
	assert.Equal(t, uuid.Nil, clone.EventID)
	assert.Equal(t, source.EventCommunityID, clone.EventCommunityID)
	assert.Equal(t, source.EventTitle, clone.EventTitle)
	assert.Equal(t, source.EventMaxParticipants, clone.EventMaxParticipants)
}

func TestCloneEventForDatesNoEndDate(t *testing.T) {
	source := sourceEvent()
	source.EventEndDate = nil

	clones := CloneEventForDates(source, []time.Time{
		time.Date(2026, 4, 4, 19, 0, 0, 0, time.UTC),
	})
	require.Len(t, clones, 1)
	assert.Nil(t, clones[0].EventEndDate)
}

func TestCloneEventForDatesEmptyTargets(t *testing.T) {
	assert.Empty(t, CloneEventForDates(sourceEvent(), nil))
}
