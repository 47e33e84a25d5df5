package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/features/events/dto"
	"github.com/rodrigospisila/parish-backend/internals/features/events/model"
	"github.com/rodrigospisila/parish-backend/internals/features/events/service"
	CommunityModel "github.com/rodrigospisila/parish-backend/internals/features/organization/communities/model"
	ScheduleModel "github.com/rodrigospisila/parish-backend/internals/features/schedules/model"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
	"github.com/rodrigospisila/parish-backend/internals/hierarchy"
)

type EventController struct {
	DB       *gorm.DB
	Resolver *hierarchy.Resolver
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Resolver: hierarchy.NewResolver(db)}
}

func (ctrl *EventController) guardEvent(c *fiber.Ctx, p hierarchy.Principal, eventID uuid.UUID) error {
	ok, err := ctrl.Resolver.CanManageEvent(p, eventID)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this event")
	}
	return nil
}

// POST /events
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}
	if req.EventEndDate != nil && req.EventEndDate.Before(req.EventStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event end date must not precede the start date")
	}
	if req.EventIsRecurring {
		if req.EventRecurrenceConfig == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Recurring events require a recurrence config")
		}
		if _, err := service.GenerateOccurrences(req.EventStartDate, *req.EventRecurrenceConfig); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	var community CommunityModel.CommunityModel
	if err := ctrl.DB.First(&community, "community_id = ?", req.EventCommunityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Community not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check community")
	}

	ok, err := ctrl.Resolver.CanManageCommunity(p, req.EventCommunityID)
	if err != nil && !errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot create events in this community")
	}

	event, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid recurrence config")
	}
	if err := ctrl.DB.Create(event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonCreated(c, "Event created", event)
}

// GET /events?community_id=&type=&status=
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)
	base := ctrl.Resolver.ScopeEvents(ctrl.DB.Model(&model.EventModel{}), p)
	if communityID := c.Query("community_id"); communityID != "" {
		id, err := uuid.Parse(communityID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid community_id filter")
		}
		base = base.Where("events.event_community_id = ?", id)
	}
	if eventType := c.Query("type"); eventType != "" {
		base = base.Where("events.event_type = ?", eventType)
	}
	if status := c.Query("status"); status != "" {
		base = base.Where("events.event_status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var events []model.EventModel
	if err := base.Order("events.event_start_date ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list events")
	}
	return helper.JsonList(c, "Events fetched", events, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /events/upcoming
func (ctrl *EventController) GetUpcomingEvents(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var events []model.EventModel
	err = ctrl.Resolver.ScopeEvents(ctrl.DB.Model(&model.EventModel{}), p).
		Where("events.event_start_date >= ? AND events.event_status = ?", time.Now(), "SCHEDULED").
		Order("events.event_start_date ASC").
		Limit(50).
		Find(&events).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list upcoming events")
	}
	return helper.JsonList(c, "Upcoming events fetched", events, nil)
}

// GET /events/recurring
func (ctrl *EventController) GetRecurringEvents(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var events []model.EventModel
	err = ctrl.Resolver.ScopeEvents(ctrl.DB.Model(&model.EventModel{}), p).
		Where("events.event_is_recurring = ?", true).
		Order("events.event_start_date ASC").
		Find(&events).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list recurring events")
	}
	return helper.JsonList(c, "Recurring events fetched", events, nil)
}

// GET /events/type/:type
func (ctrl *EventController) GetEventsByType(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	eventType := c.Params("type")
	switch eventType {
	case model.EventTypeMass, model.EventTypeMeeting, model.EventTypeActivity,
		model.EventTypeFormation, model.EventTypeCelebration, model.EventTypeOther:
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown event type")
	}

	var events []model.EventModel
	err = ctrl.Resolver.ScopeEvents(ctrl.DB.Model(&model.EventModel{}), p).
		Where("events.event_type = ?", eventType).
		Order("events.event_start_date ASC").
		Find(&events).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list events")
	}
	return helper.JsonList(c, "Events fetched", events, nil)
}

// GET /events/range?start=&end=
func (ctrl *EventController) GetEventsByRange(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid start date, want YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid end date, want YYYY-MM-DD")
	}
	if end.Before(start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "End date precedes start date")
	}

	var events []model.EventModel
	err = ctrl.Resolver.ScopeEvents(ctrl.DB.Model(&model.EventModel{}), p).
		Where("events.event_start_date >= ? AND events.event_start_date < ?", start, end.AddDate(0, 0, 1)).
		Order("events.event_start_date ASC").
		Find(&events).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list events")
	}
	return helper.JsonList(c, "Events fetched", events, nil)
}

// GET /events/:id
func (ctrl *EventController) GetEvent(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	err = ctrl.Resolver.ScopeEvents(ctrl.DB.Model(&model.EventModel{}), p).
		Where("events.event_id = ?", id).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}
	return helper.JsonOK(c, "Event fetched", event)
}

// PUT /events/:id
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}
	if req.EventEndDate != nil && req.EventEndDate.Before(req.EventStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event end date must not precede the start date")
	}

	if err := ctrl.guardEvent(c, p, id); err != nil {
		return err
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	updated, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid recurrence config")
	}
	updated.EventID = event.EventID
	updated.EventCommunityID = event.EventCommunityID
	updated.EventCreatedAt = event.EventCreatedAt
	if err := ctrl.DB.Save(updated).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.JsonOK(c, "Event updated", updated)
}

// DELETE /events/:id — removes the event and its links.
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	if err := ctrl.guardEvent(c, p, id); err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return removeEventGraph(tx, id)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	return helper.JsonDeleted(c, "Event deleted")
}

// removeEventGraph deletes every row hanging off the event: pastoral
// assignments and links, participants, rosters with their assignments, and
// finally the event itself. Runs inside the caller's transaction.
func removeEventGraph(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("event_pastoral_assignment_event_pastoral_id IN (?)",
		tx.Model(&model.EventPastoralModel{}).
			Select("event_pastoral_id").
			Where("event_pastoral_event_id = ?", id),
	).Delete(&model.EventPastoralAssignmentModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("event_pastoral_event_id = ?", id).
		Delete(&model.EventPastoralModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("event_participant_event_id = ?", id).
		Delete(&model.EventParticipantModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("schedule_assignment_schedule_id IN (?)",
		tx.Model(&ScheduleModel.ScheduleModel{}).
			Select("schedule_id").
			Where("schedule_event_id = ?", id),
	).Delete(&ScheduleModel.ScheduleAssignmentModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("schedule_event_id = ?", id).
		Delete(&ScheduleModel.ScheduleModel{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.EventModel{}, "event_id = ?", id).Error
}

// POST /events/:id/duplicate
// One clone per target date. Each clone keeps the original's duration,
// drops recurrence, and carries none of the original's links.
func (ctrl *EventController) DuplicateEvent(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.EventDuplicateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	if err := ctrl.guardEvent(c, p, id); err != nil {
		return err
	}

	var source model.EventModel
	if err := ctrl.DB.First(&source, "event_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	clones := service.CloneEventForDates(&source, req.TargetDates)

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for i := range clones {
			if err := tx.Create(&clones[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to duplicate event")
	}
	return helper.JsonCreated(c, "Event duplicated", clones)
}
