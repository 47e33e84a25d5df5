package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/features/events/dto"
	"github.com/rodrigospisila/parish-backend/internals/features/events/model"
	MemberModel "github.com/rodrigospisila/parish-backend/internals/features/members/model"
	PastoralModel "github.com/rodrigospisila/parish-backend/internals/features/pastorals/model"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
)

/* ===============================
   Participants
================================= */

// POST /events/:id/participants
func (ctrl *EventController) AddParticipant(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.EventParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	// Members may join themselves; managing others needs the event grant.
	selfJoin, err := ctrl.Resolver.OwnsMember(p, req.MemberID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !selfJoin {
		if err := ctrl.guardEvent(c, p, eventID); err != nil {
			return err
		}
	}

	var member MemberModel.MemberModel
	if err := ctrl.DB.First(&member, "member_id = ?", req.MemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check member")
	}

	var count int64
	if err := ctrl.DB.Model(&model.EventParticipantModel{}).
		Where("event_participant_event_id = ? AND event_participant_member_id = ?", eventID, req.MemberID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check participation")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Member is already registered for this event")
	}

	if event.EventMaxParticipants != nil {
		var current int64
		if err := ctrl.DB.Model(&model.EventParticipantModel{}).
			Where("event_participant_event_id = ?", eventID).
			Count(&current).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check capacity")
		}
		if current >= int64(*event.EventMaxParticipants) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Event is at full capacity")
		}
	}

	participant := model.EventParticipantModel{
		EventParticipantEventID:  eventID,
		EventParticipantMemberID: req.MemberID,
	}
	if err := ctrl.DB.Create(&participant).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Member is already registered for this event")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add participant")
	}
	return helper.JsonCreated(c, "Participant added", participant)
}

// GET /events/:id/participants
func (ctrl *EventController) GetParticipants(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	err = ctrl.Resolver.ScopeEvents(ctrl.DB.Model(&model.EventModel{}), p).
		Where("events.event_id = ?", eventID).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	var participants []model.EventParticipantModel
	if err := ctrl.DB.Where("event_participant_event_id = ?", eventID).
		Order("event_participant_created_at ASC").
		Find(&participants).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list participants")
	}
	return helper.JsonList(c, "Participants fetched", participants, nil)
}

// DELETE /events/:id/participants/:memberId
func (ctrl *EventController) RemoveParticipant(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	selfLeave, err := ctrl.Resolver.OwnsMember(p, memberID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !selfLeave {
		if err := ctrl.guardEvent(c, p, eventID); err != nil {
			return err
		}
	}

	res := ctrl.DB.
		Where("event_participant_event_id = ? AND event_participant_member_id = ?", eventID, memberID).
		Delete(&model.EventParticipantModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove participant")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Participant not found")
	}
	return helper.JsonDeleted(c, "Participant removed")
}

/* ===============================
   Event ↔ pastoral links
================================= */

// POST /events/:id/pastorals
func (ctrl *EventController) AddEventPastoral(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.EventPastoralRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	if err := ctrl.guardEvent(c, p, eventID); err != nil {
		return err
	}

	var pastoral PastoralModel.CommunityPastoralModel
	if err := ctrl.DB.First(&pastoral, "community_pastoral_id = ?", req.CommunityPastoralID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Community pastoral not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check pastoral")
	}

	// A link extends the pastoral coordinator's manage grant to the event,
	// so the pastoral must live in the event's own community.
	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check event")
	}
	if pastoral.CommunityPastoralCommunityID != event.EventCommunityID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Pastoral belongs to a different community")
	}

	link := model.EventPastoralModel{
		EventPastoralEventID:             eventID,
		EventPastoralCommunityPastoralID: req.CommunityPastoralID,
		EventPastoralRole:                req.Role,
		EventPastoralIsLeader:            req.IsLeader,
	}
	if err := ctrl.DB.Create(&link).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Pastoral is already linked to this event")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to link pastoral")
	}
	return helper.JsonCreated(c, "Pastoral linked to event", link)
}

// GET /events/:id/pastorals
func (ctrl *EventController) GetEventPastorals(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	err = ctrl.Resolver.ScopeEvents(ctrl.DB.Model(&model.EventModel{}), p).
		Where("events.event_id = ?", eventID).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	var links []model.EventPastoralModel
	if err := ctrl.DB.Where("event_pastoral_event_id = ?", eventID).
		Find(&links).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list event pastorals")
	}
	return helper.JsonList(c, "Event pastorals fetched", links, nil)
}

// DELETE /events/:id/pastorals/:linkId
func (ctrl *EventController) RemoveEventPastoral(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	linkID, err := uuid.Parse(c.Params("linkId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid link id")
	}

	if err := ctrl.guardEvent(c, p, eventID); err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_pastoral_assignment_event_pastoral_id = ?", linkID).
			Delete(&model.EventPastoralAssignmentModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("event_pastoral_id = ? AND event_pastoral_event_id = ?", linkID, eventID).
			Delete(&model.EventPastoralModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Event pastoral link not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to unlink pastoral")
	}
	return helper.JsonDeleted(c, "Pastoral unlinked from event")
}

/* ===============================
   Per-pastoral assignments
================================= */

func (ctrl *EventController) loadLink(c *fiber.Ctx, linkID uuid.UUID) (*model.EventPastoralModel, error) {
	var link model.EventPastoralModel
	if err := ctrl.DB.First(&link, "event_pastoral_id = ?", linkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Event pastoral link not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event pastoral link")
	}
	return &link, nil
}

// POST /events/pastoral-links/:linkId/assignments
func (ctrl *EventController) CreateEventAssignment(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	linkID, err := uuid.Parse(c.Params("linkId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid link id")
	}

	var req dto.EventPastoralAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	link, err := ctrl.loadLink(c, linkID)
	if err != nil {
		return err
	}
	if err := ctrl.guardEvent(c, p, link.EventPastoralEventID); err != nil {
		return err
	}

	var member MemberModel.MemberModel
	if err := ctrl.DB.First(&member, "member_id = ?", req.MemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check member")
	}

	assignment := model.EventPastoralAssignmentModel{
		EventPastoralAssignmentEventPastoralID: linkID,
		EventPastoralAssignmentMemberID:        req.MemberID,
		EventPastoralAssignmentRole:            req.Role,
		EventPastoralAssignmentNotes:           req.Notes,
	}
	if err := ctrl.DB.Create(&assignment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create assignment")
	}
	return helper.JsonCreated(c, "Assignment created", assignment)
}

// GET /events/pastoral-links/:linkId/assignments
func (ctrl *EventController) GetEventAssignments(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	linkID, err := uuid.Parse(c.Params("linkId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid link id")
	}

	link, err := ctrl.loadLink(c, linkID)
	if err != nil {
		return err
	}

	var event model.EventModel
	err = ctrl.Resolver.ScopeEvents(ctrl.DB.Model(&model.EventModel{}), p).
		Where("events.event_id = ?", link.EventPastoralEventID).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	var assignments []model.EventPastoralAssignmentModel
	if err := ctrl.DB.Where("event_pastoral_assignment_event_pastoral_id = ?", linkID).
		Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list assignments")
	}
	return helper.JsonList(c, "Assignments fetched", assignments, nil)
}

// PATCH /events/pastoral-assignments/:assignmentId/checkin
func (ctrl *EventController) CheckInEventAssignment(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	assignmentID, err := uuid.Parse(c.Params("assignmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	var assignment model.EventPastoralAssignmentModel
	if err := ctrl.DB.First(&assignment, "event_pastoral_assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignment")
	}

	own, err := ctrl.Resolver.OwnsMember(p, assignment.EventPastoralAssignmentMemberID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !own {
		link, err := ctrl.loadLink(c, assignment.EventPastoralAssignmentEventPastoralID)
		if err != nil {
			return err
		}
		if err := ctrl.guardEvent(c, p, link.EventPastoralEventID); err != nil {
			return err
		}
	}

	if assignment.EventPastoralAssignmentCheckedIn {
		return helper.JsonError(c, fiber.StatusBadRequest, "Assignment is already checked in")
	}

	now := time.Now()
	updates := map[string]any{
		"event_pastoral_assignment_checked_in":    true,
		"event_pastoral_assignment_checked_in_at": now,
	}
	if err := ctrl.DB.Model(&assignment).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check in")
	}
	return helper.JsonOK(c, "Checked in", nil)
}

// DELETE /events/pastoral-assignments/:assignmentId
func (ctrl *EventController) RemoveEventAssignment(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	assignmentID, err := uuid.Parse(c.Params("assignmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	var assignment model.EventPastoralAssignmentModel
	if err := ctrl.DB.First(&assignment, "event_pastoral_assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignment")
	}

	link, err := ctrl.loadLink(c, assignment.EventPastoralAssignmentEventPastoralID)
	if err != nil {
		return err
	}
	if err := ctrl.guardEvent(c, p, link.EventPastoralEventID); err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&assignment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove assignment")
	}
	return helper.JsonDeleted(c, "Assignment removed")
}
