package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	EventModel "github.com/rodrigospisila/parish-backend/internals/features/events/model"
	MemberModel "github.com/rodrigospisila/parish-backend/internals/features/members/model"
	"github.com/rodrigospisila/parish-backend/internals/features/schedules/dto"
	"github.com/rodrigospisila/parish-backend/internals/features/schedules/model"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
	"github.com/rodrigospisila/parish-backend/internals/hierarchy"
)

type ScheduleController struct {
	DB       *gorm.DB
	Resolver *hierarchy.Resolver
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db, Resolver: hierarchy.NewResolver(db)}
}

// POST /schedules
// The event grant is what lets a pastoral coordinator roster events their
// pastoral is linked to.
func (ctrl *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	ok, err := ctrl.Resolver.CanManageEvent(p, req.ScheduleEventID)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot create schedules for this event")
	}

	schedule := model.ScheduleModel{
		ScheduleEventID:     req.ScheduleEventID,
		ScheduleTitle:       req.ScheduleTitle,
		ScheduleDescription: req.ScheduleDescription,
		ScheduleDate:        req.ScheduleDate,
	}
	if err := ctrl.DB.Create(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create schedule")
	}
	return helper.JsonCreated(c, "Schedule created", schedule)
}

// GET /schedules?event_id=
func (ctrl *ScheduleController) GetSchedules(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)
	base := ctrl.Resolver.ScopeSchedules(ctrl.DB.Model(&model.ScheduleModel{}), p)
	if eventID := c.Query("event_id"); eventID != "" {
		id, err := uuid.Parse(eventID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event_id filter")
		}
		base = base.Where("schedules.schedule_event_id = ?", id)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schedules")
	}

	var schedules []model.ScheduleModel
	if err := base.Order("schedules.schedule_date ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list schedules")
	}
	return helper.JsonList(c, "Schedules fetched", schedules, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /schedules/my — the caller's assignments, upcoming plus the last 30
// days.
func (ctrl *ScheduleController) GetMySchedules(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var member MemberModel.MemberModel
	if err := ctrl.DB.First(&member, "member_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No member record linked to your account")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch member")
	}

	since := time.Now().AddDate(0, 0, -30)
	var assignments []model.ScheduleAssignmentModel
	err = ctrl.DB.
		Joins("JOIN schedules ON schedules.schedule_id = schedule_assignments.schedule_assignment_schedule_id").
		Where("schedule_assignments.schedule_assignment_member_id = ?", member.MemberID).
		Where("schedules.schedule_date >= ?", since).
		Order("schedules.schedule_date ASC").
		Find(&assignments).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list your assignments")
	}
	return helper.JsonList(c, "Your assignments fetched", assignments, nil)
}

// GET /schedules/eligible-members/:eventId — members of the pastorals linked
// to the event, or every active community member when no pastoral is linked.
func (ctrl *ScheduleController) GetEligibleMembers(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	eventID, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	ok, err := ctrl.Resolver.CanManageEvent(p, eventID)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot roster this event")
	}

	var event EventModel.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	var linkedPastorals int64
	if err := ctrl.DB.Model(&EventModel.EventPastoralModel{}).
		Where("event_pastoral_event_id = ?", eventID).
		Count(&linkedPastorals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check linked pastorals")
	}

	var members []MemberModel.MemberModel
	if linkedPastorals > 0 {
		err = ctrl.DB.Model(&MemberModel.MemberModel{}).
			Joins("JOIN pastoral_members ON pastoral_members.pastoral_member_member_id = members.member_id").
			Joins("JOIN event_pastorals ON event_pastorals.event_pastoral_community_pastoral_id = pastoral_members.pastoral_member_community_pastoral_id").
			Where("event_pastorals.event_pastoral_event_id = ?", eventID).
			Where("pastoral_members.pastoral_member_is_active = ?", true).
			Where("members.member_status = ?", MemberModel.MemberStatusActive).
			Distinct("members.*").
			Find(&members).Error
	} else {
		err = ctrl.DB.
			Where("member_community_id = ? AND member_status = ?", event.EventCommunityID, MemberModel.MemberStatusActive).
			Order("member_full_name ASC").
			Find(&members).Error
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list eligible members")
	}
	return helper.JsonList(c, "Eligible members fetched", members, nil)
}

// GET /schedules/:id
func (ctrl *ScheduleController) GetSchedule(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var schedule model.ScheduleModel
	err = ctrl.Resolver.ScopeSchedules(ctrl.DB.Model(&model.ScheduleModel{}), p).
		Where("schedules.schedule_id = ?", id).First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedule")
	}
	return helper.JsonOK(c, "Schedule fetched", schedule)
}

// DELETE /schedules/:id
func (ctrl *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	ok, err := ctrl.Resolver.CanManageSchedule(p, id)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this schedule")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_assignment_schedule_id = ?", id).
			Delete(&model.ScheduleAssignmentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ScheduleModel{}, "schedule_id = ?", id).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete schedule")
	}
	return helper.JsonDeleted(c, "Schedule deleted")
}

/* ===============================
   Assignments
================================= */

// POST /schedules/:id/assignments
func (ctrl *ScheduleController) CreateAssignment(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var req dto.ScheduleAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	ok, err := ctrl.Resolver.CanManageSchedule(p, scheduleID)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this schedule")
	}

	var member MemberModel.MemberModel
	if err := ctrl.DB.First(&member, "member_id = ?", req.MemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check member")
	}

	var count int64
	if err := ctrl.DB.Model(&model.ScheduleAssignmentModel{}).
		Where("schedule_assignment_schedule_id = ? AND schedule_assignment_member_id = ? AND schedule_assignment_role = ?",
			scheduleID, req.MemberID, req.Role).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check assignment")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Member already holds this role in the schedule")
	}

	assignment := model.ScheduleAssignmentModel{
		ScheduleAssignmentScheduleID: scheduleID,
		ScheduleAssignmentMemberID:   req.MemberID,
		ScheduleAssignmentRole:       req.Role,
		ScheduleAssignmentNotes:      req.Notes,
		ScheduleAssignmentStatus:     model.AssignmentStatusPending,
	}
	if err := ctrl.DB.Create(&assignment).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Member already holds this role in the schedule")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create assignment")
	}
	return helper.JsonCreated(c, "Assignment created", assignment)
}

// GET /schedules/:id/assignments
func (ctrl *ScheduleController) GetAssignments(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var schedule model.ScheduleModel
	err = ctrl.Resolver.ScopeSchedules(ctrl.DB.Model(&model.ScheduleModel{}), p).
		Where("schedules.schedule_id = ?", scheduleID).First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedule")
	}

	var assignments []model.ScheduleAssignmentModel
	if err := ctrl.DB.Where("schedule_assignment_schedule_id = ?", scheduleID).
		Order("schedule_assignment_created_at ASC").
		Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list assignments")
	}
	return helper.JsonList(c, "Assignments fetched", assignments, nil)
}

// DELETE /schedules/assignments/:assignmentId
func (ctrl *ScheduleController) DeleteAssignment(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	assignmentID, err := uuid.Parse(c.Params("assignmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	var assignment model.ScheduleAssignmentModel
	if err := ctrl.DB.First(&assignment, "schedule_assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignment")
	}

	ok, err := ctrl.Resolver.CanManageSchedule(p, assignment.ScheduleAssignmentScheduleID)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this schedule")
	}

	if err := ctrl.DB.Delete(&assignment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete assignment")
	}
	return helper.JsonDeleted(c, "Assignment deleted")
}

// PATCH /schedules/assignments/:assignmentId/checkin
func (ctrl *ScheduleController) CheckIn(c *fiber.Ctx) error {
	return ctrl.setCheckIn(c, true)
}

// PATCH /schedules/assignments/:assignmentId/undo-checkin
func (ctrl *ScheduleController) UndoCheckIn(c *fiber.Ctx) error {
	return ctrl.setCheckIn(c, false)
}

func (ctrl *ScheduleController) setCheckIn(c *fiber.Ctx, checkedIn bool) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	assignmentID, err := uuid.Parse(c.Params("assignmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	ok, err := ctrl.Resolver.CanTouchAssignment(p, assignmentID)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot act on this assignment")
	}

	var assignment model.ScheduleAssignmentModel
	if err := ctrl.DB.First(&assignment, "schedule_assignment_id = ?", assignmentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	if assignment.ScheduleAssignmentCheckedIn == checkedIn {
		if checkedIn {
			return helper.JsonError(c, fiber.StatusBadRequest, "Assignment is already checked in")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Assignment is not checked in")
	}

	updates := map[string]any{"schedule_assignment_checked_in": checkedIn}
	if checkedIn {
		updates["schedule_assignment_checked_in_at"] = time.Now()
	} else {
		updates["schedule_assignment_checked_in_at"] = nil
	}
	if err := ctrl.DB.Model(&assignment).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update check-in")
	}
	if checkedIn {
		return helper.JsonOK(c, "Checked in", nil)
	}
	return helper.JsonOK(c, "Check-in undone", nil)
}

// PATCH /schedules/assignments/:assignmentId/confirm
func (ctrl *ScheduleController) ConfirmAssignment(c *fiber.Ctx) error {
	return ctrl.respond(c, model.AssignmentStatusConfirmed)
}

// PATCH /schedules/assignments/:assignmentId/decline
func (ctrl *ScheduleController) DeclineAssignment(c *fiber.Ctx) error {
	return ctrl.respond(c, model.AssignmentStatusDeclined)
}

// respond handles confirm/decline. Strictly self-service: only the assigned
// member may answer for themselves.
func (ctrl *ScheduleController) respond(c *fiber.Ctx, status string) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	assignmentID, err := uuid.Parse(c.Params("assignmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	var assignment model.ScheduleAssignmentModel
	if err := ctrl.DB.First(&assignment, "schedule_assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignment")
	}

	own, err := ctrl.Resolver.OwnsMember(p, assignment.ScheduleAssignmentMemberID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !own {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the assigned member can answer this assignment")
	}

	if err := ctrl.DB.Model(&assignment).
		Update("schedule_assignment_status", status).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update assignment")
	}
	return helper.JsonOK(c, "Assignment "+status, nil)
}

// GET /schedules/member/:memberId/stats
func (ctrl *ScheduleController) GetMemberStats(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	own, err := ctrl.Resolver.OwnsMember(p, memberID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !own {
		ok, err := ctrl.Resolver.CanManageMember(p, memberID)
		if errors.Is(err, hierarchy.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusForbidden, "You cannot view this member's stats")
		}
	}

	now := time.Now()
	base := ctrl.DB.Model(&model.ScheduleAssignmentModel{}).
		Joins("JOIN schedules ON schedules.schedule_id = schedule_assignments.schedule_assignment_schedule_id").
		Where("schedule_assignments.schedule_assignment_member_id = ?", memberID).
		Where("schedules.schedule_date < ?", now)

	var total, attended, confirmed, declined int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if err := base.Session(&gorm.Session{}).
		Where("schedule_assignments.schedule_assignment_checked_in = ?", true).
		Count(&attended).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if err := base.Session(&gorm.Session{}).
		Where("schedule_assignments.schedule_assignment_status = ?", model.AssignmentStatusConfirmed).
		Count(&confirmed).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if err := base.Session(&gorm.Session{}).
		Where("schedule_assignments.schedule_assignment_status = ?", model.AssignmentStatusDeclined).
		Count(&declined).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	attendanceRate := 0.0
	if total > 0 {
		attendanceRate = float64(attended) / float64(total)
	}

	return helper.JsonOK(c, "Member schedule stats", fiber.Map{
		"member_id":       memberID,
		"total":           total,
		"attended":        attended,
		"confirmed":       confirmed,
		"declined":        declined,
		"attendance_rate": attendanceRate,
	})
}
