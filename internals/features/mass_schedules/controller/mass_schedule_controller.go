package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/features/mass_schedules/dto"
	"github.com/rodrigospisila/parish-backend/internals/features/mass_schedules/model"
	CommunityModel "github.com/rodrigospisila/parish-backend/internals/features/organization/communities/model"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
	"github.com/rodrigospisila/parish-backend/internals/hierarchy"
)

type MassScheduleController struct {
	DB       *gorm.DB
	Resolver *hierarchy.Resolver
}

func NewMassScheduleController(db *gorm.DB) *MassScheduleController {
	return &MassScheduleController{DB: db, Resolver: hierarchy.NewResolver(db)}
}

func validateScheduleRequest(c *fiber.Ctx, req *dto.MassScheduleRequest) error {
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid time, expected HH:MM")
	}
	if req.IsSpecial && req.SpecialDate == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Special schedules require special_date")
	}
	return nil
}

// POST /mass-schedules
func (ctrl *MassScheduleController) CreateMassSchedule(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.MassScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}
	if err := validateScheduleRequest(c, &req); err != nil {
		return err
	}

	var community CommunityModel.CommunityModel
	if err := ctrl.DB.First(&community, "community_id = ?", req.CommunityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Community not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check community")
	}

	ok, err := ctrl.Resolver.CanManageCommunity(p, req.CommunityID)
	if err != nil && !errors.Is(err, hierarchy.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You cannot manage mass schedules in this community")
	}

	schedule := req.ToModel()
	if err := ctrl.DB.Create(schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create mass schedule")
	}
	return helper.JsonCreated(c, "Mass schedule created", schedule)
}

// GET /mass-schedules?community_id=
func (ctrl *MassScheduleController) GetMassSchedules(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	base := ctrl.Resolver.ScopeMassSchedules(ctrl.DB.Model(&model.MassScheduleModel{}), p)
	if communityID := c.Query("community_id"); communityID != "" {
		id, err := uuid.Parse(communityID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid community_id filter")
		}
		base = base.Where("mass_schedule_community_id = ?", id)
	}

	var schedules []model.MassScheduleModel
	if err := base.Order("mass_schedule_day_of_week ASC, mass_schedule_time ASC").
		Find(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list mass schedules")
	}
	return helper.JsonOK(c, "Mass schedules fetched", schedules)
}

// GET /mass-schedules/day/:dayOfWeek — 0 is Sunday.
func (ctrl *MassScheduleController) GetMassSchedulesByDay(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	day, err := strconv.Atoi(c.Params("dayOfWeek"))
	if err != nil || day < 0 || day > 6 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid day of week, expected 0-6")
	}

	var schedules []model.MassScheduleModel
	if err := ctrl.Resolver.ScopeMassSchedules(ctrl.DB.Model(&model.MassScheduleModel{}), p).
		Where("mass_schedule_day_of_week = ?", day).
		Order("mass_schedule_time ASC").
		Find(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list mass schedules")
	}
	return helper.JsonOK(c, "Mass schedules fetched", schedules)
}

// GET /mass-schedules/special
func (ctrl *MassScheduleController) GetSpecialMassSchedules(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var schedules []model.MassScheduleModel
	if err := ctrl.Resolver.ScopeMassSchedules(ctrl.DB.Model(&model.MassScheduleModel{}), p).
		Where("mass_schedule_is_special = ?", true).
		Order("mass_schedule_special_date ASC").
		Find(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list special mass schedules")
	}
	return helper.JsonOK(c, "Special mass schedules fetched", schedules)
}

// GET /mass-schedules/:id
func (ctrl *MassScheduleController) GetMassSchedule(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid mass schedule id")
	}

	var schedule model.MassScheduleModel
	err = ctrl.Resolver.ScopeMassSchedules(ctrl.DB.Model(&model.MassScheduleModel{}), p).
		Where("mass_schedule_id = ?", id).First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Mass schedule not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch mass schedule")
	}
	return helper.JsonOK(c, "Mass schedule fetched", schedule)
}

// PUT /mass-schedules/:id
func (ctrl *MassScheduleController) UpdateMassSchedule(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid mass schedule id")
	}

	var req dto.MassScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}
	if err := validateScheduleRequest(c, &req); err != nil {
		return err
	}

	schedule, err := ctrl.loadManaged(c, p, id)
	if err != nil {
		return err
	}

	req.ApplyToModel(schedule)
	if err := ctrl.DB.Save(schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update mass schedule")
	}
	return helper.JsonOK(c, "Mass schedule updated", schedule)
}

// DELETE /mass-schedules/:id
func (ctrl *MassScheduleController) DeleteMassSchedule(c *fiber.Ctx) error {
	p, err := helper.CurrentPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid mass schedule id")
	}

	if _, err := ctrl.loadManaged(c, p, id); err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&model.MassScheduleModel{}, "mass_schedule_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete mass schedule")
	}
	return helper.JsonDeleted(c, "Mass schedule deleted")
}

func (ctrl *MassScheduleController) loadManaged(c *fiber.Ctx, p hierarchy.Principal, id uuid.UUID) (*model.MassScheduleModel, error) {
	var schedule model.MassScheduleModel
	err := ctrl.Resolver.ScopeMassSchedules(ctrl.DB.Model(&model.MassScheduleModel{}), p).
		Where("mass_schedule_id = ?", id).First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Mass schedule not found")
	}
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch mass schedule")
	}

	ok, err := ctrl.Resolver.CanManageCommunity(p, schedule.MassScheduleCommunityID)
	if errors.Is(err, hierarchy.ErrNotFound) {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Mass schedule not found")
	}
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Permission check failed")
	}
	if !ok {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "You cannot manage this mass schedule")
	}
	return &schedule, nil
}
