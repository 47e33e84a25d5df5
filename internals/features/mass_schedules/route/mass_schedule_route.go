package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/constants"
	"github.com/rodrigospisila/parish-backend/internals/features/mass_schedules/controller"
	"github.com/rodrigospisila/parish-backend/internals/middlewares/auth"
)

func MassScheduleRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMassScheduleController(db)

	schedules := api.Group("/mass-schedules")
	schedules.Get("/", ctrl.GetMassSchedules)
	schedules.Get("/special", ctrl.GetSpecialMassSchedules)
	schedules.Get("/day/:dayOfWeek", ctrl.GetMassSchedulesByDay)
	schedules.Get("/:id", ctrl.GetMassSchedule)

	manage := auth.OnlyRoles("Only coordinators can manage mass schedules", constants.CoordinatorAndAbove...)
	schedules.Post("/", manage, ctrl.CreateMassSchedule)
	schedules.Put("/:id", manage, ctrl.UpdateMassSchedule)
	schedules.Delete("/:id", manage, ctrl.DeleteMassSchedule)
}
