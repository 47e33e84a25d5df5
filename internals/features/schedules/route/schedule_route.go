package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/constants"
	"github.com/rodrigospisila/parish-backend/internals/features/schedules/controller"
	"github.com/rodrigospisila/parish-backend/internals/middlewares/auth"
)

func ScheduleRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewScheduleController(db)

	schedules := api.Group("/schedules")

	// Self-service endpoints first, open to every authenticated member.
	schedules.Get("/my", ctrl.GetMySchedules)
	schedules.Patch("/assignments/:assignmentId/confirm", ctrl.ConfirmAssignment)
	schedules.Patch("/assignments/:assignmentId/decline", ctrl.DeclineAssignment)
	schedules.Patch("/assignments/:assignmentId/checkin", ctrl.CheckIn)
	schedules.Patch("/assignments/:assignmentId/undo-checkin", ctrl.UndoCheckIn)

	manage := auth.OnlyRoles("Only coordinators and above can manage schedules", constants.PastoralCoordinatorAndAbove...)
	schedules.Get("/eligible-members/:eventId", manage, ctrl.GetEligibleMembers)
	schedules.Get("/member/:memberId/stats", ctrl.GetMemberStats)
	schedules.Delete("/assignments/:assignmentId", manage, ctrl.DeleteAssignment)

	schedules.Get("/", ctrl.GetSchedules)
	schedules.Post("/", manage, ctrl.CreateSchedule)
	schedules.Get("/:id", ctrl.GetSchedule)
	schedules.Delete("/:id", manage, ctrl.DeleteSchedule)
	schedules.Get("/:id/assignments", ctrl.GetAssignments)
	schedules.Post("/:id/assignments", manage, ctrl.CreateAssignment)
}
