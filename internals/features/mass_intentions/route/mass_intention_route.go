package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/constants"
	"github.com/rodrigospisila/parish-backend/internals/features/mass_intentions/controller"
	"github.com/rodrigospisila/parish-backend/internals/middlewares/auth"
)

func MassIntentionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMassIntentionController(db)

	intentions := api.Group("/mass-intentions")
	intentions.Get("/", ctrl.GetMassIntentions)
	intentions.Get("/upcoming", ctrl.GetUpcomingMassIntentions)
	intentions.Get("/pending", ctrl.GetPendingMassIntentions)
	intentions.Get("/stats", ctrl.GetMassIntentionStats)
	intentions.Get("/date/:date", ctrl.GetMassIntentionsByDate)
	intentions.Get("/:id", ctrl.GetMassIntention)

	manage := auth.OnlyRoles("Only coordinators can manage mass intentions", constants.CoordinatorAndAbove...)
	intentions.Post("/", manage, ctrl.CreateMassIntention)
	intentions.Put("/:id", manage, ctrl.UpdateMassIntention)
	intentions.Patch("/:id/pay", manage, ctrl.PayMassIntention)
	intentions.Patch("/:id/unpay", manage, ctrl.UnpayMassIntention)
	intentions.Delete("/:id", manage, ctrl.DeleteMassIntention)
}
