package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/constants"
	"github.com/rodrigospisila/parish-backend/internals/features/prayer_requests/controller"
	"github.com/rodrigospisila/parish-backend/internals/middlewares/auth"
)

func PrayerRequestRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPrayerRequestController(db)

	moderate := auth.OnlyRoles("Only coordinators can moderate prayer requests", constants.CoordinatorAndAbove...)

	prayers := api.Group("/prayer-requests")
	prayers.Get("/", ctrl.GetPrayerRequests)
	prayers.Get("/approved", ctrl.GetApprovedPrayerRequests)
	prayers.Get("/pending", moderate, ctrl.GetPendingPrayerRequests)
	prayers.Get("/stats", ctrl.GetPrayerRequestStats)
	prayers.Get("/:id", ctrl.GetPrayerRequest)

	// Submitting and praying are open to every authenticated faithful.
	prayers.Post("/", ctrl.CreatePrayerRequest)
	prayers.Post("/:id/pray", ctrl.PrayForRequest)

	prayers.Put("/:id", moderate, ctrl.UpdatePrayerRequest)
	prayers.Patch("/:id/approve", moderate, ctrl.ApprovePrayerRequest)
	prayers.Patch("/:id/reject", moderate, ctrl.RejectPrayerRequest)
	prayers.Delete("/:id", moderate, ctrl.DeletePrayerRequest)
}
