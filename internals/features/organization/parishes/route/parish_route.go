package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/constants"
	"github.com/rodrigospisila/parish-backend/internals/features/organization/parishes/controller"
	"github.com/rodrigospisila/parish-backend/internals/middlewares/auth"
)

func ParishRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewParishController(db)

	parishes := api.Group("/parishes")
	parishes.Get("/", ctrl.GetParishes)
	parishes.Get("/:id", ctrl.GetParish)

	adminOnly := auth.OnlyRoles("Only administrators can manage parishes", constants.AdminRoles...)
	parishes.Post("/", adminOnly, ctrl.CreateParish)
	parishes.Put("/:id", adminOnly, ctrl.UpdateParish)
	parishes.Delete("/:id", adminOnly, ctrl.DeleteParish)
}
