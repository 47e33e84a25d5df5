package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/constants"
	"github.com/rodrigospisila/parish-backend/internals/features/users/users/controller"
	"github.com/rodrigospisila/parish-backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := api.Group("/users")

	// Change-password is self-service, everything else is admin territory.
	users.Patch("/:id/password", ctrl.ChangePassword)

	adminOnly := auth.OnlyRoles("Only administrators can manage users", constants.CoordinatorAndAbove...)
	users.Get("/", adminOnly, ctrl.GetUsers)
	users.Get("/:id", adminOnly, ctrl.GetUser)
	users.Post("/", adminOnly, ctrl.CreateUser)
	users.Put("/:id", adminOnly, ctrl.UpdateUser)
	users.Delete("/:id", adminOnly, ctrl.DeleteUser)
	users.Post("/:id/reset-password", adminOnly, ctrl.ResetPassword)
}
