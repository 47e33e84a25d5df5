package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/constants"
	"github.com/rodrigospisila/parish-backend/internals/features/organization/communities/controller"
	"github.com/rodrigospisila/parish-backend/internals/middlewares/auth"
)

func CommunityRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCommunityController(db)

	communities := api.Group("/communities")
	communities.Get("/", ctrl.GetCommunities)
	communities.Get("/:id", ctrl.GetCommunity)

	adminOnly := auth.OnlyRoles("Only administrators can manage communities", constants.AdminRoles...)
	communities.Post("/", adminOnly, ctrl.CreateCommunity)
	communities.Put("/:id", adminOnly, ctrl.UpdateCommunity)
	communities.Delete("/:id", adminOnly, ctrl.DeleteCommunity)
}
