package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/constants"
	"github.com/rodrigospisila/parish-backend/internals/features/news/controller"
	"github.com/rodrigospisila/parish-backend/internals/middlewares/auth"
)

func NewsRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsController(db)

	news := api.Group("/news")
	news.Get("/", ctrl.GetNews)
	news.Get("/recent", ctrl.GetRecentNews)
	news.Get("/urgent", ctrl.GetUrgentNews)
	news.Get("/:id", ctrl.GetNewsItem)

	manage := auth.OnlyRoles("Only coordinators can manage news", constants.CoordinatorAndAbove...)
	news.Post("/", manage, ctrl.CreateNews)
	news.Put("/:id", manage, ctrl.UpdateNews)
	news.Delete("/:id", manage, ctrl.DeleteNews)
}
