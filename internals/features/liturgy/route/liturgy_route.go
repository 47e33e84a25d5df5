package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rodrigospisila/parish-backend/internals/features/liturgy/controller"
)

func LiturgyRoutes(api fiber.Router) {
	ctrl := controller.NewLiturgyController()

	liturgy := api.Group("/liturgy")
	liturgy.Get("/today", ctrl.GetTodayLiturgy)
	liturgy.Get("/:date", ctrl.GetLiturgyByDate)
}
