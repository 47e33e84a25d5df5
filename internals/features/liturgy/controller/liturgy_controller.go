package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rodrigospisila/parish-backend/internals/features/liturgy/service"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
)

type LiturgyController struct {
	Service *service.LiturgyService
}

func NewLiturgyController() *LiturgyController {
	return &LiturgyController{Service: service.NewLiturgyService()}
}

// GET /liturgy/today
func (ctrl *LiturgyController) GetTodayLiturgy(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Liturgy fetched", ctrl.Service.GetToday())
}

// GET /liturgy/:date
func (ctrl *LiturgyController) GetLiturgyByDate(c *fiber.Ctx) error {
	date := c.Params("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}
	return helper.JsonOK(c, "Liturgy fetched", ctrl.Service.GetByDate(date))
}
