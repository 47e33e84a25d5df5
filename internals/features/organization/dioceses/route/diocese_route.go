package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/constants"
	"github.com/rodrigospisila/parish-backend/internals/features/organization/dioceses/controller"
	"github.com/rodrigospisila/parish-backend/internals/middlewares/auth"
)

func DioceseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDioceseController(db)

	dioceses := api.Group("/dioceses")
	dioceses.Get("/", ctrl.GetDioceses)
	dioceses.Get("/:id", ctrl.GetDiocese)
	dioceses.Put("/:id",
		auth.OnlyRoles("Only administrators can update dioceses", constants.AdminRoles...),
		ctrl.UpdateDiocese)

	dioceses.Post("/",
		auth.OnlyRoles("Only system administrators can create dioceses", constants.SystemAdminOnly...),
		ctrl.CreateDiocese)
	dioceses.Delete("/:id",
		auth.OnlyRoles("Only system administrators can delete dioceses", constants.SystemAdminOnly...),
		ctrl.DeleteDiocese)
}
