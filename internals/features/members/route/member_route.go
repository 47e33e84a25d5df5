package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/constants"
	"github.com/rodrigospisila/parish-backend/internals/features/members/controller"
	"github.com/rodrigospisila/parish-backend/internals/middlewares/auth"
)

func MemberRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMemberController(db)

	members := api.Group("/members")
	members.Get("/", ctrl.GetMembers)
	members.Get("/search", ctrl.SearchMembers)
	members.Get("/:id", ctrl.GetMember)
	members.Get("/:id/export", ctrl.ExportMember)

	manage := auth.OnlyRoles("Only coordinators and above can manage members", constants.CoordinatorAndAbove...)
	members.Post("/", manage, ctrl.CreateMember)
	members.Put("/:id", manage, ctrl.UpdateMember)
	members.Delete("/:id", manage, ctrl.DeleteMember)
	members.Post("/:id/anonymize", manage, ctrl.AnonymizeMember)
	members.Patch("/:id/consent", manage, ctrl.UpdateConsent)
}
