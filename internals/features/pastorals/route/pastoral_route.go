package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/constants"
	"github.com/rodrigospisila/parish-backend/internals/features/pastorals/controller"
	"github.com/rodrigospisila/parish-backend/internals/middlewares/auth"
)

func PastoralRoutes(api fiber.Router, db *gorm.DB) {
	globalCtrl := controller.NewGlobalPastoralController(db)
	communityCtrl := controller.NewCommunityPastoralController(db)

	pastorals := api.Group("/pastorals")

	// Global catalog. Writes are system-admin only.
	global := pastorals.Group("/global")
	global.Get("/", globalCtrl.GetGlobalPastorals)
	global.Get("/:id", globalCtrl.GetGlobalPastoral)
	systemOnly := auth.OnlyRoles("Only system administrators manage the pastoral catalog", constants.SystemAdminOnly...)
	global.Post("/", systemOnly, globalCtrl.CreateGlobalPastoral)
	global.Put("/:id", systemOnly, globalCtrl.UpdateGlobalPastoral)
	global.Delete("/:id", systemOnly, globalCtrl.DeleteGlobalPastoral)

	// Community pastorals. The resolver handles the pastoral-coordinator
	// grant, so the route gate stays wide.
	manage := auth.OnlyRoles("Only coordinators and above can manage pastorals", constants.PastoralCoordinatorAndAbove...)

	pastorals.Get("/", communityCtrl.GetCommunityPastorals)
	pastorals.Post("/", auth.OnlyRoles("Only coordinators and above can create pastorals", constants.CoordinatorAndAbove...), communityCtrl.CreateCommunityPastoral)
	pastorals.Post("/groups", manage, communityCtrl.CreatePastoralGroup)
	pastorals.Delete("/groups/:groupId", manage, communityCtrl.DeletePastoralGroup)
	pastorals.Get("/:id", communityCtrl.GetCommunityPastoral)
	pastorals.Put("/:id", manage, communityCtrl.UpdateCommunityPastoral)
	pastorals.Delete("/:id", manage, communityCtrl.DeleteCommunityPastoral)
	pastorals.Get("/:id/groups", communityCtrl.GetPastoralGroups)
	pastorals.Get("/:id/members", communityCtrl.GetPastoralMembers)
	pastorals.Get("/:id/coordinators", communityCtrl.GetPastoralCoordinators)
	pastorals.Post("/:id/members", manage, communityCtrl.AddPastoralMember)
	pastorals.Put("/:id/members/:memberId", manage, communityCtrl.UpdatePastoralMember)
	pastorals.Delete("/:id/members/:memberId", manage, communityCtrl.RemovePastoralMember)
}
