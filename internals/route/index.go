package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/configs"
	EventRoute "github.com/rodrigospisila/parish-backend/internals/features/events/route"
	LiturgyRoute "github.com/rodrigospisila/parish-backend/internals/features/liturgy/route"
	MassIntentionRoute "github.com/rodrigospisila/parish-backend/internals/features/mass_intentions/route"
	MassScheduleRoute "github.com/rodrigospisila/parish-backend/internals/features/mass_schedules/route"
	MemberRoute "github.com/rodrigospisila/parish-backend/internals/features/members/route"
	NewsRoute "github.com/rodrigospisila/parish-backend/internals/features/news/route"
	CommunityRoute "github.com/rodrigospisila/parish-backend/internals/features/organization/communities/route"
	DioceseRoute "github.com/rodrigospisila/parish-backend/internals/features/organization/dioceses/route"
	ParishRoute "github.com/rodrigospisila/parish-backend/internals/features/organization/parishes/route"
	PastoralRoute "github.com/rodrigospisila/parish-backend/internals/features/pastorals/route"
	PrayerRequestRoute "github.com/rodrigospisila/parish-backend/internals/features/prayer_requests/route"
	ScheduleRoute "github.com/rodrigospisila/parish-backend/internals/features/schedules/route"
	AuthRoute "github.com/rodrigospisila/parish-backend/internals/features/users/auth/route"
	UserRoute "github.com/rodrigospisila/parish-backend/internals/features/users/users/route"
	"github.com/rodrigospisila/parish-backend/internals/middlewares/auth"
)

// SetupRoutes mounts the public auth endpoints and then every feature
// group behind the JWT middleware, all under the configured API prefix.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(configs.APIPrefix)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	AuthRoute.AuthPublicRoutes(api, db)

	protected := api.Group("", auth.AuthMiddleware(db))
	AuthRoute.AuthProtectedRoutes(protected, db)
	DioceseRoute.DioceseRoutes(protected, db)
	ParishRoute.ParishRoutes(protected, db)
	CommunityRoute.CommunityRoutes(protected, db)
	MemberRoute.MemberRoutes(protected, db)
	PastoralRoute.PastoralRoutes(protected, db)
	EventRoute.EventRoutes(protected, db)
	ScheduleRoute.ScheduleRoutes(protected, db)
	MassIntentionRoute.MassIntentionRoutes(protected, db)
	MassScheduleRoute.MassScheduleRoutes(protected, db)
	NewsRoute.NewsRoutes(protected, db)
	PrayerRequestRoute.PrayerRequestRoutes(protected, db)
	UserRoute.UserRoutes(protected, db)
	LiturgyRoute.LiturgyRoutes(protected)
}
