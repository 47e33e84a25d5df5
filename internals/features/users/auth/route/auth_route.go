package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/features/users/auth/controller"
	"github.com/rodrigospisila/parish-backend/internals/middlewares"
)

// AuthPublicRoutes are mounted before the auth middleware.
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	authGroup.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	authGroup.Post("/refresh", ctrl.Refresh)
}

// AuthProtectedRoutes are mounted behind the auth middleware.
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	authGroup := api.Group("/auth")
	authGroup.Post("/logout", ctrl.Logout)
	authGroup.Get("/me", ctrl.Me)
}
