package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"github.com/rodrigospisila/parish-backend/internals/configs"
	database "github.com/rodrigospisila/parish-backend/internals/databases"
	"github.com/rodrigospisila/parish-backend/internals/middlewares"
	"github.com/rodrigospisila/parish-backend/internals/middlewares/logger"
	routes "github.com/rodrigospisila/parish-backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	app.Use(middlewares.RecoveryMiddleware())
	app.Use(middlewares.CorsMiddleware())
	app.Use(logger.RequestLogger())
	app.Use(middlewares.GlobalRateLimiter())

	database.ConnectDB()
	database.TunePool()

	routes.SetupRoutes(app, database.DB)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		configs.Log.Infof("listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			configs.Log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close()
}
