package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/rodrigospisila/parish-backend/internals/configs"
)

// RequestLogger logs every request as a structured entry.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		entry := configs.Log.WithFields(logrus.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  c.Response().StatusCode(),
			"ip":      c.IP(),
			"latency": time.Since(start).String(),
		})
		if err != nil {
			entry.WithError(err).Warn("request failed")
			return err
		}
		entry.Info("request handled")
		return nil
	}
}
