package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one entry per request.
func RequestLogger(c *fiber.Ctx) error {
	start := time.Now()

	err := c.Next()
	if err != nil {
		// let the error handler write the response so the logged status is final
		if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
			c.Status(fiber.StatusInternalServerError)
		}
	}

	entry := logrus.WithFields(logrus.Fields{
		"method":   c.Method(),
		"path":     c.Path(),
		"status":   c.Response().StatusCode(),
		"duration": time.Since(start).String(),
		"ip":       c.IP(),
	})

	switch status := c.Response().StatusCode(); {
	case status >= fiber.StatusInternalServerError:
		entry.Error("HTTP request")
	case status >= fiber.StatusBadRequest:
		entry.Warn("HTTP request")
	default:
		entry.Info("HTTP request")
	}

	return nil
}
