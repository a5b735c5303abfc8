package middleware

import (
	"time"

	"crud-backend/internal/auth"
	"crud-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RequestLogger logs each request with method, path, status, latency and
// request id, plus the caller once the auth middleware has accepted a token.
// It runs after the error handler has written the response.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}

		if userID, ok := c.Locals(auth.CtxUserIDKey).(uint); ok {
			ev = ev.Uint("user_id", userID)
		}
		if role, ok := c.Locals(auth.CtxUserRoleKey).(models.UserRole); ok {
			ev = ev.Str("user_role", string(role))
		}

		ev.Interface("request_id", c.Locals("requestid")).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")

		return nil
	}
}
