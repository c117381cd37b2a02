package http

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs one line per request after the handler chain ran.
// Chain errors are resolved through the app's error handler first so the
// logged status is the one the client sees.
func RequestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		level := slog.LevelInfo
		if status >= fiber.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.UserContext(), level, "request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start),
			"request_id", requestID(c),
		)
		return nil
	}
}

// ErrorHandler keeps fiber's status codes for ordinary routes and turns
// everything on the generate route into its generic failure response.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger.Warn("request error", "path", c.Path(), "request_id", requestID(c), "error", err)

		if c.Path() == GeneratePath {
			return generateFailed(c)
		}
		code := fiber.StatusInternalServerError
		msg := fiber.ErrInternalServerError.Message
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code, msg = fe.Code, fe.Message
		}
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
}
