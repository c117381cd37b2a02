package http

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type Options struct {
	BodyLimit      int
	AllowedOrigins string
	Logger         *slog.Logger
}

// NewApp wires middleware and routes around h.
func NewApp(h *Handler, opts Options) *fiber.App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	origins := opts.AllowedOrigins
	if strings.TrimSpace(origins) == "" {
		origins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		BodyLimit:             opts.BodyLimit,
		ErrorHandler:          ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(logger))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions}, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get(HealthPath, h.Health)
	app.All(GeneratePath, h.Generate)
	return app
}
