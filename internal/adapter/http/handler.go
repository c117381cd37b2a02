package http

import (
	"fmt"
	"log/slog"

	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const (
	GeneratePath = "/api/generate"
	HealthPath   = "/health"

	// GenerateFailedMessage is the only body a failed generation returns.
	GenerateFailedMessage = "Erro ao gerar o PDF"
	pdfFilename           = "curriculo.pdf"
	serviceName           = "resume-builder"
)

type Handler struct {
	processor *usecase.Processor
	logger    *slog.Logger
	version   string
}

func NewHandler(p *usecase.Processor, logger *slog.Logger, version string) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{processor: p, logger: logger, version: version}
}

// Generate renders the posted record and answers with the PDF. Every
// failure gets the same generic 500; the cause is only logged.
func (h *Handler) Generate(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		c.Set(fiber.HeaderAllow, fiber.MethodPost)
		return c.Status(fiber.StatusMethodNotAllowed).
			SendString(fmt.Sprintf("Method %s Not Allowed", c.Method()))
	}

	gen := domain.NewGeneration(requestID(c))
	gen.Metadata["body_bytes"] = len(c.Body())

	pdf, err := h.processor.Generate(c.UserContext(), gen, c.Body())
	if err != nil {
		h.logger.Error("generation failed", gen.LogAttrs()...)
		return generateFailed(c)
	}
	h.logger.Info("generation finished", gen.LogAttrs()...)

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+pdfFilename)
	return c.Status(fiber.StatusOK).Send(pdf)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": serviceName,
		"version": h.version,
	})
}

func generateFailed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusInternalServerError).SendString(GenerateFailedMessage)
}

func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
