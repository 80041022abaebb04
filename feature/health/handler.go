package health

import (
	"image-proxy/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealthCheck)
}

// HandleHealthCheck reports whether the storage backend is reachable.
// @Summary Storage Health
// @Description Checks that the default bucket is reachable with the service credential.
// @Tags health
// @Produce json
// @Success 200 {object} health.Report "Storage reachable"
// @Failure 503 {object} map[string]interface{} "Storage unavailable"
// @Router /health [get]
func (h *Handler) HandleHealthCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckBucket(c.Context())
	if err != nil {
		l.Error("Health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
		})
	}

	if !report.Exists {
		l.Warn("Default bucket missing", zap.String("bucket", report.Bucket))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"report": report,
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"report": report,
	})
}
