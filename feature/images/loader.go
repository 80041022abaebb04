package images

import (
	"image-proxy/core/metrics"
	"image-proxy/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Images feature.
func NewFeature(cfg storage.Config, prober storage.Prober, newClient ClientFactory, m *metrics.Metrics, logger *zap.Logger) *Feature {
	svc := NewService(cfg, prober, newClient, m, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "images"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
