package health

import (
	"image-proxy/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Health feature.
func NewFeature(cfg storage.Config, newClient func() (storage.Client, error), logger *zap.Logger) *Feature {
	svc := NewService(cfg, newClient, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "health"
}

// IsEnabled reports whether a service client can be built.
func (f *Feature) IsEnabled() bool {
	_, err := f.service.newClient()
	return err == nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
