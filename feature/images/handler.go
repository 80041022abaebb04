package images

import (
	"errors"
	"fmt"
	"net/url"

	"image-proxy/core/logger"
	"image-proxy/core/metrics"
	"image-proxy/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Cache policies for the two retrieval routes.
const (
	PublicCacheControl  = "public, max-age=31536000, immutable"
	PrivateCacheControl = "public, max-age=60, s-maxage=3600, stale-while-revalidate=86400"
)

// Handler handles HTTP requests for images.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the image routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/images")
	group.Get("/*", h.HandleGetImage)
}

// HandleGetImage serves an image from storage.
// @Summary Get Image
// @Description Redirects to the public object URL when it is served, otherwise streams the object downloaded with the service credential.
// @Tags images
// @Produce octet-stream
// @Param path path string true "Object path (e.g. 'blog/cover.png')"
// @Param bucket query string false "Bucket override"
// @Success 200 {file} binary "Image"
// @Success 302 "Redirect to public URL"
// @Failure 400 {string} string "Bad request"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Upstream error"
// @Router /api/images/{path} [get]
func (h *Handler) HandleGetImage(c *fiber.Ctx) (err error) {
	l := logger.WithRayID(h.service.logger, c)

	defer func() {
		if r := recover(); r != nil {
			l.Error("Unexpected error in image proxy", zap.Error(fmt.Errorf("panic: %v", r)))
			err = h.reply(c, metrics.RouteError, fiber.StatusInternalServerError, "Internal server error")
		}
	}()

	rawPath, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return h.reply(c, metrics.RouteRejected, fiber.StatusBadRequest, "Bad request")
	}

	target, err := ParseTarget(rawPath, c.Query("bucket"), h.service.DefaultBucket())
	if err != nil {
		return h.reply(c, metrics.RouteRejected, fiber.StatusBadRequest, "Bad request")
	}
	l = l.With(zap.String("bucket", target.Bucket), zap.String("path", target.Path))

	ctx := c.Context()

	publicURL, err := h.service.ProbePublic(ctx, target)
	switch {
	case err == nil:
		c.Set(fiber.HeaderCacheControl, PublicCacheControl)
		h.service.metrics.ObserveResponse(metrics.RoutePublic, fiber.StatusFound)
		return c.Redirect(publicURL, fiber.StatusFound)
	case errors.Is(err, ErrNoPublicURL):
	default:
		var storageErr *storage.Error
		if errors.As(err, &storageErr) {
			l.Debug("Object not publicly served", zap.Int("status", storageErr.StatusCode))
		} else {
			l.Warn("Public URL check failed", zap.Error(err))
		}
	}

	body, err := h.service.FetchPrivate(ctx, target)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound):
		return h.reply(c, metrics.RoutePrivate, fiber.StatusNotFound, "Not found")
	case errors.Is(err, ErrUpstream):
		l.Error("Storage download failed", zap.Error(err))
		return h.reply(c, metrics.RoutePrivate, fiber.StatusInternalServerError, "Upstream error")
	default:
		l.Error("Unexpected error in image proxy", zap.Error(err))
		return h.reply(c, metrics.RouteError, fiber.StatusInternalServerError, "Internal server error")
	}

	c.Set(fiber.HeaderContentType, target.MIME)
	c.Set(fiber.HeaderCacheControl, PrivateCacheControl)
	h.service.metrics.ObserveResponse(metrics.RoutePrivate, fiber.StatusOK)
	return c.Status(fiber.StatusOK).Send(body)
}

func (h *Handler) reply(c *fiber.Ctx, route string, status int, msg string) error {
	h.service.metrics.ObserveResponse(route, status)
	return c.Status(status).SendString(msg)
}
