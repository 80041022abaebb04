package images

import (
	"testing"

	"image-proxy/core/storage"
	"image-proxy/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	factory := func() (storage.Client, error) { return new(mocks.Client), nil }
	feature := NewFeature(storage.Config{}, new(mocks.Prober), factory, nil, zap.NewNop())

	assert.Equal(t, "images", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
