package health

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"image-proxy/core/storage"
	"image-proxy/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, cfg storage.Config, clientErr error) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	factory := func() (storage.Client, error) {
		if clientErr != nil {
			return nil, clientErr
		}
		return mockClient, nil
	}
	NewHandler(NewService(cfg, factory, zap.NewNop())).RegisterRoutes(app)
	return app, mockClient
}

func TestHandleHealthCheck(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		app, mockClient := setupTestApp(t, storage.Config{URL: "https://x.supabase.co", BucketName: "blog"}, nil)
		mockClient.On("BucketExists", mock.Anything, "blog").Return(true, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			Status string `json:"status"`
			Report Report `json:"report"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ok", body.Status)
		assert.Equal(t, Report{Bucket: "blog", Driver: storage.DriverREST, Exists: true, Public: true}, body.Report)
	})

	t.Run("BucketMissing", func(t *testing.T) {
		app, mockClient := setupTestApp(t, storage.Config{}, nil)
		mockClient.On("BucketExists", mock.Anything, storage.DefaultBucket).Return(false, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
	})

	t.Run("BackendError", func(t *testing.T) {
		app, mockClient := setupTestApp(t, storage.Config{}, nil)
		mockClient.On("BucketExists", mock.Anything, storage.DefaultBucket).Return(false, assert.AnError)

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, map[string]any{"status": "unavailable"}, body)
	})

	t.Run("NoClient", func(t *testing.T) {
		app, _ := setupTestApp(t, storage.Config{}, storage.ErrURLNotConfigured)

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
	})
}
