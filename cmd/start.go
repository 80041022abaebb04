package cmd

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"image-proxy/core/config"
	"image-proxy/core/loader"
	"image-proxy/core/logger"
	"image-proxy/core/metrics"
	"image-proxy/core/middleware/rayid"
	"image-proxy/core/storage"

	"image-proxy/feature/health"
	"image-proxy/feature/images"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the image proxy server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Storage.HasPublicURL() {
			logg.Warn("SUPABASE_URL not configured, public redirects disabled")
		}

		// 3. Storage: the service client is built on first use so a missing
		// credential only fails private downloads.
		newClient := storage.NewServiceClientFactory(cfg.Storage)
		prober := storage.NewProber(cfg.Storage)

		app := newApp(cfg, logg)

		// 4. Metrics
		var m *metrics.Metrics
		if cfg.Metrics.Enabled {
			m = metrics.New()
			app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(m.Handler()))
		}

		// 5. Features
		mgr := loader.NewManager(logg)
		mgr.Register(images.NewFeature(cfg.Storage, prober, newClient, m, logg))
		mgr.Register(health.NewFeature(cfg.Storage, newClient, logg))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("address", cfg.Server.Address()),
				zap.String("bucket", cfg.Storage.Bucket()),
				zap.String("driver", cfg.Storage.Driver))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// newApp builds the Fiber application with the global middleware chain.
func newApp(cfg *config.Config, logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           cfg.Server.ReadTimeout(),
		WriteTimeout:          cfg.Server.WriteTimeout(),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).SendString(fe.Message)
			}
			return c.Status(fiber.StatusInternalServerError).SendString("Internal server error")
		},
	})

	// RayID must be first to trace everything
	app.Use(rayid.New())
	app.Use(recover.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	return app
}

func init() {
	RootCmd.AddCommand(startCmd)
}
