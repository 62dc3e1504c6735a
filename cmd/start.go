package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brick-manager/core/cache"
	"brick-manager/core/catalogapi"
	"brick-manager/core/config"
	"brick-manager/core/database"
	"brick-manager/core/loader"
	"brick-manager/core/logger"
	"brick-manager/core/middleware/auth"
	"brick-manager/core/middleware/rayid"
	"brick-manager/core/ratelimit"
	"brick-manager/core/redis"
	"brick-manager/core/storage"
	"brick-manager/feature/catalog"
	"brick-manager/feature/catalog/models"
	"brick-manager/feature/export"
	"brick-manager/feature/minifig"
	"brick-manager/feature/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	// mappingContextTTL bounds how stale the cached mapping tables may get
	// before a request rebuilds them.
	mappingContextTTL = 5 * time.Minute
	// existsCacheSize caps the per-process existence memo for catalog probes.
	existsCacheSize = 4096
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the brick manager server",
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

		// 3. Connect to the mapping database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to mapping database", zap.Error(err))
		}
		if missing := database.VerifyTables(db, models.Tables); len(missing) > 0 {
			logg.Warn("Mapping tables missing, lookups will run on empty context",
				zap.Strings("tables", missing),
			)
		}

		// 4. Connect to Redis for the shared rate limiter. A failed
		// connection degrades to per-process counters instead of aborting.
		var backend ratelimit.Backend
		if client, err := redis.Connect(cfg.Redis); err != nil {
			logg.Warn("Redis unavailable, rate limiting falls back to local counters", zap.Error(err))
		} else {
			backend = ratelimit.NewRedisBackend(client)
		}
		limiter := ratelimit.New(backend, logg)

		// 5. Object storage for manifest archiving (optional)
		var archiveClient storage.Client
		if cfg.Storage.Enabled {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Warn("Storage unavailable, manifest archiving disabled", zap.Error(err))
			} else if err := ensureBucket(client, cfg.Storage); err != nil {
				logg.Warn("Bucket check failed, manifest archiving disabled", zap.Error(err))
			} else {
				archiveClient = client
			}
		}

		// 6. Domain services
		apiClient := catalogapi.NewClient(cfg.CatalogAPI)
		store := catalog.NewStore(db, logg)
		provider := catalog.NewContextProvider(store, mappingContextTTL)

		validateSvc := validate.NewService(apiClient, store, provider, cache.New[string, bool](existsCacheSize), logg)
		minifigSvc := minifig.NewService(store, apiClient, logg)
		exportSvc := export.NewService(provider, archiveClient, cfg.Storage, logg)

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

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

		// Health probe stays public
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		mgr := loader.NewManager()
		mgr.Register(validate.NewFeature(validateSvc, limiter, cfg.RateLimit))
		mgr.Register(minifig.NewFeature(minifigSvc))
		mgr.Register(export.NewFeature(exportSvc))

		if err := mgr.LoadAll(app.Group("/api")); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()

		// Let in-flight mapping repairs land before the process exits.
		validateSvc.Drain()
	},
}

// ensureBucket verifies the archive bucket exists, creating it when absent.
func ensureBucket(client storage.Client, cfg storage.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.TimeoutSeconds)*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region})
}

func init() {
	RootCmd.AddCommand(startCmd)
}
