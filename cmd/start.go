package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"china-division/core/config"
	"china-division/core/database"
	"china-division/core/loader"
	"china-division/core/logger"
	"china-division/core/metrics"
	"china-division/core/middleware/auth"
	"china-division/core/middleware/rayid"

	"china-division/feature/integrity"
	"china-division/feature/lookup"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the division lookup server",
	Long:  `Loads the dataset, starts the HTTP server and initializes all enabled features.`,
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

		// 3. Load Dataset
		resolver, err := openResolver(cmd.Context(), cfg, logg)
		if err != nil {
			logg.Fatal("Failed to load dataset", zap.Error(err))
		}

		// 4. Connect to Database (Optional, only the schema check needs it)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to export database", zap.String("driver", cfg.Database.Driver))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(lookup.NewFeature(resolver, logg))
		mgr.Register(integrity.NewFeature(resolver, db, logg))

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

		// Metrics stay public for scrapers
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		if !cfg.Server.AuthEnabled() {
			logg.Warn("API key is empty, requests are not authenticated")
		}

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
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

func init() {
	RootCmd.AddCommand(startCmd)
}
