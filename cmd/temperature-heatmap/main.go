package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/i474232898/temperature-heatmap/internal/api/http"
	"github.com/i474232898/temperature-heatmap/internal/chart"
	"github.com/i474232898/temperature-heatmap/internal/climate/loader"
	"github.com/i474232898/temperature-heatmap/internal/config"
	"github.com/i474232898/temperature-heatmap/internal/heatmap"
	"github.com/i474232898/temperature-heatmap/internal/logger"
	"github.com/i474232898/temperature-heatmap/internal/metrics"
	"github.com/i474232898/temperature-heatmap/internal/scheduler"
	"github.com/i474232898/temperature-heatmap/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.GetLogger().Fatalw("Failed to load config", "error", err)
	}

	// .env is loaded by now, so LOG_LEVEL and ENVIRONMENT from it apply.
	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		logger.GetLogger().Fatalw("Failed to initialize logger", "error", err)
	}
	log := logger.GetLogger()
	defer logger.Close()

	// Zero timeout means the fetch may wait indefinitely.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	memStore := store.NewMemoryStore(cfg.StoreMaxHistory)
	dataLoader := loader.NewHTTPLoader(httpClient, cfg.DatasetURL, cfg.FetchRetries)
	service := heatmap.NewService(memStore, dataLoader, chart.DefaultContainer(), metrics.New(reg))

	app := fiber.New(fiber.Config{
		AppName:               "temperature-heatmap",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		_, err := service.Latest()
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "temperature-heatmap",
			"loaded":  err == nil,
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Errorw("Fiber server stopped", "error", err)
		}
	}()
	log.Infow("Listening", "port", cfg.Port, "dataset", dataLoader.URL())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The page serves a blank chart until the one load completes; a failure
	// is logged by the service and leaves it blank.
	go func() {
		_ = service.Refresh(ctx)
	}()

	sched := scheduler.New(cfg.RefreshInterval, cfg.HTTPTimeout, service)
	if err := sched.Start(); err != nil {
		log.Fatalw("Failed to start scheduler", "error", err)
	}
	defer sched.Stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorw("Error during shutdown", "error", err)
	}
}
