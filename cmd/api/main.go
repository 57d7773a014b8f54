package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/BoostersSCM/Input-Management/internal/application/history"
	"github.com/BoostersSCM/Input-Management/internal/application/receiving"
	"github.com/BoostersSCM/Input-Management/internal/infrastructure/excel"
	infrapdf "github.com/BoostersSCM/Input-Management/internal/infrastructure/pdf"
	"github.com/BoostersSCM/Input-Management/internal/infrastructure/postgres"
	httpRouter "github.com/BoostersSCM/Input-Management/internal/interfaces/http"
	"github.com/BoostersSCM/Input-Management/pkg/config"
	"github.com/BoostersSCM/Input-Management/pkg/logger"

	_ "github.com/BoostersSCM/Input-Management/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()

	// Read store: the ERP's scheduled-receipt view.
	erpPool, err := postgres.NewPool(ctx, cfg.ERPDB)
	if err != nil {
		log.Fatal().Err(err).Msg("ERP database connection")
	}
	defer erpPool.Close()

	// Write store: confirmed receipt batches.
	scmPool, err := postgres.NewPool(ctx, cfg.SCMDB)
	if err != nil {
		log.Fatal().Err(err).Msg("SCM database connection")
	}
	defer scmPool.Close()

	sourceRepo := postgres.NewSourceRepository(erpPool, cfg.Receiving.HistoryWindowDays)
	receiptRepo := postgres.NewReceiptRepository(scmPool)

	policy := receiving.PolicyFromConfig(cfg.Receiving)
	cache := receiving.NewSourceCache(sourceRepo)
	submitUC := receiving.NewSubmitUseCase(receiptRepo, cache, policy)
	historyUC := history.NewUseCase(sourceRepo, cfg.Receiving.Brands)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Input Management API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Cache:     cache,
		Grid:      receiving.NewGridAdapter(policy),
		Submit:    submitUC,
		Policy:    policy,
		Sessions:  receiving.NewSessionStore(),
		HistoryUC: historyUC,
		Exporter:  excel.NewHistoryExporter(),
		Reports:   infrapdf.NewScheduleReportGenerator(),
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
