package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BoostersSCM/Input-Management/internal/application/history"
	"github.com/BoostersSCM/Input-Management/internal/application/receiving"
	"github.com/BoostersSCM/Input-Management/internal/infrastructure/excel"
	"github.com/BoostersSCM/Input-Management/internal/infrastructure/pdf"
	"github.com/BoostersSCM/Input-Management/pkg/logger"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	Cache     *receiving.SourceCache
	Grid      *receiving.GridAdapter
	Submit    *receiving.SubmitUseCase
	Policy    receiving.Policy
	Sessions  *receiving.SessionStore
	HistoryUC *history.UseCase
	Exporter  *excel.HistoryExporter
	Reports   *pdf.ScheduleReportGenerator
	Log       *logger.Logger
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Cascading dropdown source (shared cache, no session needed)
	source := api.Group("/source")
	sourceHandler := NewSourceHandler(deps.Cache, deps.Log)
	source.Get("/brands", sourceHandler.Brands)
	source.Get("/parts", sourceHandler.Parts)
	source.Get("/orders", sourceHandler.Orders)
	source.Post("/refresh", sourceHandler.Refresh)

	// Staging list (session-scoped)
	staging := api.Group("/staging", SessionMiddleware(deps.Sessions))
	stagingHandler := NewStagingHandler(deps.Grid, deps.Submit, deps.Cache, deps.Policy, deps.Log)
	staging.Get("/", stagingHandler.Grid)
	staging.Delete("/", stagingHandler.Clear)
	staging.Post("/rows", stagingHandler.AddRows)
	staging.Delete("/rows", stagingHandler.RemoveRows)
	staging.Patch("/rows/:index", stagingHandler.EditCell)
	staging.Post("/rows/:index/mark", stagingHandler.Mark)
	staging.Post("/submit", stagingHandler.Submit)

	// Reporting views
	historyHandler := NewHistoryHandler(deps.HistoryUC, deps.Exporter, deps.Reports, deps.Log)
	api.Get("/history", historyHandler.List)
	api.Get("/history/export", historyHandler.Export)
	api.Get("/calendar/events", historyHandler.CalendarEvents)
	api.Get("/reports/schedule.pdf", historyHandler.SchedulePDF)
}
