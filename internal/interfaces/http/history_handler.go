package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/BoostersSCM/Input-Management/internal/application/dto"
	"github.com/BoostersSCM/Input-Management/internal/application/history"
	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
	"github.com/BoostersSCM/Input-Management/internal/infrastructure/excel"
	"github.com/BoostersSCM/Input-Management/internal/infrastructure/pdf"
	"github.com/BoostersSCM/Input-Management/pkg/logger"
)

// HistoryHandler serves the read-only reporting views: the history table,
// its XLSX export, the calendar feed and the daily schedule PDF.
type HistoryHandler struct {
	uc       *history.UseCase
	exporter *excel.HistoryExporter
	reports  *pdf.ScheduleReportGenerator
	log      *logger.Logger
}

// NewHistoryHandler builds the handler.
func NewHistoryHandler(uc *history.UseCase, exporter *excel.HistoryExporter, reports *pdf.ScheduleReportGenerator, log *logger.Logger) *HistoryHandler {
	return &HistoryHandler{uc: uc, exporter: exporter, reports: reports, log: log}
}

// filterFromQuery reads the shared history filter from the query string.
// brand is comma-separated; from/to are YYYY-MM-DD.
func filterFromQuery(c *fiber.Ctx) (history.Filter, error) {
	var f history.Filter
	if raw := c.Query("brand"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				f.Brands = append(f.Brands, b)
			}
		}
	}
	f.Search = c.Query("search")
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(entity.DateLayout, raw)
		if err != nil {
			return f, err
		}
		f.From = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(entity.DateLayout, raw)
		if err != nil {
			return f, err
		}
		f.To = t
	}
	return f, nil
}

// List godoc
// @Summary      Scheduled receipt history
// @Tags         history
// @Produce      json
// @Param        brand   query  string  false  "comma-separated brand filter; empty uses the configured defaults"
// @Param        search  query  string  false  "part number or name, case-insensitive substring"
// @Param        from    query  string  false  "inclusive lower scheduled-date bound (YYYY-MM-DD)"
// @Param        to      query  string  false  "inclusive upper scheduled-date bound (YYYY-MM-DD)"
// @Success      200  {object}  dto.HistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "from/to must be YYYY-MM-DD",
		})
	}

	rows, err := h.uc.List(c.Context(), f)
	if err != nil {
		h.log.Error().Err(err).Msg("history read failed")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "SOURCE_UNAVAILABLE", Message: sourceUnavailableMsg,
		})
	}

	out := make([]dto.HistoryRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.HistoryRowDTO{
			ScheduledDate: r.ScheduledDate.Format(entity.DateLayout),
			Brand:         r.Brand,
			PurchaseOrder: r.PurchaseOrder,
			PartNumber:    r.PartNumber,
			PartName:      r.PartName,
			Version:       r.Version,
			ScheduledQty:  r.ScheduledQty.StringFixed(0),
		})
	}
	return c.JSON(dto.HistoryResponse{Rows: out, Total: len(out)})
}

// Export godoc
// @Summary      Download the filtered history as an XLSX workbook
// @Tags         history
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/history/export [get]
func (h *HistoryHandler) Export(c *fiber.Ctx) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "from/to must be YYYY-MM-DD",
		})
	}

	rows, err := h.uc.List(c.Context(), f)
	if err != nil {
		h.log.Error().Err(err).Msg("history read failed")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "SOURCE_UNAVAILABLE", Message: sourceUnavailableMsg,
		})
	}

	data, err := h.exporter.Export(rows)
	if err != nil {
		h.log.Error().Err(err).Msg("xlsx export failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "could not build the workbook",
		})
	}

	name := "scheduled_receipts_" + time.Now().Format("20060102") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(data)
}

// CalendarEvents godoc
// @Summary      Scheduled receipts as calendar events
// @Description  One event per part and date, titled "Part Name (1,234)".
// @Tags         history
// @Produce      json
// @Success      200  {array}  history.Event
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/calendar/events [get]
func (h *HistoryHandler) CalendarEvents(c *fiber.Ctx) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "from/to must be YYYY-MM-DD",
		})
	}

	events, err := h.uc.CalendarEvents(c.Context(), f)
	if err != nil {
		h.log.Error().Err(err).Msg("history read failed")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "SOURCE_UNAVAILABLE", Message: sourceUnavailableMsg,
		})
	}
	return c.JSON(events)
}

// SchedulePDF godoc
// @Summary      One-day receiving schedule as a PDF
// @Tags         history
// @Produce      application/pdf
// @Param        date  query  string  false  "schedule date (YYYY-MM-DD), defaults to today"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/schedule.pdf [get]
func (h *HistoryHandler) SchedulePDF(c *fiber.Ctx) error {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		t, err := time.Parse(entity.DateLayout, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "date must be YYYY-MM-DD",
			})
		}
		date = t
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	rows, err := h.uc.List(c.Context(), history.Filter{From: day, To: day})
	if err != nil {
		h.log.Error().Err(err).Msg("history read failed")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "SOURCE_UNAVAILABLE", Message: sourceUnavailableMsg,
		})
	}

	data, err := h.reports.Generate(day, rows)
	if err != nil {
		h.log.Error().Err(err).Msg("schedule pdf failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "could not build the report",
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="schedule_`+day.Format("20060102")+`.pdf"`)
	return c.Send(data)
}
