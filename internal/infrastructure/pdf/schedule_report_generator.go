// Package pdf renders the daily scheduled-receipt report: the schedule for
// one receiving day, grouped by brand, handed out to the warehouse floor.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 66, Blue: 114}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ScheduleReportGenerator builds the daily schedule PDF with Maroto v2.
type ScheduleReportGenerator struct{}

// NewScheduleReportGenerator builds the generator.
func NewScheduleReportGenerator() *ScheduleReportGenerator { return &ScheduleReportGenerator{} }

// Generate renders the report for one receiving day and returns the PDF
// bytes. Rows are expected pre-filtered to that day and pre-sorted.
func (g *ScheduleReportGenerator) Generate(date time.Time, rows []entity.SourceRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Scheduled Receipts", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(date, len(rows)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}
	if len(rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No receipts scheduled for this day.", props.Text{
				Size: 9, Align: align.Center, Top: 3, Color: colorGray,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(date time.Time, count int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("RECEIVING SCHEDULE", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(date.Format(entity.DateLayout), props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d line(s)", count), props.Text{
				Size: 9, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Brand", 2, align.Left),
		h("PO No.", 2, align.Left),
		h("Part No.", 2, align.Left),
		h("Part Name", 3, align.Left),
		h("Version", 1, align.Center),
		h("Qty", 2, align.Right),
	)
}

func tableRows(rows []entity.SourceRow) []core.Row {
	cell := func(v string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(v, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			cell(r.Brand, 2, align.Left),
			cell(r.PurchaseOrder, 2, align.Left),
			cell(r.PartNumber, 2, align.Left),
			cell(r.PartName, 3, align.Left),
			cell(r.Version, 1, align.Center),
			cell(r.ScheduledQty.StringFixed(0), 2, align.Right),
		))
	}
	return result
}
