// Package excel renders the scheduled-receipt history as an XLSX download.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
)

const sheetName = "Scheduled Receipts"

var headers = []string{
	"Scheduled Date", "Brand", "PO No.", "Part No.", "Part Name", "Version", "Scheduled Qty",
}

// HistoryExporter writes history rows into a workbook.
type HistoryExporter struct{}

// NewHistoryExporter builds the exporter.
func NewHistoryExporter() *HistoryExporter { return &HistoryExporter{} }

// Export renders the rows into XLSX bytes, one row per history line in the
// order given, with a frozen header row.
func (e *HistoryExporter) Export(rows []entity.SourceRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for rowIdx, r := range rows {
		values := []any{
			r.ScheduledDate.Format(entity.DateLayout),
			r.Brand,
			r.PurchaseOrder,
			r.PartNumber,
			r.PartName,
			r.Version,
			r.ScheduledQty.IntPart(),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", rowIdx, err)
			}
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
