package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceRow is one expected/scheduled receipt loaded from the ERP read
// store: one line per (brand, scheduled date, PO, part, name, version) with
// the scheduled quantity summed. Immutable within a session; refreshed by
// re-running the read query.
type SourceRow struct {
	Brand         string
	PurchaseOrder string
	PartNumber    string
	PartName      string
	Version       string
	ScheduledDate time.Time
	ScheduledQty  decimal.Decimal
}
