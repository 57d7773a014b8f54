package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire/date-column format used everywhere in this system.
const DateLayout = "2006-01-02"

// PendingReceiptRow is one user-staged receipt line awaiting submission.
// PurchaseOrder, PartNumber and PartName are fixed at creation; the rest is
// editable through the grid adapter. MarkedForDeletion is transient UI state
// and never reaches the write store.
type PendingReceiptRow struct {
	ReceivingDate     string // YYYY-MM-DD
	PurchaseOrder     string
	PartNumber        string
	PartName          string
	Version           string
	Lot               string
	ExpiryDate        string // YYYY-MM-DD, may be empty until edited
	ConfirmedQty      decimal.Decimal
	ScheduledQty      decimal.Decimal // carried along for the write store, zero when manually entered
	MarkedForDeletion bool
}

// HasLot reports whether the lot holds anything besides whitespace.
// An empty lot blocks submission.
func (r PendingReceiptRow) HasLot() bool {
	return strings.TrimSpace(r.Lot) != ""
}

// DuplicateKey is the tuple the duplicate policy operates on.
func (r PendingReceiptRow) DuplicateKey() string {
	return r.PurchaseOrder + "\x1f" + r.PartNumber + "\x1f" + r.Lot + "\x1f" + r.Version
}

// StagingKey identifies a staged line for dedupe-on-add (lot is user input
// and still empty at add time, so it is not part of this key).
func (r PendingReceiptRow) StagingKey() string {
	return r.PurchaseOrder + "\x1f" + r.PartNumber + "\x1f" + r.Version
}

// SubmissionBatch is the row set handed to the write store: deletion-marked
// rows and transient columns already stripped, confirmation timestamp
// attached server-side.
type SubmissionBatch struct {
	ID          string
	Rows        []PendingReceiptRow
	ConfirmedAt time.Time
}
