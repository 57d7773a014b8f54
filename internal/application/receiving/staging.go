package receiving

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BoostersSCM/Input-Management/internal/domain"
	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
	"github.com/BoostersSCM/Input-Management/pkg/config"
)

// RowSeed is what Add consumes: either a picked source row or a manual form
// entry. Zero-value fields fall back to the workflow defaults.
type RowSeed struct {
	ReceivingDate string // empty -> today
	PurchaseOrder string
	PartNumber    string
	PartName      string
	Version       string
	Lot           string
	ExpiryDate    string
	ConfirmedQty  *decimal.Decimal // nil -> 0 or the scheduled qty, per policy
	ScheduledQty  decimal.Decimal
}

// SeedFromSource builds a seed from a filtered source-view row.
func SeedFromSource(r entity.SourceRow) RowSeed {
	return RowSeed{
		PurchaseOrder: r.PurchaseOrder,
		PartNumber:    r.PartNumber,
		PartName:      r.PartName,
		Version:       r.Version,
		ScheduledQty:  r.ScheduledQty,
	}
}

// StagingList is the in-session ordered collection of pending receipt rows.
// It is an explicit state object owned by exactly one session and handed
// into every command handler; nothing here is ambient or shared.
type StagingList struct {
	rows []entity.PendingReceiptRow
}

// NewStagingList returns an empty list.
func NewStagingList() *StagingList {
	return &StagingList{}
}

// Len reports the number of staged rows.
func (l *StagingList) Len() int { return len(l.rows) }

// Rows returns a copy of the staged rows in insertion order.
func (l *StagingList) Rows() []entity.PendingReceiptRow {
	out := make([]entity.PendingReceiptRow, len(l.rows))
	copy(out, l.rows)
	return out
}

// row exposes a staged row for in-place edits (grid adapter only).
func (l *StagingList) row(index int) (*entity.PendingReceiptRow, error) {
	if index < 0 || index >= len(l.rows) {
		return nil, domain.ErrIndexOutOfRange
	}
	return &l.rows[index], nil
}

// Add converts each seed into a pending receipt row and appends it,
// preserving input order. Under the dedupe_on_add policy, seeds whose
// (PO, part, version) tuple is already staged are skipped. Returns the
// number of rows actually appended.
func (l *StagingList) Add(seeds []RowSeed, pol Policy, now time.Time) int {
	staged := make(map[string]struct{}, len(l.rows))
	if pol.DuplicatePolicy == config.DuplicateDedupeOnAdd {
		for _, r := range l.rows {
			staged[r.StagingKey()] = struct{}{}
		}
	}

	added := 0
	today := now.Format(entity.DateLayout)
	for _, s := range seeds {
		row := entity.PendingReceiptRow{
			ReceivingDate: s.ReceivingDate,
			PurchaseOrder: s.PurchaseOrder,
			PartNumber:    s.PartNumber,
			PartName:      s.PartName,
			Version:       s.Version,
			Lot:           s.Lot,
			ExpiryDate:    s.ExpiryDate,
			ScheduledQty:  s.ScheduledQty,
		}
		if row.ReceivingDate == "" {
			row.ReceivingDate = today
		}
		switch {
		case s.ConfirmedQty != nil:
			row.ConfirmedQty = *s.ConfirmedQty
		case pol.CopyScheduledQty:
			row.ConfirmedQty = s.ScheduledQty
		default:
			row.ConfirmedQty = decimal.Zero
		}

		if pol.DuplicatePolicy == config.DuplicateDedupeOnAdd {
			if _, ok := staged[row.StagingKey()]; ok {
				continue
			}
			staged[row.StagingKey()] = struct{}{}
		}
		l.rows = append(l.rows, row)
		added++
	}
	return added
}

// Remove deletes the rows at the given indices, preserving the relative
// order of the remainder. Every index must be in range; out-of-range input
// leaves the list untouched.
func (l *StagingList) Remove(indices []int) error {
	if len(indices) == 0 {
		return nil
	}
	drop := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(l.rows) {
			return domain.ErrIndexOutOfRange
		}
		drop[i] = struct{}{}
	}
	kept := l.rows[:0]
	for i, r := range l.rows {
		if _, ok := drop[i]; !ok {
			kept = append(kept, r)
		}
	}
	l.rows = kept
	return nil
}

// SetMark toggles the transient deletion mark on one row. Marks are tracked
// independently of cell edits.
func (l *StagingList) SetMark(index int, marked bool) error {
	r, err := l.row(index)
	if err != nil {
		return err
	}
	r.MarkedForDeletion = marked
	return nil
}

// RemoveMarked drops every row carrying the deletion mark and returns how
// many were removed.
func (l *StagingList) RemoveMarked() int {
	var indices []int
	for i, r := range l.rows {
		if r.MarkedForDeletion {
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)
	_ = l.Remove(indices) // indices come from the list itself, always in range
	return len(indices)
}

// Clear empties the list unconditionally.
func (l *StagingList) Clear() {
	l.rows = nil
}

// submittable returns the rows that would form the submission batch:
// deletion-marked rows dropped and the transient mark stripped.
func (l *StagingList) submittable() []entity.PendingReceiptRow {
	var out []entity.PendingReceiptRow
	for _, r := range l.rows {
		if r.MarkedForDeletion {
			continue
		}
		r.MarkedForDeletion = false
		out = append(out, r)
	}
	return out
}
