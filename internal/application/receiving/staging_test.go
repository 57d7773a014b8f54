package receiving

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoostersSCM/Input-Management/internal/domain"
	"github.com/BoostersSCM/Input-Management/pkg/config"
)

var testClock = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func allowPolicy() Policy {
	return Policy{DuplicatePolicy: config.DuplicateAllow}
}

func seed(po, part, version string) RowSeed {
	return RowSeed{
		PurchaseOrder: po,
		PartNumber:    part,
		PartName:      "Part " + part,
		Version:       version,
		ScheduledQty:  decimal.NewFromInt(100),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Add: defaults and ordering
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_AppliesDefaults(t *testing.T) {
	list := NewStagingList()
	added := list.Add([]RowSeed{seed("PO1", "P1", "V1")}, allowPolicy(), testClock)
	require.Equal(t, 1, added)

	rows := list.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-03-02", rows[0].ReceivingDate, "receiving date defaults to today")
	assert.Empty(t, rows[0].Lot)
	assert.Empty(t, rows[0].ExpiryDate)
	assert.True(t, rows[0].ConfirmedQty.IsZero(), "confirmed qty defaults to 0")
	assert.False(t, rows[0].MarkedForDeletion)
}

func TestAdd_CopyScheduledQtyVariant(t *testing.T) {
	list := NewStagingList()
	pol := Policy{DuplicatePolicy: config.DuplicateAllow, CopyScheduledQty: true}
	list.Add([]RowSeed{seed("PO1", "P1", "V1")}, pol, testClock)

	assert.True(t, list.Rows()[0].ConfirmedQty.Equal(decimal.NewFromInt(100)))
}

func TestAdd_ExplicitQtyWinsOverPolicy(t *testing.T) {
	list := NewStagingList()
	qty := decimal.NewFromInt(7)
	s := seed("PO1", "P1", "V1")
	s.ConfirmedQty = &qty
	list.Add([]RowSeed{s}, Policy{DuplicatePolicy: config.DuplicateAllow, CopyScheduledQty: true}, testClock)

	assert.True(t, list.Rows()[0].ConfirmedQty.Equal(qty))
}

func TestAdd_PreservesInsertionOrderAndAllowsDuplicates(t *testing.T) {
	list := NewStagingList()
	list.Add([]RowSeed{seed("PO1", "P1", "V1"), seed("PO2", "P2", "V1"), seed("PO1", "P1", "V1")}, allowPolicy(), testClock)

	rows := list.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "PO1", rows[0].PurchaseOrder)
	assert.Equal(t, "PO2", rows[1].PurchaseOrder)
	assert.Equal(t, "PO1", rows[2].PurchaseOrder, "allow variant keeps intentional duplicate lines")
}

func TestAdd_DedupeOnAddVariantSkipsStagedTuples(t *testing.T) {
	list := NewStagingList()
	pol := Policy{DuplicatePolicy: config.DuplicateDedupeOnAdd}

	added := list.Add([]RowSeed{seed("PO1", "P1", "V1"), seed("PO1", "P1", "V1")}, pol, testClock)
	assert.Equal(t, 1, added, "duplicate tuple within one call is skipped")

	added = list.Add([]RowSeed{seed("PO1", "P1", "V1"), seed("PO1", "P1", "V2")}, pol, testClock)
	assert.Equal(t, 1, added, "already-staged tuple is skipped, new version passes")
	assert.Equal(t, 2, list.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// Remove / Clear
// ──────────────────────────────────────────────────────────────────────────────

// Add followed by Remove of the same indices restores the pre-add state.
func TestAddThenRemove_RestoresPreAddState(t *testing.T) {
	list := NewStagingList()
	list.Add([]RowSeed{seed("PO1", "P1", "V1")}, allowPolicy(), testClock)
	before := list.Rows()

	list.Add([]RowSeed{seed("PO2", "P2", "V1"), seed("PO3", "P3", "V1")}, allowPolicy(), testClock)
	require.NoError(t, list.Remove([]int{1, 2}))

	assert.Equal(t, before, list.Rows())
}

func TestRemove_PreservesRelativeOrder(t *testing.T) {
	list := NewStagingList()
	list.Add([]RowSeed{seed("PO1", "P1", ""), seed("PO2", "P2", ""), seed("PO3", "P3", ""), seed("PO4", "P4", "")}, allowPolicy(), testClock)

	require.NoError(t, list.Remove([]int{0, 2}))
	rows := list.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "PO2", rows[0].PurchaseOrder)
	assert.Equal(t, "PO4", rows[1].PurchaseOrder)
}

func TestRemove_OutOfRangeLeavesListUntouched(t *testing.T) {
	list := NewStagingList()
	list.Add([]RowSeed{seed("PO1", "P1", "")}, allowPolicy(), testClock)

	err := list.Remove([]int{0, 5})
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	assert.Equal(t, 1, list.Len())
}

func TestRemoveMarked_OnlyDropsMarkedRows(t *testing.T) {
	list := NewStagingList()
	list.Add([]RowSeed{seed("PO1", "P1", ""), seed("PO2", "P2", ""), seed("PO3", "P3", "")}, allowPolicy(), testClock)
	require.NoError(t, list.SetMark(0, true))
	require.NoError(t, list.SetMark(2, true))

	removed := list.RemoveMarked()
	assert.Equal(t, 2, removed)
	rows := list.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "PO2", rows[0].PurchaseOrder)
}

func TestClear_EmptiesUnconditionally(t *testing.T) {
	list := NewStagingList()
	list.Add([]RowSeed{seed("PO1", "P1", ""), seed("PO2", "P2", "")}, allowPolicy(), testClock)
	list.Clear()
	assert.Zero(t, list.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// submittable: marked rows and transient state stripped
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmittable_StripsMarkedRowsAndFlag(t *testing.T) {
	list := NewStagingList()
	list.Add([]RowSeed{seed("PO1", "P1", ""), seed("PO2", "P2", "")}, allowPolicy(), testClock)
	require.NoError(t, list.SetMark(0, true))

	rows := list.submittable()
	require.Len(t, rows, 1)
	assert.Equal(t, "PO2", rows[0].PurchaseOrder)
	assert.False(t, rows[0].MarkedForDeletion)
	assert.Equal(t, 2, list.Len(), "submittable must not mutate the list")
}
