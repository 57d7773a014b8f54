package receiving

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoostersSCM/Input-Management/internal/domain"
	"github.com/BoostersSCM/Input-Management/pkg/config"
)

func gridFixture(t *testing.T) (*GridAdapter, *StagingList) {
	t.Helper()
	list := NewStagingList()
	list.Add([]RowSeed{seed("PO1", "P1", "v1")}, allowPolicy(), testClock)
	return NewGridAdapter(Policy{DuplicatePolicy: config.DuplicateAllow, UppercaseIdentifiers: true}), list
}

// ──────────────────────────────────────────────────────────────────────────────
// Read-only columns
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyEdit_ReadOnlyColumnsRejected(t *testing.T) {
	grid, list := gridFixture(t)
	before := list.Rows()

	for _, col := range []string{ColPurchaseOrder, ColPartNumber, ColPartName} {
		err := grid.ApplyEdit(list, 0, col, "changed")
		assert.ErrorIs(t, err, domain.ErrReadOnlyColumn, "column %s", col)
	}
	assert.Equal(t, before, list.Rows(), "rejected edits must not touch the row")
}

func TestApplyEdit_UnknownColumn(t *testing.T) {
	grid, list := gridFixture(t)
	assert.ErrorIs(t, grid.ApplyEdit(list, 0, "no_such_column", "x"), domain.ErrUnknownColumn)
}

func TestApplyEdit_IndexOutOfRange(t *testing.T) {
	grid, list := gridFixture(t)
	assert.ErrorIs(t, grid.ApplyEdit(list, 9, ColLot, "L1"), domain.ErrIndexOutOfRange)
}

// ──────────────────────────────────────────────────────────────────────────────
// Quantity coercion
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyEdit_QtyAcceptsThousandsSeparators(t *testing.T) {
	grid, list := gridFixture(t)
	require.NoError(t, grid.ApplyEdit(list, 0, ColConfirmedQty, " 1,234 "))
	assert.True(t, list.Rows()[0].ConfirmedQty.Equal(decimal.NewFromInt(1234)))
}

func TestApplyEdit_QtyInvalidInputRetainsPreviousValue(t *testing.T) {
	grid, list := gridFixture(t)
	require.NoError(t, grid.ApplyEdit(list, 0, ColConfirmedQty, "50"))

	for _, raw := range []string{"-3", "1.5", "abc", "", "12x"} {
		err := grid.ApplyEdit(list, 0, ColConfirmedQty, raw)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %q", raw)
		assert.True(t, list.Rows()[0].ConfirmedQty.Equal(decimal.NewFromInt(50)), "input %q", raw)
	}
}

func TestCoerceQty_ZeroIsValid(t *testing.T) {
	qty, err := CoerceQty("0")
	require.NoError(t, err)
	assert.True(t, qty.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Date normalization
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyEdit_EightDigitDateNormalized(t *testing.T) {
	grid, list := gridFixture(t)
	require.NoError(t, grid.ApplyEdit(list, 0, ColExpiryDate, "20270115"))
	assert.Equal(t, "2027-01-15", list.Rows()[0].ExpiryDate)
}

func TestApplyEdit_ISODateAccepted(t *testing.T) {
	grid, list := gridFixture(t)
	require.NoError(t, grid.ApplyEdit(list, 0, ColReceivingDate, "2026-04-01"))
	assert.Equal(t, "2026-04-01", list.Rows()[0].ReceivingDate)
}

func TestApplyEdit_BadDateRejected(t *testing.T) {
	grid, list := gridFixture(t)
	assert.ErrorIs(t, grid.ApplyEdit(list, 0, ColExpiryDate, "20271315"), domain.ErrInvalidInput)
	assert.ErrorIs(t, grid.ApplyEdit(list, 0, ColExpiryDate, "next week"), domain.ErrInvalidInput)
}

func TestApplyEdit_ExpiryMayBeCleared_ReceivingMayNot(t *testing.T) {
	grid, list := gridFixture(t)
	require.NoError(t, grid.ApplyEdit(list, 0, ColExpiryDate, ""))
	assert.Empty(t, list.Rows()[0].ExpiryDate)

	assert.ErrorIs(t, grid.ApplyEdit(list, 0, ColReceivingDate, ""), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Identifier casing policy
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyEdit_IdentifiersUppercasedPerPolicy(t *testing.T) {
	grid, list := gridFixture(t)
	require.NoError(t, grid.ApplyEdit(list, 0, ColLot, " lot-7a "))
	assert.Equal(t, "LOT-7A", list.Rows()[0].Lot)
}

func TestApplyEdit_IdentifierCasePreservedWhenPolicyOff(t *testing.T) {
	list := NewStagingList()
	list.Add([]RowSeed{seed("PO1", "P1", "")}, allowPolicy(), testClock)
	grid := NewGridAdapter(Policy{DuplicatePolicy: config.DuplicateAllow, UppercaseIdentifiers: false})

	require.NoError(t, grid.ApplyEdit(list, 0, ColVersion, "v1.2"))
	assert.Equal(t, "v1.2", list.Rows()[0].Version)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rendering and deletion marks
// ──────────────────────────────────────────────────────────────────────────────

func TestRender_CellsAndMarks(t *testing.T) {
	grid, list := gridFixture(t)
	require.NoError(t, grid.ApplyEdit(list, 0, ColConfirmedQty, "1,000"))
	require.NoError(t, list.SetMark(0, true))

	rows := grid.Render(list)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Index)
	assert.True(t, rows[0].Marked)
	assert.Equal(t, "PO1", rows[0].Cells[ColPurchaseOrder])
	assert.Equal(t, "1000", rows[0].Cells[ColConfirmedQty])
}

// Marking rows for deletion and editing cells are separate commands: the
// mark never carries an in-flight edit with it.
func TestMarkDoesNotTouchCellValues(t *testing.T) {
	grid, list := gridFixture(t)
	require.NoError(t, grid.ApplyEdit(list, 0, ColLot, "L1"))
	require.NoError(t, list.SetMark(0, true))

	row := list.Rows()[0]
	assert.Equal(t, "L1", row.Lot)
	assert.True(t, row.MarkedForDeletion)
}
