package receiving_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
	"github.com/BoostersSCM/Input-Management/internal/domain/receiving"
)

func row(brand, po, part, name string) entity.SourceRow {
	return entity.SourceRow{
		Brand:         brand,
		PurchaseOrder: po,
		PartNumber:    part,
		PartName:      name,
		ScheduledQty:  decimal.NewFromInt(10),
	}
}

func sampleRows() []entity.SourceRow {
	return []entity.SourceRow{
		row("B", "PO9", "Q1", "Gel"),
		row("A", "PO1", "P1", "Serum"),
		row("A", "PO2", "P1", "Serum"),
		row("A", "PO3", "P2", "Cream"),
		row("A", "PO1", "P1", "Serum"), // duplicate line, must collapse
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Stage 1: brands
// ──────────────────────────────────────────────────────────────────────────────

func TestBrands_DistinctSorted(t *testing.T) {
	brands := receiving.Brands(sampleRows())
	assert.Equal(t, []string{"A", "B"}, brands)
}

func TestBrands_EmptySource(t *testing.T) {
	assert.Empty(t, receiving.Brands(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Stage 2: parts restricted to the chosen brand
// ──────────────────────────────────────────────────────────────────────────────

func TestParts_OnlyForSelectedBrand(t *testing.T) {
	parts := receiving.Parts(sampleRows(), "A")
	require.Len(t, parts, 2)
	assert.Equal(t, "P1", parts[0].Number)
	assert.Equal(t, "P2", parts[1].Number)
	assert.Equal(t, "P1 (Serum)", parts[0].Label())
}

func TestParts_DisabledWithoutBrand(t *testing.T) {
	assert.Nil(t, receiving.Parts(sampleRows(), ""))
}

// Every offered part must belong to the selected brand.
func TestParts_NeverOffersForeignBrand(t *testing.T) {
	for _, brand := range receiving.Brands(sampleRows()) {
		for _, p := range receiving.Parts(sampleRows(), brand) {
			found := false
			for _, r := range sampleRows() {
				if r.Brand == brand && r.PartNumber == p.Number {
					found = true
				}
			}
			assert.True(t, found, "part %s offered outside brand %s", p.Number, brand)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Stage 3: purchase orders restricted to brand+part
// ──────────────────────────────────────────────────────────────────────────────

// Brand "A" has parts P1 and P2. Selecting A then P1 must offer only the
// POs belonging to (A, P1) and never PO3, which belongs to (A, P2).
func TestOrders_ScopedToBrandAndPart(t *testing.T) {
	orders := receiving.Orders(sampleRows(), "A", "P1")
	assert.Equal(t, []string{"PO1", "PO2"}, orders)
	assert.NotContains(t, orders, "PO3")
}

func TestOrders_DisabledWithoutParents(t *testing.T) {
	assert.Nil(t, receiving.Orders(sampleRows(), "A", ""))
	assert.Nil(t, receiving.Orders(sampleRows(), "", "P1"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Selection: upstream changes invalidate downstream choices
// ──────────────────────────────────────────────────────────────────────────────

func TestSelection_UpstreamChangeResetsDownstream(t *testing.T) {
	sel := receiving.Selection{}.WithBrand("A").WithPart("P1").WithOrder("PO1")
	require.Equal(t, "PO1", sel.PurchaseOrder)

	sel = sel.WithBrand("B")
	assert.Empty(t, sel.PartNumber, "part must not survive a brand change")
	assert.Empty(t, sel.PurchaseOrder, "order must not survive a brand change")

	sel = receiving.Selection{}.WithBrand("A").WithPart("P1").WithOrder("PO1").WithPart("P2")
	assert.Equal(t, "A", sel.Brand)
	assert.Empty(t, sel.PurchaseOrder, "order must not survive a part change")
}

func TestSelection_MatchFiltersAllStages(t *testing.T) {
	sel := receiving.Selection{}.WithBrand("A").WithPart("P1").WithOrder("PO1")
	matched := sel.Match(sampleRows())
	require.Len(t, matched, 2) // the duplicate PO1/P1 line appears twice in the source
	for _, r := range matched {
		assert.Equal(t, "A", r.Brand)
		assert.Equal(t, "P1", r.PartNumber)
		assert.Equal(t, "PO1", r.PurchaseOrder)
	}
}
