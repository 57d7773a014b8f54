package receiving

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BoostersSCM/Input-Management/internal/domain"
	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
)

// Column kinds drive the coercion applied to edits.
const (
	KindDate       = "date"       // YYYY-MM-DD; 8-digit numeric input is normalized
	KindIdentifier = "identifier" // trimmed, upper-cased per policy
	KindQty        = "qty"        // non-negative integer, thousands separators tolerated
	KindText       = "text"
)

// Grid column names (the presentation layer's field identifiers).
const (
	ColReceivingDate = "receiving_date"
	ColPurchaseOrder = "purchase_order"
	ColPartNumber    = "part_number"
	ColPartName      = "part_name"
	ColVersion       = "version"
	ColLot           = "lot"
	ColExpiryDate    = "expiry_date"
	ColConfirmedQty  = "confirmed_qty"
)

// Column describes one grid column: display order, kind and editability.
type Column struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Kind     string `json:"kind"`
	Editable bool   `json:"editable"`
}

// gridColumns is the fixed column layout of the staging grid. The identity
// columns are read-only: the adapter rejects edits to them even when the
// widget lets the cell take focus.
var gridColumns = []Column{
	{Name: ColReceivingDate, Title: "Receiving Date", Kind: KindDate, Editable: true},
	{Name: ColPurchaseOrder, Title: "PO No.", Kind: KindText, Editable: false},
	{Name: ColPartNumber, Title: "Part No.", Kind: KindText, Editable: false},
	{Name: ColPartName, Title: "Part Name", Kind: KindText, Editable: false},
	{Name: ColVersion, Title: "Version", Kind: KindIdentifier, Editable: true},
	{Name: ColLot, Title: "LOT", Kind: KindIdentifier, Editable: true},
	{Name: ColExpiryDate, Title: "Expiry Date", Kind: KindDate, Editable: true},
	{Name: ColConfirmedQty, Title: "Confirmed Qty", Kind: KindQty, Editable: true},
}

// GridRow is one staging row rendered for the tabular widget. The deletion
// mark travels next to the cells but is not a cell itself.
type GridRow struct {
	Index  int               `json:"index"`
	Cells  map[string]string `json:"cells"`
	Marked bool              `json:"marked"`
}

// GridAdapter maps the staging list to and from the editable tabular view.
type GridAdapter struct {
	policy Policy
}

// NewGridAdapter builds the adapter with the resolved formatting policy.
func NewGridAdapter(policy Policy) *GridAdapter {
	return &GridAdapter{policy: policy}
}

// Columns returns the grid column layout.
func (g *GridAdapter) Columns() []Column {
	out := make([]Column, len(gridColumns))
	copy(out, gridColumns)
	return out
}

// Render maps the staging list into widget rows, insertion order preserved.
func (g *GridAdapter) Render(list *StagingList) []GridRow {
	rows := list.Rows()
	out := make([]GridRow, len(rows))
	for i, r := range rows {
		out[i] = GridRow{
			Index:  i,
			Marked: r.MarkedForDeletion,
			Cells: map[string]string{
				ColReceivingDate: r.ReceivingDate,
				ColPurchaseOrder: r.PurchaseOrder,
				ColPartNumber:    r.PartNumber,
				ColPartName:      r.PartName,
				ColVersion:       r.Version,
				ColLot:           r.Lot,
				ColExpiryDate:    r.ExpiryDate,
				ColConfirmedQty:  r.ConfirmedQty.String(),
			},
		}
	}
	return out
}

// ApplyEdit coerces raw widget input and writes it into the addressed cell.
// Read-only columns and invalid input are rejected with the previous value
// retained; the error tells the presentation layer what to show.
func (g *GridAdapter) ApplyEdit(list *StagingList, index int, column, raw string) error {
	col, ok := columnByName(column)
	if !ok {
		return domain.ErrUnknownColumn
	}
	if !col.Editable {
		return domain.ErrReadOnlyColumn
	}
	row, err := list.row(index)
	if err != nil {
		return err
	}

	switch col.Name {
	case ColReceivingDate:
		v, err := normalizeDate(raw)
		if err != nil || v == "" {
			return domain.ErrInvalidInput
		}
		row.ReceivingDate = v
	case ColExpiryDate:
		v, err := normalizeDate(raw)
		if err != nil {
			return domain.ErrInvalidInput
		}
		row.ExpiryDate = v
	case ColVersion:
		row.Version = g.identifier(raw)
	case ColLot:
		row.Lot = g.identifier(raw)
	case ColConfirmedQty:
		qty, err := CoerceQty(raw)
		if err != nil {
			return err
		}
		row.ConfirmedQty = qty
	}
	return nil
}

func columnByName(name string) (Column, bool) {
	for _, c := range gridColumns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

func (g *GridAdapter) identifier(raw string) string {
	v := strings.TrimSpace(raw)
	if g.policy.UppercaseIdentifiers {
		v = strings.ToUpper(v)
	}
	return v
}

// CoerceQty parses free-text quantity input into a non-negative integer
// quantity. Thousands separators and surrounding whitespace are tolerated;
// anything negative or fractional is rejected.
func CoerceQty(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Decimal{}, domain.ErrInvalidInput
	}
	qty, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, domain.ErrInvalidInput
	}
	if qty.IsNegative() || !qty.IsInteger() {
		return decimal.Decimal{}, domain.ErrInvalidInput
	}
	return qty, nil
}

// normalizeDate accepts YYYY-MM-DD, or an 8-digit numeric string which is
// rewritten to YYYY-MM-DD. Empty input stays empty (for clearable columns).
func normalizeDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}
	if len(s) == 8 && allDigits(s) {
		s = s[:4] + "-" + s[4:6] + "-" + s[6:]
	}
	if _, err := time.Parse(entity.DateLayout, s); err != nil {
		return "", err
	}
	return s, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
