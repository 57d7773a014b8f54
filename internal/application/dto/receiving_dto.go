package dto

import "github.com/BoostersSCM/Input-Management/internal/application/receiving"

// OptionsResponse one cascading dropdown stage. Warning carries the
// side-channel message when the read store could not be reached (the
// options then degrade to empty instead of failing the request).
type OptionsResponse struct {
	Options []string `json:"options"`
	Warning string   `json:"warning,omitempty"`
}

// PartOptionDTO second-stage option: part number plus display label.
type PartOptionDTO struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Label  string `json:"label"`
}

// PartOptionsResponse body for GET /api/source/parts.
type PartOptionsResponse struct {
	Options []PartOptionDTO `json:"options"`
	Warning string          `json:"warning,omitempty"`
}

// NewRowInput one row for POST /api/staging/rows: either a pick from the
// filtered source view (PO+part resolved against the cascade) or a fully
// manual entry. ConfirmedQty accepts grid-style text ("1,234").
type NewRowInput struct {
	ReceivingDate string `json:"receiving_date,omitempty"`
	PurchaseOrder string `json:"purchase_order"`
	PartNumber    string `json:"part_number"`
	PartName      string `json:"part_name,omitempty"`
	Version       string `json:"version,omitempty"`
	Lot           string `json:"lot,omitempty"`
	ExpiryDate    string `json:"expiry_date,omitempty"`
	ConfirmedQty  string `json:"confirmed_qty,omitempty"`
}

// AddRowsRequest body for POST /api/staging/rows.
type AddRowsRequest struct {
	Rows []NewRowInput `json:"rows"`
}

// AddRowsResponse reports how many rows were staged (dedupe-on-add may
// skip some).
type AddRowsResponse struct {
	Added int `json:"added"`
	Total int `json:"total"`
}

// EditCellRequest body for PATCH /api/staging/rows/:index.
type EditCellRequest struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

// MarkRowRequest body for POST /api/staging/rows/:index/mark.
type MarkRowRequest struct {
	Marked bool `json:"marked"`
}

// RemoveRowsRequest body for DELETE /api/staging/rows. Either explicit
// indices or Marked=true (drop every deletion-marked row); not both.
type RemoveRowsRequest struct {
	Indices []int `json:"indices,omitempty"`
	Marked  bool  `json:"marked,omitempty"`
}

// GridResponse the staging list rendered for the editable grid widget.
type GridResponse struct {
	Columns []receiving.Column  `json:"columns"`
	Rows    []receiving.GridRow `json:"rows"`
	Total   int                 `json:"total"`
}

// SubmitResponse body for a successful POST /api/staging/submit.
type SubmitResponse struct {
	Submitted int `json:"submitted"`
}

// HistoryRowDTO one row of the scheduled-receipt history view.
type HistoryRowDTO struct {
	ScheduledDate string `json:"scheduled_date"`
	Brand         string `json:"brand"`
	PurchaseOrder string `json:"purchase_order"`
	PartNumber    string `json:"part_number"`
	PartName      string `json:"part_name"`
	Version       string `json:"version,omitempty"`
	ScheduledQty  string `json:"scheduled_qty"`
}

// HistoryResponse body for GET /api/history.
type HistoryResponse struct {
	Rows  []HistoryRowDTO `json:"rows"`
	Total int             `json:"total"`
}
