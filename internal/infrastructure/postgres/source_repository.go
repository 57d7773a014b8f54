package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
	"github.com/BoostersSCM/Input-Management/internal/domain/repository"
)

var _ repository.SourceRepository = (*SourceRepo)(nil)

// SourceRepo reads scheduled receipts from the ERP store. Rows come from
// the intended-inventory tables joined with the item master, grouped by the
// natural key with quantities summed; soft-deleted orders are skipped.
type SourceRepo struct {
	q                 Querier
	historyWindowDays int
}

// NewSourceRepository builds the adapter. Pass the ERP pool (or a tx).
func NewSourceRepository(q Querier, historyWindowDays int) *SourceRepo {
	return &SourceRepo{q: q, historyWindowDays: historyWindowDays}
}

const sourceQuery = `
	SELECT
		COALESCE(ei.brand, ''),
		nii.intended_push_date,
		nii.po_no,
		niid.product_code,
		niid.product_name,
		COALESCE(niid.lot, ''),
		SUM(niid.quantity)
	FROM nansoft_intended_inventory_details AS niid
	LEFT JOIN nansoft_intended_inventorys AS nii
		ON nii.id = niid.nansoft_intended_inventory_id
	LEFT JOIN erp_items AS ei
		ON ei.itemno = niid.product_code
	WHERE nii.intended_push_date >= $1
	  AND nii.is_delete = 0
	GROUP BY
		ei.brand,
		nii.intended_push_date,
		nii.po_no,
		niid.product_code,
		niid.product_name,
		niid.lot
	ORDER BY nii.intended_push_date, niid.product_name`

// FetchSourceRows returns the scheduled receipts from today forward, the
// window the registration form works against.
func (r *SourceRepo) FetchSourceRows(ctx context.Context) ([]entity.SourceRow, error) {
	return r.fetch(ctx, today())
}

// FetchHistoryRows widens the window by the configured lookback for the
// history and calendar views.
func (r *SourceRepo) FetchHistoryRows(ctx context.Context) ([]entity.SourceRow, error) {
	return r.fetch(ctx, today().AddDate(0, 0, -r.historyWindowDays))
}

func (r *SourceRepo) fetch(ctx context.Context, from time.Time) ([]entity.SourceRow, error) {
	rows, err := r.q.Query(ctx, sourceQuery, from)
	if err != nil {
		return nil, fmt.Errorf("fetch source rows: %w", err)
	}
	defer rows.Close()

	var out []entity.SourceRow
	for rows.Next() {
		var s entity.SourceRow
		if err := rows.Scan(
			&s.Brand, &s.ScheduledDate, &s.PurchaseOrder,
			&s.PartNumber, &s.PartName, &s.Version, &s.ScheduledQty,
		); err != nil {
			return nil, fmt.Errorf("scan source row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
