package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BoostersSCM/Input-Management/internal/domain"
	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
	"github.com/BoostersSCM/Input-Management/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo appends confirmed receipt rows to the SCM write store.
// Needs the pool (not a Querier) because each batch runs in its own
// transaction.
type ReceiptRepo struct {
	pool *pgxpool.Pool
}

// NewReceiptRepository builds the adapter over the SCM pool.
func NewReceiptRepository(pool *pgxpool.Pool) *ReceiptRepo {
	return &ReceiptRepo{pool: pool}
}

const insertReceipt = `
	INSERT INTO input_manage_master (
		batch_id, receiving_date, po_no, product_code, product_name,
		version, lot, expiry_date, confirmed_qty, scheduled_qty, confirmed_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

// AppendBatch inserts the whole batch inside one transaction: a row-shape
// mismatch or constraint violation rolls everything back, so no partial
// insert is ever visible.
func (r *ReceiptRepo) AppendBatch(ctx context.Context, batch entity.SubmissionBatch) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, row := range batch.Rows {
		expiry := (*string)(nil)
		if row.ExpiryDate != "" {
			expiry = &row.ExpiryDate
		}
		_, err := tx.Exec(ctx, insertReceipt,
			batch.ID, row.ReceivingDate, row.PurchaseOrder, row.PartNumber,
			row.PartName, row.Version, row.Lot, expiry,
			row.ConfirmedQty, row.ScheduledQty, batch.ConfirmedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s / %s / %s", domain.ErrDuplicateRows,
					row.PurchaseOrder, row.PartNumber, row.Lot)
			}
			return fmt.Errorf("insert receipt row: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
