package repository

import (
	"context"

	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
)

// ReceiptRepository is the write port against the SCM store.
// Append-only; this system never updates or deletes confirmed rows.
type ReceiptRepository interface {
	// AppendBatch inserts every row of the batch atomically. Any failure
	// aborts the whole batch; no partial insert is visible to callers.
	AppendBatch(ctx context.Context, batch entity.SubmissionBatch) error
}
