package repository

import (
	"context"

	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
)

// SourceRepository is the read port against the ERP store.
type SourceRepository interface {
	// FetchSourceRows returns scheduled receipts from today forward,
	// grouped by the natural key with quantities summed.
	FetchSourceRows(ctx context.Context) ([]entity.SourceRow, error)
	// FetchHistoryRows returns the same shape over a wider window
	// (lookback plus future), for the history and calendar views.
	FetchHistoryRows(ctx context.Context) ([]entity.SourceRow, error)
}
