package receiving

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BoostersSCM/Input-Management/internal/domain"
	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
	"github.com/BoostersSCM/Input-Management/internal/domain/repository"
	"github.com/BoostersSCM/Input-Management/pkg/config"
)

// SubmitUseCase validates the staging list and commits it to the write
// store. Validation failures never reach the repository; a repository
// failure leaves the staging list exactly as it was so the user can retry.
type SubmitUseCase struct {
	writer repository.ReceiptRepository
	cache  *SourceCache
	policy Policy
	now    func() time.Time
}

// NewSubmitUseCase builds the use case.
func NewSubmitUseCase(writer repository.ReceiptRepository, cache *SourceCache, policy Policy) *SubmitUseCase {
	return &SubmitUseCase{writer: writer, cache: cache, policy: policy, now: time.Now}
}

// Submit strips deletion-marked rows and transient state, runs the
// required-field and duplicate checks, and appends the batch. On success the
// staging list is cleared and the source cache invalidated; the returned
// count is the number of rows written.
func (uc *SubmitUseCase) Submit(ctx context.Context, list *StagingList) (int, error) {
	rows := list.submittable()
	if len(rows) == 0 {
		return 0, domain.ErrEmptyBatch
	}

	for _, r := range rows {
		if !r.HasLot() {
			return 0, domain.ErrMissingLot
		}
	}

	if uc.policy.DuplicatePolicy == config.DuplicateReject {
		seen := make(map[string]struct{}, len(rows))
		for _, r := range rows {
			key := r.DuplicateKey()
			if _, ok := seen[key]; ok {
				return 0, domain.ErrDuplicateRows
			}
			seen[key] = struct{}{}
		}
	}

	batch := entity.SubmissionBatch{
		ID:          uuid.New().String(),
		Rows:        rows,
		ConfirmedAt: uc.now(),
	}
	if err := uc.writer.AppendBatch(ctx, batch); err != nil {
		return 0, err
	}

	list.Clear()
	uc.cache.Invalidate()
	return len(rows), nil
}
