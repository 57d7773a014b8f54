package receiving

import (
	"context"
	"sync"

	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
	"github.com/BoostersSCM/Input-Management/internal/domain/repository"
)

// SourceCache serves the session-independent source rows, hitting the read
// store once and reusing the result until invalidated. A successful commit
// invalidates it so freshly confirmed quantities show up on the next load;
// a failed fetch is never cached.
type SourceCache struct {
	mu     sync.Mutex
	repo   repository.SourceRepository
	rows   []entity.SourceRow
	loaded bool
}

// NewSourceCache wraps the read repository.
func NewSourceCache(repo repository.SourceRepository) *SourceCache {
	return &SourceCache{repo: repo}
}

// Get returns the cached source rows, fetching on first use or after an
// invalidation.
func (c *SourceCache) Get(ctx context.Context) ([]entity.SourceRow, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.rows, nil
	}
	rows, err := c.repo.FetchSourceRows(ctx)
	if err != nil {
		return nil, err
	}
	c.rows = rows
	c.loaded = true
	return rows, nil
}

// Invalidate drops the cached rows; the next Get issues a fresh query.
func (c *SourceCache) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.rows = nil
	c.mu.Unlock()
}
