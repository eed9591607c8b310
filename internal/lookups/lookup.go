package lookups

import (
	"context"

	"github.com/preston-bernstein/record-filter-service/internal/domain"
)

// Lookup fetches candidate records for a search key. The returned slice may
// contain nil entries and records with nil attributes; callers filter them.
type Lookup interface {
	GetMatchingObjects(ctx context.Context, searchKey string) ([]*domain.Record, error)
}
