package history

import (
	"context"

	domhist "github.com/kailas-cloud/tripdex/internal/domain/history"
)

// Repository defines the storage contract for search history.
type Repository interface {
	Push(ctx context.Context, e *domhist.Entry, keep int) error
	Recent(ctx context.Context, userID string, kind domhist.Kind, n int) ([]domhist.Entry, error)
}
