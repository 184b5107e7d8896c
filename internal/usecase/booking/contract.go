package booking

import (
	"context"

	dombook "github.com/kailas-cloud/tripdex/internal/domain/booking"
)

// Repository defines the storage contract for bookings.
type Repository interface {
	Create(ctx context.Context, b *dombook.Booking) error
	Update(ctx context.Context, b *dombook.Booking) error
	Get(ctx context.Context, reference string) (dombook.Booking, error)
	List(ctx context.Context, limit int) ([]dombook.Booking, error)
}
