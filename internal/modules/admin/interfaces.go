package admin

import (
	"context"

	"carrental/internal/domain"
)

// BookingLifecycle is the capability-gated mutation surface shared with the
// customer pages. The admin dashboard never bypasses it, so the state
// machine holds everywhere.
type BookingLifecycle interface {
	ListAll(ctx context.Context) ([]domain.Booking, error)
	Transition(ctx context.Context, bookingID string, actor domain.Actor, target domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, actor domain.Actor, bookingID string) error
}

type CarReader interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Car, error)
}
