package booking

import (
	"context"

	"carrental/internal/domain"
)

// BookingRepository is the slice of the record store the lifecycle manager
// needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUsername(ctx context.Context, username string) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Delete(ctx context.Context, id string) error
}

// CarRepository provides read-only access to the inventory for snapshots.
type CarRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Car, error)
}

// NotificationSender fans booking inserts out to live subscribers. Delivery
// is best-effort; a failed notification never fails the mutation.
type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking) error
}
