package admin

import (
	"context"

	"carrental/internal/domain"
)

var adminActor = domain.Actor{Role: domain.RoleAdmin}

type Service struct {
	bookings BookingLifecycle
	cars     CarReader
}

func NewService(bookings BookingLifecycle, cars CarReader) *Service {
	return &Service{bookings: bookings, cars: cars}
}

// ListBookings returns every booking with its car record joined in. The
// join is a second query over the referenced ids; bookings whose car was
// deleted keep a nil Car and stay readable through the car_model snapshot.
func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(bookings))
	seen := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if b.CarID != "" && !seen[b.CarID] {
			seen[b.CarID] = true
			ids = append(ids, b.CarID)
		}
	}

	cars, err := s.cars.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		bookings[i].Car = cars[bookings[i].CarID]
	}
	return bookings, nil
}

func (s *Service) ApproveBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.bookings.Transition(ctx, bookingID, adminActor, domain.BookingApproved)
}

func (s *Service) RejectBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.bookings.Transition(ctx, bookingID, adminActor, domain.BookingRejected)
}

func (s *Service) DeleteBooking(ctx context.Context, bookingID string) error {
	return s.bookings.Delete(ctx, adminActor, bookingID)
}
