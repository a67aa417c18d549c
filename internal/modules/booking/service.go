package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"carrental/internal/domain"
	"carrental/internal/pkg/pricing"
	"carrental/internal/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is the sole authority for constructing and transitioning bookings.
// Every caller (customer pages, admin dashboard) goes through it so the
// state machine is enforced in exactly one place.
type Service struct {
	bookings BookingRepository
	cars     CarRepository
	notifs   NotificationSender
}

func NewService(bookings BookingRepository, cars CarRepository, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		cars:     cars,
		notifs:   notifs,
	}
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest, ownerUsername string) (*domain.Booking, error) {
	if err := requireFields(map[string]string{
		"customer_name":  req.CustomerName,
		"contact_number": req.ContactNumber,
		"email":          req.Email,
		"pickup_date":    req.PickupDate,
		"return_date":    req.ReturnDate,
		"payment_method": req.PaymentMethod,
	}); err != nil {
		return nil, err
	}
	if ownerUsername == "" {
		return nil, fmt.Errorf("%w: missing owner username", ErrValidation)
	}

	if _, err := uuid.Parse(req.CarID); err != nil {
		return nil, ErrInvalidCarReference
	}

	car, err := s.cars.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCarReference
		}
		return nil, err
	}

	_, total, err := pricing.Quote(car.Price, req.PickupDate, req.ReturnDate)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		CarID:         car.ID,
		CarModel:      car.Name,
		CustomerName:  req.CustomerName,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		StartDate:     req.PickupDate,
		EndDate:       req.ReturnDate,
		PickupDate:    req.PickupDate,
		ReturnDate:    req.ReturnDate,
		TotalPrice:    total,
		PaymentMethod: req.PaymentMethod,
		Status:        domain.BookingPending,
		Username:      ownerUsername,
	}
	if err := validator.Check(b); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, b)
	}

	return b, nil
}

// Transition applies the booking state machine.
//
//	pending  -> approved, rejected   (administrator)
//	approved -> rejected             (administrator, reversible)
//	rejected -> approved             (administrator, reversible)
//	pending, approved -> cancelled   (owning customer only)
//
// Re-applying the current approved/rejected status is a no-op, mirroring an
// idempotent re-click of an already applied action. Nothing leaves
// cancelled.
func (s *Service) Transition(ctx context.Context, bookingID string, actor domain.Actor, target domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := authorize(b, actor, target); err != nil {
		return nil, err
	}

	if b.Status == domain.BookingCancelled {
		return nil, ErrIllegalTransition
	}

	switch target {
	case domain.BookingApproved, domain.BookingRejected:
		if b.Status == target {
			return b, nil
		}
	case domain.BookingCancelled:
		if b.Status != domain.BookingPending && b.Status != domain.BookingApproved {
			return nil, ErrIllegalTransition
		}
	default:
		return nil, ErrIllegalTransition
	}

	if err := s.bookings.UpdateStatus(ctx, b.ID, target); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	b.Status = target
	return b, nil
}

// Delete removes a booking record entirely. Administrative action with no
// further lifecycle.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, bookingID string) error {
	if actor.Role != domain.RoleAdmin {
		return ErrForbidden
	}
	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListForOwner(ctx context.Context, username string) ([]domain.Booking, error) {
	return s.bookings.ListByUsername(ctx, username)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func authorize(b *domain.Booking, actor domain.Actor, target domain.BookingStatus) error {
	switch target {
	case domain.BookingApproved, domain.BookingRejected:
		if actor.Role != domain.RoleAdmin {
			return ErrForbidden
		}
	case domain.BookingCancelled:
		// Cancellation belongs to the owning customer; the admin surface
		// does not expose it.
		if actor.Role != domain.RoleCustomer || actor.Username != b.Username {
			return ErrForbidden
		}
	}
	return nil
}

func requireFields(fields map[string]string) error {
	// Report the first failing field in a stable order.
	order := []string{
		"customer_name", "contact_number", "email",
		"pickup_date", "return_date", "payment_method",
	}
	for _, name := range order {
		if v, ok := fields[name]; ok && strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, name)
		}
	}
	return nil
}
