package admin

import (
	"context"
	"testing"

	"carrental/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingLifecycle struct {
	mock.Mock
}

func (m *MockBookingLifecycle) ListAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingLifecycle) Transition(ctx context.Context, bookingID string, actor domain.Actor, target domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, actor, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingLifecycle) Delete(ctx context.Context, actor domain.Actor, bookingID string) error {
	args := m.Called(ctx, actor, bookingID)
	return args.Error(0)
}

type MockCarReader struct {
	mock.Mock
}

func (m *MockCarReader) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Car, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*domain.Car), args.Error(1)
}

const (
	carA = "4f5e1c3a-0f0e-4a2e-9a7e-0d3c1b2a0001"
	carB = "4f5e1c3a-0f0e-4a2e-9a7e-0d3c1b2a0002"
)

func TestService_ListBookings_JoinsCars(t *testing.T) {
	bookings := new(MockBookingLifecycle)
	cars := new(MockCarReader)
	svc := NewService(bookings, cars)

	bookings.On("ListAll", mock.Anything).Return([]domain.Booking{
		{ID: "b1", CarID: carA, CarModel: "Toyota Vios"},
		{ID: "b2", CarID: carB, CarModel: "Honda City"},
		{ID: "b3", CarID: carA, CarModel: "Toyota Vios"},
	}, nil)
	cars.On("GetByIDs", mock.Anything, []string{carA, carB}).Return(map[string]*domain.Car{
		carA: {ID: carA, Name: "Toyota Vios"},
	}, nil)

	list, err := svc.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "Toyota Vios", list[0].Car.Name)
	// deleted car: the snapshot keeps the row readable
	assert.Nil(t, list[1].Car)
	assert.Equal(t, "Honda City", list[1].CarModel)
	assert.Equal(t, "Toyota Vios", list[2].Car.Name)
}

func TestService_ApproveDelegatesToLifecycle(t *testing.T) {
	bookings := new(MockBookingLifecycle)
	svc := NewService(bookings, new(MockCarReader))

	bookings.On("Transition", mock.Anything, "b1", adminActor, domain.BookingApproved).
		Return(&domain.Booking{ID: "b1", Status: domain.BookingApproved}, nil)

	b, err := svc.ApproveBooking(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingApproved, b.Status)
	bookings.AssertExpectations(t)
}

func TestService_RejectDelegatesToLifecycle(t *testing.T) {
	bookings := new(MockBookingLifecycle)
	svc := NewService(bookings, new(MockCarReader))

	bookings.On("Transition", mock.Anything, "b1", adminActor, domain.BookingRejected).
		Return(&domain.Booking{ID: "b1", Status: domain.BookingRejected}, nil)

	_, err := svc.RejectBooking(context.Background(), "b1")
	assert.NoError(t, err)
}

func TestService_DeleteBooking(t *testing.T) {
	bookings := new(MockBookingLifecycle)
	svc := NewService(bookings, new(MockCarReader))

	bookings.On("Delete", mock.Anything, adminActor, "b1").Return(nil)
	assert.NoError(t, svc.DeleteBooking(context.Background(), "b1"))
}
