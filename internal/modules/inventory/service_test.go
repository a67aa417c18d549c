package inventory

import (
	"context"
	"testing"

	"carrental/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) Create(ctx context.Context, c *domain.Car) error {
	args := m.Called(ctx, c)
	if c != nil && c.ID == "" {
		c.ID = "0ad4f1f0-9c54-4a3a-8a5e-2f9be2f3d101"
	}
	return args.Error(0)
}

func (m *MockCarRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarRepository) List(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}

func (m *MockCarRepository) Update(ctx context.Context, c *domain.Car) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_CreateCar_Success(t *testing.T) {
	cars := new(MockCarRepository)
	svc := NewService(cars)

	cars.On("Create", mock.Anything, mock.AnythingOfType("*domain.Car")).Return(nil)

	car, err := svc.CreateCar(context.Background(), CreateCarRequest{
		Name:    "Mitsubishi Mirage",
		Details: "Compact hatchback",
		Price:   "3500",
	})
	require.NoError(t, err)
	assert.Equal(t, 3500.0, car.Price)
	assert.NotEmpty(t, car.ID)
	cars.AssertExpectations(t)
}

func TestService_CreateCar_MissingName(t *testing.T) {
	cars := new(MockCarRepository)
	svc := NewService(cars)

	_, err := svc.CreateCar(context.Background(), CreateCarRequest{Name: "   ", Price: "3500"})
	assert.ErrorIs(t, err, ErrValidation)
	cars.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateCar_BadPrice(t *testing.T) {
	svc := NewService(new(MockCarRepository))

	for _, price := range []string{"free", "", "-100"} {
		_, err := svc.CreateCar(context.Background(), CreateCarRequest{Name: "Vios", Price: price})
		assert.ErrorIs(t, err, ErrValidation, "price %q", price)
	}
}

func TestService_UpdateCar_PartialFields(t *testing.T) {
	cars := new(MockCarRepository)
	svc := NewService(cars)

	existing := &domain.Car{
		ID:      "0ad4f1f0-9c54-4a3a-8a5e-2f9be2f3d101",
		Name:    "Toyota Vios",
		Photo:   "https://example.com/vios.jpg",
		Details: "Sedan",
		Price:   3500,
	}
	cars.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	cars.On("Update", mock.Anything, mock.AnythingOfType("*domain.Car")).Return(nil)

	newPrice := "4200"
	car, err := svc.UpdateCar(context.Background(), existing.ID, UpdateCarRequest{Price: &newPrice})
	require.NoError(t, err)

	// untouched fields survive
	assert.Equal(t, "Toyota Vios", car.Name)
	assert.Equal(t, "https://example.com/vios.jpg", car.Photo)
	assert.Equal(t, 4200.0, car.Price)
}

func TestService_UpdateCar_RejectsEmptyName(t *testing.T) {
	cars := new(MockCarRepository)
	svc := NewService(cars)

	existing := &domain.Car{ID: "0ad4f1f0-9c54-4a3a-8a5e-2f9be2f3d101", Name: "Vios", Price: 3500}
	cars.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)

	empty := ""
	_, err := svc.UpdateCar(context.Background(), existing.ID, UpdateCarRequest{Name: &empty})
	assert.ErrorIs(t, err, ErrValidation)
	cars.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_DeleteCar_Unconditional(t *testing.T) {
	cars := new(MockCarRepository)
	svc := NewService(cars)

	cars.On("Delete", mock.Anything, "0ad4f1f0-9c54-4a3a-8a5e-2f9be2f3d101").Return(nil)
	err := svc.DeleteCar(context.Background(), "0ad4f1f0-9c54-4a3a-8a5e-2f9be2f3d101")
	assert.NoError(t, err)
}
