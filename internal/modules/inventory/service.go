package inventory

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"carrental/internal/domain"
	"carrental/internal/pkg/validator"

	"gorm.io/gorm"
)

// Service validates and normalizes car-listing edits for the admin surface.
type Service struct {
	cars CarRepository
}

func NewService(cars CarRepository) *Service {
	return &Service{cars: cars}
}

func (s *Service) CreateCar(ctx context.Context, req CreateCarRequest) (*domain.Car, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	car := &domain.Car{
		Name:    name,
		Photo:   req.Photo,
		Details: req.Details,
		Price:   price,
	}
	if err := validator.Check(car); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	if err := s.cars.Create(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

// UpdateCar rewrites only the supplied fields and refreshes the update
// timestamp. Concurrent edits are last-write-wins.
func (s *Service) UpdateCar(ctx context.Context, id string, req UpdateCarRequest) (*domain.Car, error) {
	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrValidation)
		}
		car.Name = name
	}
	if req.Photo != nil {
		car.Photo = *req.Photo
	}
	if req.Details != nil {
		car.Details = *req.Details
	}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return nil, err
		}
		car.Price = price
	}
	if err := validator.Check(car); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	if err := s.cars.Update(ctx, car); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return car, nil
}

func (s *Service) DeleteCar(ctx context.Context, id string) error {
	if err := s.cars.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.cars.List(ctx)
}

func (s *Service) GetCar(ctx context.Context, id string) (*domain.Car, error) {
	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return car, nil
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price must be a number", ErrValidation)
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return price, nil
}
