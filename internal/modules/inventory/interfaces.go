package inventory

import (
	"context"

	"carrental/internal/domain"
)

type CarRepository interface {
	Create(ctx context.Context, c *domain.Car) error
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	List(ctx context.Context) ([]domain.Car, error)
	Update(ctx context.Context, c *domain.Car) error
	Delete(ctx context.Context, id string) error
}
