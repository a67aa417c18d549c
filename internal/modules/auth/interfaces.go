package auth

import (
	"context"

	"carrental/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, oldUsername string, p *domain.Profile) error
}

type jwtService interface {
	GenerateToken(username, role string) (string, error)
}
