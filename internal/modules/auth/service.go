package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"carrental/internal/domain"
	"carrental/internal/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minSignupAge = 18

// Service owns the authentication boundary: identity is established here and
// travels as explicit session claims, never as ambient global state.
type Service struct {
	profiles ProfileRepository
	jwt      jwtService

	// Single shared administrator credential pair; there is no admin row
	// in the profiles collection.
	adminUsername string
	adminPassword string
}

type LoginResult struct {
	Username string
	Role     domain.Role
	Token    string
}

func NewService(profiles ProfileRepository, jwt jwtService, adminUsername, adminPassword string) *Service {
	return &Service{
		profiles:      profiles,
		jwt:           jwt,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (*LoginResult, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	if req.Age < minSignupAge {
		return nil, fmt.Errorf("%w: you must be at least 18 years old", ErrValidation)
	}
	if username == s.adminUsername {
		return nil, ErrUsernameTaken
	}

	exists, err := s.profiles.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		Username:     username,
		FullName:     req.FullName,
		Age:          req.Age,
		Citizenship:  req.Citizenship,
		Gender:       req.Gender,
		PasswordHash: string(hash),
	}
	if err := validator.Check(profile); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		// The pre-check races against concurrent signups; the unique
		// constraint is the backstop.
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(username, string(domain.RoleCustomer))
	if err != nil {
		return nil, err
	}

	return &LoginResult{Username: username, Role: domain.RoleCustomer, Token: token}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)

	if username == s.adminUsername && password == s.adminPassword {
		token, err := s.jwt.GenerateToken(username, string(domain.RoleAdmin))
		if err != nil {
			return nil, err
		}
		return &LoginResult{Username: username, Role: domain.RoleAdmin, Token: token}, nil
	}

	profile, err := s.profiles.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(profile.Username, string(domain.RoleCustomer))
	if err != nil {
		return nil, err
	}

	return &LoginResult{Username: profile.Username, Role: domain.RoleCustomer, Token: token}, nil
}

func (s *Service) GetProfile(ctx context.Context, username string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile mutates the profile after re-verifying the current password.
// A username rename re-issues the session token so later requests look the
// profile up under the new key.
func (s *Service) UpdateProfile(ctx context.Context, username string, req UpdateProfileRequest) (*domain.Profile, string, error) {
	profile, err := s.profiles.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return nil, "", ErrWrongPassword
	}

	if req.Username != nil {
		newName := strings.TrimSpace(*req.Username)
		if newName == "" {
			return nil, "", fmt.Errorf("%w: username is required", ErrValidation)
		}
		if newName != username {
			if newName == s.adminUsername {
				return nil, "", ErrUsernameTaken
			}
			exists, err := s.profiles.ExistsByUsername(ctx, newName)
			if err != nil {
				return nil, "", err
			}
			if exists {
				return nil, "", ErrUsernameTaken
			}
			profile.Username = newName
		}
	}
	if req.FullName != nil && strings.TrimSpace(*req.FullName) != "" {
		profile.FullName = *req.FullName
	}
	if req.Age != nil {
		if *req.Age < minSignupAge {
			return nil, "", fmt.Errorf("%w: you must be at least 18 years old", ErrValidation)
		}
		profile.Age = *req.Age
	}
	if req.Citizenship != nil {
		profile.Citizenship = *req.Citizenship
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, "", err
		}
		profile.PasswordHash = string(hash)
	}

	// Patched profile must still satisfy every field rule before the write.
	if err := validator.Check(profile); err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrValidation, err)
	}

	if err := s.profiles.Update(ctx, username, profile); err != nil {
		if isUniqueViolation(err) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", err
	}

	token := ""
	if profile.Username != username {
		token, err = s.jwt.GenerateToken(profile.Username, string(domain.RoleCustomer))
		if err != nil {
			return nil, "", err
		}
	}

	return profile, token, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
