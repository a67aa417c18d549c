package auth

import (
	"context"
	"testing"

	"carrental/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, oldUsername string, p *domain.Profile) error {
	args := m.Called(ctx, oldUsername, p)
	return args.Error(0)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(username, role string) (string, error) {
	return "token-" + username + "-" + role, nil
}

func newTestService(profiles ProfileRepository) *Service {
	return NewService(profiles, stubJWT{}, "admin", "login")
}

func storedProfile(password string) *domain.Profile {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return &domain.Profile{
		Username:     "juandc",
		FullName:     "Juan Dela Cruz",
		Age:          21,
		Citizenship:  "Filipino",
		Gender:       "Male",
		PasswordHash: string(hash),
	}
}

func validSignup() SignupRequest {
	return SignupRequest{
		FullName:        "Juan Dela Cruz",
		Age:             21,
		Citizenship:     "Filipino",
		Gender:          "Male",
		Username:        "juandc",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func TestService_Signup_Success(t *testing.T) {
	profiles := new(MockProfileRepository)
	svc := newTestService(profiles)

	profiles.On("ExistsByUsername", mock.Anything, "juandc").Return(false, nil)
	profiles.On("Create", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

	res, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)
	assert.Equal(t, "juandc", res.Username)
	assert.Equal(t, domain.RoleCustomer, res.Role)
	assert.NotEmpty(t, res.Token)

	// password must be stored hashed, never as the raw value
	created := profiles.Calls[1].Arguments.Get(1).(*domain.Profile)
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
}

func TestService_Signup_UnderageRejectedBeforeStoreWrite(t *testing.T) {
	profiles := new(MockProfileRepository)
	svc := newTestService(profiles)

	req := validSignup()
	req.Age = 17

	_, err := svc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	profiles.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
	profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Signup_EighteenAccepted(t *testing.T) {
	profiles := new(MockProfileRepository)
	svc := newTestService(profiles)

	profiles.On("ExistsByUsername", mock.Anything, "juandc").Return(false, nil)
	profiles.On("Create", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

	req := validSignup()
	req.Age = 18

	_, err := svc.Signup(context.Background(), req)
	assert.NoError(t, err)
}

func TestService_Signup_PasswordMismatch(t *testing.T) {
	svc := newTestService(new(MockProfileRepository))

	req := validSignup()
	req.ConfirmPassword = "different"

	_, err := svc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Signup_UsernameTaken(t *testing.T) {
	profiles := new(MockProfileRepository)
	svc := newTestService(profiles)

	profiles.On("ExistsByUsername", mock.Anything, "juandc").Return(true, nil)

	_, err := svc.Signup(context.Background(), validSignup())
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestService_Signup_AdminUsernameReserved(t *testing.T) {
	svc := newTestService(new(MockProfileRepository))

	req := validSignup()
	req.Username = "admin"

	_, err := svc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestService_Login_AdminCredentialPair(t *testing.T) {
	profiles := new(MockProfileRepository)
	svc := newTestService(profiles)

	res, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "login"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, res.Role)
	profiles.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
}

func TestService_Login_Customer(t *testing.T) {
	profiles := new(MockProfileRepository)
	svc := newTestService(profiles)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	profiles.On("GetByUsername", mock.Anything, "juandc").
		Return(&domain.Profile{Username: "juandc", PasswordHash: string(hash)}, nil)

	res, err := svc.Login(context.Background(), LoginRequest{Username: "juandc", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, res.Role)

	_, err = svc.Login(context.Background(), LoginRequest{Username: "juandc", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownUser(t *testing.T) {
	profiles := new(MockProfileRepository)
	svc := newTestService(profiles)

	profiles.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_UpdateProfile_RequiresCurrentPassword(t *testing.T) {
	profiles := new(MockProfileRepository)
	svc := newTestService(profiles)

	profiles.On("GetByUsername", mock.Anything, "juandc").
		Return(storedProfile("secret123"), nil)

	newName := "Juan D. Cruz"
	_, _, err := svc.UpdateProfile(context.Background(), "juandc", UpdateProfileRequest{
		CurrentPassword: "wrong",
		FullName:        &newName,
	})
	assert.ErrorIs(t, err, ErrWrongPassword)
	profiles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateProfile_RenameReissuesToken(t *testing.T) {
	profiles := new(MockProfileRepository)
	svc := newTestService(profiles)

	profiles.On("GetByUsername", mock.Anything, "juandc").
		Return(storedProfile("secret123"), nil)
	profiles.On("ExistsByUsername", mock.Anything, "juan2").Return(false, nil)
	profiles.On("Update", mock.Anything, "juandc", mock.AnythingOfType("*domain.Profile")).Return(nil)

	rename := "juan2"
	profile, token, err := svc.UpdateProfile(context.Background(), "juandc", UpdateProfileRequest{
		CurrentPassword: "secret123",
		Username:        &rename,
	})
	require.NoError(t, err)
	assert.Equal(t, "juan2", profile.Username)
	assert.NotEmpty(t, token)
}

func TestService_UpdateProfile_BlankedFieldRejected(t *testing.T) {
	profiles := new(MockProfileRepository)
	svc := newTestService(profiles)

	profiles.On("GetByUsername", mock.Anything, "juandc").
		Return(storedProfile("secret123"), nil)

	blank := ""
	_, _, err := svc.UpdateProfile(context.Background(), "juandc", UpdateProfileRequest{
		CurrentPassword: "secret123",
		Citizenship:     &blank,
	})
	assert.ErrorIs(t, err, ErrValidation)
	profiles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateProfile_RenameCollision(t *testing.T) {
	profiles := new(MockProfileRepository)
	svc := newTestService(profiles)

	profiles.On("GetByUsername", mock.Anything, "juandc").
		Return(storedProfile("secret123"), nil)
	profiles.On("ExistsByUsername", mock.Anything, "taken").Return(true, nil)

	rename := "taken"
	_, _, err := svc.UpdateProfile(context.Background(), "juandc", UpdateProfileRequest{
		CurrentPassword: "secret123",
		Username:        &rename,
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}
