package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"majestic/internal/shared/apperror"
	"majestic/internal/shared/config"
	"majestic/internal/users"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateUser(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockRepository) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *mockRepository) GetUserByID(ctx context.Context, id string) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *mockRepository) UpdateUserPassword(ctx context.Context, userID string, hashedPassword string) error {
	args := m.Called(ctx, userID, hashedPassword)
	return args.Error(0)
}

func (m *mockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     time.Hour,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func TestRegisterCreatesCustomer(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testConfig())

	repo.On("EmailExists", mock.Anything, "jean@example.com").Return(false, nil)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *users.User) bool {
		return user.Role == users.RoleCustomer && user.Password != "secret123"
	})).Return(nil)

	result, err := svc.Register(context.Background(), &RegisterRequest{
		FirstName: "Jean",
		LastName:  "Dupont",
		Email:     "jean@example.com",
		Password:  "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, string(users.RoleCustomer), result.User.Role)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	repo.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testConfig())

	repo.On("EmailExists", mock.Anything, "jean@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		FirstName: "Jean",
		LastName:  "Dupont",
		Email:     "jean@example.com",
		Password:  "secret123",
	})

	require.Error(t, err)
	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, apperror.Conflict, appErr.Kind)
	repo.AssertNotCalled(t, "CreateUser")
}

func TestCreateStaffNormalizesLegacyRole(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testConfig())

	repo.On("EmailExists", mock.Anything, "caisse@example.com").Return(false, nil)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *users.User) bool {
		return user.Role == users.RoleTicketOffice
	})).Return(nil)

	result, err := svc.CreateStaff(context.Background(), &CreateStaffRequest{
		FirstName: "Marie",
		LastName:  "Martin",
		Email:     "caisse@example.com",
		Password:  "secret123",
		Role:      "caissier",
	})

	require.NoError(t, err)
	assert.Equal(t, string(users.RoleTicketOffice), result.Role)
	repo.AssertExpectations(t)
}

func TestCreateStaffRejectsCustomerRole(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testConfig())

	_, err := svc.CreateStaff(context.Background(), &CreateStaffRequest{
		FirstName: "Marie",
		LastName:  "Martin",
		Email:     "marie@example.com",
		Password:  "secret123",
		Role:      "customer",
	})

	require.Error(t, err)
	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, apperror.BadRequest, appErr.Kind)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testConfig())

	hashed, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo.On("GetUserByEmail", mock.Anything, "jean@example.com").Return(&users.User{
		ID:       uuid.New(),
		Email:    "jean@example.com",
		Password: string(hashed),
		Role:     users.RoleCustomer,
	}, nil)

	_, err = svc.Login(context.Background(), &LoginRequest{
		Email:    "jean@example.com",
		Password: "wrong-password",
	})

	require.Error(t, err)
	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, apperror.Unauthorized, appErr.Kind)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testConfig()).(*service)

	pair, err := svc.generateTokenPair(uuid.NewString(), "jean@example.com", "customer")
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	require.Error(t, err)
	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, apperror.Unauthorized, appErr.Kind)
}

func TestGenerateTokenPairMissingSecret(t *testing.T) {
	repo := new(mockRepository)
	cfg := testConfig()
	cfg.JWT.Secret = ""
	svc := NewService(repo, cfg).(*service)

	_, err := svc.generateTokenPair(uuid.NewString(), "jean@example.com", "customer")
	require.Error(t, err)
	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, apperror.Internal, appErr.Kind)
}
