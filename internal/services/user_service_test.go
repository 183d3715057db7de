package services_test

import (
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepo is a testify mock of repositories.UserRepository.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockCartRepo is a testify mock of repositories.CartRepository.
type MockCartRepo struct {
	mock.Mock
}

func (m *MockCartRepo) Create(cart *models.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

func (m *MockCartRepo) GetByUserID(userID string) (*models.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepo) Update(cart *models.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestUserService_RegisterUser(t *testing.T) {
	mockUsers := new(MockUserRepo)
	mockCarts := new(MockCartRepo)
	service := services.NewUserService(mockUsers, mockCarts, bcrypt.MinCost)

	mockUsers.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	mockCarts.On("Create", mock.AnythingOfType("*models.Cart")).Return(nil).Once()

	user, err := service.RegisterUser("u1", "longenough")
	assert.NoError(t, err)
	assert.Equal(t, "u1", user.Username)
	assert.NotNil(t, user.Cart)

	// The stored password is a hash of the original, never the plaintext.
	assert.NotEqual(t, "longenough", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("longenough")))

	mockUsers.AssertExpectations(t)
	mockCarts.AssertExpectations(t)
}

func TestUserService_RegisterUser_Validation(t *testing.T) {
	mockUsers := new(MockUserRepo)
	mockCarts := new(MockCartRepo)
	service := services.NewUserService(mockUsers, mockCarts, bcrypt.MinCost)

	// Presence is checked before length.
	_, err := service.RegisterUser("", "longenough")
	assert.True(t, errors.Is(err, services.ErrInvalidInput))

	_, err = service.RegisterUser("u1", "")
	assert.True(t, errors.Is(err, services.ErrInvalidInput))

	// A 7-character password is one short of the minimum.
	_, err = service.RegisterUser("u1", "short77")
	assert.True(t, errors.Is(err, services.ErrInvalidInput))

	// Nothing was persisted for any rejection.
	mockUsers.AssertNotCalled(t, "Create", mock.Anything)
	mockCarts.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUserService_RegisterUser_PersistenceFault(t *testing.T) {
	mockUsers := new(MockUserRepo)
	mockCarts := new(MockCartRepo)
	service := services.NewUserService(mockUsers, mockCarts, bcrypt.MinCost)

	mockUsers.On("Create", mock.AnythingOfType("*models.User")).Return(fmt.Errorf("database error")).Once()

	_, err := service.RegisterUser("u1", "longenough")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, services.ErrInvalidInput))
	mockUsers.AssertExpectations(t)
	mockCarts.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUserService_GetUserByUsername(t *testing.T) {
	mockUsers := new(MockUserRepo)
	mockCarts := new(MockCartRepo)
	service := services.NewUserService(mockUsers, mockCarts, bcrypt.MinCost)

	expected := &models.User{ID: "user-1", Username: "u1"}

	mockUsers.On("GetByUsername", "u1").Return(expected, nil).Once()
	user, err := service.GetUserByUsername("u1")
	assert.NoError(t, err)
	assert.Equal(t, expected, user)

	// Absence and lookup faults stay distinguishable for the caller.
	mockUsers.On("GetByUsername", "ghost").Return(nil, fmt.Errorf("user ghost: %w", repositories.ErrNotFound)).Once()
	_, err = service.GetUserByUsername("ghost")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	mockUsers.On("GetByUsername", "broken").Return(nil, fmt.Errorf("connection reset")).Once()
	_, err = service.GetUserByUsername("broken")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, repositories.ErrNotFound))

	mockUsers.AssertExpectations(t)
}
