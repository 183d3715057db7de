package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

// UserService handles business logic for the user registry.
type UserService struct {
	userRepo   repositories.UserRepository
	cartRepo   repositories.CartRepository
	bcryptCost int
}

// NewUserService creates a new UserService. The bcrypt cost factor comes from
// configuration; values outside bcrypt's range fall back to the default cost.
func NewUserService(userRepo repositories.UserRepository, cartRepo repositories.CartRepository, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		userRepo:   userRepo,
		cartRepo:   cartRepo,
		bcryptCost: bcryptCost,
	}
}

// GetUserByID retrieves a user by their ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// GetUserByUsername retrieves a user by their username. A missing user and a
// lookup fault surface as distinct errors.
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	return s.userRepo.GetByUsername(username)
}

// RegisterUser validates the credentials, hashes the password, creates the
// user's empty cart and persists both. Validation rejects before any write:
// username and password must be present, then the password must be at least
// MinPasswordLength characters.
func (s *UserService) RegisterUser(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrInvalidInput)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters: %w", MinPasswordLength, ErrInvalidInput)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	cart := &models.Cart{UserID: user.ID}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, fmt.Errorf("failed to create cart for user %s: %w", user.Username, err)
	}
	user.Cart = cart

	return user, nil
}
