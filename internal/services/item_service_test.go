package services_test

import (
	"errors"
	"fmt"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockItemRepo is a testify mock of repositories.ItemRepository.
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) GetAll() ([]models.Item, error) {
	args := m.Called()
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepo) GetByID(id string) (*models.Item, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepo) GetByName(name string) ([]models.Item, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepo) Create(item *models.Item) error {
	args := m.Called(item)
	return args.Error(0)
}

func TestItemService_GetAllItems(t *testing.T) {
	mockRepo := new(MockItemRepo)
	service := services.NewItemService(mockRepo)

	expected := []models.Item{
		{ID: "1", Name: "Round Widget", Price: 2.99},
		{ID: "2", Name: "Square Widget", Price: 1.99},
	}

	mockRepo.On("GetAll").Return(expected, nil).Once()

	items, err := service.GetAllItems()

	assert.NoError(t, err)
	assert.Equal(t, expected, items)
	mockRepo.AssertExpectations(t)

	// An empty catalog is a valid result, not an error.
	mockRepo.On("GetAll").Return([]models.Item{}, nil).Once()
	items, err = service.GetAllItems()
	assert.NoError(t, err)
	assert.Empty(t, items)
	mockRepo.AssertExpectations(t)
}

func TestItemService_GetItemByID(t *testing.T) {
	mockRepo := new(MockItemRepo)
	service := services.NewItemService(mockRepo)

	expected := &models.Item{ID: "1", Name: "Round Widget", Price: 2.99}

	mockRepo.On("GetByID", "1").Return(expected, nil).Once()
	item, err := service.GetItemByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expected, item)
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("item 99: %w", repositories.ErrNotFound)).Once()
	item, err = service.GetItemByID("99")
	assert.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	mockRepo.AssertExpectations(t)
}

func TestItemService_GetItemsByName(t *testing.T) {
	mockRepo := new(MockItemRepo)
	service := services.NewItemService(mockRepo)

	expected := []models.Item{{ID: "1", Name: "Round Widget", Price: 2.99}}

	mockRepo.On("GetByName", "Round Widget").Return(expected, nil).Once()
	items, err := service.GetItemsByName("Round Widget")
	assert.NoError(t, err)
	assert.Equal(t, expected, items)
	mockRepo.AssertExpectations(t)

	// An empty match set is reported as not found.
	mockRepo.On("GetByName", "NoSuchItem").Return([]models.Item{}, nil).Once()
	items, err = service.GetItemsByName("NoSuchItem")
	assert.Error(t, err)
	assert.Nil(t, items)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	mockRepo.AssertExpectations(t)
}

func TestItemService_CreateItem(t *testing.T) {
	mockRepo := new(MockItemRepo)
	service := services.NewItemService(mockRepo)

	newItem := &models.Item{Name: "Widget", Price: 10.00}

	mockRepo.On("Create", newItem).Return(nil).Once()
	err := service.CreateItem(newItem)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// A missing name is rejected before any write.
	err = service.CreateItem(&models.Item{Name: "   ", Price: 5.00})
	assert.True(t, errors.Is(err, services.ErrInvalidInput))
	mockRepo.AssertNotCalled(t, "Create", &models.Item{Name: "   ", Price: 5.00})

	// A negative price is rejected before any write.
	err = service.CreateItem(&models.Item{Name: "Bad Widget", Price: -1.00})
	assert.True(t, errors.Is(err, services.ErrInvalidInput))

	mockRepo.On("Create", newItem).Return(fmt.Errorf("database error")).Once()
	err = service.CreateItem(newItem)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}
