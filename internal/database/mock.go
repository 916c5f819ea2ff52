package database

import (
	"time"

	"github.com/campushub/campus-hub/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a testify mock of Repository for handler tests.
type MockRepository struct {
	mock.Mock
}

var _ Repository = (*MockRepository)(nil)

func (m *MockRepository) SaveUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockRepository) GetUser(id string) (*models.User, error) {
	args := m.Called(id)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) FindUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) UpdateLastSeen(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRepository) CreateListing(listing *models.Listing) error {
	args := m.Called(listing)
	return args.Error(0)
}

func (m *MockRepository) GetListing(id string) (*models.Listing, error) {
	args := m.Called(id)
	if listing, ok := args.Get(0).(*models.Listing); ok {
		return listing, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListActiveListings(now time.Time) ([]models.Listing, error) {
	args := m.Called(now)
	if listings, ok := args.Get(0).([]models.Listing); ok {
		return listings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) DeleteListing(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRepository) AddInterest(interest *models.Interest) error {
	args := m.Called(interest)
	return args.Error(0)
}

func (m *MockRepository) GetInterests(listingID string) ([]models.Interest, error) {
	args := m.Called(listingID)
	if interests, ok := args.Get(0).([]models.Interest); ok {
		return interests, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) AcceptInterest(listingID, interestID string) error {
	args := m.Called(listingID, interestID)
	return args.Error(0)
}

func (m *MockRepository) GetSlots(userID string) ([]models.Slot, error) {
	args := m.Called(userID)
	if slots, ok := args.Get(0).([]models.Slot); ok {
		return slots, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ReplaceSlots(userID uuid.UUID, slots []models.Slot) ([]models.Slot, error) {
	args := m.Called(userID, slots)
	if saved, ok := args.Get(0).([]models.Slot); ok {
		return saved, args.Error(1)
	}
	return nil, args.Error(1)
}
