package handlers

import (
	"context"
	"io"

	"rentmart/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password, fullName, phone, userType string) (*models.User, string, error) {
	args := m.Called(ctx, email, password, fullName, phone, userType)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Verify(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, userID, itemID uuid.UUID, startDate, endDate string) (*models.Booking, error) {
	args := m.Called(ctx, userID, itemID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.BookingWithItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BookingWithItem), args.Error(1)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) ListActive(ctx context.Context, category string) ([]*models.ItemWithOwner, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ItemWithOwner), args.Error(1)
}

func (m *MockItemRepository) GetPrice(ctx context.Context, id uuid.UUID) (float64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) UploadListingImage(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, filename, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockImageService) EnsureBucket(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
