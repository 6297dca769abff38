package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentmart/internal/models"
	"rentmart/internal/repositories"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDate      = errors.New("dates must be in YYYY-MM-DD format")
	ErrInvalidDateRange = errors.New("end_date cannot be before start_date")
)

type BookingService interface {
	Create(ctx context.Context, userID, itemID uuid.UUID, startDate, endDate string) (*models.Booking, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.BookingWithItem, error)
}

type bookingService struct {
	bookings repositories.BookingRepository
	items    repositories.ItemRepository
}

func NewBookingService(bookings repositories.BookingRepository, items repositories.ItemRepository) BookingService {
	return &bookingService{
		bookings: bookings,
		items:    items,
	}
}

// Create books an item for an inclusive date range. A booking whose start
// and end date are equal spans one day.
func (s *bookingService) Create(ctx context.Context, userID, itemID uuid.UUID, startDate, endDate string) (*models.Booking, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	totalDays := TotalDays(start, end)

	price, err := s.items.GetPrice(ctx, itemID)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:         uuid.New(),
		ItemID:     itemID,
		UserID:     userID,
		StartDate:  start,
		EndDate:    end,
		TotalDays:  totalDays,
		TotalPrice: price * float64(totalDays),
		Status:     models.BookingStatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}
	return booking, nil
}

func (s *bookingService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.BookingWithItem, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// TotalDays counts whole days between two dates, inclusive of both ends.
func TotalDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
