package repositories

import (
	"context"
	"fmt"

	"rentmart/internal/models"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.BookingWithItem, error)
}

type bookingRepo struct {
	db Database
}

func NewBookingRepo(db Database) BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (id, item_id, user_id, start_date, end_date, total_days, total_price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	_, err := r.db.Exec(ctx, query,
		booking.ID, booking.ItemID, booking.UserID, booking.StartDate, booking.EndDate,
		booking.TotalDays, booking.TotalPrice, booking.Status)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// ListByUser returns the caller's bookings joined with the booked item and
// the item owner's display name, newest first.
func (r *bookingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.BookingWithItem, error) {
	query := `
		SELECT b.id, b.item_id, b.user_id, b.start_date, b.end_date, b.total_days, b.total_price, b.status, b.created_at,
		       i.title, i.image_url, i.location, u.full_name AS owner_name
		FROM bookings b
		JOIN items i ON b.item_id = i.id
		JOIN users u ON i.user_id = u.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.BookingWithItem
	for rows.Next() {
		b := &models.BookingWithItem{}
		if err := rows.Scan(
			&b.ID, &b.ItemID, &b.UserID, &b.StartDate, &b.EndDate, &b.TotalDays, &b.TotalPrice, &b.Status, &b.CreatedAt,
			&b.Title, &b.ImageURL, &b.Location, &b.OwnerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}
	return bookings, nil
}
