package models

import (
	"time"

	"github.com/google/uuid"
)

const BookingStatusPending = "pending"

type Booking struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ItemID     uuid.UUID `json:"item_id" db:"item_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`
	TotalDays  int       `json:"total_days" db:"total_days"`
	TotalPrice float64   `json:"total_price" db:"total_price"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// BookingWithItem is a booking row joined with the booked item and its
// owner's display name, as returned by the caller's booking list.
type BookingWithItem struct {
	Booking
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`
	Location  string `json:"location"`
	OwnerName string `json:"owner_name"`
}
