package models

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	CategoryID  string    `json:"category_id" db:"category_id"`
	Price       float64   `json:"price" db:"price"`
	Period      string    `json:"period" db:"period"`
	Location    string    `json:"location" db:"location"`
	Condition   string    `json:"condition" db:"condition"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	Features    []string  `json:"features" db:"features"`
	Rules       []string  `json:"rules" db:"rules"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ItemWithOwner is a listing row enriched with the owner's public profile
// fields, as returned by the items listing.
type ItemWithOwner struct {
	Item
	Owner        string  `json:"owner"`
	OwnerRating  float64 `json:"owner_rating"`
	OwnerReviews int     `json:"owner_reviews"`
}
