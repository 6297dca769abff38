package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize in JSON
	FullName     string    `json:"full_name" db:"full_name"`
	Phone        string    `json:"phone" db:"phone"`
	UserType     string    `json:"user_type" db:"user_type"`
	Rating       float64   `json:"rating" db:"rating"`
	ReviewsCount int       `json:"reviews_count" db:"reviews_count"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UserSummary is the public view of a user returned by auth responses.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	UserType string    `json:"user_type"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		UserType: u.UserType,
	}
}
