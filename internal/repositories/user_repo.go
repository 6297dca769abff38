package repositories

import (
	"context"
	"errors"
	"fmt"

	"rentmart/internal/models"

	"github.com/jackc/pgx/v5"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	EmailExists(ctx context.Context, email string) (bool, error)
	GetByCredentials(ctx context.Context, email, passwordHash string) (*models.User, error)
	WithTx(tx pgx.Tx) UserRepository
}

type userRepo struct {
	db Database
}

func NewUserRepo(db Database) UserRepository {
	return &userRepo{db: db}
}

// WithTx returns a copy of the repository that runs against the given
// transaction instead of the pool.
func (r *userRepo) WithTx(tx pgx.Tx) UserRepository {
	return &userRepo{db: tx}
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, full_name, phone, user_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err := r.db.Exec(ctx, query, user.ID, user.Email, user.PasswordHash, user.FullName, user.Phone, user.UserType)
	if err != nil {
		// The email column carries a unique constraint; a concurrent
		// registration that won the race surfaces here.
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var id string
	query := `SELECT id FROM users WHERE email = $1`
	err := r.db.QueryRow(ctx, query, email).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return true, nil
}

// GetByCredentials matches a user by email and credential digest. A miss on
// either field returns pgx.ErrNoRows, so callers cannot tell an unknown
// email from a wrong password.
func (r *userRepo) GetByCredentials(ctx context.Context, email, passwordHash string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, email, full_name, user_type
		FROM users
		WHERE email = $1 AND password_hash = $2
	`
	err := r.db.QueryRow(ctx, query, email, passwordHash).Scan(&user.ID, &user.Email, &user.FullName, &user.UserType)
	if err != nil {
		return nil, err
	}
	return user, nil
}
