package repositories

import (
	"context"
	"errors"
	"fmt"

	"rentmart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	ResolveUserID(ctx context.Context, token string) (uuid.UUID, error)
	GetUserByToken(ctx context.Context, token string) (*models.User, error)
	DeleteExpired(ctx context.Context) (int64, error)
	WithTx(tx pgx.Tx) SessionRepository
}

type sessionRepo struct {
	db Database
}

func NewSessionRepo(db Database) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) WithTx(tx pgx.Tx) SessionRepository {
	return &sessionRepo{db: tx}
}

func (r *sessionRepo) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO user_sessions (id, user_id, session_token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.db.Exec(ctx, query, session.ID, session.UserID, session.SessionToken, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// ResolveUserID maps an unexpired session token to its user id.
func (r *sessionRepo) ResolveUserID(ctx context.Context, token string) (uuid.UUID, error) {
	var userID uuid.UUID
	query := `SELECT user_id FROM user_sessions WHERE session_token = $1 AND expires_at > NOW()`
	err := r.db.QueryRow(ctx, query, token).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, ErrSessionNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	return userID, nil
}

// GetUserByToken returns the user behind an unexpired session token.
func (r *sessionRepo) GetUserByToken(ctx context.Context, token string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT u.id, u.email, u.full_name, u.user_type
		FROM user_sessions s
		JOIN users u ON s.user_id = u.id
		WHERE s.session_token = $1 AND s.expires_at > NOW()
	`
	err := r.db.QueryRow(ctx, query, token).Scan(&user.ID, &user.Email, &user.FullName, &user.UserType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	return user, nil
}

// DeleteExpired removes sessions whose expiry has passed. Expired rows are
// already invisible to lookups; this only keeps the table from growing.
func (r *sessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
