package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"rentmart/internal/models"
	"rentmart/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SessionTTL is how long an issued session stays valid.
const SessionTTL = 30 * 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionInvalid     = errors.New("invalid or expired session")
)

// AuthService handles registration, login and session verification.
// Credentials are stored as an unsalted SHA-256 digest to stay compatible
// with existing user rows; see DESIGN.md before changing the scheme.
type AuthService interface {
	Register(ctx context.Context, email, password, fullName, phone, userType string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Verify(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	db       repositories.Database
	users    repositories.UserRepository
	sessions repositories.SessionRepository
}

func NewAuthService(db repositories.Database, users repositories.UserRepository, sessions repositories.SessionRepository) AuthService {
	return &authService{
		db:       db,
		users:    users,
		sessions: sessions,
	}
}

// Register creates a user and an immediately valid session. Both rows are
// written in one transaction so a crash cannot leave a sessionless user.
func (s *authService) Register(ctx context.Context, email, password, fullName, phone, userType string) (*models.User, string, error) {
	email = NormalizeEmail(email)
	fullName = strings.TrimSpace(fullName)
	phone = strings.TrimSpace(phone)
	if userType == "" {
		userType = "renter"
	}

	taken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", repositories.ErrEmailTaken
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: HashPassword(password),
		FullName:     fullName,
		Phone:        phone,
		UserType:     userType,
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.users.WithTx(tx).Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.issueSession(ctx, s.sessions.WithTx(tx), user.ID)
	if err != nil {
		return nil, "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, "", fmt.Errorf("failed to commit registration: %w", err)
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = NormalizeEmail(email)

	user, err := s.users.GetByCredentials(ctx, email, HashPassword(password))
	if errors.Is(err, pgx.ErrNoRows) {
		// Unknown email and wrong password are indistinguishable here.
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up credentials: %w", err)
	}

	token, err := s.issueSession(ctx, s.sessions, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Verify resolves a session token to its user. It does not refresh the
// session expiry.
func (s *authService) Verify(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}
	user, err := s.sessions.GetUserByToken(ctx, token)
	if errors.Is(err, repositories.ErrSessionNotFound) {
		return nil, ErrSessionInvalid
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) issueSession(ctx context.Context, sessions repositories.SessionRepository, userID uuid.UUID) (string, error) {
	token, err := NewSessionToken()
	if err != nil {
		return "", err
	}
	session := &models.Session{
		ID:           uuid.New(),
		UserID:       userID,
		SessionToken: token,
		ExpiresAt:    time.Now().Add(SessionTTL),
	}
	if err := sessions.Create(ctx, session); err != nil {
		return "", err
	}
	return token, nil
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashPassword returns the hex SHA-256 digest of the raw password bytes.
// Unsalted to stay compatible with digests already stored in users rows.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// NewSessionToken returns a 32-byte cryptographically random token in
// unpadded URL-safe base64.
func NewSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
