package repositories

import (
	"context"
	"testing"
	"time"

	"rentmart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SessionRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    SessionRepository
	userID  uuid.UUID
	context context.Context
}

func (suite *SessionRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewSessionRepo(mock)
	suite.userID = uuid.New()
	suite.context = context.Background()
}

func (suite *SessionRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestSessionRepoTestSuite(t *testing.T) {
	suite.Run(t, new(SessionRepoTestSuite))
}

func (suite *SessionRepoTestSuite) TestCreate_Success() {
	session := &models.Session{
		ID:           uuid.New(),
		UserID:       suite.userID,
		SessionToken: "opaque-token",
		ExpiresAt:    time.Now().Add(30 * 24 * time.Hour),
	}

	suite.mock.ExpectExec(`
		INSERT INTO user_sessions \(id, user_id, session_token, expires_at, created_at\)
		VALUES \(\$1, \$2, \$3, \$4, NOW\(\)\)
	`).WithArgs(session.ID, session.UserID, session.SessionToken, session.ExpiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, session)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *SessionRepoTestSuite) TestResolveUserID_Valid() {
	suite.mock.ExpectQuery(`SELECT user_id FROM user_sessions WHERE session_token = \$1 AND expires_at > NOW\(\)`).
		WithArgs("good-token").
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(suite.userID))

	userID, err := suite.repo.ResolveUserID(suite.context, "good-token")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.userID, userID)
}

func (suite *SessionRepoTestSuite) TestResolveUserID_ExpiredOrUnknown() {
	suite.mock.ExpectQuery(`SELECT user_id FROM user_sessions`).
		WithArgs("stale-token").
		WillReturnError(pgx.ErrNoRows)

	userID, err := suite.repo.ResolveUserID(suite.context, "stale-token")
	assert.ErrorIs(suite.T(), err, ErrSessionNotFound)
	assert.Equal(suite.T(), uuid.Nil, userID)
}

func (suite *SessionRepoTestSuite) TestGetUserByToken_JoinsUser() {
	suite.mock.ExpectQuery(`
		SELECT u.id, u.email, u.full_name, u.user_type
		FROM user_sessions s
		JOIN users u ON s.user_id = u.id
		WHERE s.session_token = \$1 AND s.expires_at > NOW\(\)
	`).WithArgs("good-token").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "full_name", "user_type"}).
			AddRow(suite.userID, "renter@example.com", "A Renter", "renter"))

	user, err := suite.repo.GetUserByToken(suite.context, "good-token")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "renter@example.com", user.Email)
	assert.Equal(suite.T(), "renter", user.UserType)
}

func (suite *SessionRepoTestSuite) TestGetUserByToken_Expired() {
	suite.mock.ExpectQuery(`FROM user_sessions s`).
		WithArgs("stale-token").
		WillReturnError(pgx.ErrNoRows)

	user, err := suite.repo.GetUserByToken(suite.context, "stale-token")
	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, ErrSessionNotFound)
}

func (suite *SessionRepoTestSuite) TestDeleteExpired() {
	suite.mock.ExpectExec(`DELETE FROM user_sessions WHERE expires_at <= NOW\(\)`).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	deleted, err := suite.repo.DeleteExpired(suite.context)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), deleted)
}
