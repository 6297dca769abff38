package handlers

import (
	"errors"
	"net/http"

	"rentmart/internal/common"
	"rentmart/internal/models"
	"rentmart/internal/repositories"
	"rentmart/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers handles registration, login and session verification.
type AuthHandlers struct {
	auth services.AuthService
}

func NewAuthHandlers(auth services.AuthService) *AuthHandlers {
	return &AuthHandlers{auth: auth}
}

// AuthRequest is the single POST /auth payload; Action selects the
// operation and the remaining fields are read per action.
type AuthRequest struct {
	Action       string `json:"action"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	UserType     string `json:"user_type"`
	SessionToken string `json:"session_token"`
}

// AuthResponse is the success body for register/login/verify.
type AuthResponse struct {
	Success      bool               `json:"success"`
	User         models.UserSummary `json:"user"`
	SessionToken string             `json:"session_token,omitempty"`
}

// Handle dispatches POST /auth by action.
func (h *AuthHandlers) Handle(c echo.Context) error {
	var req AuthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	switch req.Action {
	case "register":
		return h.register(c, req)
	case "login":
		return h.login(c, req)
	case "verify":
		return h.verify(c, req)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid action")
	}
}

func (h *AuthHandlers) register(c echo.Context, req AuthRequest) error {
	// Presence is checked on trimmed email/full_name; the password is
	// taken as-is, spaces included.
	if common.ValidateRequiredString(req.Email, "email") != nil ||
		req.Password == "" ||
		common.ValidateRequiredString(req.FullName, "full_name") != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Email, password and full name are required")
	}
	if len(req.Password) < 6 {
		return echo.NewHTTPError(http.StatusBadRequest, "Password must be at least 6 characters")
	}

	user, token, err := h.auth.Register(c.Request().Context(), req.Email, req.Password, req.FullName, req.Phone, req.UserType)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusBadRequest, "User with this email already exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Success:      true,
		User:         user.Summary(),
		SessionToken: token,
	})
}

func (h *AuthHandlers) login(c echo.Context, req AuthRequest) error {
	if common.ValidateRequiredString(req.Email, "email") != nil || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	user, token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Success:      true,
		User:         user.Summary(),
		SessionToken: token,
	})
}

func (h *AuthHandlers) verify(c echo.Context, req AuthRequest) error {
	if req.SessionToken == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Session token required")
	}

	user, err := h.auth.Verify(c.Request().Context(), req.SessionToken)
	if err != nil {
		if errors.Is(err, services.ErrSessionInvalid) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired session")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		User:    user.Summary(),
	})
}
