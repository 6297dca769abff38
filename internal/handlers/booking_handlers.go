package handlers

import (
	"errors"
	"net/http"

	"rentmart/internal/common"
	"rentmart/internal/models"
	"rentmart/internal/repositories"
	"rentmart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BookingHandlers handles booking creation and listing.
type BookingHandlers struct {
	bookingSvc services.BookingService
}

func NewBookingHandlers(bookingSvc services.BookingService) *BookingHandlers {
	return &BookingHandlers{bookingSvc: bookingSvc}
}

// CreateBookingRequest is the booking creation payload. Dates are calendar
// dates without a time component.
type CreateBookingRequest struct {
	ItemID    uuid.UUID `json:"item_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
}

// CreateBooking handles POST /bookings for an authenticated renter.
func (h *BookingHandlers) CreateBooking(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authorization required")
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.ItemID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "item_id is required")
	}
	if err := common.ValidateDateFormat(req.StartDate, "start_date"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := common.ValidateDateFormat(req.EndDate, "end_date"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookingSvc.Create(ctx, userID, req.ItemID, req.StartDate, req.EndDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDate), errors.Is(err, services.ErrInvalidDateRange):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, repositories.ErrItemNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Item not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"booking_id":  booking.ID,
		"total_price": booking.TotalPrice,
	})
}

// ListBookings handles GET /bookings: the caller's bookings, newest first.
func (h *BookingHandlers) ListBookings(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authorization required")
	}

	bookings, err := h.bookingSvc.ListForUser(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if bookings == nil {
		bookings = []*models.BookingWithItem{}
	}
	return c.JSON(http.StatusOK, bookings)
}
