package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/model"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/queue"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/repository"
	queue_publisher "github.com/JamesKenLuci/ENOVA-PROJECT/internal/service"
)

// AdminBookingHandler serves the admin side of the booking workflow:
// reviewing every submission and moving it through the status lifecycle.
// Routes using it sit behind RequireRole("admin").
type AdminBookingHandler struct {
	Bookings repository.BookingStore
}

func NewAdminBookingHandler(b repository.BookingStore) *AdminBookingHandler {
	return &AdminBookingHandler{Bookings: b}
}

type statusReq struct {
	Status string `json:"status"`
}

// ListAll handles GET /v1/admin/bookings. Pending entries come first so the
// review queue sits on top, then most recently created first.
func (h *AdminBookingHandler) ListAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListAllBookings(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": bookings})
}

// UpdateStatus handles PATCH /v1/admin/bookings/:id/status. The new status
// must be a member of the enum (400 otherwise) and the change must be a
// legal transition (409 otherwise): Pending moves to Approved or Rejected,
// and a terminal state may only be corrected back to Pending.
func (h *AdminBookingHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	status := strings.TrimSpace(req.Status)
	if !model.ValidStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.BookingByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load booking"})
	}
	if !model.CanTransition(b.Status, status) {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "illegal status transition",
			"from":  b.Status,
			"to":    status,
		})
	}
	if err := h.Bookings.UpdateBookingStatus(ctx, id, status); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	oldStatus := b.Status
	b.Status = status

	go func(ev queue.BookingActivityEvent) {
		pctx, pcancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pcancel()
		_ = queue_publisher.PublishBookingActivity(pctx, ev)
	}(queue.BookingActivityEvent{
		Kind:       queue.KindBookingStatusChanged,
		BookingID:  b.ID,
		Reference:  b.Reference,
		UserID:     b.UserID,
		OldStatus:  oldStatus,
		NewStatus:  status,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, b)
}
