package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	bookingpkg "github.com/JamesKenLuci/ENOVA-PROJECT/internal/booking"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/model"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/queue"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/repository"
	queue_publisher "github.com/JamesKenLuci/ENOVA-PROJECT/internal/service"
)

// BookingHandler serves the client side of the booking workflow: submitting
// a request and listing one's own bookings.
type BookingHandler struct {
	Bookings repository.BookingStore
	Users    repository.UserStore
}

func NewBookingHandler(b repository.BookingStore, u repository.UserStore) *BookingHandler {
	return &BookingHandler{Bookings: b, Users: u}
}

// submitReq is the booking form payload. The price components arrive as
// text and go through the zero-substitution parse; Details feeds the
// narrative assembly.
type submitReq struct {
	EventType      string             `json:"event_type"`
	EventPackage   string             `json:"event_package"`
	PreferredDates string             `json:"preferred_dates"`
	GuestCount     int                `json:"guest_count"`
	Budget         string             `json:"budget"`
	BasePrice      string             `json:"base_price"`
	AddonTotal     string             `json:"addon_total"`
	Vision         string             `json:"vision"`
	Details        bookingpkg.Details `json:"details"`
}

// Submit handles POST /v1/bookings. The booking starts in Pending with
// total = base + addons fixed at creation time; the owning account comes
// from the access token, never from the payload.
func (h *BookingHandler) Submit(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.EventType = strings.TrimSpace(req.EventType)
	req.EventPackage = strings.TrimSpace(req.EventPackage)
	if req.EventType == "" || req.EventPackage == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "event type and package are required"})
	}

	base, addons, total := bookingpkg.Total(req.BasePrice, req.AddonTotal)

	b := model.Booking{
		Reference:      uuid.NewString(),
		UserID:         userID,
		EventType:      req.EventType,
		EventPackage:   req.EventPackage,
		PreferredDates: strings.TrimSpace(req.PreferredDates),
		GuestCount:     req.GuestCount,
		Budget:         bookingpkg.Amount(req.Budget),
		BasePrice:      base,
		AddonTotal:     addons,
		TotalEstimated: total,
		Vision:         bookingpkg.ComposeVision(req.Vision, req.Details),
		Status:         model.StatusPending,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.CreateBooking(ctx, &b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create booking"})
	}

	// Best-effort activity event; a broker outage must not fail the request.
	username := ""
	if u, err := h.Users.UserByID(ctx, userID); err == nil {
		username = u.Username
	}
	go func(ev queue.BookingActivityEvent) {
		pctx, pcancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pcancel()
		_ = queue_publisher.PublishBookingActivity(pctx, ev)
	}(queue.BookingActivityEvent{
		Kind:         queue.KindBookingSubmitted,
		BookingID:    b.ID,
		Reference:    b.Reference,
		UserID:       b.UserID,
		Username:     username,
		EventType:    b.EventType,
		EventPackage: b.EventPackage,
		Total:        b.TotalEstimated,
		NewStatus:    b.Status,
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, b)
}

// ListOwn handles GET /v1/bookings and returns only the caller's bookings.
func (h *BookingHandler) ListOwn(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListBookingsByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": bookings})
}
