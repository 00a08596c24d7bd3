package handler_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/model"
)

func TestSubmitBooking(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "alice", "pw1")

	rec := env.do(t, http.MethodPost, "/v1/bookings", user, map[string]any{
		"event_type":    "Wedding",
		"event_package": "Gold",
		"base_price":    "100",
		"addon_total":   "50",
		"guest_count":   80,
		"vision":        "Small ceremony.",
		"details":       map[string]string{"theme": "Rustic"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var b model.Booking
	decodeBody(t, rec, &b)
	assert.Equal(t, model.StatusPending, b.Status)
	assert.Equal(t, 150.0, b.TotalEstimated)
	assert.NotEmpty(t, b.Reference)
	assert.True(t, strings.Contains(b.Vision, "Theme: Rustic"))
}

func TestSubmitBookingMissingSelection(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "alice", "pw1")

	for _, body := range []map[string]any{
		{"event_package": "Gold"},
		{"event_type": "Wedding"},
		{"event_type": "  ", "event_package": "Gold"},
	} {
		rec := env.do(t, http.MethodPost, "/v1/bookings", user, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}

	list, err := env.store.ListAllBookings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSubmitBookingNonNumericPriceIsZero(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "alice", "pw1")

	rec := env.do(t, http.MethodPost, "/v1/bookings", user, map[string]any{
		"event_type":    "Wedding",
		"event_package": "Gold",
		"base_price":    "call us",
		"addon_total":   "75",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var b model.Booking
	decodeBody(t, rec, &b)
	assert.Equal(t, 0.0, b.BasePrice)
	assert.Equal(t, 75.0, b.TotalEstimated, "non-numeric base contributes zero")
}

func TestBookingAdminGate(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "alice", "pw1")

	rec := env.do(t, http.MethodGet, "/v1/admin/bookings", user, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPatch, "/v1/admin/bookings/1/status", user,
		map[string]string{"status": model.StatusApproved})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPost, "/v1/bookings", "", map[string]any{
		"event_type": "Wedding", "event_package": "Gold",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "submission requires authentication")
}

func TestUpdateStatusValidation(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "alice", "pw1")
	admin := env.login(t, "admin", "adminpass")

	rec := env.do(t, http.MethodPost, "/v1/bookings", user, map[string]any{
		"event_type": "Wedding", "event_package": "Gold",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Outside the enum: 400.
	rec = env.do(t, http.MethodPatch, "/v1/admin/bookings/1/status", admin,
		map[string]string{"status": "Cancelled"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown booking: 404.
	rec = env.do(t, http.MethodPatch, "/v1/admin/bookings/99/status", admin,
		map[string]string{"status": model.StatusApproved})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Legal transition.
	rec = env.do(t, http.MethodPatch, "/v1/admin/bookings/1/status", admin,
		map[string]string{"status": model.StatusApproved})
	require.Equal(t, http.StatusOK, rec.Code)

	// Terminal states never flip directly into each other: 409.
	rec = env.do(t, http.MethodPatch, "/v1/admin/bookings/1/status", admin,
		map[string]string{"status": model.StatusRejected})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// The correction path back to Pending stays open.
	rec = env.do(t, http.MethodPatch, "/v1/admin/bookings/1/status", admin,
		map[string]string{"status": model.StatusPending})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApprovedBookingSortsAfterPending(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "alice", "pw1")
	admin := env.login(t, "admin", "adminpass")

	for i := 0; i < 3; i++ {
		rec := env.do(t, http.MethodPost, "/v1/bookings", user, map[string]any{
			"event_type": "Wedding", "event_package": "Gold",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	rec := env.do(t, http.MethodPatch, "/v1/admin/bookings/3/status", admin,
		map[string]string{"status": model.StatusApproved})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/v1/admin/bookings", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Items []model.Booking `json:"items"`
	}
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, model.StatusPending, resp.Items[0].Status)
	assert.Equal(t, model.StatusPending, resp.Items[1].Status)
	assert.Equal(t, model.StatusApproved, resp.Items[2].Status, "approved entries always trail pending ones")
}

// TestBookingEndToEnd walks the whole workflow: registration, login,
// submission, admin review, approval, and the owner's view of the outcome.
func TestBookingEndToEnd(t *testing.T) {
	env := newTestEnv(t)

	env.register(t, "alice", "pw1")
	alice := env.login(t, "alice", "pw1")

	rec := env.do(t, http.MethodPost, "/v1/bookings", alice, map[string]any{
		"event_type":    "Wedding",
		"event_package": "Gold",
		"base_price":    "500",
		"addon_total":   "75",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var submitted model.Booking
	decodeBody(t, rec, &submitted)
	assert.Equal(t, 575.0, submitted.TotalEstimated)

	admin := env.login(t, "admin", "adminpass")
	rec = env.do(t, http.MethodGet, "/v1/admin/bookings", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all struct {
		Items []model.Booking `json:"items"`
	}
	decodeBody(t, rec, &all)
	require.Len(t, all.Items, 1)

	rec = env.do(t, http.MethodPatch, "/v1/admin/bookings/1/status", admin,
		map[string]string{"status": model.StatusApproved})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/v1/bookings", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine struct {
		Items []model.Booking `json:"items"`
	}
	decodeBody(t, rec, &mine)
	require.Len(t, mine.Items, 1)
	assert.Equal(t, model.StatusApproved, mine.Items[0].Status)
	assert.Equal(t, 575.0, mine.Items[0].TotalEstimated)

	// Another account never sees alice's bookings.
	bob := env.register(t, "bob", "pw2")
	rec = env.do(t, http.MethodGet, "/v1/bookings", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bobs struct {
		Items []model.Booking `json:"items"`
	}
	decodeBody(t, rec, &bobs)
	assert.Empty(t, bobs.Items)
}
