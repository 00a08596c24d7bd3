package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/model"
)

func TestMemoryStoreDuplicateUsername(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	_, err := m.CreateUser(ctx, "alice", "hash", model.RoleUser)
	require.NoError(t, err)

	_, err = m.CreateUser(ctx, "Alice", "hash2", model.RoleUser)
	assert.ErrorIs(t, err, ErrUsernameExists) // usernames normalize to lower case

	u, err := m.UserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash", u.PasswordHash, "duplicate attempt must not replace the account")
}

func TestMemoryStoreUserLookupMiss(t *testing.T) {
	m := NewMemoryStore()
	_, err := m.UserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.UserByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreListEventsSorted(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	// Insert out of order on purpose.
	for _, ev := range []model.Event{
		{Title: "C", Date: "2026-09-20", Time: "18:00", Location: "Hall"},
		{Title: "A", Date: "2026-09-01", Time: "10:00", Location: "Hall"},
		{Title: "B", Date: "2026-09-01", Time: "09:00", Location: "Hall"},
	} {
		ev := ev
		require.NoError(t, m.CreateEvent(ctx, &ev))
	}

	list, err := m.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "B", list[0].Title)
	assert.Equal(t, "A", list[1].Title)
	assert.Equal(t, "C", list[2].Title)

	// Idempotent: a second read returns the same order.
	again, err := m.ListEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, list, again)
}

func TestMemoryStoreEventLifecycle(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	ev := model.Event{Title: "Gala", Date: "2026-05-01", Time: "19:00", Location: "Ballroom", Price: 250}
	require.NoError(t, m.CreateEvent(ctx, &ev))
	require.NotZero(t, ev.ID)

	ev.Location = "Garden"
	require.NoError(t, m.UpdateEvent(ctx, &ev))
	got, err := m.EventByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "Garden", got.Location)

	require.NoError(t, m.DeleteEvent(ctx, ev.ID))
	_, err = m.EventByID(ctx, ev.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.DeleteEvent(ctx, ev.ID), ErrNotFound)
}

func TestMemoryStoreListAllBookingsPendingFirst(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	ids := make([]uint64, 0, 4)
	for i := 0; i < 4; i++ {
		b := model.Booking{UserID: 1, EventType: "Wedding", EventPackage: "Gold", Status: model.StatusPending}
		require.NoError(t, m.CreateBooking(ctx, &b))
		ids = append(ids, b.ID)
	}
	// Approve the newest booking; it must drop below every remaining Pending
	// entry despite being the most recent.
	require.NoError(t, m.UpdateBookingStatus(ctx, ids[3], model.StatusApproved))

	list, err := m.ListAllBookings(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)

	assert.Equal(t, []uint64{ids[2], ids[1], ids[0], ids[3]},
		[]uint64{list[0].ID, list[1].ID, list[2].ID, list[3].ID})
	assert.Equal(t, model.StatusApproved, list[3].Status)
}

func TestMemoryStoreListBookingsByUser(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	mine := model.Booking{UserID: 7, EventType: "Birthday", EventPackage: "Silver", Status: model.StatusPending}
	theirs := model.Booking{UserID: 8, EventType: "Gala", EventPackage: "Gold", Status: model.StatusPending}
	require.NoError(t, m.CreateBooking(ctx, &mine))
	require.NoError(t, m.CreateBooking(ctx, &theirs))

	list, err := m.ListBookingsByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)
}

func TestMemoryStoreTokens(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	exp := time.Now().UTC().Add(time.Hour)
	require.NoError(t, m.StoreRefresh(ctx, 3, "hash-a", exp))
	require.NoError(t, m.StoreRefresh(ctx, 3, "hash-b", exp))

	uid, err := m.ValidateRefresh(ctx, "hash-a")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), uid)

	require.NoError(t, m.RevokeByHash(ctx, "hash-a"))
	_, err = m.ValidateRefresh(ctx, "hash-a")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	require.NoError(t, m.RevokeAllForUser(ctx, 3))
	_, err = m.ValidateRefresh(ctx, "hash-b")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	require.NoError(t, m.StoreRefresh(ctx, 4, "hash-old", time.Now().UTC().Add(-time.Minute)))
	_, err = m.ValidateRefresh(ctx, "hash-old")
	assert.ErrorIs(t, err, ErrTokenInvalid, "expired tokens never validate")
}

func TestEnsureAdminSeedsOnce(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, EnsureAdmin(ctx, m, "admin", "adminpass", 4))
	u, err := m.UserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, u.Role)

	// Second run is a no-op: still exactly one admin, hash untouched.
	require.NoError(t, EnsureAdmin(ctx, m, "admin", "different", 4))
	again, err := m.UserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, u.PasswordHash, again.PasswordHash)
}
