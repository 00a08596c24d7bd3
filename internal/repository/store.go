package repository

import (
	"context"
	"time"

	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/model"
)

// UserStore answers account lookups and registration. Implementations must
// return ErrUsernameExists on a duplicate username and ErrNotFound on a
// missed lookup.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash, role string) (model.User, error)
	UserByUsername(ctx context.Context, username string) (model.User, error)
	UserByID(ctx context.Context, id uint64) (model.User, error)
	AdminExists(ctx context.Context) (bool, error)
}

// EventStore holds the bookable catalog. ListEvents returns entries sorted
// ascending by (date, time) regardless of insertion order.
type EventStore interface {
	CreateEvent(ctx context.Context, ev *model.Event) error
	UpdateEvent(ctx context.Context, ev *model.Event) error
	DeleteEvent(ctx context.Context, id uint64) error
	EventByID(ctx context.Context, id uint64) (model.Event, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
}

// BookingStore persists booking requests. ListAllBookings orders Pending
// entries before all others, secondarily newest first; ListBookingsByUser
// returns only the given account's bookings, newest first. Bookings are
// never deleted.
type BookingStore interface {
	CreateBooking(ctx context.Context, b *model.Booking) error
	BookingByID(ctx context.Context, id uint64) (model.Booking, error)
	ListBookingsByUser(ctx context.Context, userID uint64) ([]model.Booking, error)
	ListAllBookings(ctx context.Context) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uint64, status string) error
}

// TokenStore persists hashed refresh tokens for session continuation.
type TokenStore interface {
	StoreRefresh(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error
	ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID uint64) error
}

// Stores bundles the four store interfaces for injection into handlers.
// The concrete backend behind each field is chosen once at startup
// (MySQL repositories or the in-memory store) and never inspected again.
type Stores struct {
	Users    UserStore
	Events   EventStore
	Bookings BookingStore
	Tokens   TokenStore
}
