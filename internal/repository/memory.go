package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/model"
)

// MemoryStore is the unpersisted backend: every record lives in process
// memory and is discarded on restart. A single mutex owns all maps and ID
// counters so concurrent request handlers serialize correctly; the counters
// belong to the store, never to package-level state. It implements
// UserStore, EventStore, BookingStore and TokenStore.
type MemoryStore struct {
	mu sync.Mutex

	users    map[uint64]model.User
	events   map[uint64]model.Event
	bookings map[uint64]model.Booking
	tokens   map[string]model.RefreshToken

	nextUserID    uint64
	nextEventID   uint64
	nextBookingID uint64
	nextTokenID   uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[uint64]model.User),
		events:   make(map[uint64]model.Event),
		bookings: make(map[uint64]model.Booking),
		tokens:   make(map[string]model.RefreshToken),
	}
}

// Stores returns the store bundle with every interface backed by m.
func (m *MemoryStore) Stores() Stores {
	return Stores{Users: m, Events: m, Bookings: m, Tokens: m}
}

// ----- UserStore -----

func (m *MemoryStore) CreateUser(_ context.Context, username, passwordHash, role string) (model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			return model.User{}, ErrUsernameExists
		}
	}
	m.nextUserID++
	now := time.Now().UTC()
	u := model.User{
		ID:           m.nextUserID,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *MemoryStore) UserByUsername(_ context.Context, username string) (model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

func (m *MemoryStore) UserByID(_ context.Context, id uint64) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

func (m *MemoryStore) AdminExists(_ context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Role == model.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

// ----- EventStore -----

func (m *MemoryStore) CreateEvent(_ context.Context, ev *model.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextEventID++
	now := time.Now().UTC()
	ev.ID = m.nextEventID
	ev.CreatedAt = now
	ev.UpdatedAt = now
	m.events[ev.ID] = *ev
	return nil
}

func (m *MemoryStore) UpdateEvent(_ context.Context, ev *model.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.events[ev.ID]
	if !ok {
		return ErrNotFound
	}
	ev.CreatedAt = cur.CreatedAt
	ev.UpdatedAt = time.Now().UTC()
	m.events[ev.ID] = *ev
	return nil
}

func (m *MemoryStore) DeleteEvent(_ context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.events[id]; !ok {
		return ErrNotFound
	}
	delete(m.events, id)
	return nil
}

func (m *MemoryStore) EventByID(_ context.Context, id uint64) (model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ev, ok := m.events[id]
	if !ok {
		return model.Event{}, ErrNotFound
	}
	return ev, nil
}

func (m *MemoryStore) ListEvents(_ context.Context) ([]model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	events := make([]model.Event, 0, len(m.events))
	for _, ev := range m.events {
		events = append(events, ev)
	}
	// Same order as the SQL backend: date, then time, then id, ascending.
	// Dates and times are ISO strings so string comparison is enough.
	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		return events[i].ID < events[j].ID
	})
	return events, nil
}

// ----- BookingStore -----

func (m *MemoryStore) CreateBooking(_ context.Context, b *model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextBookingID++
	now := time.Now().UTC()
	b.ID = m.nextBookingID
	b.CreatedAt = now
	b.UpdatedAt = now
	m.bookings[b.ID] = *b
	return nil
}

func (m *MemoryStore) BookingByID(_ context.Context, id uint64) (model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[id]
	if !ok {
		return model.Booking{}, ErrNotFound
	}
	return b, nil
}

func (m *MemoryStore) ListBookingsByUser(_ context.Context, userID uint64) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bookings := make([]model.Booking, 0)
	for _, b := range m.bookings {
		if b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID > bookings[j].ID })
	return bookings, nil
}

func (m *MemoryStore) ListAllBookings(_ context.Context) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bookings := make([]model.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		bookings = append(bookings, b)
	}
	// Pending entries first, then most recently created first. IDs are
	// assigned in creation order so they stand in for created_at here.
	sort.Slice(bookings, func(i, j int) bool {
		pi := bookings[i].Status == model.StatusPending
		pj := bookings[j].Status == model.StatusPending
		if pi != pj {
			return pi
		}
		return bookings[i].ID > bookings[j].ID
	})
	return bookings, nil
}

func (m *MemoryStore) UpdateBookingStatus(_ context.Context, id uint64, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	m.bookings[id] = b
	return nil
}

// ----- TokenStore -----

func (m *MemoryStore) StoreRefresh(_ context.Context, userID uint64, tokenHash string, exp time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextTokenID++
	m.tokens[tokenHash] = model.RefreshToken{
		ID:        m.nextTokenID,
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: exp,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

func (m *MemoryStore) ValidateRefresh(_ context.Context, tokenHash string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tokens[tokenHash]
	if !ok || t.RevokedAt != nil || time.Now().UTC().After(t.ExpiresAt) {
		return 0, ErrTokenInvalid
	}
	return t.UserID, nil
}

func (m *MemoryStore) RevokeByHash(_ context.Context, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, ok := m.tokens[tokenHash]; ok && t.RevokedAt == nil {
		now := time.Now().UTC()
		t.RevokedAt = &now
		m.tokens[tokenHash] = t
	}
	return nil
}

func (m *MemoryStore) RevokeAllForUser(_ context.Context, userID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	for hash, t := range m.tokens {
		if t.UserID == userID && t.RevokedAt == nil {
			t.RevokedAt = &now
			m.tokens[hash] = t
		}
	}
	return nil
}
