package repository

import (
	"context"
	"database/sql"

	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/model"
)

// BookingRepo is the MySQL-backed BookingStore.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

const bookingColumns = "id,reference,user_id,event_type,event_package,preferred_dates," +
	"guest_count,budget,base_price,addon_total,total_estimated,vision,status,created_at,updated_at"

// CreateBooking inserts a booking and populates the generated ID and
// timestamps on the given struct. The caller sets reference, pricing and
// status before the call; this is a single implicit transaction.
func (r *BookingRepo) CreateBooking(ctx context.Context, b *model.Booking) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO bookings (reference, user_id, event_type, event_package, preferred_dates,
		 guest_count, budget, base_price, addon_total, total_estimated, vision, status)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.Reference, b.UserID, b.EventType, b.EventPackage, b.PreferredDates,
		b.GuestCount, b.Budget, b.BasePrice, b.AddonTotal, b.TotalEstimated, b.Vision, b.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	fresh, err := r.BookingByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*b = fresh
	return nil
}

// BookingByID fetches a single booking.
func (r *BookingRepo) BookingByID(ctx context.Context, id uint64) (model.Booking, error) {
	var b model.Booking
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id=? LIMIT 1", id).
		Scan(&b.ID, &b.Reference, &b.UserID, &b.EventType, &b.EventPackage, &b.PreferredDates,
			&b.GuestCount, &b.Budget, &b.BasePrice, &b.AddonTotal, &b.TotalEstimated,
			&b.Vision, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrNotFound
	}
	return b, err
}

// ListBookingsByUser returns the account's own bookings, newest first.
func (r *BookingRepo) ListBookingsByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	return r.list(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE user_id=? ORDER BY created_at DESC, id DESC",
		userID)
}

// ListAllBookings returns every booking for the admin view: Pending entries
// before all others, then most recently created first.
func (r *BookingRepo) ListAllBookings(ctx context.Context) ([]model.Booking, error) {
	return r.list(ctx,
		"SELECT "+bookingColumns+" FROM bookings ORDER BY (status=?) DESC, created_at DESC, id DESC",
		model.StatusPending)
}

// UpdateBookingStatus sets the status of one booking. Transition legality is
// the workflow's concern; the store only persists the value.
func (r *BookingRepo) UpdateBookingStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE id=?", status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, err := r.BookingByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *BookingRepo) list(ctx context.Context, query string, args ...any) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.UserID, &b.EventType, &b.EventPackage,
			&b.PreferredDates, &b.GuestCount, &b.Budget, &b.BasePrice, &b.AddonTotal,
			&b.TotalEstimated, &b.Vision, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
