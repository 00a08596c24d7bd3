package repository

import (
	"context"
	"database/sql"

	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/model"
)

// EventRepo is the MySQL-backed EventStore.
type EventRepo struct{ DB *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

const eventColumns = "id,title,date,time,location,description,price,created_at,updated_at"

func scanEvent(row *sql.Row) (model.Event, error) {
	var ev model.Event
	err := row.Scan(&ev.ID, &ev.Title, &ev.Date, &ev.Time, &ev.Location,
		&ev.Description, &ev.Price, &ev.CreatedAt, &ev.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Event{}, ErrNotFound
	}
	return ev, err
}

// CreateEvent inserts an event and populates the generated ID and timestamps
// on the given struct.
func (r *EventRepo) CreateEvent(ctx context.Context, ev *model.Event) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO events (title, date, time, location, description, price) VALUES (?,?,?,?,?,?)",
		ev.Title, ev.Date, ev.Time, ev.Location, ev.Description, ev.Price)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	fresh, err := r.EventByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*ev = fresh
	return nil
}

// UpdateEvent overwrites the mutable fields of an existing event.
func (r *EventRepo) UpdateEvent(ctx context.Context, ev *model.Event) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE events SET title=?, date=?, time=?, location=?, description=?, price=? WHERE id=?",
		ev.Title, ev.Date, ev.Time, ev.Location, ev.Description, ev.Price, ev.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Distinguish "row absent" from "row unchanged".
		if _, err := r.EventByID(ctx, ev.ID); err != nil {
			return err
		}
	}
	fresh, err := r.EventByID(ctx, ev.ID)
	if err != nil {
		return err
	}
	*ev = fresh
	return nil
}

// DeleteEvent removes an event by id.
func (r *EventRepo) DeleteEvent(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM events WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// EventByID fetches a single event.
func (r *EventRepo) EventByID(ctx context.Context, id uint64) (model.Event, error) {
	return scanEvent(r.DB.QueryRowContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE id=? LIMIT 1", id))
}

// ListEvents returns all events ordered ascending by (date, time), the order
// the dashboard displays them in.
func (r *EventRepo) ListEvents(ctx context.Context) ([]model.Event, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM events ORDER BY date ASC, time ASC, id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		var ev model.Event
		if err := rows.Scan(&ev.ID, &ev.Title, &ev.Date, &ev.Time, &ev.Location,
			&ev.Description, &ev.Price, &ev.CreatedAt, &ev.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
