package model

import "time"

// Event is a bookable catalog entry managed by admins and readable by
// everyone. Date and Time are kept as ISO strings ("2006-01-02", "15:04")
// so the (date, time) listing order is a simple lexicographic sort, the
// same order the database produces with ORDER BY date, time.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – event title (required).
//  Date        – event date, "YYYY-MM-DD" (required).
//  Time        – event start time, "HH:MM".
//  Location    – venue (required).
//  Description – optional free text.
//  Price       – non-negative decimal price, defaults to 0.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Event struct {
	ID          uint64    `json:"id"`          // events.id
	Title       string    `json:"title"`       // events.title
	Date        string    `json:"date"`        // events.date
	Time        string    `json:"time"`        // events.time
	Location    string    `json:"location"`    // events.location
	Description string    `json:"description"` // events.description
	Price       float64   `json:"price"`       // events.price
	CreatedAt   time.Time `json:"created_at"`  // events.created_at
	UpdatedAt   time.Time `json:"updated_at"`  // events.updated_at
}
