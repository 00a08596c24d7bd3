package model

import "time"

// Booking status values. A booking always starts as Pending; Approved and
// Rejected are terminal except for the admin correction path back to Pending.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// allowedTransitions enumerates every legal status change. Encoding the
// lifecycle as data keeps the rules in one place instead of accepting any
// enum member unconditionally. Terminal states may only be corrected back
// to Pending; they never flip directly into the other terminal state.
var allowedTransitions = map[string][]string{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusPending},
	StatusRejected: {StatusPending},
}

// ValidStatus reports whether s is a member of the status enum.
func ValidStatus(s string) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether a booking in state from may move to state to.
// Both arguments must be valid statuses; unknown values never transition.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Booking records a client's request against a catalog event. EventType is a
// free-text label, not a foreign key into events: the original system joined
// the two by title match and this schema keeps that behavior. The total is
// derived once at submission time (base + addons) and never recomputed.
//
// Fields:
//  ID             – primary key identifier.
//  Reference      – opaque public reference code (UUID).
//  UserID         – owning account; immutable after creation.
//  EventType      – free-text event type label (e.g. "Wedding").
//  EventPackage   – selected package label (e.g. "Gold").
//  PreferredDates – client's preferred dates, free text.
//  GuestCount     – expected number of guests.
//  Budget         – client's stated budget.
//  BasePrice      – package base price as submitted.
//  AddonTotal     – sum of selected add-ons as submitted.
//  TotalEstimated – BasePrice + AddonTotal, fixed at creation.
//  Vision         – assembled narrative (vision text plus detail lines).
//  Status         – Pending, Approved or Rejected.
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type Booking struct {
	ID             uint64    `json:"id"`              // bookings.id
	Reference      string    `json:"reference"`       // bookings.reference
	UserID         uint64    `json:"user_id"`         // bookings.user_id
	EventType      string    `json:"event_type"`      // bookings.event_type
	EventPackage   string    `json:"event_package"`   // bookings.event_package
	PreferredDates string    `json:"preferred_dates"` // bookings.preferred_dates
	GuestCount     int       `json:"guest_count"`     // bookings.guest_count
	Budget         float64   `json:"budget"`          // bookings.budget
	BasePrice      float64   `json:"base_price"`      // bookings.base_price
	AddonTotal     float64   `json:"addon_total"`     // bookings.addon_total
	TotalEstimated float64   `json:"total_estimated"` // bookings.total_estimated
	Vision         string    `json:"vision"`          // bookings.vision
	Status         string    `json:"status"`          // bookings.status
	CreatedAt      time.Time `json:"created_at"`      // bookings.created_at
	UpdatedAt      time.Time `json:"updated_at"`      // bookings.updated_at
}
