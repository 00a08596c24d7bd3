// Package queue defines the booking activity messages exchanged over the
// broker and the background consumer that turns them into an activity log.
package queue

// Message kinds carried on the booking.activity queue.
const (
	KindBookingSubmitted     = "booking.submitted"
	KindBookingStatusChanged = "booking.status_changed"
)

// BookingActivityEvent is published whenever a booking is submitted or its
// status changes. It carries enough information for downstream consumers to
// log or notify without querying the primary store. OldStatus is empty for
// submissions.
type BookingActivityEvent struct {
	Kind         string  `json:"kind"`
	BookingID    uint64  `json:"booking_id"`
	Reference    string  `json:"reference"`
	UserID       uint64  `json:"user_id"`
	Username     string  `json:"username"`
	EventType    string  `json:"event_type"`
	EventPackage string  `json:"event_package"`
	Total        float64 `json:"total_estimated"`
	OldStatus    string  `json:"old_status,omitempty"`
	NewStatus    string  `json:"new_status"`
	OccurredAt   string  `json:"occurred_at"`
}
