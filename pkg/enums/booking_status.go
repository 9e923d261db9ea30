package enums

// BookingStatus tracks a booking through its lifecycle. Transitions are
// one-directional: nothing returns a booking to pending once it has moved on.
type BookingStatus string

const (
	BookingPending        BookingStatus = "pending"
	BookingConfirmed      BookingStatus = "confirmed"
	BookingCompleted      BookingStatus = "completed"
	BookingCancelled      BookingStatus = "cancelled"
	BookingActionRequired BookingStatus = "action_required"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled, BookingActionRequired:
		return true
	}
	return false
}

// Terminal reports whether the status ends the customer-facing flow.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

func (s BookingStatus) String() string {
	return string(s)
}
