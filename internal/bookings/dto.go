package bookings

import (
	"time"

	"github.com/autonexhq/autonex-backend/pkg/types"
)

// CreateBookingInput carries everything needed to create a booking. The
// services slice is the customer's selection snapshot, not a live catalog
// reference.
type CreateBookingInput struct {
	VendorID    string
	VendorName  string
	UserID      string
	Date        time.Time
	Time        string
	NeedsReview bool
	Services    []types.ServiceItem
}
