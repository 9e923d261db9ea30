package bookings

import (
	"time"

	"github.com/autonexhq/autonex-backend/pkg/enums"
	"github.com/autonexhq/autonex-backend/pkg/types"
)

// Dispute is a customer complaint attached to a booking. A booking holds at
// most one dispute; resubmission replaces it (no history is kept).
type Dispute struct {
	Reason      string    `json:"reason"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Booking is one scheduled appointment. The vendor name is a snapshot taken
// at creation time; renaming a vendor does not retroactively update
// historical bookings.
type Booking struct {
	ID               string              `json:"id"`
	VendorID         string              `json:"vendorId"`
	VendorName       string              `json:"vendorName"`
	UserID           string              `json:"userId"`
	Date             time.Time           `json:"date"`
	Time             string              `json:"time"` // free-text slot label, e.g. "10:00 AM"
	NeedsHumanReview bool                `json:"needsHumanReview"`
	Status           enums.BookingStatus `json:"status"`
	Services         []types.ServiceItem `json:"services"`
	AdminNotes       *string             `json:"adminNotes,omitempty"`
	Dispute          *Dispute            `json:"dispute,omitempty"`
	WarrantyExpires  *time.Time          `json:"warrantyExpires,omitempty"`
}

// Disputed reports whether a dispute is attached.
func (b Booking) Disputed() bool {
	return b.Dispute != nil
}
