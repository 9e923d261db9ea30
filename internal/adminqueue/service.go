package adminqueue

import (
	"context"
	"fmt"

	"github.com/autonexhq/autonex-backend/internal/bookings"
	"github.com/autonexhq/autonex-backend/pkg/enums"
)

type bookingLister interface {
	ListAll(ctx context.Context) ([]bookings.Booking, error)
}

// AdminBooking is the coordinator-facing projection of a booking. The
// customer is identified only by a masked id.
type AdminBooking struct {
	ID           string                 `json:"id"`
	CustomerName string                 `json:"customerName"`
	VendorName   string                 `json:"vendorName"`
	Date         string                 `json:"date"`
	Time         string                 `json:"time"`
	Status       enums.BookingStatus    `json:"status"`
	StatusLabel  enums.AdminStatusLabel `json:"statusLabel"`
	DisputeOpen  bool                   `json:"disputeOpen"`
}

// Queue groups bookings needing coordinator attention. A disputed booking
// never appears under actionRequired: the dispute bucket takes it.
type Queue struct {
	NeedsReview    []AdminBooking `json:"needsReview"`
	ActionRequired []AdminBooking `json:"actionRequired"`
	Disputed       []AdminBooking `json:"disputed"`
}

// Service projects booking state into the admin review queue. It holds no
// state of its own; every call recomputes from the booking list.
type Service interface {
	Queue(ctx context.Context) (Queue, error)
	AllBookings(ctx context.Context) ([]AdminBooking, error)
}

type service struct {
	bookings bookingLister
}

func NewService(lister bookingLister) (Service, error) {
	if lister == nil {
		return nil, fmt.Errorf("booking lister required")
	}
	return &service{bookings: lister}, nil
}

func (s *service) Queue(ctx context.Context) (Queue, error) {
	all, err := s.bookings.ListAll(ctx)
	if err != nil {
		return Queue{}, err
	}

	queue := Queue{
		NeedsReview:    []AdminBooking{},
		ActionRequired: []AdminBooking{},
		Disputed:       []AdminBooking{},
	}
	for _, b := range all {
		row := project(b)
		if b.NeedsHumanReview {
			queue.NeedsReview = append(queue.NeedsReview, row)
		}
		switch {
		case b.Disputed():
			queue.Disputed = append(queue.Disputed, row)
		case b.Status == enums.BookingActionRequired:
			queue.ActionRequired = append(queue.ActionRequired, row)
		}
	}
	return queue, nil
}

func (s *service) AllBookings(ctx context.Context) ([]AdminBooking, error) {
	all, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]AdminBooking, 0, len(all))
	for _, b := range all {
		rows = append(rows, project(b))
	}
	return rows, nil
}

func project(b bookings.Booking) AdminBooking {
	return AdminBooking{
		ID:           b.ID,
		CustomerName: maskUserID(b.UserID),
		VendorName:   b.VendorName,
		Date:         b.Date.Format("2006-01-02"),
		Time:         b.Time,
		Status:       b.Status,
		StatusLabel:  label(b),
		DisputeOpen:  b.Disputed(),
	}
}

func label(b bookings.Booking) enums.AdminStatusLabel {
	switch {
	case b.Disputed(), b.Status == enums.BookingActionRequired:
		return enums.AdminActionRequired
	case b.NeedsHumanReview:
		return enums.AdminNeedsReview
	default:
		return enums.AdminReviewed
	}
}

// maskUserID keeps the first and last characters and hides the rest, so the
// queue shows "u***1" rather than a raw account id.
func maskUserID(id string) string {
	runes := []rune(id)
	if len(runes) < 2 {
		return "***"
	}
	return string(runes[0]) + "***" + string(runes[len(runes)-1])
}
