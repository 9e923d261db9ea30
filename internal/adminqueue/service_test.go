package adminqueue

import (
	"context"
	"testing"
	"time"

	"github.com/autonexhq/autonex-backend/internal/bookings"
	"github.com/autonexhq/autonex-backend/pkg/enums"
)

type stubLister struct {
	all []bookings.Booking
}

func (s *stubLister) ListAll(context.Context) ([]bookings.Booking, error) {
	return s.all, nil
}

func booking(id string, mutate func(*bookings.Booking)) bookings.Booking {
	b := bookings.Booking{
		ID:         id,
		VendorID:   "v1",
		VendorName: "Precision Auto Works",
		UserID:     "u1",
		Date:       time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Time:       "10:30",
		Status:     enums.BookingConfirmed,
	}
	if mutate != nil {
		mutate(&b)
	}
	return b
}

func newQueueService(t *testing.T, all ...bookings.Booking) Service {
	t.Helper()
	svc, err := NewService(&stubLister{all: all})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestQueueBuckets(t *testing.T) {
	svc := newQueueService(t,
		booking("b1", func(b *bookings.Booking) { b.NeedsHumanReview = true }),
		booking("b2", func(b *bookings.Booking) { b.Status = enums.BookingActionRequired }),
		booking("b3", func(b *bookings.Booking) {
			b.Status = enums.BookingActionRequired
			b.Dispute = &bookings.Dispute{Reason: "overcharged", SubmittedAt: time.Now()}
		}),
		booking("b4", nil),
	)

	queue, err := svc.Queue(context.Background())
	if err != nil {
		t.Fatalf("Queue: %v", err)
	}
	if len(queue.NeedsReview) != 1 || queue.NeedsReview[0].ID != "b1" {
		t.Fatalf("needsReview: %+v", queue.NeedsReview)
	}
	if len(queue.ActionRequired) != 1 || queue.ActionRequired[0].ID != "b2" {
		t.Fatalf("actionRequired: %+v", queue.ActionRequired)
	}
	if len(queue.Disputed) != 1 || queue.Disputed[0].ID != "b3" {
		t.Fatalf("disputed: %+v", queue.Disputed)
	}
}

func TestQueueDisputedNeverInActionRequired(t *testing.T) {
	svc := newQueueService(t,
		booking("b1", func(b *bookings.Booking) {
			b.Status = enums.BookingActionRequired
			b.Dispute = &bookings.Dispute{Reason: "no-show", SubmittedAt: time.Now()}
		}),
	)

	queue, err := svc.Queue(context.Background())
	if err != nil {
		t.Fatalf("Queue: %v", err)
	}
	if len(queue.ActionRequired) != 0 {
		t.Fatalf("disputed booking leaked into actionRequired: %+v", queue.ActionRequired)
	}
	if len(queue.Disputed) != 1 {
		t.Fatalf("disputed bucket: %+v", queue.Disputed)
	}
}

func TestQueueEmptyBucketsNotNil(t *testing.T) {
	svc := newQueueService(t)

	queue, err := svc.Queue(context.Background())
	if err != nil {
		t.Fatalf("Queue: %v", err)
	}
	if queue.NeedsReview == nil || queue.ActionRequired == nil || queue.Disputed == nil {
		t.Fatal("expected empty slices, got nil buckets")
	}
}

func TestStatusLabels(t *testing.T) {
	cases := []struct {
		name string
		b    bookings.Booking
		want enums.AdminStatusLabel
	}{
		{"reviewed", booking("b1", nil), enums.AdminReviewed},
		{"needs review", booking("b2", func(b *bookings.Booking) { b.NeedsHumanReview = true }), enums.AdminNeedsReview},
		{"action required", booking("b3", func(b *bookings.Booking) { b.Status = enums.BookingActionRequired }), enums.AdminActionRequired},
		{"disputed", booking("b4", func(b *bookings.Booking) {
			b.Status = enums.BookingActionRequired
			b.Dispute = &bookings.Dispute{Reason: "bad work", SubmittedAt: time.Now()}
		}), enums.AdminActionRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := label(tc.b); got != tc.want {
				t.Fatalf("label: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAllBookingsMasksUser(t *testing.T) {
	svc := newQueueService(t, booking("b1", nil))

	rows, err := svc.AllBookings(context.Background())
	if err != nil {
		t.Fatalf("AllBookings: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: %+v", rows)
	}
	if rows[0].CustomerName != "u***1" {
		t.Fatalf("customerName: got %q", rows[0].CustomerName)
	}
	if rows[0].Date != "2026-09-14" {
		t.Fatalf("date: got %q", rows[0].Date)
	}
}

func TestMaskUserID(t *testing.T) {
	cases := map[string]string{
		"u1":       "u***1",
		"user-42":  "u***2",
		"a":        "***",
		"":         "***",
		"ábc-déf9": "á***9",
	}
	for in, want := range cases {
		if got := maskUserID(in); got != want {
			t.Fatalf("maskUserID(%q): got %q, want %q", in, got, want)
		}
	}
}
