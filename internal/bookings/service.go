package bookings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/autonexhq/autonex-backend/pkg/enums"
	pkgerrors "github.com/autonexhq/autonex-backend/pkg/errors"
)

type bookingRepository interface {
	Create(ctx context.Context, booking Booking) (Booking, error)
	FindByID(ctx context.Context, id string) (Booking, error)
	Patch(ctx context.Context, id string, fields map[string]any) (Booking, error)
	List(ctx context.Context) ([]Booking, error)
}

type vendorDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Service owns the booking lifecycle. Status changes go through explicit
// operations rather than a generic field merge so an invalid combination
// (say, a dispute without its status change) cannot be produced by a caller.
type Service interface {
	Create(ctx context.Context, input CreateBookingInput) (Booking, error)
	GetByID(ctx context.Context, id string) (Booking, error)
	Approve(ctx context.Context, id string) (Booking, error)
	ContactCustomer(ctx context.Context, id string, notes string) (Booking, error)
	UpdateStatus(ctx context.Context, id string, status enums.BookingStatus, adminNotes *string) (Booking, error)
	SubmitDispute(ctx context.Context, id string, reason string) (Booking, error)
	History(ctx context.Context, userID string) ([]Booking, error)
	ListAll(ctx context.Context) ([]Booking, error)
}

type service struct {
	repo    bookingRepository
	vendors vendorDirectory
	now     func() time.Time
}

// NewService builds the booking service.
func NewService(repo bookingRepository, vendors vendorDirectory) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("booking repository required")
	}
	if vendors == nil {
		return nil, fmt.Errorf("vendor directory required")
	}
	return &service{
		repo:    repo,
		vendors: vendors,
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

// Create validates the input, snapshots the selection and persists a new
// booking in the confirmed state. The pending state exists in the enum but
// creation never produces it.
func (s *service) Create(ctx context.Context, input CreateBookingInput) (Booking, error) {
	if strings.TrimSpace(input.VendorID) == "" {
		return Booking{}, pkgerrors.New(pkgerrors.CodeValidation, "vendorId is required")
	}
	if input.Date.IsZero() {
		return Booking{}, pkgerrors.New(pkgerrors.CodeValidation, "date is required")
	}
	if strings.TrimSpace(input.Time) == "" {
		return Booking{}, pkgerrors.New(pkgerrors.CodeValidation, "time is required")
	}
	if input.Services == nil {
		// an empty selection is accepted; a missing field is not
		return Booking{}, pkgerrors.New(pkgerrors.CodeValidation, "services are required")
	}

	exists, err := s.vendors.Exists(ctx, input.VendorID)
	if err != nil {
		return Booking{}, err
	}
	if !exists {
		return Booking{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("vendor %q not found", input.VendorID))
	}

	booking := Booking{
		ID:               uuid.NewString(),
		VendorID:         input.VendorID,
		VendorName:       input.VendorName,
		UserID:           input.UserID,
		Date:             input.Date,
		Time:             input.Time,
		NeedsHumanReview: input.NeedsReview,
		Status:           enums.BookingConfirmed,
		Services:         input.Services,
		WarrantyExpires:  warrantyExpiry(input),
	}

	return s.repo.Create(ctx, booking)
}

// warrantyExpiry derives the booking-level warranty horizon from the longest
// warranty among the selected services.
func warrantyExpiry(input CreateBookingInput) *time.Time {
	months := 0
	for _, item := range input.Services {
		if item.WarrantyMonths > months {
			months = item.WarrantyMonths
		}
	}
	if months == 0 {
		return nil
	}
	expires := input.Date.AddDate(0, months, 0)
	return &expires
}

func (s *service) GetByID(ctx context.Context, id string) (Booking, error) {
	return s.repo.FindByID(ctx, id)
}

// Approve clears the human-review flag and confirms the booking. The review
// queue recomputes from booking state, so clearing the flag is all that is
// needed to drop it from the "Needs Review" view.
func (s *service) Approve(ctx context.Context, id string) (Booking, error) {
	return s.repo.Patch(ctx, id, map[string]any{
		fieldStatus:           enums.BookingConfirmed,
		fieldNeedsHumanReview: false,
	})
}

// ContactCustomer moves the booking to action_required and records the
// coordinator's notes. Empty notes are permitted.
func (s *service) ContactCustomer(ctx context.Context, id string, notes string) (Booking, error) {
	return s.repo.Patch(ctx, id, map[string]any{
		fieldStatus:     enums.BookingActionRequired,
		fieldAdminNotes: notes,
	})
}

// UpdateStatus dispatches a status write to the matching lifecycle
// operation. Returning to pending is disallowed: transitions are
// one-directional and nothing legitimately resurrects a pending state.
func (s *service) UpdateStatus(ctx context.Context, id string, status enums.BookingStatus, adminNotes *string) (Booking, error) {
	if !status.Valid() {
		return Booking{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown status %q", status))
	}
	if status == enums.BookingPending {
		return Booking{}, pkgerrors.New(pkgerrors.CodeStateConflict, "bookings cannot return to pending")
	}

	fields := map[string]any{fieldStatus: status}
	switch status {
	case enums.BookingConfirmed:
		fields[fieldNeedsHumanReview] = false
	case enums.BookingActionRequired:
		notes := ""
		if adminNotes != nil {
			notes = *adminNotes
		}
		fields[fieldAdminNotes] = notes
	}
	if adminNotes != nil {
		fields[fieldAdminNotes] = *adminNotes
	}
	return s.repo.Patch(ctx, id, fields)
}

// SubmitDispute attaches a dispute and force-sets action_required in one
// write, overwriting any prior status including completed: a dispute always
// takes priority. Resubmission replaces the previous reason and timestamp.
func (s *service) SubmitDispute(ctx context.Context, id string, reason string) (Booking, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Booking{}, pkgerrors.New(pkgerrors.CodeValidation, "dispute reason is required")
	}

	return s.repo.Patch(ctx, id, map[string]any{
		fieldDispute: Dispute{
			Reason:      reason,
			SubmittedAt: s.now(),
		},
		fieldStatus: enums.BookingActionRequired,
	})
}

// History returns the user's completed bookings for the garage view.
func (s *service) History(ctx context.Context, userID string) ([]Booking, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	history := make([]Booking, 0, len(all))
	for _, b := range all {
		if b.UserID == userID && b.Status == enums.BookingCompleted {
			history = append(history, b)
		}
	}
	return history, nil
}

// ListAll returns every booking in creation order.
func (s *service) ListAll(ctx context.Context) ([]Booking, error) {
	return s.repo.List(ctx)
}
