package bookings

import (
	"context"

	"gorm.io/gorm"

	"github.com/autonexhq/autonex-backend/pkg/kv"
)

const bookingEntity = "booking"

// JSON field names used for patch merges. These must match the Booking
// struct tags: the store merges raw documents, not structs.
const (
	fieldStatus           = "status"
	fieldNeedsHumanReview = "needsHumanReview"
	fieldAdminNotes       = "adminNotes"
	fieldDispute          = "dispute"
)

// Repository handles booking persistence over the entity store.
type Repository struct {
	store *kv.Store[Booking]
}

// NewRepository binds the booking store to the shared DB connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{store: kv.NewStore[Booking](db, bookingEntity)}
}

// Create persists a new booking.
func (r *Repository) Create(ctx context.Context, booking Booking) (Booking, error) {
	if err := r.store.Create(ctx, booking.ID, booking); err != nil {
		return Booking{}, err
	}
	return booking, nil
}

// FindByID loads a single booking.
func (r *Repository) FindByID(ctx context.Context, id string) (Booking, error) {
	return r.store.Get(ctx, id)
}

// Patch merges the given fields into the stored booking and returns the
// merged state. Callers are responsible for cross-field consistency (for
// example, setting a dispute together with its status change).
func (r *Repository) Patch(ctx context.Context, id string, fields map[string]any) (Booking, error) {
	return r.store.Patch(ctx, id, fields)
}

// List returns all bookings in creation order.
func (r *Repository) List(ctx context.Context) ([]Booking, error) {
	return r.store.List(ctx)
}
