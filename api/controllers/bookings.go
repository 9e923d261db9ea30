package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/autonexhq/autonex-backend/api/middleware"
	"github.com/autonexhq/autonex-backend/api/responses"
	"github.com/autonexhq/autonex-backend/api/validators"
	bookingsvc "github.com/autonexhq/autonex-backend/internal/bookings"
	"github.com/autonexhq/autonex-backend/pkg/enums"
	pkgerrors "github.com/autonexhq/autonex-backend/pkg/errors"
	"github.com/autonexhq/autonex-backend/pkg/logger"
	"github.com/autonexhq/autonex-backend/pkg/types"
)

const bookingDateLayout = "2006-01-02"

// parseBookingDate accepts the ISO strings clients actually send: a full
// RFC 3339 timestamp or a bare calendar date.
func parseBookingDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse(bookingDateLayout, value)
}

// The payload names the review flag needsReview; the stored booking exposes
// it as needsHumanReview.
type createBookingRequest struct {
	VendorID    string              `json:"vendorId"`
	VendorName  string              `json:"vendorName"`
	Date        string              `json:"date"`
	Time        string              `json:"time"`
	NeedsReview bool                `json:"needsReview"`
	Services    []types.ServiceItem `json:"services"`
}

type updateBookingStatusRequest struct {
	Status     string  `json:"status" validate:"required"`
	AdminNotes *string `json:"adminNotes,omitempty"`
}

type submitDisputeRequest struct {
	Reason string `json:"reason"`
}

// CreateBooking handles new booking requests. Field-level validation lives
// in the service so the error messages match across transports.
func CreateBooking(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		var payload createBookingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var date time.Time
		if strings.TrimSpace(payload.Date) != "" {
			parsed, err := parseBookingDate(payload.Date)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "date must be an ISO timestamp or YYYY-MM-DD"))
				return
			}
			date = parsed
		}

		booking, err := svc.Create(r.Context(), bookingsvc.CreateBookingInput{
			VendorID:    payload.VendorID,
			VendorName:  payload.VendorName,
			UserID:      middleware.UserIDFromContext(r.Context()),
			Date:        date,
			Time:        payload.Time,
			NeedsReview: payload.NeedsReview,
			Services:    payload.Services,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, booking)
	}
}

func GetBooking(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		bookingID := chi.URLParam(r, "bookingId")
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithBookingID(ctx, bookingID)
		}

		booking, err := svc.GetByID(ctx, bookingID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, booking)
	}
}

func UpdateBookingStatus(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		bookingID := chi.URLParam(r, "bookingId")
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithBookingID(ctx, bookingID)
		}

		var payload updateBookingStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		booking, err := svc.UpdateStatus(ctx, bookingID, enums.BookingStatus(payload.Status), payload.AdminNotes)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, booking)
	}
}

func SubmitDispute(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		bookingID := chi.URLParam(r, "bookingId")
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithBookingID(ctx, bookingID)
		}

		var payload submitDisputeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		booking, err := svc.SubmitDispute(ctx, bookingID, payload.Reason)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, booking)
	}
}

// GarageHistory lists the acting user's completed bookings.
func GarageHistory(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		history, err := svc.History(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, history)
	}
}
