package controllers

import (
	"net/http"

	"github.com/autonexhq/autonex-backend/api/responses"
	adminsvc "github.com/autonexhq/autonex-backend/internal/adminqueue"
	pkgerrors "github.com/autonexhq/autonex-backend/pkg/errors"
	"github.com/autonexhq/autonex-backend/pkg/logger"
)

func AdminReviewQueue(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		queue, err := svc.Queue(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, queue)
	}
}

func AdminAllBookings(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		rows, err := svc.AllBookings(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}
