package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/autonexhq/autonex-backend/api/responses"
	vendorsvc "github.com/autonexhq/autonex-backend/internal/vendors"
	pkgerrors "github.com/autonexhq/autonex-backend/pkg/errors"
	"github.com/autonexhq/autonex-backend/pkg/logger"
)

func ListVendors(svc vendorsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendor service unavailable"))
			return
		}

		vendors, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, vendors)
	}
}

func GetVendor(svc vendorsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendor service unavailable"))
			return
		}

		vendorID := chi.URLParam(r, "vendorId")
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithVendorID(ctx, vendorID)
		}

		vendor, err := svc.GetByID(ctx, vendorID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, vendor)
	}
}

// GetVendorServices returns the vendor's catalog. Vendors without a
// configured catalog answer with empty bundles and items rather than 404.
func GetVendorServices(svc vendorsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendor service unavailable"))
			return
		}

		vendorID := chi.URLParam(r, "vendorId")
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithVendorID(ctx, vendorID)
		}

		catalog, err := svc.Services(ctx, vendorID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, catalog)
	}
}
