package controllers

import (
	"context"
	"net/http"

	"go.uber.org/multierr"

	"github.com/autonexhq/autonex-backend/api/responses"
	pkgerrors "github.com/autonexhq/autonex-backend/pkg/errors"
	"github.com/autonexhq/autonex-backend/pkg/logger"
)

// Pingable is satisfied by the db and redis clients.
type Pingable interface {
	Ping(ctx context.Context) error
}

func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every registered dependency and reports 503 when any
// fails. Nil dependencies (redis disabled) are skipped.
func HealthReady(logg *logger.Logger, deps map[string]Pingable) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var combined error
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				combined = multierr.Append(combined, pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unreachable"))
			}
		}
		if combined != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "readiness check failed"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
