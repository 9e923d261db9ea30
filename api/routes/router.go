package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/autonexhq/autonex-backend/api/controllers"
	"github.com/autonexhq/autonex-backend/api/middleware"
	adminsvc "github.com/autonexhq/autonex-backend/internal/adminqueue"
	bookingsvc "github.com/autonexhq/autonex-backend/internal/bookings"
	vendorsvc "github.com/autonexhq/autonex-backend/internal/vendors"
	"github.com/autonexhq/autonex-backend/pkg/config"
	"github.com/autonexhq/autonex-backend/pkg/logger"
	"github.com/autonexhq/autonex-backend/pkg/metrics"
	pkgredis "github.com/autonexhq/autonex-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers. Redis and metrics
// are optional; the routes degrade rather than fail when they are absent.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          controllers.Pingable
	Redis       *pkgredis.Client
	HTTPMetrics *metrics.HTTPMetrics
	MetricsHTTP http.Handler

	Vendors  vendorsvc.Service
	Bookings bookingsvc.Service
	Admin    adminsvc.Service
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.Metrics(deps.HTTPMetrics),
	)

	var allowedOrigins []string
	if deps.Config != nil {
		allowedOrigins = deps.Config.CORS.AllowedOrigins
	}
	r.Use(middleware.CORS(allowedOrigins))

	readiness := map[string]controllers.Pingable{"db": deps.DB}
	if deps.Redis != nil {
		readiness["redis"] = deps.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(deps.Logger, readiness))
	})

	if deps.MetricsHTTP != nil {
		r.Handle("/metrics", deps.MetricsHTTP)
	} else {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.MockUser(deps.Logger))

		var idempotencyStore pkgredis.IdempotencyStore
		if deps.Redis != nil {
			idempotencyStore = deps.Redis
		}
		var idempotencyTTL time.Duration
		if deps.Config != nil {
			idempotencyTTL = deps.Config.Idempotency.TTL
		}
		r.Use(middleware.Idempotency(idempotencyStore, deps.Logger, idempotencyTTL))

		r.Get("/test", controllers.Ping())

		r.Route("/vendors", func(r chi.Router) {
			r.Get("/", controllers.ListVendors(deps.Vendors, deps.Logger))
			r.Get("/{vendorId}", controllers.GetVendor(deps.Vendors, deps.Logger))
			r.Get("/{vendorId}/services", controllers.GetVendorServices(deps.Vendors, deps.Logger))
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", controllers.CreateBooking(deps.Bookings, deps.Logger))
			r.Get("/{bookingId}", controllers.GetBooking(deps.Bookings, deps.Logger))
			r.Patch("/{bookingId}/status", controllers.UpdateBookingStatus(deps.Bookings, deps.Logger))
			r.Post("/{bookingId}/dispute", controllers.SubmitDispute(deps.Bookings, deps.Logger))
		})

		r.Get("/garage/history", controllers.GarageHistory(deps.Bookings, deps.Logger))

		r.Route("/admin", func(r chi.Router) {
			r.Get("/review-queue", controllers.AdminReviewQueue(deps.Admin, deps.Logger))
			r.Get("/all-bookings", controllers.AdminAllBookings(deps.Admin, deps.Logger))
		})
	})

	return r
}
