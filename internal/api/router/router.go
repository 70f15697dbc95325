// Package router wires the HTTP endpoints to the scheduling handlers.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/clinichq/clinic-scheduler/internal/http/handlers"
	httpmiddleware "github.com/clinichq/clinic-scheduler/internal/http/middleware"
	"github.com/clinichq/clinic-scheduler/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	Scheduling         *handlers.SchedulingHandler
	Reports            *handlers.ReportsHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.Scheduling.HealthCheck)

	r.Get("/timeslots", cfg.Reports.ListTimeslots)
	r.Get("/providers", cfg.Reports.ListProviders)
	r.Get("/locations", cfg.Reports.ListLocations)

	r.Route("/appointments", func(r chi.Router) {
		r.Get("/", cfg.Reports.ListAppointments)
		r.Post("/office", cfg.Scheduling.BookOffice)
		r.Post("/imaging", cfg.Scheduling.BookImaging)
		r.Post("/cancel", cfg.Scheduling.Cancel)
		r.Post("/reschedule", cfg.Scheduling.Reschedule)
	})

	r.Route("/billing", func(r chi.Router) {
		r.Get("/statements", cfg.Reports.BillingStatements)
		r.Get("/credits", cfg.Reports.ProviderCredits)
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}
