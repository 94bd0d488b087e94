// Package router wires the HTTP surface onto chi.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mrhealth/nutrition-platform/internal/http/handlers"
	httpmiddleware "github.com/mrhealth/nutrition-platform/internal/http/middleware"
	obsmetrics "github.com/mrhealth/nutrition-platform/internal/observability/metrics"
	"github.com/mrhealth/nutrition-platform/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	Metrics            *obsmetrics.RecordMetrics
	Calculator         *handlers.CalculatorHandler
	Booking            *handlers.BookingHandler
	Admin              *handlers.AdminHandler
	AdminJWTSecret     string
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger, cfg.Metrics))
	}

	// Public endpoints: calculator, booking, catalog, health checks.
	r.Group(func(public chi.Router) {
		public.Get("/health", cfg.Booking.HealthCheck)
		public.Post("/calculate", cfg.Calculator.Calculate)
		public.Post("/reports", cfg.Booking.SaveReport)
		public.Post("/appointments", cfg.Booking.BookAppointment)
		public.Get("/services", cfg.Booking.ListServices)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
	})

	// Staff endpoints behind the admin gate.
	r.Route("/admin", func(ar chi.Router) {
		ar.Use(httpmiddleware.AdminJWT(cfg.AdminJWTSecret))
		ar.Get("/appointments", cfg.Admin.ListAppointments)
		ar.Get("/reports", cfg.Admin.ListReports)
		ar.Post("/appointments/{id}/complete", cfg.Admin.CompleteAppointment)
		ar.Delete("/appointments/{id}", cfg.Admin.DeleteAppointment)
		ar.Delete("/reports/{id}", cfg.Admin.DeleteReport)
		ar.Get("/appointments/{id}/whatsapp", cfg.Admin.AppointmentWhatsApp)
		ar.Get("/reports/{id}/whatsapp", cfg.Admin.ReportWhatsApp)
	})

	return r
}
