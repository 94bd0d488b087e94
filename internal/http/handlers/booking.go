package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mrhealth/nutrition-platform/internal/appointments"
	"github.com/mrhealth/nutrition-platform/internal/catalog"
	"github.com/mrhealth/nutrition-platform/internal/health"
	"github.com/mrhealth/nutrition-platform/internal/reports"
	"github.com/mrhealth/nutrition-platform/pkg/logging"
)

// BookingHandler serves visitor-facing booking and report submission.
type BookingHandler struct {
	appointments *appointments.Service
	reports      *reports.Service
	catalog      *catalog.Store
	logger       *logging.Logger
}

// NewBookingHandler creates the public booking/report handler.
func NewBookingHandler(appts *appointments.Service, reps *reports.Service, cat *catalog.Store, logger *logging.Logger) *BookingHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &BookingHandler{appointments: appts, reports: reps, catalog: cat, logger: logger}
}

// BookAppointment handles POST /appointments.
func (h *BookingHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req appointments.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode booking", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	appt, err := h.appointments.Book(r.Context(), req)
	if err != nil {
		if isBookingValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to book appointment", "error", err)
		writeError(w, http.StatusInternalServerError, "could not save the appointment, please try again")
		return
	}

	writeJSON(w, http.StatusCreated, appt)
}

// SaveReport handles POST /reports: calculate and persist in one action.
func (h *BookingHandler) SaveReport(w http.ResponseWriter, r *http.Request) {
	var m health.Measurement
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		h.logger.Error("failed to decode measurement", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rep, err := h.reports.Create(r.Context(), m)
	if err != nil {
		if errors.Is(err, reports.ErrInvalidMeasurement) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to save report", "error", err)
		writeError(w, http.StatusInternalServerError, "could not save the report, please try again")
		return
	}

	writeJSON(w, http.StatusCreated, rep)
}

// ListServices handles GET /services.
func (h *BookingHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list services", "error", err)
		writeError(w, http.StatusInternalServerError, "could not load services")
		return
	}
	writeJSON(w, http.StatusOK, services)
}

// HealthCheck handles GET /health.
func (h *BookingHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func isBookingValidationError(err error) bool {
	return errors.Is(err, appointments.ErrMissingName) ||
		errors.Is(err, appointments.ErrMissingNumber) ||
		errors.Is(err, appointments.ErrMissingDate) ||
		errors.Is(err, appointments.ErrNoServices)
}
