package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mrhealth/nutrition-platform/internal/admin"
	"github.com/mrhealth/nutrition-platform/internal/catalog"
	"github.com/mrhealth/nutrition-platform/internal/http/middleware"
	"github.com/mrhealth/nutrition-platform/internal/notify"
	"github.com/mrhealth/nutrition-platform/internal/records"
	"github.com/mrhealth/nutrition-platform/pkg/logging"
)

// AdminHandler serves the staff panel: record listings, lifecycle actions
// and outbound message composition.
type AdminHandler struct {
	aggregator   *admin.Aggregator
	composer     notify.Composer
	catalog      *catalog.Store
	whatsappHost string
	logger       *logging.Logger
}

// NewAdminHandler creates the staff handler.
func NewAdminHandler(agg *admin.Aggregator, composer notify.Composer, cat *catalog.Store, whatsappHost string, logger *logging.Logger) *AdminHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminHandler{
		aggregator:   agg,
		composer:     composer,
		catalog:      cat,
		whatsappHost: whatsappHost,
		logger:       logger,
	}
}

// ListAppointments handles GET /admin/appointments.
func (h *AdminHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appts, err := h.aggregator.ListAppointments(r.Context(), middleware.Authorized(r.Context()))
	if err != nil {
		h.respondListError(w, err, "appointments")
		return
	}
	writeJSON(w, http.StatusOK, appts)
}

// ListReports handles GET /admin/reports.
func (h *AdminHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reps, err := h.aggregator.ListReports(r.Context(), middleware.Authorized(r.Context()))
	if err != nil {
		h.respondListError(w, err, "reports")
		return
	}
	writeJSON(w, http.StatusOK, reps)
}

// CompleteAppointment handles POST /admin/appointments/{id}/complete.
func (h *AdminHandler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, admin.ActionMarkCompleted)
}

// DeleteAppointment handles DELETE /admin/appointments/{id}.
func (h *AdminHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, admin.ActionDeleteAppointment)
}

// DeleteReport handles DELETE /admin/reports/{id}.
func (h *AdminHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, admin.ActionDeleteReport)
}

func (h *AdminHandler) dispatch(w http.ResponseWriter, r *http.Request, action admin.Action) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing record id")
		return
	}

	err := h.aggregator.Dispatch(r.Context(), middleware.Authorized(r.Context()), nil, action, id)
	if errors.Is(err, admin.ErrUnauthorized) {
		writeError(w, http.StatusUnauthorized, "admin access required")
		return
	}
	if err != nil {
		h.logger.Error("admin dispatch failed", "action", action, "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "the action failed, please try again")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// WhatsAppMessage is a composed message plus its messaging deep link.
type WhatsAppMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
	URL  string `json:"url"`
}

// AppointmentWhatsApp handles GET /admin/appointments/{id}/whatsapp.
func (h *AdminHandler) AppointmentWhatsApp(w http.ResponseWriter, r *http.Request) {
	appt, err := h.aggregator.GetAppointment(r.Context(), middleware.Authorized(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.respondRecordError(w, err)
		return
	}

	services, err := h.catalog.List(r.Context())
	if err != nil {
		h.logger.Error("failed to load catalog", "error", err)
		writeError(w, http.StatusInternalServerError, "could not load services")
		return
	}

	msg, err := h.composer.AppointmentConfirmation(appt, services)
	if err != nil {
		h.logger.Error("failed to compose confirmation", "id", appt.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not compose the message")
		return
	}
	h.respondMessage(w, msg)
}

// ReportWhatsApp handles GET /admin/reports/{id}/whatsapp.
func (h *AdminHandler) ReportWhatsApp(w http.ResponseWriter, r *http.Request) {
	rep, err := h.aggregator.GetReport(r.Context(), middleware.Authorized(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.respondRecordError(w, err)
		return
	}

	msg, err := h.composer.ReportSummary(rep)
	if err != nil {
		h.logger.Error("failed to compose report summary", "id", rep.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not compose the message")
		return
	}
	h.respondMessage(w, msg)
}

func (h *AdminHandler) respondMessage(w http.ResponseWriter, msg notify.Message) {
	writeJSON(w, http.StatusOK, WhatsAppMessage{
		To:   msg.To,
		Body: msg.Body,
		URL:  notify.WhatsAppLink(h.whatsappHost, msg),
	})
}

func (h *AdminHandler) respondListError(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, admin.ErrUnauthorized) {
		writeError(w, http.StatusUnauthorized, "admin access required")
		return
	}
	h.logger.Error("failed to list "+what, "error", err)
	writeError(w, http.StatusInternalServerError, "could not load "+what)
}

func (h *AdminHandler) respondRecordError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, admin.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "admin access required")
	case errors.Is(err, records.ErrNotFound):
		writeError(w, http.StatusNotFound, "record not found")
	default:
		h.logger.Error("failed to load record", "error", err)
		writeError(w, http.StatusInternalServerError, "could not load the record")
	}
}
