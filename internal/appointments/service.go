// Package appointments governs the booking lifecycle: Pending at creation,
// Completed after staff action, deletion at any point.
package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	obsmetrics "github.com/mrhealth/nutrition-platform/internal/observability/metrics"
	"github.com/mrhealth/nutrition-platform/internal/records"
	"github.com/mrhealth/nutrition-platform/pkg/logging"
)

var tracer = otel.Tracer("nutrition.internal.appointments")

// BookingRequest carries the visitor's booking form input.
type BookingRequest struct {
	Name     string   `json:"name"`
	Number   string   `json:"number"`
	Date     string   `json:"date"`
	Services []string `json:"services"`
}

// Validate checks the booking form requirements.
func (r *BookingRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(r.Number) == "" {
		return ErrMissingNumber
	}
	if strings.TrimSpace(r.Date) == "" {
		return ErrMissingDate
	}
	if len(r.Services) == 0 {
		return ErrNoServices
	}
	return nil
}

// Service manages appointment records.
type Service struct {
	store   records.Store
	logger  *logging.Logger
	metrics *obsmetrics.RecordMetrics
}

// NewService constructs an appointments service.
func NewService(store records.Store, logger *logging.Logger, m *obsmetrics.RecordMetrics) *Service {
	if store == nil {
		panic("appointments: store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{store: store, logger: logger, metrics: m}
}

// Book creates a Pending appointment from the visitor's form.
func (s *Service) Book(ctx context.Context, req BookingRequest) (*records.Appointment, error) {
	ctx, span := tracer.Start(ctx, "appointments.book")
	defer span.End()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	appt := &records.Appointment{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Number:   req.Number,
		Date:     req.Date,
		Services: req.Services,
		Status:   records.StatusPending,
	}
	span.SetAttributes(attribute.String("nutrition.appointment_id", appt.ID))

	if err := s.store.CreateAppointment(ctx, appt); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("appointments: book: %w", err)
	}

	s.metrics.ObserveBooking()
	s.logger.Info("appointment booked", "id", appt.ID, "name", appt.Name, "date", appt.Date)
	return appt, nil
}

// MarkCompleted transitions a Pending appointment to Completed. Calling it
// on an already Completed appointment is a no-op success, so staff can
// trigger it twice without corrupting state.
func (s *Service) MarkCompleted(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "appointments.mark_completed")
	defer span.End()
	span.SetAttributes(attribute.String("nutrition.appointment_id", id))

	appt, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		if !errors.Is(err, records.ErrNotFound) {
			span.RecordError(err)
		}
		return err
	}
	if appt.Status == records.StatusCompleted {
		s.logger.Debug("appointment already completed", "id", id)
		return nil
	}

	if err := s.store.UpdateAppointmentStatus(ctx, id, records.StatusCompleted); err != nil {
		span.RecordError(err)
		return fmt.Errorf("appointments: mark completed: %w", err)
	}
	s.logger.Info("appointment completed", "id", id)
	return nil
}

// Delete removes an appointment regardless of status. Irreversible.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "appointments.delete")
	defer span.End()
	span.SetAttributes(attribute.String("nutrition.appointment_id", id))

	if err := s.store.DeleteAppointment(ctx, id); err != nil {
		if !errors.Is(err, records.ErrNotFound) {
			span.RecordError(err)
		}
		return err
	}
	s.logger.Info("appointment deleted", "id", id)
	return nil
}

// Get returns one appointment by id.
func (s *Service) Get(ctx context.Context, id string) (*records.Appointment, error) {
	return s.store.GetAppointment(ctx, id)
}

// List returns a snapshot of all appointments in store order.
func (s *Service) List(ctx context.Context) ([]*records.Appointment, error) {
	return s.store.ListAppointments(ctx)
}
