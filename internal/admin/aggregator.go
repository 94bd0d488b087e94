// Package admin provides the staff read-model over appointments and reports
// and dispatches staff actions against the record lifecycle.
package admin

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mrhealth/nutrition-platform/internal/appointments"
	obsmetrics "github.com/mrhealth/nutrition-platform/internal/observability/metrics"
	"github.com/mrhealth/nutrition-platform/internal/records"
	"github.com/mrhealth/nutrition-platform/internal/reports"
	"github.com/mrhealth/nutrition-platform/pkg/logging"
)

var tracer = otel.Tracer("nutrition.internal.admin")

// Staff actions dispatchable through the aggregator.
type Action string

const (
	ActionMarkCompleted     Action = "MarkCompleted"
	ActionDeleteAppointment Action = "DeleteAppointment"
	ActionDeleteReport      Action = "DeleteReport"
)

var (
	// ErrUnauthorized is returned when the caller's authorization gate is
	// not open. The aggregator never checks credentials itself.
	ErrUnauthorized = errors.New("admin access required")

	// ErrUnknownAction is returned for an unrecognized dispatch action.
	ErrUnknownAction = errors.New("unknown admin action")
)

// Snapshot is a point-in-time view of the records. It does not track writes
// made by other staff sessions; callers re-fetch after mutations when they
// need a fresh view.
type Snapshot struct {
	Appointments []*records.Appointment `json:"appointments"`
	Reports      []*records.Report      `json:"reports"`
}

// Aggregator lists records for staff and applies staff actions.
type Aggregator struct {
	appointments *appointments.Service
	reports      *reports.Service
	logger       *logging.Logger
	metrics      *obsmetrics.RecordMetrics
}

// NewAggregator constructs the staff aggregator.
func NewAggregator(appts *appointments.Service, reps *reports.Service, logger *logging.Logger, m *obsmetrics.RecordMetrics) *Aggregator {
	if appts == nil || reps == nil {
		panic("admin: appointment and report services required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Aggregator{appointments: appts, reports: reps, logger: logger, metrics: m}
}

// ListAppointments returns a snapshot of appointments in store order.
func (a *Aggregator) ListAppointments(ctx context.Context, authorized bool) ([]*records.Appointment, error) {
	if !authorized {
		return nil, ErrUnauthorized
	}
	return a.appointments.List(ctx)
}

// ListReports returns a snapshot of reports in store order.
func (a *Aggregator) ListReports(ctx context.Context, authorized bool) ([]*records.Report, error) {
	if !authorized {
		return nil, ErrUnauthorized
	}
	return a.reports.List(ctx)
}

// GetAppointment returns one appointment for staff use.
func (a *Aggregator) GetAppointment(ctx context.Context, authorized bool, id string) (*records.Appointment, error) {
	if !authorized {
		return nil, ErrUnauthorized
	}
	return a.appointments.Get(ctx, id)
}

// GetReport returns one report for staff use.
func (a *Aggregator) GetReport(ctx context.Context, authorized bool, id string) (*records.Report, error) {
	if !authorized {
		return nil, ErrUnauthorized
	}
	return a.reports.Get(ctx, id)
}

// Load builds a combined snapshot for the admin view.
func (a *Aggregator) Load(ctx context.Context, authorized bool) (*Snapshot, error) {
	appts, err := a.ListAppointments(ctx, authorized)
	if err != nil {
		return nil, err
	}
	reps, err := a.ListReports(ctx, authorized)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Appointments: appts, Reports: reps}, nil
}

// Dispatch applies one staff action to the record with the given id. On
// success the caller-held snapshot (when non-nil) is updated to reflect
// exactly the one mutated or removed record. A missing record is a no-op.
// A store failure leaves the snapshot untouched and is surfaced once; the
// aggregator never retries.
func (a *Aggregator) Dispatch(ctx context.Context, authorized bool, snap *Snapshot, action Action, id string) error {
	if !authorized {
		return ErrUnauthorized
	}

	ctx, span := tracer.Start(ctx, "admin.dispatch")
	defer span.End()
	span.SetAttributes(
		attribute.String("nutrition.action", string(action)),
		attribute.String("nutrition.record_id", id),
	)

	var err error
	switch action {
	case ActionMarkCompleted:
		err = a.appointments.MarkCompleted(ctx, id)
	case ActionDeleteAppointment:
		err = a.appointments.Delete(ctx, id)
	case ActionDeleteReport:
		err = a.reports.Delete(ctx, id)
	default:
		return ErrUnknownAction
	}

	if errors.Is(err, records.ErrNotFound) {
		a.metrics.ObserveStaffAction(string(action), "noop")
		a.logger.Warn("admin action targeted a missing record", "action", action, "id", id)
		return nil
	}
	if err != nil {
		a.metrics.ObserveStaffAction(string(action), "error")
		span.RecordError(err)
		a.logger.Error("admin action failed", "action", action, "id", id, "error", err)
		return err
	}

	a.metrics.ObserveStaffAction(string(action), "ok")
	applyToSnapshot(snap, action, id)
	return nil
}

func applyToSnapshot(snap *Snapshot, action Action, id string) {
	if snap == nil {
		return
	}
	switch action {
	case ActionMarkCompleted:
		for _, appt := range snap.Appointments {
			if appt.ID == id {
				appt.Status = records.StatusCompleted
				return
			}
		}
	case ActionDeleteAppointment:
		snap.Appointments = removeAppointment(snap.Appointments, id)
	case ActionDeleteReport:
		snap.Reports = removeReport(snap.Reports, id)
	}
}

func removeAppointment(appts []*records.Appointment, id string) []*records.Appointment {
	out := appts[:0]
	for _, a := range appts {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}

func removeReport(reps []*records.Report, id string) []*records.Report {
	out := reps[:0]
	for _, r := range reps {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}
