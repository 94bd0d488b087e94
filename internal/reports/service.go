// Package reports turns visitor measurements into persisted health reports.
package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mrhealth/nutrition-platform/internal/health"
	obsmetrics "github.com/mrhealth/nutrition-platform/internal/observability/metrics"
	"github.com/mrhealth/nutrition-platform/internal/records"
	"github.com/mrhealth/nutrition-platform/pkg/logging"
)

var tracer = otel.Tracer("nutrition.internal.reports")

// ErrInvalidMeasurement is returned when height or weight is not strictly
// positive; nothing is computed or saved in that case.
var ErrInvalidMeasurement = errors.New("height and weight must be positive")

// Service derives and persists health reports. The raw measurement is never
// stored, only the report built from it.
type Service struct {
	store   records.Store
	logger  *logging.Logger
	metrics *obsmetrics.RecordMetrics
	now     func() time.Time
}

// NewService constructs a reports service.
func NewService(store records.Store, logger *logging.Logger, m *obsmetrics.RecordMetrics) *Service {
	if store == nil {
		panic("reports: store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{store: store, logger: logger, metrics: m, now: func() time.Time { return time.Now().UTC() }}
}

// Create computes metrics for the measurement and saves the derived report.
// The report is immutable once saved; the only later action is deletion.
func (s *Service) Create(ctx context.Context, m health.Measurement) (*records.Report, error) {
	ctx, span := tracer.Start(ctx, "reports.create")
	defer span.End()

	if m.Height <= 0 || m.Weight <= 0 {
		return nil, ErrInvalidMeasurement
	}

	derived := health.Compute(m)
	rep := &records.Report{
		ID:           uuid.New().String(),
		Name:         m.Name,
		Height:       m.Height,
		Weight:       m.Weight,
		Age:          m.Age,
		Gender:       string(m.Gender),
		PhoneNumber:  m.Phone,
		IdealWeight:  derived.IdealWeight,
		BMI:          derived.BMI,
		BMR:          derived.BMR,
		BodyFat:      derived.BodyFatPct,
		WeightStatus: derived.WeightStatus,
		CreatedAt:    s.now(),
	}
	span.SetAttributes(attribute.String("nutrition.report_id", rep.ID))

	if err := s.store.CreateReport(ctx, rep); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("reports: create: %w", err)
	}

	s.metrics.ObserveReport(rep.WeightStatus)
	s.logger.Info("report saved", "id", rep.ID, "name", rep.Name, "weight_status", rep.WeightStatus)
	return rep, nil
}

// Delete removes a report. Irreversible.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "reports.delete")
	defer span.End()
	span.SetAttributes(attribute.String("nutrition.report_id", id))

	if err := s.store.DeleteReport(ctx, id); err != nil {
		if !errors.Is(err, records.ErrNotFound) {
			span.RecordError(err)
		}
		return err
	}
	s.logger.Info("report deleted", "id", id)
	return nil
}

// Get returns one report by id.
func (s *Service) Get(ctx context.Context, id string) (*records.Report, error) {
	return s.store.GetReport(ctx, id)
}

// List returns a snapshot of all reports in store order.
func (s *Service) List(ctx context.Context) ([]*records.Report, error) {
	return s.store.ListReports(ctx)
}
