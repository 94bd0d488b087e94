package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// db is the subset of pgxpool.Pool the store uses; pgxmock satisfies it in
// tests.
type db interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore persists records in the relational database.
type PostgresStore struct {
	db db
}

// NewPostgresStore initializes a store backed by pgxpool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	if pool == nil {
		panic("records: pgx pool required")
	}
	return &PostgresStore{db: pool}
}

// NewPostgresStoreWithDB allows injecting mocks for tests.
func NewPostgresStoreWithDB(db db) *PostgresStore {
	return &PostgresStore{db: db}
}

// CreateAppointment inserts a new appointment row.
func (s *PostgresStore) CreateAppointment(ctx context.Context, appt *Appointment) error {
	query := `
		INSERT INTO appointments (id, name, number, date, services, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := s.db.Exec(ctx, query,
		appt.ID,
		appt.Name,
		appt.Number,
		appt.Date,
		appt.Services,
		appt.Status,
	); err != nil {
		return fmt.Errorf("records: insert appointment: %w", err)
	}
	return nil
}

// GetAppointment fetches one appointment by id.
func (s *PostgresStore) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	query := `
		SELECT id, name, number, date, services, status
		FROM appointments
		WHERE id = $1
	`
	var appt Appointment
	err := s.db.QueryRow(ctx, query, id).Scan(
		&appt.ID,
		&appt.Name,
		&appt.Number,
		&appt.Date,
		&appt.Services,
		&appt.Status,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("records: get appointment: %w", err)
	}
	return &appt, nil
}

// ListAppointments returns all appointments ordered by creation time.
func (s *PostgresStore) ListAppointments(ctx context.Context) ([]*Appointment, error) {
	query := `
		SELECT id, name, number, date, services, status
		FROM appointments
		ORDER BY created_at
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("records: list appointments: %w", err)
	}
	defer rows.Close()

	var out []*Appointment
	for rows.Next() {
		var appt Appointment
		if err := rows.Scan(
			&appt.ID,
			&appt.Name,
			&appt.Number,
			&appt.Date,
			&appt.Services,
			&appt.Status,
		); err != nil {
			return nil, fmt.Errorf("records: scan appointment: %w", err)
		}
		out = append(out, &appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("records: iterate appointments: %w", err)
	}
	return out, nil
}

// UpdateAppointmentStatus sets the status of an existing appointment.
func (s *PostgresStore) UpdateAppointmentStatus(ctx context.Context, id, status string) error {
	tag, err := s.db.Exec(ctx, `UPDATE appointments SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("records: update appointment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAppointment removes one appointment row.
func (s *PostgresStore) DeleteAppointment(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("records: delete appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateReport inserts a new report row.
func (s *PostgresStore) CreateReport(ctx context.Context, rep *Report) error {
	query := `
		INSERT INTO reports (
			id, name, height, weight, age, gender, phone_number,
			ideal_weight, bmi, bmr, body_fat, weight_status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	if _, err := s.db.Exec(ctx, query,
		rep.ID,
		rep.Name,
		rep.Height,
		rep.Weight,
		rep.Age,
		rep.Gender,
		rep.PhoneNumber,
		rep.IdealWeight,
		rep.BMI,
		rep.BMR,
		rep.BodyFat,
		rep.WeightStatus,
		rep.CreatedAt,
	); err != nil {
		return fmt.Errorf("records: insert report: %w", err)
	}
	return nil
}

// GetReport fetches one report by id.
func (s *PostgresStore) GetReport(ctx context.Context, id string) (*Report, error) {
	query := `
		SELECT id, name, height, weight, age, gender, phone_number,
			ideal_weight, bmi, bmr, body_fat, weight_status, created_at
		FROM reports
		WHERE id = $1
	`
	var rep Report
	err := s.db.QueryRow(ctx, query, id).Scan(
		&rep.ID,
		&rep.Name,
		&rep.Height,
		&rep.Weight,
		&rep.Age,
		&rep.Gender,
		&rep.PhoneNumber,
		&rep.IdealWeight,
		&rep.BMI,
		&rep.BMR,
		&rep.BodyFat,
		&rep.WeightStatus,
		&rep.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("records: get report: %w", err)
	}
	return &rep, nil
}

// ListReports returns all reports ordered by creation time.
func (s *PostgresStore) ListReports(ctx context.Context) ([]*Report, error) {
	query := `
		SELECT id, name, height, weight, age, gender, phone_number,
			ideal_weight, bmi, bmr, body_fat, weight_status, created_at
		FROM reports
		ORDER BY created_at
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("records: list reports: %w", err)
	}
	defer rows.Close()

	var out []*Report
	for rows.Next() {
		var rep Report
		if err := rows.Scan(
			&rep.ID,
			&rep.Name,
			&rep.Height,
			&rep.Weight,
			&rep.Age,
			&rep.Gender,
			&rep.PhoneNumber,
			&rep.IdealWeight,
			&rep.BMI,
			&rep.BMR,
			&rep.BodyFat,
			&rep.WeightStatus,
			&rep.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("records: scan report: %w", err)
		}
		out = append(out, &rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("records: iterate reports: %w", err)
	}
	return out, nil
}

// DeleteReport removes one report row.
func (s *PostgresStore) DeleteReport(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("records: delete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
