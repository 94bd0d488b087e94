package records

import "context"

// Store is the persistence boundary for appointments and reports. Listings
// return point-in-time snapshots in store iteration order; callers must
// re-fetch after mutations to observe writes from other sessions.
type Store interface {
	CreateAppointment(ctx context.Context, appt *Appointment) error
	GetAppointment(ctx context.Context, id string) (*Appointment, error)
	ListAppointments(ctx context.Context) ([]*Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id, status string) error
	DeleteAppointment(ctx context.Context, id string) error

	CreateReport(ctx context.Context, rep *Report) error
	GetReport(ctx context.Context, id string) (*Report, error)
	ListReports(ctx context.Context) ([]*Report, error)
	DeleteReport(ctx context.Context, id string) error
}
