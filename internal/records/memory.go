package records

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store preserving insertion order. It backs
// development mode and tests.
type MemoryStore struct {
	mu           sync.RWMutex
	appointments map[string]*Appointment
	apptOrder    []string
	reports      map[string]*Report
	reportOrder  []string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		appointments: make(map[string]*Appointment),
		reports:      make(map[string]*Report),
	}
}

// CreateAppointment stores a new appointment.
func (s *MemoryStore) CreateAppointment(ctx context.Context, appt *Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := cloneAppointment(appt)
	s.appointments[cp.ID] = cp
	s.apptOrder = append(s.apptOrder, cp.ID)
	return nil
}

// GetAppointment returns the appointment for id or ErrNotFound.
func (s *MemoryStore) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	appt, ok := s.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneAppointment(appt), nil
}

// ListAppointments returns a snapshot copy in insertion order.
func (s *MemoryStore) ListAppointments(ctx context.Context) ([]*Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Appointment, 0, len(s.apptOrder))
	for _, id := range s.apptOrder {
		out = append(out, cloneAppointment(s.appointments[id]))
	}
	return out, nil
}

// UpdateAppointmentStatus sets the status of an existing appointment.
func (s *MemoryStore) UpdateAppointmentStatus(ctx context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	appt, ok := s.appointments[id]
	if !ok {
		return ErrNotFound
	}
	appt.Status = status
	return nil
}

// DeleteAppointment removes the appointment for id or returns ErrNotFound.
func (s *MemoryStore) DeleteAppointment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.appointments[id]; !ok {
		return ErrNotFound
	}
	delete(s.appointments, id)
	s.apptOrder = removeID(s.apptOrder, id)
	return nil
}

// CreateReport stores a new report.
func (s *MemoryStore) CreateReport(ctx context.Context, rep *Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := cloneReport(rep)
	s.reports[cp.ID] = cp
	s.reportOrder = append(s.reportOrder, cp.ID)
	return nil
}

// GetReport returns the report for id or ErrNotFound.
func (s *MemoryStore) GetReport(ctx context.Context, id string) (*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rep, ok := s.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneReport(rep), nil
}

// ListReports returns a snapshot copy in insertion order.
func (s *MemoryStore) ListReports(ctx context.Context) ([]*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Report, 0, len(s.reportOrder))
	for _, id := range s.reportOrder {
		out = append(out, cloneReport(s.reports[id]))
	}
	return out, nil
}

// DeleteReport removes the report for id or returns ErrNotFound.
func (s *MemoryStore) DeleteReport(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[id]; !ok {
		return ErrNotFound
	}
	delete(s.reports, id)
	s.reportOrder = removeID(s.reportOrder, id)
	return nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func cloneAppointment(a *Appointment) *Appointment {
	cp := *a
	cp.Services = append([]string(nil), a.Services...)
	return &cp
}

func cloneReport(r *Report) *Report {
	cp := *r
	cp.IdealWeight = cloneFloat(r.IdealWeight)
	cp.BMI = cloneFloat(r.BMI)
	cp.BMR = cloneFloat(r.BMR)
	cp.BodyFat = cloneFloat(r.BodyFat)
	return &cp
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}
