package records

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppointment(id, name string) *Appointment {
	return &Appointment{
		ID:       id,
		Name:     name,
		Number:   "9876543210",
		Date:     "2026-09-15",
		Services: []string{"weightLoss", "heartHealth"},
		Status:   StatusPending,
	}
}

func TestMemoryStoreAppointmentLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.CreateAppointment(ctx, newTestAppointment("a1", "Asha")))
	require.NoError(t, store.CreateAppointment(ctx, newTestAppointment("a2", "Ravi")))
	require.NoError(t, store.CreateAppointment(ctx, newTestAppointment("a3", "Meena")))

	list, err := store.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"a1", "a2", "a3"}, []string{list[0].ID, list[1].ID, list[2].ID})

	require.NoError(t, store.UpdateAppointmentStatus(ctx, "a2", StatusCompleted))
	got, err := store.GetAppointment(ctx, "a2")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)

	// Delete removes exactly one record; the others are untouched.
	require.NoError(t, store.DeleteAppointment(ctx, "a2"))
	list, err = store.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a1", list[0].ID)
	assert.Equal(t, "a3", list[1].ID)
	assert.Equal(t, StatusPending, list[0].Status)
	assert.Equal(t, StatusPending, list[1].Status)

	_, err = store.GetAppointment(ctx, "a2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.GetAppointment(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.UpdateAppointmentStatus(ctx, "missing", StatusCompleted), ErrNotFound)
	assert.ErrorIs(t, store.DeleteAppointment(ctx, "missing"), ErrNotFound)
	_, err = store.GetReport(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.DeleteReport(ctx, "missing"), ErrNotFound)
}

func TestMemoryStoreSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.CreateAppointment(ctx, newTestAppointment("a1", "Asha")))

	list, err := store.ListAppointments(ctx)
	require.NoError(t, err)
	list[0].Status = StatusCompleted
	list[0].Services[0] = "mutated"

	got, err := store.GetAppointment(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
	assert.Equal(t, "weightLoss", got.Services[0])
}

func TestMemoryStoreReports(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	ideal := 63.00
	bmi := 24.22
	rep := &Report{
		ID:           "r1",
		Name:         "Asha",
		Height:       170,
		Weight:       70,
		Age:          30,
		Gender:       "male",
		PhoneNumber:  "9876543210",
		IdealWeight:  &ideal,
		BMI:          &bmi,
		WeightStatus: "Over Ideal Weight",
		CreatedAt:    time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.CreateReport(ctx, rep))
	require.NoError(t, store.CreateReport(ctx, &Report{ID: "r2", Name: "Ravi"}))

	list, err := store.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r1", list[0].ID)
	require.NotNil(t, list[0].IdealWeight)
	assert.Equal(t, 63.00, *list[0].IdealWeight)
	assert.Nil(t, list[0].BMR)

	// Stored reports are not aliased to caller pointers.
	*rep.IdealWeight = 0
	got, err := store.GetReport(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 63.00, *got.IdealWeight)

	require.NoError(t, store.DeleteReport(ctx, "r1"))
	list, err = store.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "r2", list[0].ID)
}
