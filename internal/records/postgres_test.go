package records

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (pgxmock.PgxPoolIface, *PostgresStore) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock, NewPostgresStoreWithDB(mock)
}

func TestPostgresCreateAppointment(t *testing.T) {
	mock, store := newMockStore(t)
	appt := newTestAppointment("a1", "Asha")

	mock.ExpectExec("INSERT INTO appointments").
		WithArgs(appt.ID, appt.Name, appt.Number, appt.Date, appt.Services, appt.Status).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, store.CreateAppointment(context.Background(), appt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListAppointments(t *testing.T) {
	mock, store := newMockStore(t)

	rows := pgxmock.NewRows([]string{"id", "name", "number", "date", "services", "status"}).
		AddRow("a1", "Asha", "9876543210", "2026-09-15", []string{"weightLoss"}, StatusPending).
		AddRow("a2", "Ravi", "9876500000", "2026-09-16", []string{"heartHealth"}, StatusCompleted)
	mock.ExpectQuery("SELECT (.+) FROM appointments").WillReturnRows(rows)

	list, err := store.ListAppointments(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a1", list[0].ID)
	assert.Equal(t, []string{"heartHealth"}, list[1].Services)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateAppointmentStatus(t *testing.T) {
	mock, store := newMockStore(t)

	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs("a1", StatusCompleted).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, store.UpdateAppointmentStatus(context.Background(), "a1", StatusCompleted))

	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs("missing", StatusCompleted).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, store.UpdateAppointmentStatus(context.Background(), "missing", StatusCompleted), ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDeleteAppointment(t *testing.T) {
	mock, store := newMockStore(t)

	mock.ExpectExec("DELETE FROM appointments").
		WithArgs("a1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, store.DeleteAppointment(context.Background(), "a1"))

	mock.ExpectExec("DELETE FROM appointments").
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, store.DeleteAppointment(context.Background(), "missing"), ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDeleteReportStoreError(t *testing.T) {
	mock, store := newMockStore(t)

	mock.ExpectExec("DELETE FROM reports").
		WithArgs("r1").
		WillReturnError(errors.New("connection reset"))

	err := store.DeleteReport(context.Background(), "r1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
