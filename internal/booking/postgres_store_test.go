package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/kaushiksr22/advisor-voice-agent/internal/schedule"
)

func TestPostgresStorePutBooking(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("NL-A742", "KYC/Onboarding", "SLOT-101", "2026-01-02 10:00 AM", "10:30 AM", "IST").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := NewPostgresStore(mock)
	err = store.PutBooking(context.Background(), Booking{
		Code:          "NL-A742",
		Topic:         "KYC/Onboarding",
		Slot:          schedule.Slot{ID: "SLOT-101", Start: "2026-01-02 10:00 AM", End: "10:30 AM"},
		TimezoneLabel: "IST",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreGetBooking(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"code", "topic", "slot_id", "slot_start", "slot_end", "timezone_label"}).
		AddRow("NL-A742", "KYC/Onboarding", "SLOT-101", "2026-01-02 10:00 AM", "10:30 AM", "IST")
	mock.ExpectQuery("SELECT code, topic, slot_id").
		WithArgs("NL-A742").
		WillReturnRows(rows)

	store := NewPostgresStore(mock)
	got, err := store.GetBooking(context.Background(), "NL-A742")
	require.NoError(t, err)
	require.Equal(t, "KYC/Onboarding", got.Topic)
	require.Equal(t, "SLOT-101", got.Slot.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreGetBookingNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT code, topic, slot_id").
		WithArgs("NL-MISS").
		WillReturnError(pgx.ErrNoRows)

	store := NewPostgresStore(mock)
	_, err = store.GetBooking(context.Background(), "NL-MISS")
	require.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)
}

func TestPostgresStoreContactUpsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO secure_contacts").
		WithArgs("NL-A742", "caller@example.com", "", "notes").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := NewPostgresStore(mock)
	err = store.PutContact(context.Background(), "NL-A742", ContactDetails{Email: "caller@example.com", Notes: "notes"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
