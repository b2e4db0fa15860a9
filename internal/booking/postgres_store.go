package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgxQuerier is the slice of pgxpool.Pool the store needs; pgxmock satisfies it.
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore persists bookings and contacts in Postgres.
// Schema lives in migrations/ and is applied by cmd/migrate.
type PostgresStore struct {
	db pgxQuerier
}

// NewPostgresStore creates a Postgres-backed store from a pgx pool.
func NewPostgresStore(db pgxQuerier) *PostgresStore {
	if db == nil {
		panic("booking: pgx pool required")
	}
	return &PostgresStore{db: db}
}

func (s *PostgresStore) PutBooking(ctx context.Context, b Booking) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO bookings (code, topic, slot_id, slot_start, slot_end, timezone_label)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (code) DO NOTHING`,
		b.Code, b.Topic, b.Slot.ID, b.Slot.Start, b.Slot.End, b.TimezoneLabel,
	)
	if err != nil {
		return fmt.Errorf("booking: insert booking %s: %w", b.Code, err)
	}
	return nil
}

func (s *PostgresStore) GetBooking(ctx context.Context, code string) (*Booking, error) {
	var b Booking
	err := s.db.QueryRow(ctx, `
		SELECT code, topic, slot_id, slot_start, slot_end, timezone_label
		FROM bookings WHERE code = $1`,
		code,
	).Scan(&b.Code, &b.Topic, &b.Slot.ID, &b.Slot.Start, &b.Slot.End, &b.TimezoneLabel)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("booking: load booking %s: %w", code, err)
	}
	return &b, nil
}

func (s *PostgresStore) PutContact(ctx context.Context, code string, c ContactDetails) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO secure_contacts (booking_code, email, phone, notes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (booking_code) DO UPDATE SET email = $2, phone = $3, notes = $4`,
		code, c.Email, c.Phone, c.Notes,
	)
	if err != nil {
		return fmt.Errorf("booking: upsert contact %s: %w", code, err)
	}
	return nil
}

func (s *PostgresStore) GetContact(ctx context.Context, code string) (*ContactDetails, error) {
	var c ContactDetails
	err := s.db.QueryRow(ctx, `
		SELECT email, phone, notes FROM secure_contacts WHERE booking_code = $1`,
		code,
	).Scan(&c.Email, &c.Phone, &c.Notes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("booking: load contact %s: %w", code, err)
	}
	return &c, nil
}
