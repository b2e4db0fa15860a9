package booking

import (
	"context"
	"errors"
)

// ErrNotFound is returned for lookups of codes that were never stored.
var ErrNotFound = errors.New("booking: not found")

// Store persists bookings and secure contact details by booking code.
// Access is exact-code lookup only; no range queries.
type Store interface {
	PutBooking(ctx context.Context, b Booking) error
	GetBooking(ctx context.Context, code string) (*Booking, error)
	PutContact(ctx context.Context, code string, c ContactDetails) error
	GetContact(ctx context.Context, code string) (*ContactDetails, error)
}
