package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/kaushiksr22/advisor-voice-agent/internal/schedule"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	b := Booking{
		Code:          "NL-7QX2",
		Topic:         "SIP/Mandates",
		Slot:          schedule.Slot{ID: "SLOT-103", Start: "2026-01-02 03:00 PM", End: "03:30 PM"},
		TimezoneLabel: "IST",
	}
	require.NoError(t, store.PutBooking(ctx, b))

	got, err := store.GetBooking(ctx, "NL-7QX2")
	require.NoError(t, err)
	require.Equal(t, b, *got)
}

func TestRedisStoreUnknownCode(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	_, err := store.GetBooking(ctx, "NL-MISS")
	require.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)
}

func TestRedisStoreContacts(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	c := ContactDetails{Email: "caller@example.com", Phone: "+91 98765 43210", Notes: "call after 6"}
	require.NoError(t, store.PutContact(ctx, "NL-7QX2", c))

	got, err := store.GetContact(ctx, "NL-7QX2")
	require.NoError(t, err)
	require.Equal(t, c, *got)

	_, err = store.GetContact(ctx, "NL-NONE")
	require.True(t, errors.Is(err, ErrNotFound))
}
