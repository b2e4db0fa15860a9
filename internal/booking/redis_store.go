package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	bookingKeyPrefix = "booking:"
	contactKeyPrefix = "secure_contact:"
)

// RedisStore keeps bookings and contacts in Redis as JSON values.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client *redis.Client) *RedisStore {
	if client == nil {
		panic("booking: redis client required")
	}
	return &RedisStore{client: client}
}

func (s *RedisStore) PutBooking(ctx context.Context, b Booking) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("booking: marshal booking %s: %w", b.Code, err)
	}
	if err := s.client.Set(ctx, bookingKeyPrefix+b.Code, data, 0).Err(); err != nil {
		return fmt.Errorf("booking: store booking %s: %w", b.Code, err)
	}
	return nil
}

func (s *RedisStore) GetBooking(ctx context.Context, code string) (*Booking, error) {
	data, err := s.client.Get(ctx, bookingKeyPrefix+code).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("booking: load booking %s: %w", code, err)
	}
	var b Booking
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("booking: decode booking %s: %w", code, err)
	}
	return &b, nil
}

func (s *RedisStore) PutContact(ctx context.Context, code string, c ContactDetails) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("booking: marshal contact %s: %w", code, err)
	}
	if err := s.client.Set(ctx, contactKeyPrefix+code, data, 0).Err(); err != nil {
		return fmt.Errorf("booking: store contact %s: %w", code, err)
	}
	return nil
}

func (s *RedisStore) GetContact(ctx context.Context, code string) (*ContactDetails, error) {
	data, err := s.client.Get(ctx, contactKeyPrefix+code).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("booking: load contact %s: %w", code, err)
	}
	var c ContactDetails
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("booking: decode contact %s: %w", code, err)
	}
	return &c, nil
}
