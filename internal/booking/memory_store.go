package booking

import (
	"context"
	"sync"
)

// MemoryStore is the default in-process store. Records accumulate for the
// process lifetime; there is no eviction path.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings map[string]Booking
	contacts map[string]ContactDetails
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bookings: make(map[string]Booking),
		contacts: make(map[string]ContactDetails),
	}
}

func (s *MemoryStore) PutBooking(_ context.Context, b Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.Code] = b
	return nil
}

func (s *MemoryStore) GetBooking(_ context.Context, code string) (*Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[code]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (s *MemoryStore) PutContact(_ context.Context, code string, c ContactDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts[code] = c
	return nil
}

func (s *MemoryStore) GetContact(_ context.Context, code string) (*ContactDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contacts[code]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}
