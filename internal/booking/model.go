package booking

import "github.com/kaushiksr22/advisor-voice-agent/internal/schedule"

// Booking is created exactly once, when the caller confirms a selected slot.
// It is never mutated afterwards; contact enrichment lives in a separate record.
type Booking struct {
	Code          string        `json:"code"`
	Topic         string        `json:"topic"`
	Slot          schedule.Slot `json:"slot"`
	TimezoneLabel string        `json:"timezone"`
}

// ContactDetails are collected over the secure channel, keyed by booking code.
type ContactDetails struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}
