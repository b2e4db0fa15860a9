package dialogue

import (
	"github.com/kaushiksr22/advisor-voice-agent/internal/extraction"
	"github.com/kaushiksr22/advisor-voice-agent/internal/schedule"
)

// State is the per-conversation record the engine mutates turn by turn.
//
// Booking sub-state fields are filled strictly left to right: Topic,
// DayPreference, TimePreference, OfferedSlots, SelectedSlot, BookingCode.
// A later field is never set while an earlier one is empty.
type State struct {
	DisclaimerShown bool
	CurrentIntent   extraction.Intent

	// Booking flow
	Topic          string
	DayPreference  string
	TimePreference string
	OfferedSlots   []schedule.Slot
	SelectedSlot   *schedule.Slot
	BookingCode    string

	// Reschedule/cancel flow
	ProvidedCode string
}

// ResetBooking clears the booking sub-state. Called on cancel completion and
// when a reschedule captures its code and starts over.
func (s *State) ResetBooking() {
	s.Topic = ""
	s.DayPreference = ""
	s.TimePreference = ""
	s.OfferedSlots = nil
	s.SelectedSlot = nil
	s.BookingCode = ""
}

// ResetRescheduleCancel clears the captured booking code.
func (s *State) ResetRescheduleCancel() {
	s.ProvidedCode = ""
}

// MidBooking reports whether any of the caller-supplied booking slots are set.
func (s *State) MidBooking() bool {
	return s.Topic != "" || s.DayPreference != "" || s.TimePreference != ""
}

// BookingStarted reports whether the sticky-flow override applies: once a
// topic is captured or slots were offered, the booking flow is never abandoned.
func (s *State) BookingStarted() bool {
	return len(s.OfferedSlots) > 0 || s.Topic != ""
}
