package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFallbackTopics(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"my kyc is stuck", "KYC/Onboarding"},
		{"help me onboard", "KYC/Onboarding"},
		{"sip not working", "SIP/Mandates"},
		{"mandate failed", "SIP/Mandates"},
		{"need my statement", "Statements/Tax Docs"},
		{"tax certificate please", "Statements/Tax Docs"},
		{"withdraw money", "Withdrawals & Timelines"},
		{"redemption timeline", "Withdrawals & Timelines"},
		{"change my nominee", "Account Changes/Nominee"},
		{"update profile details", "Account Changes/Nominee"},
		{"hello there", ""},
	}
	for _, tt := range tests {
		got := ParseFallback(tt.text, false)
		assert.Equal(t, tt.want, got.Topic, "text=%q", tt.text)
	}
}

func TestParseFallbackTopicOrder(t *testing.T) {
	// KYC rule is evaluated before SIP; first match wins.
	got := ParseFallback("kyc and sip trouble", false)
	assert.Equal(t, "KYC/Onboarding", got.Topic)
}

func TestParseFallbackDayAndTime(t *testing.T) {
	got := ParseFallback("book kyc tomorrow morning", false)
	assert.Equal(t, "tomorrow", got.DayPreference)
	assert.Equal(t, "morning", got.TimePreference)

	got = ParseFallback("any slots friday night", false)
	assert.Equal(t, "friday", got.DayPreference)
	assert.Equal(t, "evening", got.TimePreference)

	// "tomorrow" outranks weekday names.
	got = ParseFallback("tomorrow or monday works", false)
	assert.Equal(t, "tomorrow", got.DayPreference)

	// "morning" outranks "evening" when both appear.
	got = ParseFallback("morning or evening either way", false)
	assert.Equal(t, "morning", got.TimePreference)
}

func TestParseFallbackIntentPriority(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"reschedule my booking", IntentReschedule},
		{"please cancel my appointment", IntentCancel},
		{"what should i bring", IntentWhatToPrepare},
		{"check availability please", IntentCheckAvailability},
		{"book an appointment", IntentBookNew},
		{"hello", IntentOther},
		// reschedule outranks cancel when both cues are present
		{"cancel no wait reschedule it", IntentReschedule},
		// cancel outranks book
		{"cancel my booking", IntentCancel},
	}
	for _, tt := range tests {
		got := ParseFallback(tt.text, false)
		assert.Equal(t, tt.want, got.Intent, "text=%q", tt.text)
	}
}

func TestParseFallbackEscalation(t *testing.T) {
	// "other" with a topic escalates to book_new.
	got := ParseFallback("kyc", false)
	assert.Equal(t, IntentBookNew, got.Intent)
	assert.Equal(t, "KYC/Onboarding", got.Topic)

	// check_availability with extracted fields escalates too.
	got = ParseFallback("any slots friday", false)
	assert.Equal(t, IntentBookNew, got.Intent)

	// check_availability with no fields stays.
	got = ParseFallback("check availability", false)
	assert.Equal(t, IntentCheckAvailability, got.Intent)

	// bare day answers mid-booking stay in the flow
	got = ParseFallback("friday", true)
	assert.Equal(t, IntentBookNew, got.Intent)
	assert.Equal(t, "friday", got.DayPreference)
}

func TestParseFallbackIsPure(t *testing.T) {
	a := ParseFallback("book a sip slot tuesday afternoon", true)
	b := ParseFallback("book a sip slot tuesday afternoon", true)
	assert.Equal(t, a, b)
}
