package extraction

import "strings"

// Intent is the caller's high-level goal for a turn.
type Intent string

const (
	IntentBookNew           Intent = "book_new"
	IntentReschedule        Intent = "reschedule"
	IntentCancel            Intent = "cancel"
	IntentWhatToPrepare     Intent = "what_to_prepare"
	IntentCheckAvailability Intent = "check_availability"
	IntentOther             Intent = "other"
)

// ParseIntent maps a raw intent string onto the closed intent set.
// Anything unrecognized becomes IntentOther.
func ParseIntent(raw string) Intent {
	switch Intent(strings.TrimSpace(raw)) {
	case IntentBookNew, IntentReschedule, IntentCancel, IntentWhatToPrepare, IntentCheckAvailability:
		return Intent(strings.TrimSpace(raw))
	default:
		return IntentOther
	}
}

// Topic is one of the fixed advisor session topics.
type Topic string

const (
	TopicKYCOnboarding  Topic = "KYC/Onboarding"
	TopicSIPMandates    Topic = "SIP/Mandates"
	TopicStatements     Topic = "Statements/Tax Docs"
	TopicWithdrawals    Topic = "Withdrawals & Timelines"
	TopicAccountChanges Topic = "Account Changes/Nominee"
)

// Topics returns the closed topic set in canonical order.
func Topics() []Topic {
	return []Topic{
		TopicKYCOnboarding,
		TopicSIPMandates,
		TopicStatements,
		TopicWithdrawals,
		TopicAccountChanges,
	}
}

// TopicList renders the topics as a comma-separated string for prompts and replies.
func TopicList() string {
	topics := Topics()
	parts := make([]string, len(topics))
	for i, topic := range topics {
		parts[i] = string(topic)
	}
	return strings.Join(parts, ", ")
}

// ParseTopic matches raw extraction output against the closed topic set.
// Anything that is not an exact label is treated as absent.
func ParseTopic(raw string) (Topic, bool) {
	for _, topic := range Topics() {
		if Topic(raw) == topic {
			return topic, true
		}
	}
	return "", false
}

// Result is the sole contract between extraction (service or fallback) and
// the dialogue engine. Empty strings mean the slot was not extracted.
type Result struct {
	Intent         Intent `json:"intent"`
	Topic          string `json:"topic"`
	DayPreference  string `json:"day_preference"`
	TimePreference string `json:"time_preference"`
}

// DefaultResult is what extraction yields for empty or unusable input.
func DefaultResult() Result {
	return Result{Intent: IntentOther}
}
