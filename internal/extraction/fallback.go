package extraction

import "strings"

// topicRule maps keyword cues to a topic. Rules are evaluated in order and the
// first hit wins.
type topicRule struct {
	topic    Topic
	keywords []string
}

var topicRules = []topicRule{
	{TopicKYCOnboarding, []string{"kyc", "onboard"}},
	{TopicSIPMandates, []string{"sip", "mandate"}},
	{TopicStatements, []string{"statement", "tax"}},
	{TopicWithdrawals, []string{"withdraw", "timeline", "redemption"}},
	{TopicAccountChanges, []string{"nominee", "account change", "profile"}},
}

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var (
	rescheduleKeywords   = []string{"reschedule", "move my", "change my time", "change slot"}
	cancelKeywords       = []string{"cancel", "call off", "delete booking"}
	prepareKeywords      = []string{"prepare", "what should i bring", "what to prepare"}
	availabilityKeywords = []string{"availability", "available", "check availability", "any slots"}
	bookKeywords         = []string{"book", "appointment", "schedule"}
)

// ParseFallback is the offline intent+slot parser used when the extraction
// service is unavailable or unparseable. It is pure: the same text and
// midBooking flag always produce the same result.
//
// midBooking is true when any booking sub-state field (topic, day, time) is
// already set on the live conversation; it keeps a started booking from
// regressing to the menu when the caller answers a slot question tersely.
func ParseFallback(text string, midBooking bool) Result {
	t := strings.ToLower(text)

	var topic string
	for _, rule := range topicRules {
		if containsAny(t, rule.keywords) {
			topic = string(rule.topic)
			break
		}
	}

	var dayPreference string
	switch {
	case strings.Contains(t, "tomorrow"):
		dayPreference = "tomorrow"
	case strings.Contains(t, "today"):
		dayPreference = "today"
	default:
		for _, d := range weekdays {
			if strings.Contains(t, d) {
				dayPreference = d
				break
			}
		}
	}

	var timePreference string
	switch {
	case strings.Contains(t, "morning"):
		timePreference = "morning"
	case strings.Contains(t, "afternoon"):
		timePreference = "afternoon"
	case strings.Contains(t, "evening"), strings.Contains(t, "night"):
		timePreference = "evening"
	}

	var intent Intent
	switch {
	case containsAny(t, rescheduleKeywords):
		intent = IntentReschedule
	case containsAny(t, cancelKeywords):
		intent = IntentCancel
	case containsAny(t, prepareKeywords):
		intent = IntentWhatToPrepare
	case containsAny(t, availabilityKeywords):
		intent = IntentCheckAvailability
	case containsAny(t, bookKeywords):
		intent = IntentBookNew
	default:
		intent = IntentOther
	}

	gaveBookingFields := topic != "" || dayPreference != "" || timePreference != ""

	// Escalation: a caller who volunteers booking fields wants to book, even
	// if the intent words alone read as "other" or an availability check.
	if (intent == IntentOther || intent == IntentCheckAvailability) && gaveBookingFields {
		intent = IntentBookNew
	}

	// Continuation: mid-booking answers like "friday" must stay in the flow.
	if intent == IntentOther && midBooking && gaveBookingFields {
		intent = IntentBookNew
	}

	return Result{
		Intent:         intent,
		Topic:          topic,
		DayPreference:  dayPreference,
		TimePreference: timePreference,
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
