package dialogue

import (
	"fmt"
	"strings"

	"github.com/kaushiksr22/advisor-voice-agent/internal/extraction"
	"github.com/kaushiksr22/advisor-voice-agent/internal/schedule"
)

// Fixed reply templates. The agent never generates free text.
const (
	replyDidNotCatch = "Sorry, I didn't catch that. Please repeat."

	replyDisclaimer = "Hi, this is the Advisor Appointment Scheduler. " +
		"This call is for informational support only and not investment advice. " +
		"Would you like to book a new slot, reschedule, cancel, check availability, or ask what to prepare?"

	replyMenu = "I can help you book, reschedule, cancel, check availability, or tell you what to prepare. " +
		"What would you like to do?"

	replyAskCode = "Sure. Please tell me your booking code, for example NL-A742."

	replyAskDayForBooking = "What day works best for you? For example tomorrow, Friday, or next week."

	replyAskDayForCheck = "What day should I check for? For example tomorrow or Friday."

	replyChooseOption = "Please say option 1 or option 2."

	replyChooseAgain = "No problem. Do you prefer option 1 or option 2?"

	replyAllSet = "All set. Do you need anything else?"
)

// topicChoices renders the closed topic set as a spoken choice list.
func topicChoices() string {
	topics := extraction.Topics()
	parts := make([]string, len(topics))
	for i, topic := range topics {
		parts[i] = string(topic)
	}
	return strings.Join(parts[:len(parts)-1], ", ") + ", or " + parts[len(parts)-1]
}

func replyPII(link string) string {
	return fmt.Sprintf(
		"For security, please don't share personal details on this call. "+
			"Use this secure link to add contact details: %s. "+
			"Now, what topic is this about?", link)
}

func replyNoAdvice() string {
	return fmt.Sprintf(
		"I can't provide investment advice or recommendations. "+
			"I can help with account processes or book an informational advisor session. "+
			"Which topic is this for: %s?", topicChoices())
}

func replyAskTopic() string {
	return fmt.Sprintf("Which topic is this for: %s?", topicChoices())
}

func replyAskTopicForPrep() string {
	return fmt.Sprintf("Sure, which topic: %s?", topicChoices())
}

func replyCancelled(code string) string {
	return fmt.Sprintf("Done. I've noted a cancellation request for booking code %s.", code)
}

func replyRescheduleCode(code, tz string) string {
	return fmt.Sprintf("Got it. Booking code %s. What topic is this for, and what day and time preference in %s?", code, tz)
}

func replyPrepTips(topic string, tips []string) string {
	numbered := make([]string, len(tips))
	for i, tip := range tips {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, tip)
	}
	return fmt.Sprintf("For %s, here's what to prepare: %s", topic, strings.Join(numbered, " "))
}

func replyAskTime(tz string) string {
	return fmt.Sprintf("Do you prefer morning, afternoon, or evening %s?", tz)
}

func replyAskTimeForCheck(tz string) string {
	return fmt.Sprintf("What time preference in %s? Morning, afternoon, or evening?", tz)
}

func replyAvailability(topic, tz string, slots []schedule.Slot) string {
	return fmt.Sprintf("For %s, I see two options in %s. Option 1: %s %s. Option 2: %s %s.",
		topic, tz, slots[0].Start, tz, slots[1].Start, tz)
}

func replyOfferSlots(tz string, slots []schedule.Slot) string {
	return fmt.Sprintf("I have two options in %s. Option 1: %s %s. Option 2: %s %s. Which option do you prefer, 1 or 2?",
		tz, slots[0].Start, tz, slots[1].Start, tz)
}

func replyConfirmSlot(tz, topic string, slot schedule.Slot) string {
	return fmt.Sprintf("Just to confirm in %s: %s on %s %s. Is that correct? Say yes or no.",
		tz, topic, slot.Start, tz)
}

func replyBooked(code, tz, topic string, slot schedule.Slot, link string) string {
	return fmt.Sprintf("Great. Your booking code is %s. Your tentative slot is %s %s for %s. "+
		"For security, I can't collect personal details on this call. "+
		"Please use this secure link to finish details: %s.",
		code, slot.Start, tz, topic, link)
}

func replyWaitlisted(topic, code, link string) string {
	return fmt.Sprintf("I don't see a matching slot right now. I've placed you on a waitlist for %s. "+
		"Your booking code is %s. "+
		"Please use this secure link to share contact details so we can notify you: %s.",
		topic, code, link)
}
