package dialogue

import "github.com/kaushiksr22/advisor-voice-agent/internal/extraction"

// prepGuides holds the numbered what-to-prepare tips per topic.
var prepGuides = map[extraction.Topic][]string{
	extraction.TopicKYCOnboarding: {
		"Have your PAN and address proof handy (as applicable).",
		"Be ready to confirm your onboarding status and any KYC error message you saw.",
	},
	extraction.TopicSIPMandates: {
		"Know your bank name and mandate status (created/pending/failed).",
		"Have approximate SIP amount and frequency you're trying to set up.",
	},
	extraction.TopicStatements: {
		"Mention which period you need (FY year range).",
		"Clarify whether you need statement, capital gains, or tax certificate.",
	},
	extraction.TopicWithdrawals: {
		"Share the date you requested withdrawal and current status.",
		"Be ready to confirm the expected timeline you were told (if any).",
	},
	extraction.TopicAccountChanges: {
		"Know what change you want: address, bank, nominee, or other profile detail.",
		"Be ready to confirm whether you already attempted the change in-app.",
	},
}
