package pii

import "regexp"

// piiPattern is a compiled regex with a reason label for logging/metrics.
type piiPattern struct {
	re     *regexp.Regexp
	reason string
}

// Patterns are evaluated in order; the first hit wins. Match presence only is
// reported, never the matched span, so PII is not copied around.
var piiPatterns = []piiPattern{
	{regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`), "email"},
	{regexp.MustCompile(`(?i)\b(?:\+?\d[\d\s-]{8,}\d)\b`), "phone"},
	{regexp.MustCompile(`\b\d{10}\b`), "digits_10"},
	{regexp.MustCompile(`\b\d{12}\b`), "digits_12"},
	{regexp.MustCompile(`(?i)\baccount\b.*\b\d+\b`), "account_number"},
}

// Scan reports whether text appears to contain personal contact or account
// details that must not be collected on the conversational channel.
func Scan(text string) bool {
	_, found := ScanReason(text)
	return found
}

// ScanReason is Scan with the label of the first matching pattern.
func ScanReason(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, p := range piiPatterns {
		if p.re.MatchString(text) {
			return p.reason, true
		}
	}
	return "", false
}
