package pii

import "testing"

func TestScanDetects(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantReason string
	}{
		{"plain email", "reach me at ravi.kumar@example.com please", "email"},
		{"uppercase email", "RAVI@EXAMPLE.ORG", "email"},
		{"phone with plus", "call me on +91 98765 43210", "phone"},
		{"phone with dashes", "my number is 98765-43210-1", "phone"},
		{"bare 10 digits", "it is 9876543210 ok", "digits_10"},
		{"bare 12 digits", "aadhaar 123456789012", "digits_12"},
		{"account phrasing", "my account number is 4451", "account_number"},
		{"account with words between", "the account I mentioned ends in 9921", "account_number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, found := ScanReason(tt.text)
			if !found {
				t.Fatalf("expected PII detected in %q", tt.text)
			}
			if reason != tt.wantReason {
				t.Fatalf("expected reason %s, got %s", tt.wantReason, reason)
			}
		})
	}
}

func TestScanClean(t *testing.T) {
	clean := []string{
		"",
		"I want to book a KYC appointment tomorrow morning",
		"option 2 please",
		"cancel NL-A742",
		"my SIP mandate failed 3 times",
		"what should I prepare for tax docs",
	}
	for _, text := range clean {
		if Scan(text) {
			t.Fatalf("expected no PII in %q", text)
		}
	}
}
