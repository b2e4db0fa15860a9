package booking

import (
	"regexp"
	"testing"
)

func TestGenerateCodeFormat(t *testing.T) {
	re := regexp.MustCompile(`^NL-[A-Z0-9]{4}$`)
	for i := 0; i < 200; i++ {
		code := GenerateCode()
		if !re.MatchString(code) {
			t.Fatalf("code %q does not match NL-[A-Z0-9]{4}", code)
		}
	}
}

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     string
		wantOK   bool
	}{
		{"plain", "cancel NL-A742", "NL-A742", true},
		{"lowercase input", "my code is nl-b9k2 thanks", "NL-B9K2", true},
		{"embedded in sentence", "I was given NL-0Z4Q yesterday", "NL-0Z4Q", true},
		{"too short", "code NL-A74", "", false},
		{"too long is not a word match", "code NL-A742X", "", false},
		{"absent", "cancel my booking", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractCode(tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("ExtractCode(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSecureLink(t *testing.T) {
	got := SecureLink("http://localhost:5173/secure", "NL-A742")
	want := "http://localhost:5173/secure?code=NL-A742"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
