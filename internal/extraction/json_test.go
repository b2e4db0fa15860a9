package extraction

import "testing"

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantOK     bool
		wantIntent string
	}{
		{
			name:       "bare object",
			text:       `{"intent": "book_new", "topic": null, "day_preference": null, "time_preference": null}`,
			wantOK:     true,
			wantIntent: "book_new",
		},
		{
			name:       "fenced object",
			text:       "```json\n{\"intent\": \"cancel\", \"topic\": null, \"day_preference\": null, \"time_preference\": null}\n```",
			wantOK:     true,
			wantIntent: "cancel",
		},
		{
			name:       "surrounding prose",
			text:       `Sure! Here is the JSON you asked for: {"intent": "other", "topic": "KYC/Onboarding", "day_preference": "tomorrow", "time_preference": "morning"} hope that helps`,
			wantOK:     true,
			wantIntent: "other",
		},
		{
			name:       "nested braces",
			text:       `{"intent": "other", "topic": null, "day_preference": null, "time_preference": null, "extra": {"a": 1}}`,
			wantOK:     true,
			wantIntent: "other",
		},
		{
			name:       "brace inside string",
			text:       `{"intent": "other", "topic": "has } brace", "day_preference": null, "time_preference": null}`,
			wantOK:     true,
			wantIntent: "other",
		},
		{name: "no object", text: "sorry, I cannot help with that", wantOK: false},
		{name: "unbalanced", text: `{"intent": "book_new"`, wantOK: false},
		{name: "empty", text: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, ok := firstJSONObject(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			if got := stringField(obj, "intent"); got != tt.wantIntent {
				t.Fatalf("expected intent %q, got %q", tt.wantIntent, got)
			}
		})
	}
}

func TestStringFieldAbsentAndNull(t *testing.T) {
	obj, ok := firstJSONObject(`{"intent": "other", "topic": null}`)
	if !ok {
		t.Fatal("expected object parsed")
	}
	if got := stringField(obj, "topic"); got != "" {
		t.Fatalf("expected null topic to read as empty, got %q", got)
	}
	if got := stringField(obj, "day_preference"); got != "" {
		t.Fatalf("expected missing key to read as empty, got %q", got)
	}
}
