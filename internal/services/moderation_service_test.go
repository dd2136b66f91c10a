package services

import "testing"

func TestFilterContent(t *testing.T) {
	ms := NewModerationService()

	tests := []struct {
		name       string
		text       string
		wantClean  bool
		wantReason string
	}{
		{"plain text passes", "feeling good today", true, ""},
		{"empty text passes", "", true, ""},
		{"banned word", "this is bullshit", false, "inappropriate_language"},
		{"banned word case insensitive", "SPAM alert", false, "inappropriate_language"},
		{"banned word inside another word passes", "grasshopper", true, ""},
		{"url blocked", "check https://example.com now", false, "url_not_allowed"},
		{"www url blocked", "visit www.example.com today", false, "url_not_allowed"},
		{"email blocked", "mail me at a@b.co", false, "contact_info_not_allowed"},
		{"phone blocked", "call 555-123-4567", false, "contact_info_not_allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, reason := ms.FilterContent(tt.text)
			if clean != tt.wantClean || reason != tt.wantReason {
				t.Errorf("FilterContent(%q) = (%v, %q), want (%v, %q)",
					tt.text, clean, reason, tt.wantClean, tt.wantReason)
			}
		})
	}
}
