package validation

import (
	"strings"
	"testing"
)

func TestValidateMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"plain message", "what skills does he have", true},
		{"empty string", "", false},
		{"whitespace only", "   \t\n  ", false},
		{"single char", "?", true},
		{"at length bound", strings.Repeat("a", MaxMessageLength), true},
		{"over length bound", strings.Repeat("a", MaxMessageLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateMessage(tt.message); got != tt.want {
				t.Errorf("ValidateMessage(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNormalizeMessage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tell Me About Cole", "tell me about cole"},
		{"  download   CV  ", "download cv"},
		{"WORK\tEXPERIENCE", "work experience"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeMessage(tt.in); got != tt.want {
			t.Errorf("NormalizeMessage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
