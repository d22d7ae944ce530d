package factcheck

import "testing"

func TestContainsHedging(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"speculative sentence", "I think he probably works in Cape Town", true},
		{"clean sentence", "He works in Cape Town", false},
		{"might be", "He might be available for freelance work", true},
		{"perhaps", "Perhaps you could email him", true},
		{"i believe uppercase", "I BELIEVE he studied at CPUT", true},
		{"seems to", "He seems to enjoy design", true},
		{"appears to", "Cole appears to favor React", true},
		{"could be", "That could be one of his projects", true},
		{"i assume", "I assume he knows SQL", true},
		{"presumably", "Presumably he graduated in 2024", true},
		{"may have", "He may have used Laravel", true},
		{"approximately", "He has approximately three years of experience", true},
		{"no ellipsis", "Cole studied at CPUT", false},
		{"truncated answer", "Cole's main skills are HTML, CSS and...", true},
		{"unicode ellipsis", "His experience includes…", true},
		{"empty text", "", false},
		{"factual with numbers", "Cole completed his diploma at CPUT between 2022 and 2024.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsHedging(tt.text); got != tt.want {
				t.Errorf("ContainsHedging(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
