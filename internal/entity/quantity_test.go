package entity

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"quantity with unit", "500 kg", 500},
		{"currency with comma grouping", "₹5,000", 5000},
		{"decimal quantity", "12.5 quintal", 12.5},
		{"bare number", "200", 200},
		{"number embedded in text", "approx 40 bags", 40},
		{"no number at all", "a few sacks", 0},
		{"empty string", "", 0},
		{"zero", "0 kg", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.input); got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"quantity with unit", "500 kg", "kg"},
		{"unit without space", "500kg", "kg"},
		{"quintal", "12.5 quintal", "quintal"},
		{"currency only falls back to default", "₹5,000", "kg"},
		{"empty string falls back to default", "", "kg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseUnit(tt.input); got != tt.want {
				t.Errorf("ParseUnit(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		unit   string
		want   string
	}{
		{"whole amount", 300, "kg", "300 kg"},
		{"zero amount", 0, "kg", "0 kg"},
		{"fractional amount", 12.5, "quintal", "12.5 quintal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatQuantity(tt.amount, tt.unit); got != tt.want {
				t.Errorf("FormatQuantity(%v, %q) = %q, want %q", tt.amount, tt.unit, got, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	// a decrement computed from parsed parts must re-parse to the same value
	quantity := FormatQuantity(ParseAmount("500 kg")-200, ParseUnit("500 kg"))
	if quantity != "300 kg" {
		t.Fatalf("decremented quantity = %q, want %q", quantity, "300 kg")
	}
	if ParseAmount(quantity) != 300 {
		t.Fatalf("re-parsed amount = %v, want 300", ParseAmount(quantity))
	}
}
