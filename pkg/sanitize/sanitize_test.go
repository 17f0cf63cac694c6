package sanitize

import "testing"

func TestDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain digits", "1200", "1200"},
		{"currency noise", "$1,200.00", "120000"},
		{"letters stripped", "12ab00", "1200"},
		{"sign stripped", "-42", "42"},
		{"whitespace stripped", " 1 2 3 ", "123"},
		{"no digits", "abc", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Digits(tt.input); got != tt.expected {
				t.Errorf("Digits(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"plain", "1200", 1200},
		{"grouped", "1,200", 1200},
		{"currency symbol", "$500", 500},
		{"negative coerced positive", "-300", 300},
		{"malformed", "n/a", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Amount(tt.input); got != tt.expected {
				t.Errorf("Amount(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"integer", "12", 12},
		{"decimal", "12.5", 12.5},
		{"with symbol", "12.5 %", 12.5},
		{"second dot ignored", "1.2.5", 1.25},
		{"negative clamped", "-3", 3},
		{"only dot", ".", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.input); got != tt.expected {
				t.Errorf("Percent(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMonthCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"plain", "12", 12},
		{"zero clamped", "0", 1},
		{"noise stripped", "24 months", 24},
		{"malformed", "abc", 1},
		{"empty", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthCount(tt.input); got != tt.expected {
				t.Errorf("MonthCount(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}
