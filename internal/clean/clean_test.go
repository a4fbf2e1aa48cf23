package clean

import (
	"testing"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue string
	}{
		{
			name:      "empty string is absent",
			input:     "",
			wantValid: false,
		},
		{
			name:      "not-applicable sentinel is absent",
			input:     "-999",
			wantValid: false,
		},
		{
			name:      "secondary sentinel is absent",
			input:     "-2",
			wantValid: false,
		},
		{
			name:      "literal NULL is absent",
			input:     "NULL",
			wantValid: false,
		},
		{
			name:      "redaction marker is absent",
			input:     "PrivacySuppressed",
			wantValid: false,
		},
		{
			name:      "whitespace-only is absent",
			input:     "   ",
			wantValid: false,
		},
		{
			name:      "padded sentinel is absent",
			input:     " -999 ",
			wantValid: false,
		},
		{
			name:      "regular value passes through",
			input:     "Carnegie Mellon University",
			wantValid: true,
			wantValue: "Carnegie Mellon University",
		},
		{
			name:      "value is trimmed",
			input:     "  15213  ",
			wantValid: true,
			wantValue: "15213",
		},
		{
			name:      "negative number that is not a sentinel passes through",
			input:     "-3",
			wantValid: true,
			wantValue: "-3",
		},
		{
			name:      "lowercase null is not a sentinel",
			input:     "null",
			wantValid: true,
			wantValue: "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Value(tt.input)

			if got.Valid != tt.wantValid {
				t.Errorf("Value(%q).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}

			if got.Valid && got.String != tt.wantValue {
				t.Errorf("Value(%q) = %q, want %q", tt.input, got.String, tt.wantValue)
			}
		})
	}
}

func TestAbsent(t *testing.T) {
	if Absent().Valid {
		t.Error("Absent() should not be a valid value")
	}
}
