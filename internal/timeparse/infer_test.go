package timeparse

import "testing"

// The decision table, enumerated literally. True means legacy
// fractional hours, false means H.MM.
func TestInferLegacyFractionalTable(t *testing.T) {
	testCases := []struct {
		value string
		want  bool
	}{
		// no decimal digits -> H.MM
		{"8", false},
		{"0", false},
		{"12", false},
		{"3.", false},

		// more than two digits -> fractional
		{"1.333", true},
		{"1.75000", true},
		{"0.125", true},

		// exactly two digits, second digit > 5 -> H.MM
		{"1.67", false},
		{"1.46", false},
		{"0.59", false},
		{"2.17", false},

		// exactly two digits, second digit <= 5 -> fractional
		{"1.60", true},
		{"1.75", true},
		{"1.25", true},
		{"0.50", true},
		{"1.15", true},

		// exactly one digit -> fractional
		{"1.5", true},
		{"2.3", true},
		{"0.5", true},
	}

	for _, tc := range testCases {
		if got := InferLegacyFractional(tc.value); got != tc.want {
			t.Errorf("InferLegacyFractional(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
