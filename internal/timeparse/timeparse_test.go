package timeparse

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestParseWholeHoursRoundTrip(t *testing.T) {
	// Integers carry no decimal digits, so they route to H.MM with a
	// zero minute component: n always means n*60 minutes.
	for _, n := range []int{0, 1, 2, 8, 12, 40} {
		got, err := Parse(n, Options{})
		if err != nil {
			t.Fatalf("Parse(%d) error = %v, want nil", n, err)
		}
		if got.Minutes != n*60 {
			t.Errorf("Parse(%d).Minutes = %d, want %d", n, got.Minutes, n*60)
		}
		if got.Format != FormatHM {
			t.Errorf("Parse(%d).Format = %q, want %q", n, got.Format, FormatHM)
		}
		if got.UsedLegacyFractional {
			t.Errorf("Parse(%d) used legacy inference, want H.MM route", n)
		}
	}
}

func TestParseHMLiteralMinuteSum(t *testing.T) {
	testCases := []struct {
		value        string
		wantMinutes  int
		wantOverflow bool
	}{
		{"1.5", 110, false},  // 1h + "50"
		{"1.50", 110, false}, // same two digits spelled out
		{"1.30", 90, false},
		{"1.05", 65, false},
		{"0.45", 45, false},
		{"2.00", 120, false},
		{"1.75", 135, true}, // 1h + 75m, the overflow flagged but not rejected
		{"1.99", 159, true},
		{"0.60", 60, true},
	}

	for _, tc := range testCases {
		got, err := Parse(tc.value, Options{Format: FormatHM})
		if err != nil {
			t.Fatalf("Parse(%q, hm) error = %v, want nil", tc.value, err)
		}
		if got.Minutes != tc.wantMinutes {
			t.Errorf("Parse(%q, hm).Minutes = %d, want %d", tc.value, got.Minutes, tc.wantMinutes)
		}
		if got.HadOverflow != tc.wantOverflow {
			t.Errorf("Parse(%q, hm).HadOverflow = %v, want %v", tc.value, got.HadOverflow, tc.wantOverflow)
		}
	}
}

func TestParseFractionalHours(t *testing.T) {
	testCases := []struct {
		value       any
		wantMinutes int
	}{
		{1.5, 90},
		{"1.5", 90},
		{0.25, 15},
		{1.333, 80},  // round(79.98)
		{2.0, 120},
		{"0.01", 1},  // round(0.6)
	}

	for _, tc := range testCases {
		got, err := Parse(tc.value, Options{Format: FormatFractional})
		if err != nil {
			t.Fatalf("Parse(%v, fractional) error = %v, want nil", tc.value, err)
		}
		if got.Minutes != tc.wantMinutes {
			t.Errorf("Parse(%v, fractional).Minutes = %d, want %d", tc.value, got.Minutes, tc.wantMinutes)
		}
	}
}

func TestParseExplicitFormatSkipsInference(t *testing.T) {
	// "1.5" would infer to fractional (90m); an explicit hm tag wins.
	got, err := Parse("1.5", Options{Format: FormatHM})
	if err != nil {
		t.Fatalf("Parse error = %v, want nil", err)
	}
	if got.Minutes != 110 || got.UsedLegacyFractional {
		t.Errorf("Parse(\"1.5\", hm) = %+v, want 110 minutes without inference", got)
	}
}

func TestParseInferenceDisabledDefaultsToHM(t *testing.T) {
	got, err := Parse("1.5", Options{DisableInference: true})
	if err != nil {
		t.Fatalf("Parse error = %v, want nil", err)
	}
	if got.Minutes != 110 || got.Format != FormatHM {
		t.Errorf("Parse(\"1.5\", no inference) = %+v, want 110 minutes via hm", got)
	}
}

func TestParseInferredFractional(t *testing.T) {
	got, err := Parse("1.5", Options{})
	if err != nil {
		t.Fatalf("Parse error = %v, want nil", err)
	}
	if got.Minutes != 90 || got.Format != FormatFractional || !got.UsedLegacyFractional {
		t.Errorf("Parse(\"1.5\") = %+v, want 90 minutes via inferred fractional", got)
	}
}

func TestParsePreservesSource(t *testing.T) {
	got, err := Parse("1.50", Options{Format: FormatHM})
	if err != nil {
		t.Fatalf("Parse error = %v, want nil", err)
	}
	if got.Source != "1.50" {
		t.Errorf("Parse(\"1.50\").Source = %q, want the verbatim input", got.Source)
	}

	got, err = Parse(json.Number("1.75"), Options{Format: FormatHM})
	if err != nil {
		t.Fatalf("Parse error = %v, want nil", err)
	}
	if got.Source != "1.75" {
		t.Errorf("Parse(json.Number).Source = %q, want \"1.75\"", got.Source)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	testCases := []any{
		"", "  ", "abc", "1.5h", "-1", "-0.5", -2.0,
		math.NaN(), math.Inf(1), nil, []string{"1.5"},
	}

	for _, value := range testCases {
		_, err := Parse(value, Options{})
		if err == nil {
			t.Errorf("Parse(%v) error = nil, want InvalidInputError", value)
			continue
		}
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Errorf("Parse(%v) error = %v, want *InvalidInputError", value, err)
		}
	}
}

// ParseFloat accepts exponent and hex-float spellings; those must be
// rejected outright, not quietly parsed as zero minutes.
func TestParseRejectsNonPlainDecimal(t *testing.T) {
	testCases := []string{
		"1e2", "1E2", "1.5e0", "0x1p1", "0x10",
		"1.2.3", ".", "+",
		"99999999999999999999", // 20-digit hour part
		"10001",                // just over the hour cap
	}

	for _, value := range testCases {
		_, err := Parse(value, Options{})
		if err == nil {
			t.Errorf("Parse(%v) error = nil, want InvalidInputError", value)
			continue
		}
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Errorf("Parse(%v) error = %v, want *InvalidInputError", value, err)
		}
	}
}
