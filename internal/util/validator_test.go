package util

import "testing"

func TestValidateRate_Positive(t *testing.T) {
	testCases := []float64{0.01, 25, 100.5, 9999999.99}

	for _, rate := range testCases {
		err := ValidateRate(rate)
		if err != nil {
			t.Errorf("ValidateRate(%f) error = %v, want nil", rate, err)
		}
	}
}

func TestValidateRate_Invalid(t *testing.T) {
	testCases := []float64{0, -0.01, -100, 10000000}

	for _, rate := range testCases {
		err := ValidateRate(rate)
		if err == nil {
			t.Errorf("ValidateRate(%f) error = nil, want error", rate)
		}
	}
}

func TestValidateDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31",
		"2025-06-15",
	}

	for _, date := range testCases {
		if _, err := ValidateDate(date); err != nil {
			t.Errorf("ValidateDate(%q) error = %v, want nil", date, err)
		}
	}
}

func TestValidateDate_InvalidFormat(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"2024-1-1",
		"not-a-date",
		"2024-13-01",
		"2024-01-32",
	}

	for _, date := range testCases {
		if _, err := ValidateDate(date); err == nil {
			t.Errorf("ValidateDate(%q) error = nil, want error", date)
		}
	}
}

func TestValidateProjectType(t *testing.T) {
	if err := ValidateProjectType("hourly"); err != nil {
		t.Errorf("ValidateProjectType(hourly) error = %v, want nil", err)
	}
	if err := ValidateProjectType("fixed"); err != nil {
		t.Errorf("ValidateProjectType(fixed) error = %v, want nil", err)
	}
	for _, typ := range []string{"", "milestone", "Hourly"} {
		if err := ValidateProjectType(typ); err == nil {
			t.Errorf("ValidateProjectType(%q) error = nil, want error", typ)
		}
	}
}

func TestValidateColor(t *testing.T) {
	for _, color := range []string{"", "#22c55e", "#FFFFFF"} {
		if err := ValidateColor(color); err != nil {
			t.Errorf("ValidateColor(%q) error = %v, want nil", color, err)
		}
	}
	for _, color := range []string{"red", "#fff", "22c55e", "#22c55e1"} {
		if err := ValidateColor(color); err == nil {
			t.Errorf("ValidateColor(%q) error = nil, want error", color)
		}
	}
}
