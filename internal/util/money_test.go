package util

import "testing"

func TestMoney(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{45.8333333, "45.83"},
		{39.389166667, "39.39"},
		{3308.693, "3308.69"},
		{0.005, "0.01"},
		{1000, "1000.00"},
	}

	for _, tc := range testCases {
		if got := Money(tc.in); got != tc.want {
			t.Errorf("Money(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
