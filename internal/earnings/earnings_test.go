package earnings

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestComputeHourlyEndToEnd(t *testing.T) {
	// $25/hr, service fee 10%, TDS 0.1%, GST 18% (on the service fee),
	// flat $0.99 transfer, 84 INR per USD, 110 minutes ("1.50" H.MM).
	ded := Deductions{
		ServiceFeePercent: 10,
		TDSPercent:        0.1,
		GSTPercent:        18,
		TransferFeeUSD:    0.99,
	}
	b := Compute(Input{Minutes: 110, HourlyRate: 25}, ded, 84)

	steps := []struct {
		name string
		got  float64
		want float64
	}{
		{"HoursDecimal", b.HoursDecimal, 110.0 / 60},
		{"GrossUSD", b.GrossUSD, 45.833333333},
		{"ServiceFeeUSD", b.ServiceFeeUSD, 4.583333333},
		{"TDSUSD", b.TDSUSD, 0.045833333},
		{"GSTUSD", b.GSTUSD, 0.825},
		{"TransferFeeUSD", b.TransferFeeUSD, 0.99},
		{"DeductionTotalUSD", b.DeductionTotalUSD, 6.444166667},
		{"NetUSD", b.NetUSD, 39.389166667},
		{"NetINR", b.NetINR, 3308.69},
	}
	for _, s := range steps {
		if !almostEqual(s.got, s.want, 0.01) {
			t.Errorf("%s = %.6f, want %.6f", s.name, s.got, s.want)
		}
	}
	if !almostEqual(b.NetINR, b.NetUSD*84, epsilon) {
		t.Errorf("NetINR = %.6f, want NetUSD*84 = %.6f", b.NetINR, b.NetUSD*84)
	}
}

func TestComputeFixedMilestone(t *testing.T) {
	ded := Deductions{ServiceFeePercent: 10, GSTPercent: 18, TransferFeeUSD: 1}
	b := Compute(Input{Fixed: true, ManualGrossUSD: 500}, ded, 83.5)

	if b.GrossUSD != 500 {
		t.Fatalf("GrossUSD = %v, want the manual amount 500", b.GrossUSD)
	}
	if b.HoursDecimal != 0 {
		t.Errorf("HoursDecimal = %v, want 0 for a milestone", b.HoursDecimal)
	}
	wantTotal := 50 + 0.0 + 9 + 1 // service + tds + gst-on-service + transfer
	if !almostEqual(b.DeductionTotalUSD, wantTotal, epsilon) {
		t.Errorf("DeductionTotalUSD = %v, want %v", b.DeductionTotalUSD, wantTotal)
	}
	if !almostEqual(b.NetUSD, 440, epsilon) {
		t.Errorf("NetUSD = %v, want 440", b.NetUSD)
	}
}

func TestComputeDeductionIdentity(t *testing.T) {
	cases := []struct {
		in  Input
		ded Deductions
		fx  float64
	}{
		{Input{Minutes: 60, HourlyRate: 10}, Deductions{}, 0},
		{Input{Minutes: 90, HourlyRate: 33.33}, Deductions{ServiceFeePercent: 20, TDSPercent: 1, GSTPercent: 18, TransferFeeUSD: 2.5}, 82.17},
		{Input{Fixed: true, ManualGrossUSD: 1234.56}, Deductions{ServiceFeePercent: 5, TDSPercent: 0.1, GSTPercent: 28, TransferFeeUSD: 0.99}, 84},
		{Input{Minutes: 1, HourlyRate: 100}, Deductions{ServiceFeePercent: 100, GSTPercent: 100, TransferFeeUSD: 50}, 84},
	}

	for _, tc := range cases {
		b := Compute(tc.in, tc.ded, tc.fx)
		sum := b.ServiceFeeUSD + b.TDSUSD + b.GSTUSD + b.TransferFeeUSD
		if !almostEqual(b.DeductionTotalUSD, sum, epsilon) {
			t.Errorf("DeductionTotalUSD = %v, want component sum %v", b.DeductionTotalUSD, sum)
		}
		wantNet := b.GrossUSD - b.DeductionTotalUSD
		if wantNet < 0 {
			wantNet = 0
		}
		if !almostEqual(b.NetUSD, wantNet, epsilon) {
			t.Errorf("NetUSD = %v, want max(0, gross-total) = %v", b.NetUSD, wantNet)
		}
		if b.NetUSD < 0 || b.GrossUSD < 0 || b.DeductionTotalUSD < 0 {
			t.Errorf("negative component in breakdown %+v", b)
		}
	}
}

func TestComputeNetFlooredAtZero(t *testing.T) {
	// Deductions exceed gross: a tiny entry with a big flat transfer fee.
	b := Compute(Input{Minutes: 6, HourlyRate: 5}, Deductions{TransferFeeUSD: 10}, 84)
	if b.NetUSD != 0 {
		t.Errorf("NetUSD = %v, want 0 when deductions exceed gross", b.NetUSD)
	}
	if b.NetINR != 0 {
		t.Errorf("NetINR = %v, want 0", b.NetINR)
	}
}

func TestComputeDefensiveDefaults(t *testing.T) {
	// Garbage config fields count as zero instead of failing or going
	// negative.
	ded := Deductions{
		ServiceFeePercent: math.NaN(),
		TDSPercent:        -3,
		GSTPercent:        math.Inf(1),
		TransferFeeUSD:    -0.99,
	}
	b := Compute(Input{Minutes: 120, HourlyRate: 50}, ded, 84)
	if b.DeductionTotalUSD != 0 {
		t.Errorf("DeductionTotalUSD = %v, want 0 with garbage config", b.DeductionTotalUSD)
	}
	if !almostEqual(b.NetUSD, 100, epsilon) {
		t.Errorf("NetUSD = %v, want gross 100", b.NetUSD)
	}
}

func TestRemainingBudget(t *testing.T) {
	if got := RemainingBudget(1000, 400); got != 600 {
		t.Errorf("RemainingBudget(1000, 400) = %v, want 600", got)
	}
	if got := RemainingBudget(1000, 1200); got != 0 {
		t.Errorf("RemainingBudget(1000, 1200) = %v, want 0", got)
	}
}

func TestCheckBudgetMonotonicity(t *testing.T) {
	const contract = 1000.0
	paid := 0.0
	for _, amount := range []float64{250, 250, 300} {
		remaining := RemainingBudget(contract, paid)
		if err := CheckBudget(amount, remaining); err != nil {
			t.Fatalf("CheckBudget(%v, %v) error = %v, want nil", amount, remaining, err)
		}
		paid += amount
	}

	remaining := RemainingBudget(contract, paid)
	if !almostEqual(remaining, 200, epsilon) {
		t.Fatalf("remaining = %v, want 200", remaining)
	}

	err := CheckBudget(remaining+0.02, remaining)
	var exceeded *BudgetExceededError
	if !errors.As(err, &exceeded) {
		t.Fatalf("CheckBudget over budget error = %v, want *BudgetExceededError", err)
	}
	if !almostEqual(exceeded.RemainingUSD, 200, epsilon) {
		t.Errorf("BudgetExceededError.RemainingUSD = %v, want 200", exceeded.RemainingUSD)
	}

	// Within the float tolerance the request still passes.
	if err := CheckBudget(remaining+0.005, remaining); err != nil {
		t.Errorf("CheckBudget within tolerance error = %v, want nil", err)
	}
}

func TestAvailableBalanceNeverNegative(t *testing.T) {
	if got := AvailableBalance(100, 250); got != 0 {
		t.Errorf("AvailableBalance(100, 250) = %v, want 0", got)
	}
	if got := AvailableBalance(250, 100); got != 150 {
		t.Errorf("AvailableBalance(250, 100) = %v, want 150", got)
	}
}

func TestCheckWithdrawal(t *testing.T) {
	if err := CheckWithdrawal(150, 150); err != nil {
		t.Errorf("CheckWithdrawal(150, 150) error = %v, want nil", err)
	}
	if err := CheckWithdrawal(150.005, 150); err != nil {
		t.Errorf("CheckWithdrawal within tolerance error = %v, want nil", err)
	}

	err := CheckWithdrawal(150.02, 150)
	var insufficient *InsufficientFundsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("CheckWithdrawal over balance error = %v, want *InsufficientFundsError", err)
	}
	if insufficient.AvailableUSD != 150 {
		t.Errorf("InsufficientFundsError.AvailableUSD = %v, want 150", insufficient.AvailableUSD)
	}
}
