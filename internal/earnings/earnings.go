// Package earnings holds the pure money math: the gross-to-net
// deduction pipeline, fixed-contract budget tracking and the
// withdrawal balance check. Everything here is synchronous and takes
// fully-materialized inputs; persistence belongs to the caller.
package earnings

import "math"

// Tolerance is the float slack applied to budget and balance checks.
const Tolerance = 0.01

// Deductions is the snapshot of the operator's deduction settings used
// for one computation. Percentages are whole numbers: 10 means 10%.
type Deductions struct {
	ServiceFeePercent float64
	TDSPercent        float64
	GSTPercent        float64
	TransferFeeUSD    float64 // flat, not a percentage
}

// Input describes one unit of billable work. Hourly work carries
// minutes and an hourly rate; fixed-contract milestones carry the
// manual gross amount directly.
type Input struct {
	Minutes    int
	HourlyRate float64

	Fixed          bool
	ManualGrossUSD float64
}

// Breakdown is the full result of the deduction pipeline. It is the
// exact shape snapshotted into a TimeEntry row: once stored it never
// changes, no matter how the live config is edited afterwards.
type Breakdown struct {
	HoursDecimal      float64
	GrossUSD          float64
	ServiceFeeUSD     float64
	TDSUSD            float64
	GSTUSD            float64
	TransferFeeUSD    float64
	DeductionTotalUSD float64
	NetUSD            float64
	NetINR            float64
	ExchangeRate      float64
}

// Compute runs the deduction pipeline in its fixed order:
//
//	service  = gross * serviceFee%
//	tds      = gross * tds%
//	gst      = service * gst%      (GST taxes the service fee, not gross)
//	transfer = flat fee
//	net      = max(0, gross - (service + tds + gst + transfer))
//	netINR   = net * exchangeRate
//
// Missing or garbage config fields count as zero; Compute never fails
// on a half-filled config row.
func Compute(in Input, ded Deductions, exchangeRate float64) Breakdown {
	b := Breakdown{ExchangeRate: sanitize(exchangeRate)}

	if in.Fixed {
		b.GrossUSD = sanitize(in.ManualGrossUSD)
	} else {
		b.HoursDecimal = float64(in.Minutes) / 60
		b.GrossUSD = sanitize(b.HoursDecimal * sanitize(in.HourlyRate))
	}

	b.ServiceFeeUSD = b.GrossUSD * sanitize(ded.ServiceFeePercent) / 100
	b.TDSUSD = b.GrossUSD * sanitize(ded.TDSPercent) / 100
	b.GSTUSD = b.ServiceFeeUSD * sanitize(ded.GSTPercent) / 100
	b.TransferFeeUSD = sanitize(ded.TransferFeeUSD)
	b.DeductionTotalUSD = b.ServiceFeeUSD + b.TDSUSD + b.GSTUSD + b.TransferFeeUSD

	b.NetUSD = b.GrossUSD - b.DeductionTotalUSD
	if b.NetUSD < 0 {
		b.NetUSD = 0
	}
	b.NetINR = b.NetUSD * b.ExchangeRate
	return b
}

// sanitize maps non-finite or negative values to zero so a bad config
// field can never produce a negative component or poison the chain.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// RemainingBudget is how much of a fixed contract is still unbilled:
// the contract total minus the gross already invoiced, floored at 0.
func RemainingBudget(contractTotalUSD, paidToDateUSD float64) float64 {
	remaining := contractTotalUSD - paidToDateUSD
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CheckBudget validates a new milestone amount against the remaining
// contract budget. Advisory: the storage layer does not enforce it.
func CheckBudget(requestedUSD, remainingUSD float64) error {
	if requestedUSD > remainingUSD+Tolerance {
		return &BudgetExceededError{RequestedUSD: requestedUSD, RemainingUSD: remainingUSD}
	}
	return nil
}

// AvailableBalance is accumulated net earnings minus what has already
// been withdrawn, floored at 0.
func AvailableBalance(totalNetUSD, totalWithdrawnUSD float64) float64 {
	available := totalNetUSD - totalWithdrawnUSD
	if available < 0 {
		return 0
	}
	return available
}

// CheckWithdrawal validates a withdrawal request against the available
// balance.
func CheckWithdrawal(requestedUSD, availableUSD float64) error {
	if requestedUSD > availableUSD+Tolerance {
		return &InsufficientFundsError{RequestedUSD: requestedUSD, AvailableUSD: availableUSD}
	}
	return nil
}
