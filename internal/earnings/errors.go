package earnings

import (
	"errors"
	"fmt"
)

// ErrMissingConfiguration means the deduction or currency config row
// does not exist yet. The caller must seed settings before logging
// work; the calculator never invents an exchange rate.
var ErrMissingConfiguration = errors.New("deduction or currency configuration missing")

// BudgetExceededError carries the remaining contract budget so the
// caller can show the user how much room is actually left.
type BudgetExceededError struct {
	RequestedUSD float64
	RemainingUSD float64
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("milestone of $%.2f exceeds remaining budget of $%.2f", e.RequestedUSD, e.RemainingUSD)
}

// InsufficientFundsError carries the available balance at the time of
// the failed withdrawal request.
type InsufficientFundsError struct {
	RequestedUSD float64
	AvailableUSD float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("withdrawal of $%.2f exceeds available balance of $%.2f", e.RequestedUSD, e.AvailableUSD)
}
