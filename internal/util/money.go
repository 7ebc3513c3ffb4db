package util

import "github.com/shopspring/decimal"

// Money renders a USD/INR amount with exactly two decimal places for
// responses and exports. Internal math stays float64; only the
// display boundary is rounded.
func Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
