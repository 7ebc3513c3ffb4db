// Package timeparse converts raw user-typed time values into canonical
// minute counts.
//
// The product changed its time-input convention partway through its
// life: old entries were typed as fractional decimal hours (1.5 means
// 90 minutes), newer entries use H.MM where the digits after the
// decimal point are literal minutes (1.5 means 1h50m, 110 minutes).
// Both conventions coexist in stored data, so untagged values go
// through a heuristic (see infer.go) that is deliberately biased
// toward the legacy fractional reading. Callers that know the real
// format must say so via Options.Format.
package timeparse

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format identifies which parsing rule produced a minute count.
type Format string

const (
	// FormatHM reads the decimal digits as literal minutes: 1.30 = 1h30m.
	FormatHM Format = "hm"
	// FormatFractional reads the whole value as decimal hours: 1.5 = 90m.
	FormatFractional Format = "fractional"
)

// Options controls how an ambiguous value is interpreted.
type Options struct {
	// Format, when set, is authoritative. No inference is attempted.
	Format Format
	// DisableInference skips the legacy heuristic for untagged values;
	// they are then read as H.MM, the current convention.
	DisableInference bool
}

// Parsed is the canonical result of interpreting a time value.
type Parsed struct {
	Minutes              int
	Format               Format
	UsedLegacyFractional bool
	// HadOverflow is set when an H.MM minute component is 60 or more
	// (e.g. "1.75" = 1h + 75m = 135 minutes). The value is accepted
	// and stored as the literal sum.
	HadOverflow bool
	// Source preserves the caller's value verbatim for audit.
	Source string
}

// InvalidInputError rejects values that are not plain non-negative
// decimal numbers. Bad input is never silently coerced to zero.
type InvalidInputError struct {
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid time input %q: %s", e.Value, e.Reason)
}

// Parse interprets value (a string, json.Number or numeric type) as a
// time entry and returns the canonical minute count.
func Parse(value any, opts Options) (Parsed, error) {
	s, err := stringify(value)
	if err != nil {
		return Parsed{}, err
	}

	if !plainDecimal(s) {
		return Parsed{}, &InvalidInputError{Value: s, Reason: "not a plain decimal number"}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Parsed{}, &InvalidInputError{Value: s, Reason: "not a number"}
	}
	if f > maxHours {
		return Parsed{}, &InvalidInputError{Value: s, Reason: "too large"}
	}

	p := Parsed{Source: s}
	switch {
	case opts.Format == FormatHM:
		p.Format = FormatHM
	case opts.Format == FormatFractional:
		p.Format = FormatFractional
	case opts.Format != "":
		return Parsed{}, &InvalidInputError{Value: s, Reason: fmt.Sprintf("unknown format %q", opts.Format)}
	case !opts.DisableInference && InferLegacyFractional(s):
		p.Format = FormatFractional
		p.UsedLegacyFractional = true
	default:
		p.Format = FormatHM
	}

	switch p.Format {
	case FormatFractional:
		p.Minutes = int(math.Round(f * 60))
	case FormatHM:
		hours, mm := splitHM(s)
		p.Minutes = hours*60 + mm
		p.HadOverflow = mm >= 60
	}
	return p, nil
}

// maxHours bounds accepted values. No real entry approaches it, and
// the cap keeps the digit strings splitHM reads within int range.
const maxHours = 10000

// plainDecimal reports whether s is digits with at most one dot and an
// optional leading +. ParseFloat alone is too permissive: it accepts
// exponent and hex-float notation ("1e2", "0x1p1"), which splitHM
// would then read as zero minutes without complaint.
func plainDecimal(s string) bool {
	s = strings.TrimPrefix(s, "+")
	dot := false
	digits := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

// splitHM reads the integer part as whole hours and the first two
// decimal digits as a raw minute count. A single decimal digit is
// right-padded with a zero ("1.5" reads as 1h50m). Minutes of 60 or
// more are kept as-is; the caller sees them via HadOverflow.
func splitHM(s string) (hours, minutes int) {
	s = strings.TrimPrefix(s, "+")
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i+1:]
	}
	if intPart != "" {
		hours, _ = strconv.Atoi(intPart)
	}

	digits := leadingDigits(frac)
	if len(digits) > 2 {
		digits = digits[:2]
	}
	if len(digits) == 1 {
		digits += "0"
	}
	if digits != "" {
		minutes, _ = strconv.Atoi(digits)
	}
	return hours, minutes
}

func leadingDigits(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return s[:i]
		}
	}
	return s
}

func stringify(value any) (string, error) {
	switch v := value.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return "", &InvalidInputError{Value: v, Reason: "empty"}
		}
		return s, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case nil:
		return "", &InvalidInputError{Value: "", Reason: "missing"}
	default:
		return "", &InvalidInputError{Value: fmt.Sprintf("%v", value), Reason: "unsupported type"}
	}
}
