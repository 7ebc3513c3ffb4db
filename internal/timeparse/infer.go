package timeparse

import "strings"

// InferLegacyFractional decides whether an untagged numeric value
// should be read as legacy fractional hours (true) or H.MM (false),
// from the decimal portion of its string form:
//
//	no decimal digits          -> H.MM (whole hours read the same either way)
//	more than two digits       -> fractional (old clients emitted long tails like 1.333)
//	two digits, second > 5     -> H.MM (e.g. 1.67: ".67" is not a valid fraction pairing)
//	two digits, second <= 5    -> fractional
//	one digit                  -> fractional (the dominant legacy shape, e.g. 1.5)
//
// The ambiguous cases default to fractional on purpose: misreading a
// new H.MM value is recoverable (the user sees a wrong duration and
// retypes it), but reinterpreting years of stored fractional entries
// as H.MM would silently corrupt historical earnings. Do not "fix"
// this bias; callers that know the format pass it explicitly.
func InferLegacyFractional(s string) bool {
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return false
	}
	frac := leadingDigits(s[i+1:])
	switch {
	case len(frac) == 0:
		return false
	case len(frac) > 2:
		return true
	case len(frac) == 2:
		return frac[1] <= '5'
	default: // one digit
		return true
	}
}
