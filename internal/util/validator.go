package util

import (
	"fmt"
	"regexp"
	"time"

	"github.com/yashkabra143/TimeTrakr/internal/models"
)

// ValidateRate checks an hourly rate or fixed contract total.
func ValidateRate(rate float64) error {
	if rate <= 0 {
		return fmt.Errorf("rate must be positive, got %f", rate)
	}
	if rate >= 10000000 {
		return fmt.Errorf("rate too large, got %f", rate)
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD date string and returns the parsed
// value.
func ValidateDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	return t, nil
}

// ValidateProjectType accepts the two project kinds.
func ValidateProjectType(typ string) error {
	if typ != models.ProjectHourly && typ != models.ProjectFixed {
		return fmt.Errorf("project type must be hourly or fixed, got %q", typ)
	}
	return nil
}

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateColor accepts an empty color or a #rrggbb hex value.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if !colorRe.MatchString(color) {
		return fmt.Errorf("color must look like #rrggbb, got %q", color)
	}
	return nil
}
