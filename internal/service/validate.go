package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
)

// maxTripDays bounds the number of days CreateTrip will generate.
const maxTripDays = 366

// validateTrip enforces business rules common to CreateTrip and UpdateTrip.
//   - Title must be non-empty (whitespace-only titles are rejected).
//   - StartDate and EndDate must be calendar dates, EndDate not before StartDate.
//   - NumberOfPeople must be positive.
//   - Currency must be a three-letter code.
func validateTrip(t domain.Trip) error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	start, err := domain.ParseDate(t.StartDate)
	if err != nil {
		return fmt.Errorf("startDate: %w", err)
	}
	end, err := domain.ParseDate(t.EndDate)
	if err != nil {
		return fmt.Errorf("endDate: %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: endDate must not be before startDate", domain.ErrValidation)
	}
	if err := validateSpan(start, end); err != nil {
		return err
	}
	if t.NumberOfPeople <= 0 {
		return fmt.Errorf("%w: numberOfPeople must be positive", domain.ErrValidation)
	}
	if !validCurrency(t.Currency) {
		return fmt.Errorf("%w: currency must be a three-letter code, got %q", domain.ErrValidation, t.Currency)
	}
	if strings.TrimSpace(t.Timezone) == "" {
		return fmt.Errorf("%w: timezone is required", domain.ErrValidation)
	}
	if !t.CostSettings.SplitMode.Valid() {
		return fmt.Errorf("%w: unknown split mode %q", domain.ErrValidation, t.CostSettings.SplitMode)
	}
	return nil
}

// validateSpan rejects a trip covering more than maxTripDays calendar dates.
func validateSpan(start, end time.Time) error {
	if domain.DaysBetween(start, end) >= maxTripDays {
		return fmt.Errorf("%w: a trip may span at most %d days", domain.ErrValidation, maxTripDays)
	}
	return nil
}

// validateActivity enforces business rules common to AddActivity and
// UpdateActivity.
//   - Title must be non-empty.
//   - Category must be one of the fixed categories.
//   - CostEstimate, if set, must be a finite non-negative number.
//   - TimeStart and TimeEnd, if set, must be "15:04" clock times.
func validateActivity(a domain.Activity) error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("%w: activity title is required", domain.ErrValidation)
	}
	if !a.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, a.Category)
	}
	if c := a.CostEstimate; c != nil && (*c < 0 || math.IsNaN(*c) || math.IsInf(*c, 0)) {
		return fmt.Errorf("%w: costEstimate must be a non-negative number", domain.ErrValidation)
	}
	for _, hm := range []string{a.TimeStart, a.TimeEnd} {
		if hm == "" {
			continue
		}
		if _, err := time.Parse("15:04", hm); err != nil {
			return fmt.Errorf("%w: invalid time %q, want HH:MM", domain.ErrValidation, hm)
		}
	}
	return nil
}

func validCurrency(c string) bool {
	if len(c) != 3 {
		return false
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func normalizeCurrency(c string) string {
	return strings.ToUpper(strings.TrimSpace(c))
}
