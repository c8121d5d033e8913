package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrStartDateRequired  = errors.New("start date is required")
	ErrStartDateTooEarly  = errors.New("start date must be tomorrow or later")
	ErrEndBeforeStart     = errors.New("end date must not be before start date")
	ErrAdultsOutOfRange   = errors.New("adults out of range")
	ErrChildrenOutOfRange = errors.New("children out of range")
)

// TripDetails dates and party size of a trip
type TripDetails struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Adults    int        `json:"adults"`
	Children  int        `json:"children"`
}

// Travelers returns the total headcount
func (t TripDetails) Travelers() int {
	return t.Adults + t.Children
}

// Validate checks the trip against today's date
func (t TripDetails) Validate(today time.Time) error {
	if t.StartDate == nil || t.StartDate.IsZero() {
		return ErrStartDateRequired
	}

	tomorrow := DateOnly(today).AddDate(0, 0, 1)
	if DateOnly(*t.StartDate).Before(tomorrow) {
		return ErrStartDateTooEarly
	}

	if t.EndDate != nil && !t.EndDate.IsZero() && DateOnly(*t.EndDate).Before(DateOnly(*t.StartDate)) {
		return ErrEndBeforeStart
	}

	if t.Adults < MinAdults || t.Adults > MaxAdults {
		return fmt.Errorf("%w: must be between %d and %d", ErrAdultsOutOfRange, MinAdults, MaxAdults)
	}

	if t.Children < MinChildren || t.Children > MaxChildren {
		return fmt.Errorf("%w: must be between %d and %d", ErrChildrenOutOfRange, MinChildren, MaxChildren)
	}

	return nil
}

// DateOnly truncates t to midnight in its own location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
