// Package schedule maps calendar dates to nightly prices and sums them over
// lists and ranges of dates.
package schedule

import (
	"fmt"
	"time"

	"github.com/tarifa/money"
)

// Schedule is a pure function from a calendar date to a price.
// Implementations must be immutable and always return amounts in Curr.
type Schedule interface {
	// PriceOn returns the price for the night of the given date.
	// Only the year, month and day of the date are significant.
	PriceOn(date time.Time) money.Amount
	// Curr returns the currency of every price in the schedule.
	Curr() money.Currency
}

// civil drops the time of day and location of t.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PriceOverRange returns the sum of the prices of every calendar day from
// start to end, both inclusive. When start and end fall on the same day the
// result is the price of that single day.
//
// PriceOverRange returns an error if end is before start or the sum overflows.
func PriceOverRange(s Schedule, start, end time.Time) (money.Amount, error) {
	first, last := civil(start), civil(end)
	if last.Before(first) {
		return money.Amount{}, fmt.Errorf("pricing %v..%v: %w: end before start",
			first.Format(time.DateOnly), last.Format(time.DateOnly), money.ErrInvalidArgument)
	}
	total := money.Zero(s.Curr())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		var err error
		total, err = total.Add(s.PriceOn(d))
		if err != nil {
			return money.Amount{}, fmt.Errorf("pricing %v: %w", d.Format(time.DateOnly), err)
		}
	}
	return total, nil
}

// PriceOverDates returns the sum of the prices of the given dates.
// The dates may come in any order; a date listed twice is priced twice.
//
// PriceOverDates returns an error if dates is empty or the sum overflows.
func PriceOverDates(s Schedule, dates []time.Time) (money.Amount, error) {
	if len(dates) == 0 {
		return money.Amount{}, fmt.Errorf("pricing dates: %w: no dates", money.ErrInvalidArgument)
	}
	total := money.Zero(s.Curr())
	for _, d := range dates {
		var err error
		total, err = total.Add(s.PriceOn(d))
		if err != nil {
			return money.Amount{}, fmt.Errorf("pricing %v: %w", d.Format(time.DateOnly), err)
		}
	}
	return total, nil
}
