package schedule

import (
	"fmt"
	"time"

	"github.com/tarifa/money"
)

// Weekend is a [Schedule] with one price for Monday to Friday and another
// for Saturday and Sunday.
type Weekend struct {
	weekday money.Amount
	weekend money.Amount
}

// NewWeekend returns a schedule charging weekday from Monday to Friday and
// weekend on Saturday and Sunday.
//
// NewWeekend returns an error if either price has no currency or the
// currencies differ.
func NewWeekend(weekday, weekend money.Amount) (Weekend, error) {
	if weekday.Curr() == money.XXX || weekend.Curr() == money.XXX {
		return Weekend{}, fmt.Errorf("creating weekend schedule: %w", money.ErrNullCurrency)
	}
	if !weekday.SameCurr(weekend) {
		return Weekend{}, fmt.Errorf("creating weekend schedule [%v] / [%v]: %w", weekday, weekend, money.ErrCurrencyMismatch)
	}
	return Weekend{weekday: weekday, weekend: weekend}, nil
}

// MustNewWeekend is like [NewWeekend] but panics on error.
// It simplifies initialization of fixed catalogs.
func MustNewWeekend(weekday, weekend money.Amount) Weekend {
	w, err := NewWeekend(weekday, weekend)
	if err != nil {
		panic(fmt.Sprintf("NewWeekend(%v, %v) failed: %v", weekday, weekend, err))
	}
	return w
}

// IsWeekend reports whether date falls on a Saturday or a Sunday.
func IsWeekend(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}

// PriceOn implements [Schedule].
func (w Weekend) PriceOn(date time.Time) money.Amount {
	if IsWeekend(date) {
		return w.weekend
	}
	return w.weekday
}

// Curr implements [Schedule].
func (w Weekend) Curr() money.Currency {
	return w.weekday.Curr()
}

// Weekday returns the Monday to Friday price.
func (w Weekend) Weekday() money.Amount {
	return w.weekday
}

// Weekend returns the Saturday and Sunday price.
func (w Weekend) Weekend() money.Amount {
	return w.weekend
}
