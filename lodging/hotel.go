// Package lodging compares the prices that hotels charge for a stay.
package lodging

import (
	"errors"
	"fmt"
	"time"

	"github.com/govalues/decimal"

	"github.com/tarifa/money"
	"github.com/tarifa/money/schedule"
)

// ErrNoHotels is returned when the cheapest hotel is requested from an empty list.
var ErrNoHotels = errors.New("no hotels")

// ClientType selects which price schedule of a hotel applies to a guest.
// The zero value is [Regular].
type ClientType uint8

const (
	Regular ClientType = iota
	Rewards
)

// ClientFor returns [Rewards] if rewards is set and [Regular] otherwise.
func ClientFor(rewards bool) ClientType {
	if rewards {
		return Rewards
	}
	return Regular
}

func (c ClientType) String() string {
	switch c {
	case Regular:
		return "Regular"
	case Rewards:
		return "Rewards"
	}
	return fmt.Sprintf("ClientType(%d)", uint8(c))
}

// Hotel is an immutable lodging provider with a quality rank and one price
// schedule per client type.
type Hotel struct {
	name    string
	rank    int
	regular schedule.Schedule
	rewards schedule.Schedule
}

// NewHotel returns a hotel charging regular clients by the regular schedule
// and rewards clients by the rewards schedule.
//
// NewHotel returns an error if a schedule is missing or the schedules use
// different currencies.
func NewHotel(name string, rank int, regular, rewards schedule.Schedule) (Hotel, error) {
	if regular == nil || rewards == nil {
		return Hotel{}, fmt.Errorf("creating hotel %q: %w: missing schedule", name, money.ErrInvalidArgument)
	}
	if regular.Curr() != rewards.Curr() {
		return Hotel{}, fmt.Errorf("creating hotel %q [%v] / [%v]: %w", name, regular.Curr(), rewards.Curr(), money.ErrCurrencyMismatch)
	}
	return Hotel{name: name, rank: rank, regular: regular, rewards: rewards}, nil
}

// NewWeekendHotel returns a hotel whose schedules charge one price from
// Monday to Friday and another on weekends. Prices are in major units of curr.
func NewWeekendHotel(name string, rank int, curr money.Currency, regularWeekday, regularWeekend, rewardsWeekday, rewardsWeekend decimal.Decimal) (Hotel, error) {
	regular, err := weekend(curr, regularWeekday, regularWeekend)
	if err != nil {
		return Hotel{}, fmt.Errorf("creating hotel %q: regular: %w", name, err)
	}
	rewards, err := weekend(curr, rewardsWeekday, rewardsWeekend)
	if err != nil {
		return Hotel{}, fmt.Errorf("creating hotel %q: rewards: %w", name, err)
	}
	return NewHotel(name, rank, regular, rewards)
}

// MustNewWeekendHotel is like [NewWeekendHotel] but panics on error.
func MustNewWeekendHotel(name string, rank int, curr money.Currency, regularWeekday, regularWeekend, rewardsWeekday, rewardsWeekend decimal.Decimal) Hotel {
	h, err := NewWeekendHotel(name, rank, curr, regularWeekday, regularWeekend, rewardsWeekday, rewardsWeekend)
	if err != nil {
		panic(fmt.Sprintf("NewWeekendHotel(%q) failed: %v", name, err))
	}
	return h
}

func weekend(curr money.Currency, weekday, weekend decimal.Decimal) (schedule.Weekend, error) {
	wd, err := money.NewAmountFromDecimal(curr, weekday)
	if err != nil {
		return schedule.Weekend{}, err
	}
	we, err := money.NewAmountFromDecimal(curr, weekend)
	if err != nil {
		return schedule.Weekend{}, err
	}
	return schedule.NewWeekend(wd, we)
}

// Name returns the name of the hotel.
func (h Hotel) Name() string {
	return h.name
}

// Rank returns the quality rank of the hotel. Higher is better.
func (h Hotel) Rank() int {
	return h.rank
}

// Curr returns the currency of the hotel prices.
func (h Hotel) Curr() money.Currency {
	if h.regular == nil {
		return money.XXX
	}
	return h.regular.Curr()
}

// Schedule returns the price schedule applied to the client type.
func (h Hotel) Schedule(client ClientType) schedule.Schedule {
	if client == Rewards {
		return h.rewards
	}
	return h.regular
}

// TotalPrice returns the sum of the nightly prices of the dates for the
// client type.
//
// TotalPrice returns an error if dates is empty, the hotel has no schedules
// or the sum overflows.
func (h Hotel) TotalPrice(client ClientType, dates []time.Time) (money.Amount, error) {
	s := h.Schedule(client)
	if s == nil {
		return money.Amount{}, fmt.Errorf("pricing %q: %w: missing schedule", h.name, money.ErrInvalidArgument)
	}
	total, err := schedule.PriceOverDates(s, dates)
	if err != nil {
		return money.Amount{}, fmt.Errorf("pricing %q for %v: %w", h.name, client, err)
	}
	return total, nil
}

func (h Hotel) String() string {
	return fmt.Sprintf("%v (rank %d)", h.name, h.rank)
}
