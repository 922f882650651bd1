package lodging

import (
	"cmp"
	"fmt"
	"time"
)

// Compare orders hotels a and b by the total price of the dates for the
// client type. When both totals are exactly equal the hotel with the higher
// rank sorts first. It returns:
//
//	-1 if a should be preferred to b
//	 0 if a and b cost the same and share a rank
//	+1 if b should be preferred to a
//
// Compare returns an error if either total cannot be computed or the hotels
// price in different currencies.
func Compare(a, b Hotel, client ClientType, dates []time.Time) (int, error) {
	pa, err := a.TotalPrice(client, dates)
	if err != nil {
		return 0, err
	}
	pb, err := b.TotalPrice(client, dates)
	if err != nil {
		return 0, err
	}
	c, err := pa.Cmp(pb)
	if err != nil {
		return 0, fmt.Errorf("comparing %q and %q: %w", a.name, b.name, err)
	}
	if c != 0 {
		return c, nil
	}
	return cmp.Compare(b.rank, a.rank), nil
}

// Cheapest returns the hotel preferred by [Compare] among hotels.
// On a full tie the hotel listed first wins.
//
// Cheapest returns an error if hotels is empty or any comparison fails.
func Cheapest(hotels []Hotel, client ClientType, dates []time.Time) (Hotel, error) {
	if len(hotels) == 0 {
		return Hotel{}, ErrNoHotels
	}
	best := hotels[0]
	if _, err := best.TotalPrice(client, dates); err != nil {
		return Hotel{}, fmt.Errorf("finding cheapest hotel: %w", err)
	}
	for _, h := range hotels[1:] {
		c, err := Compare(h, best, client, dates)
		if err != nil {
			return Hotel{}, fmt.Errorf("finding cheapest hotel: %w", err)
		}
		if c < 0 {
			best = h
		}
	}
	return best, nil
}
