package lodging

import (
	"slices"
	"time"

	"github.com/govalues/decimal"

	"github.com/tarifa/money"
)

// Catalog is an immutable list of hotels open for booking.
// The zero value is an empty catalog.
type Catalog struct {
	hotels []Hotel
}

// NewCatalog returns a catalog of the hotels in the given order.
func NewCatalog(hotels ...Hotel) Catalog {
	return Catalog{hotels: slices.Clone(hotels)}
}

// DefaultCatalog returns the three hotels of Miami with their nightly prices
// in major units of curr.
func DefaultCatalog(curr money.Currency) (Catalog, error) {
	rows := []struct {
		name             string
		rank             int
		regular, rewards [2]int64
	}{
		{"Lakewood", 3, [2]int64{110, 90}, [2]int64{80, 80}},
		{"Bridgewood", 4, [2]int64{160, 60}, [2]int64{110, 50}},
		{"Ridgewood", 5, [2]int64{220, 150}, [2]int64{100, 40}},
	}
	hotels := make([]Hotel, 0, len(rows))
	for _, r := range rows {
		h, err := NewWeekendHotel(r.name, r.rank, curr,
			decimal.MustNew(r.regular[0], 0), decimal.MustNew(r.regular[1], 0),
			decimal.MustNew(r.rewards[0], 0), decimal.MustNew(r.rewards[1], 0))
		if err != nil {
			return Catalog{}, err
		}
		hotels = append(hotels, h)
	}
	return Catalog{hotels: hotels}, nil
}

// With returns a copy of the catalog with h appended.
func (c Catalog) With(h Hotel) Catalog {
	hotels := make([]Hotel, 0, len(c.hotels)+1)
	hotels = append(hotels, c.hotels...)
	return Catalog{hotels: append(hotels, h)}
}

// Without returns a copy of the catalog without the hotels named name.
func (c Catalog) Without(name string) Catalog {
	hotels := make([]Hotel, 0, len(c.hotels))
	for _, h := range c.hotels {
		if h.name != name {
			hotels = append(hotels, h)
		}
	}
	return Catalog{hotels: hotels}
}

// Hotels returns a copy of the hotels in the catalog.
func (c Catalog) Hotels() []Hotel {
	return slices.Clone(c.hotels)
}

// Len returns the number of hotels in the catalog.
func (c Catalog) Len() int {
	return len(c.hotels)
}

// Lookup returns the first hotel named name.
func (c Catalog) Lookup(name string) (Hotel, bool) {
	i := slices.IndexFunc(c.hotels, func(h Hotel) bool { return h.name == name })
	if i < 0 {
		return Hotel{}, false
	}
	return c.hotels[i], true
}

// Cheapest returns the hotel of the catalog preferred for the stay.
// See [Cheapest].
func (c Catalog) Cheapest(client ClientType, dates []time.Time) (Hotel, error) {
	return Cheapest(c.hotels, client, dates)
}
