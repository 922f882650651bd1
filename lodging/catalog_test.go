package lodging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarifa/money"
)

func names(hotels []Hotel) []string {
	res := make([]string, len(hotels))
	for i, h := range hotels {
		res[i] = h.Name()
	}
	return res
}

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog(money.BRL)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lakewood", "Bridgewood", "Ridgewood"}, names(c.Hotels()))

	ridgewood, ok := c.Lookup("Ridgewood")
	require.True(t, ok)
	assert.Equal(t, 5, ridgewood.Rank())
	total, err := ridgewood.TotalPrice(Rewards, dates("2009-03-20", "2009-03-21"))
	require.NoError(t, err)
	assert.Equal(t, brl("140"), total)

	_, err = DefaultCatalog(money.XXX)
	require.ErrorIs(t, err, money.ErrNullCurrency)
}

func TestCatalog_WithWithout(t *testing.T) {
	base, err := DefaultCatalog(money.BRL)
	require.NoError(t, err)

	budget := mustHotel("Budget", 1, 50, 50, 40, 40)
	more := base.With(budget)
	assert.Equal(t, 3, base.Len())
	assert.Equal(t, 4, more.Len())

	h, err := more.Cheapest(Regular, dates("2009-03-16"))
	require.NoError(t, err)
	assert.Equal(t, "Budget", h.Name())

	less := more.Without("Budget").Without("Lakewood")
	assert.Equal(t, []string{"Bridgewood", "Ridgewood"}, names(less.Hotels()))
	assert.Equal(t, 4, more.Len())

	_, ok := less.Lookup("Lakewood")
	assert.False(t, ok)
}

func TestCatalog_Immutable(t *testing.T) {
	c, err := DefaultCatalog(money.BRL)
	require.NoError(t, err)
	hotels := c.Hotels()
	hotels[0] = mustHotel("Intruder", 9, 1, 1, 1, 1)
	assert.Equal(t, "Lakewood", c.Hotels()[0].Name())

	src := []Hotel{mustHotel("A", 1, 1, 1, 1, 1)}
	n := NewCatalog(src...)
	src[0] = mustHotel("B", 1, 1, 1, 1, 1)
	assert.Equal(t, []string{"A"}, names(n.Hotels()))
}

func TestCatalog_ZeroValue(t *testing.T) {
	var c Catalog
	assert.Equal(t, 0, c.Len())
	_, err := c.Cheapest(Regular, dates("2009-03-16"))
	require.ErrorIs(t, err, ErrNoHotels)
}
