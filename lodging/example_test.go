package lodging_test

import (
	"fmt"
	"time"

	"github.com/tarifa/money"
	"github.com/tarifa/money/lodging"
)

func ExampleCatalog_Cheapest() {
	catalog, err := lodging.DefaultCatalog(money.BRL)
	if err != nil {
		panic(err)
	}
	stay := []time.Time{
		time.Date(2009, 3, 26, 0, 0, 0, 0, time.UTC), // Thu
		time.Date(2009, 3, 27, 0, 0, 0, 0, time.UTC),
		time.Date(2009, 3, 28, 0, 0, 0, 0, time.UTC),
	}
	for _, h := range catalog.Hotels() {
		total, _ := h.TotalPrice(lodging.Rewards, stay)
		fmt.Println(h.Name(), total)
	}
	best, err := catalog.Cheapest(lodging.Rewards, stay)
	fmt.Println(best.Name(), err)
	// Output:
	// Lakewood R$240.00
	// Bridgewood R$270.00
	// Ridgewood R$240.00
	// Ridgewood <nil>
}
