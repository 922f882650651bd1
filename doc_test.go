package money_test

import (
	"fmt"

	"github.com/govalues/decimal"
	"github.com/tarifa/money"
)

func TaxAmount(priceAfterTax money.Amount, taxRate decimal.Decimal) (money.Amount, money.Amount, error) {
	// Price
	taxRate, err := taxRate.Add(decimal.One)
	if err != nil {
		return money.Amount{}, money.Amount{}, err
	}
	priceBeforeTax, err := priceAfterTax.Quo(taxRate)
	if err != nil {
		return money.Amount{}, money.Amount{}, err
	}

	// Tax Amount
	taxAmount, err := priceAfterTax.Sub(priceBeforeTax)
	if err != nil {
		return money.Amount{}, money.Amount{}, err
	}
	return priceBeforeTax, taxAmount, nil
}

// In this example, the sales tax amount is calculated for a product with
// a given price after tax, using a specified tax rate.
func Example_taxCalculation() {
	priceAfterTax := money.MustParseAmount("BRL", "10")
	vatRate := decimal.MustParse("0.065")

	priceBeforeTax, vatAmount, err := TaxAmount(priceAfterTax, vatRate)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Price (before tax) = %v\n", priceBeforeTax)
	fmt.Printf("VAT %-6k         = %v\n", vatRate, vatAmount)
	fmt.Printf("Price (after tax)  = %v\n", priceAfterTax)

	// Output:
	// Price (before tax) = R$9.39
	// VAT 6.5%           = R$0.61
	// Price (after tax)  = R$10.00
}

// SplitBill adds a tip to the bill and divides the total among the guests
// without losing or creating a centavo.
func SplitBill(bill money.Amount, tipRate decimal.Decimal, guests int) ([]money.Amount, error) {
	tip, err := bill.Mul(tipRate)
	if err != nil {
		return nil, err
	}
	total, err := bill.Add(tip)
	if err != nil {
		return nil, err
	}
	return total.Split(guests)
}

// In this example, a restaurant bill with a 10% tip is split among three
// guests. Dividing the total by three would give R$73.33 each and lose a
// centavo, so the first guest pays the extra one.
func Example_splitBill() {
	bill := money.MustParseAmount("BRL", "200")
	shares, err := SplitBill(bill, decimal.MustParse("0.1"), 3)
	if err != nil {
		panic(err)
	}
	for i, s := range shares {
		fmt.Printf("Guest %v pays %v\n", i+1, s)
	}
	// Output:
	// Guest 1 pays R$73.34
	// Guest 2 pays R$73.33
	// Guest 3 pays R$73.33
}

func ExampleNewAmountFromMajor() {
	fmt.Println(money.NewAmountFromMajor(money.BRL, 200))
	fmt.Println(money.NewAmountFromMajor(money.XXX, 200))
	// Output:
	// R$200.00 <nil>
	// ¤0 converting major units: null currency
}

func ExampleNewAmountFromMinorUnits() {
	fmt.Println(money.NewAmountFromMinorUnits(money.JPY, 1500))
	fmt.Println(money.NewAmountFromMinorUnits(money.BRL, 1500))
	// Output:
	// ¥1500 <nil>
	// R$15.00 <nil>
}

func ExampleNewAmountFromDecimal() {
	fmt.Println(money.NewAmountFromDecimal(money.BRL, decimal.MustParse("10.12745")))
	fmt.Println(money.NewAmountFromDecimal(money.BRL, decimal.MustParse("0.125")))
	// Output:
	// R$10.13 <nil>
	// R$0.12 <nil>
}

func ExampleNewAmountFromDecimalRound() {
	d := decimal.MustParse("0.125")
	fmt.Println(money.NewAmountFromDecimalRound(money.BRL, d, money.HalfUp))
	fmt.Println(money.NewAmountFromDecimalRound(money.BRL, d, money.Floor))
	// Output:
	// R$0.13 <nil>
	// R$0.12 <nil>
}

func ExampleNewAmountFromFloat64() {
	fmt.Println(money.NewAmountFromFloat64(money.BRL, 10.12745))
	// Output: R$10.13 <nil>
}

func ExampleParseAmount() {
	fmt.Println(money.ParseAmount("BRL", "10.12745"))
	fmt.Println(money.ParseAmount("OMR", "1.5"))
	// Output:
	// R$10.13 <nil>
	// RO1.500 <nil>
}

func ExampleMustParseAmount() {
	fmt.Println(money.MustParseAmount("EUR", "-3.5"))
	// Output: €-3.50
}

func ExampleAmount_Add() {
	a := money.MustParseAmount("BRL", "10.12745")
	b := money.MustParseAmount("BRL", "200")
	fmt.Println(a.Add(b))
	fmt.Println(a.Add(money.Amount{}))
	// Output:
	// R$210.13 <nil>
	// R$10.13 <nil>
}

func ExampleAmount_Sub() {
	a := money.MustParseAmount("BRL", "10.12745")
	b := money.MustParseAmount("BRL", "200")
	fmt.Println(a.Sub(b))
	// Output: R$-189.87 <nil>
}

func ExampleAmount_Mul() {
	a := money.MustParseAmount("BRL", "200")
	e, _ := decimal.MustNew(10, 0).Quo(decimal.MustNew(9, 0))
	fmt.Println(a.Mul(e))
	// Output: R$222.22 <nil>
}

func ExampleAmount_MulRound() {
	a := money.MustParseAmount("BRL", "0.05")
	e := decimal.MustParse("0.5")
	fmt.Println(a.MulRound(e, money.HalfEven))
	fmt.Println(a.MulRound(e, money.HalfUp))
	// Output:
	// R$0.02 <nil>
	// R$0.03 <nil>
}

func ExampleAmount_Quo() {
	a := money.MustParseAmount("BRL", "200")
	fmt.Println(a.Quo(decimal.MustNew(9, 0)))
	fmt.Println(a.Quo(decimal.Zero))
	// Output:
	// R$22.22 <nil>
	// ¤0 computing [R$200.00 / 0]: division by zero
}

func ExampleAmount_QuoRound() {
	a := money.MustParseAmount("BRL", "0.05")
	fmt.Println(a.QuoRound(decimal.MustNew(2, 0), money.Up))
	// Output: R$0.03 <nil>
}

func ExampleAmount_Split() {
	a := money.MustParseAmount("BRL", "200")
	fmt.Println(a.Split(3))
	// Output: [R$66.67 R$66.67 R$66.66] <nil>
}

func ExampleAmount_Allocate() {
	a := money.MustParseAmount("BRL", "200")
	fmt.Println(a.Allocate(3, 3, 7))
	// Output: [R$46.16 R$46.15 R$107.69] <nil>
}

func ExampleAmount_Cmp() {
	a := money.MustParseAmount("BRL", "1")
	b := money.MustParseAmount("BRL", "2")
	c := money.MustParseAmount("USD", "1")
	fmt.Println(a.Cmp(b))
	fmt.Println(a.Cmp(c))
	// Output:
	// -1 <nil>
	// 0 comparing [R$1.00] and [$1.00]: currency mismatch
}

func ExampleAmount_MinorUnits() {
	a := money.MustParseAmount("BRL", "5.67")
	fmt.Println(a.MinorUnits())
	// Output: 567
}

func ExampleAmount_Decimal() {
	a := money.MustParseAmount("BRL", "5.6")
	fmt.Println(a.Decimal())
	// Output: 5.60
}

func ExampleAmount_String() {
	a := money.MustParseAmount("BRL", "-189.87")
	fmt.Println(a.String())
	// Output: R$-189.87
}

func ExampleAmount_Format() {
	a := money.MustParseAmount("BRL", "5.67")
	fmt.Printf("%v\n", a)
	fmt.Printf("%q\n", a)
	fmt.Printf("%f\n", a)
	fmt.Printf("%.1f\n", a)
	fmt.Printf("%d\n", a)
	fmt.Printf("%c\n", a)
	// Output:
	// R$5.67
	// "R$5.67"
	// 5.67
	// 5.7
	// 567
	// BRL
}

func ExampleParseCurr() {
	fmt.Println(money.ParseCurr("brl"))
	fmt.Println(money.ParseCurr("986"))
	// Output:
	// BRL <nil>
	// BRL <nil>
}

func ExampleCurrency_Symbol() {
	fmt.Println(money.BRL.Symbol(), money.JPY.Symbol())
	// Output: R$ ¥
}

func ExampleCurrency_MinorUnitFactor() {
	fmt.Println(money.BRL.MinorUnitFactor(), money.JPY.MinorUnitFactor(), money.OMR.MinorUnitFactor())
	// Output: 100 1 1000
}
