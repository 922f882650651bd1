package money

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/govalues/decimal"
)

var (
	// ErrCurrencyMismatch is returned when two amounts of different currencies
	// are added, subtracted or compared.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrDivisionByZero is returned by [Amount.Quo] when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidArgument is returned when an operation receives an argument
	// outside of its domain, such as a non-positive number of parts.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNullCurrency is returned when an amount is constructed without a currency.
	ErrNullCurrency = errors.New("null currency")
	// ErrOverflow is returned when a result does not fit in the range of minor units.
	ErrOverflow = errors.New("amount overflow")
)

// Amount type represents a monetary amount as an integer count of the minor
// units (cents, centavos, fils) of its currency.
// No fraction of a minor unit is ever stored: every operation that could produce
// one rounds explicitly, by default using [HalfEven].
//
// Amount is immutable and designed to be safe for concurrent use by multiple
// goroutines. Its zero value has no currency and represents an absent operand:
// [Amount.Add] and [Amount.Sub] return the receiver unchanged when given one.
//
// The range of minor units is [-math.MaxInt64, math.MaxInt64], so that every
// amount can be negated.
type Amount struct {
	curr  Currency // ISO 4217 currency
	units int64    // minor units
}

// newAmountUnsafe creates a new amount without checking the currency.
func newAmountUnsafe(c Currency, units int64) Amount {
	return Amount{curr: c, units: units}
}

// checkCurr returns an error unless c can denominate an amount.
func checkCurr(c Currency) error {
	switch {
	case c == XXX:
		return ErrNullCurrency
	case !c.IsValid():
		return fmt.Errorf("%w: index %d", errInvalidCurrency, uint8(c))
	}
	return nil
}

// NewAmountFromMinorUnits returns an amount of units minor units of currency
// (e.g. cents). It is the raw constructor used for the results of allocation.
// See also method [Amount.MinorUnits].
//
// NewAmountFromMinorUnits returns an error if the currency is [XXX] or units
// is math.MinInt64.
func NewAmountFromMinorUnits(curr Currency, units int64) (Amount, error) {
	if err := checkCurr(curr); err != nil {
		return Amount{}, fmt.Errorf("converting minor units: %w", err)
	}
	if units == math.MinInt64 {
		return Amount{}, fmt.Errorf("converting minor units: %w", ErrOverflow)
	}
	return newAmountUnsafe(curr, units), nil
}

// NewAmountFromMajor returns an amount equal to a whole number of major
// units (e.g. 200 reais).
//
// NewAmountFromMajor returns an error if the currency is [XXX] or the amount
// does not fit in the range of minor units.
func NewAmountFromMajor(curr Currency, amount int64) (Amount, error) {
	if err := checkCurr(curr); err != nil {
		return Amount{}, fmt.Errorf("converting major units: %w", err)
	}
	f := curr.MinorUnitFactor()
	if amount > math.MaxInt64/f || amount < -math.MaxInt64/f {
		return Amount{}, fmt.Errorf("converting major units %v: %w", amount, ErrOverflow)
	}
	return newAmountUnsafe(curr, amount*f), nil
}

// NewAmountFromDecimal converts a decimal number of major units to an amount.
// Digits beyond the scale of the currency are rounded half to even, so
// 10.12745 reais become 10.13 reais.
// See also constructor [NewAmountFromDecimalRound] and method [Amount.Decimal].
func NewAmountFromDecimal(curr Currency, amount decimal.Decimal) (Amount, error) {
	return NewAmountFromDecimalRound(curr, amount, HalfEven)
}

// NewAmountFromDecimalRound is like [NewAmountFromDecimal] but rounds using
// the given mode.
func NewAmountFromDecimalRound(curr Currency, amount decimal.Decimal, mode RoundingMode) (Amount, error) {
	if err := checkCurr(curr); err != nil {
		return Amount{}, fmt.Errorf("converting decimal: %w", err)
	}
	num, den := decimalRat(amount)
	num.Mul(num, big.NewInt(curr.MinorUnitFactor()))
	units, err := quoRound(num, den, mode)
	if err != nil {
		return Amount{}, fmt.Errorf("converting decimal %v: %w", amount, err)
	}
	return newAmountUnsafe(curr, units), nil
}

// NewAmountFromFloat64 converts a float of major units to an amount.
// The float is first converted to the shortest decimal that represents it,
// and then rounded like in [NewAmountFromDecimal]; no arithmetic is performed
// on the float itself.
//
// NewAmountFromFloat64 returns an error if the float is a special value
// (NaN or Inf) or the amount does not fit in the range of minor units.
func NewAmountFromFloat64(curr Currency, amount float64) (Amount, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Amount{}, fmt.Errorf("converting float: special value %v", amount)
	}
	// No currency has fewer than one minor unit per major unit
	if math.Abs(amount) >= 1e19 {
		return Amount{}, fmt.Errorf("converting float %v: %w", amount, ErrOverflow)
	}
	d, err := decimal.Parse(strconv.FormatFloat(amount, 'f', -1, 64))
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return NewAmountFromDecimal(curr, d)
}

// ParseAmount converts currency and decimal strings to a (possibly rounded) amount.
// See also constructors [ParseCurr] and [NewAmountFromDecimal].
func ParseAmount(curr, amount string) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.Parse(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return NewAmountFromDecimal(c, d)
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Zero returns an amount of zero minor units of the currency.
// It is the starting point for summing amounts.
func Zero(curr Currency) Amount {
	return newAmountUnsafe(curr, 0)
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// MinorUnits returns the amount in minor units of currency (e.g. cents).
func (a Amount) MinorUnits() int64 {
	return a.units
}

// Decimal returns the amount in major units, with as many digits after the
// decimal point as the scale of the currency.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.MustNew(a.units, a.curr.Scale())
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	switch {
	case a.units < 0:
		return -1
	case a.units > 0:
		return 1
	}
	return 0
}

// IsZero returns true if the amount has no minor units.
func (a Amount) IsZero() bool {
	return a.units == 0
}

// IsNeg returns true if a < 0.
func (a Amount) IsNeg() bool {
	return a.units < 0
}

// IsPos returns true if a > 0.
func (a Amount) IsPos() bool {
	return a.units > 0
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	if a.units < 0 {
		return a.Neg()
	}
	return a
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return newAmountUnsafe(a.curr, -a.units)
}

// SameCurr returns true if amounts are denominated in the same currency.
func (a Amount) SameCurr(b Amount) bool {
	return a.curr == b.curr
}

// isAbsent reports whether a is the zero value of Amount.
func (a Amount) isAbsent() bool {
	return a == Amount{}
}

// Add returns the sum of amounts a and b.
// If b is the zero value of Amount, a is returned unchanged, which allows
// folding a list of amounts without special-casing the first one.
//
// Add returns an error if:
//   - amounts are denominated in different currencies;
//   - the result does not fit in the range of minor units.
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := a.add(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) add(b Amount) (Amount, error) {
	if b.isAbsent() {
		return a, nil
	}
	if !a.SameCurr(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	u, ok := addUnits(a.units, b.units)
	if !ok {
		return Amount{}, ErrOverflow
	}
	return newAmountUnsafe(a.curr, u), nil
}

// Sub returns the difference between amounts a and b.
// If b is the zero value of Amount, a is returned unchanged.
//
// Sub returns an error if:
//   - amounts are denominated in different currencies;
//   - the result does not fit in the range of minor units.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) sub(b Amount) (Amount, error) {
	if b.isAbsent() {
		return a, nil
	}
	if !a.SameCurr(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	u, ok := addUnits(a.units, -b.units)
	if !ok {
		return Amount{}, ErrOverflow
	}
	return newAmountUnsafe(a.curr, u), nil
}

// addUnits returns x + y, or false if the sum leaves the range of minor units.
func addUnits(x, y int64) (int64, bool) {
	s := x + y
	if (x > 0 && y > 0 && s < 0) || (x < 0 && y < 0 && s >= 0) || s == math.MinInt64 {
		return 0, false
	}
	return s, true
}

// isOne reports whether e is numerically equal to 1, whatever its scale.
func isOne(e decimal.Decimal) bool {
	return e.Cmp(decimal.One) == 0
}

// Mul returns the product of amount a and factor e, rounded half to even
// to a whole number of minor units.
// Multiplying by exactly 1 returns a unchanged.
// See also method [Amount.MulRound].
//
// Mul returns an error if the result does not fit in the range of minor units.
func (a Amount) Mul(e decimal.Decimal) (Amount, error) {
	return a.MulRound(e, HalfEven)
}

// MulRound is like [Amount.Mul] but rounds using the given mode.
// The product is computed exactly before rounding.
func (a Amount) MulRound(e decimal.Decimal, mode RoundingMode) (Amount, error) {
	c, err := a.mul(e, mode)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) mul(e decimal.Decimal, mode RoundingMode) (Amount, error) {
	if isOne(e) {
		return a, nil
	}
	num, den := decimalRat(e)
	num.Mul(num, big.NewInt(a.units))
	u, err := quoRound(num, den, mode)
	if err != nil {
		return Amount{}, err
	}
	return newAmountUnsafe(a.curr, u), nil
}

// Quo returns the quotient of amount a and divisor e, rounded half to even
// to a whole number of minor units.
// Dividing by exactly 1 returns a unchanged.
//
// Quo is a scalar division and must not be used to distribute an amount among
// several recipients: rounding each part independently can make the parts sum
// to more or less than the original. Use [Amount.Split] or [Amount.Allocate] instead.
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the result does not fit in the range of minor units.
func (a Amount) Quo(e decimal.Decimal) (Amount, error) {
	return a.QuoRound(e, HalfEven)
}

// QuoRound is like [Amount.Quo] but rounds using the given mode.
// The quotient is computed exactly before rounding.
func (a Amount) QuoRound(e decimal.Decimal, mode RoundingMode) (Amount, error) {
	c, err := a.quo(e, mode)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) quo(e decimal.Decimal, mode RoundingMode) (Amount, error) {
	if e.IsZero() {
		return Amount{}, ErrDivisionByZero
	}
	if isOne(e) {
		return a, nil
	}
	den, num := decimalRat(e)
	num.Mul(num, big.NewInt(a.units))
	u, err := quoRound(num, den, mode)
	if err != nil {
		return Amount{}, err
	}
	return newAmountUnsafe(a.curr, u), nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if amounts are denominated in different currencies.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	switch {
	case a.units < b.units:
		return -1, nil
	case a.units > b.units:
		return 1, nil
	}
	return 0, nil
}

// String implements the [fmt.Stringer] interface and returns the currency
// symbol followed by the amount in major units, with exactly as many digits
// after the decimal point as the scale of the currency:
//
//	R$10.13
//	R$-189.87
//	¥1500
//
// See also methods [Currency.Symbol] and [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	buf := make([]byte, 0, 32)
	buf = append(buf, a.curr.Symbol()...)
	buf = appendMajor(buf, a.units, a.curr.Scale(), a.curr.Scale())
	return string(buf)
}

// appendMajor appends units / 10^scale written with prec digits after the
// decimal point. prec must not be less than scale.
func appendMajor(buf []byte, units int64, scale, prec int) []byte {
	u := uint64(units)
	if units < 0 {
		buf = append(buf, '-')
		u = -u
	}

	// Coefficient
	digs := strconv.FormatUint(u, 10)
	for len(digs) <= scale {
		digs = "0" + digs
	}
	intdigs := len(digs) - scale
	buf = append(buf, digs[:intdigs]...)

	// Fractional digits
	if prec > 0 {
		buf = append(buf, '.')
		buf = append(buf, digs[intdigs:]...)
		for i := scale; i < prec; i++ {
			buf = append(buf, '0')
		}
	}
	return buf
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example   | Description                 |
//	| ------ | --------- | --------------------------- |
//	| %s, %v | R$5.67    | Symbol and amount           |
//	| %q     | "R$5.67"  | Quoted symbol and amount    |
//	| %f     | 5.67      | Amount in major units       |
//	| %d     | 567       | Amount in minor units       |
//	| %c     | BRL       | Currency code               |
//
// The '-' flag and width can be used with all verbs.
// The '+' flag forces a sign for %f and %d.
//
// Precision is only supported for the %f verb. It can add trailing zeros or
// round half to even when it is below the scale of the currency.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	var buf []byte
	switch verb {
	case 's', 'S', 'v', 'V':
		buf = []byte(a.String())
	case 'q', 'Q':
		buf = []byte(strconv.Quote(a.String()))
	case 'c', 'C':
		buf = []byte(a.curr.Code())
	case 'd', 'D':
		buf = signFlag(state, a.units, buf)
		buf = strconv.AppendInt(buf, a.units, 10)
	case 'f', 'F':
		scale := a.curr.Scale()
		prec := scale
		if p, ok := state.Precision(); ok {
			prec = max(p, 0)
		}
		units := a.units
		if prec < scale {
			// Rounding fraction digits that do not fit the precision
			num, den := big.NewInt(units), pow10(scale-prec)
			if q, err := quoRound(num, den, HalfEven); err == nil {
				units = q
			}
			scale = prec
		}
		buf = signFlag(state, units, buf)
		buf = appendMajor(buf, units, scale, prec)
	default:
		buf = append([]byte("%!"), byte(verb))
		buf = append(buf, "(money.Amount="...)
		buf = append(buf, a.String()...)
		buf = append(buf, ')')
	}

	// Padding
	if w, ok := state.Width(); ok && w > len([]rune(string(buf))) {
		pad := make([]byte, w-len([]rune(string(buf))))
		for i := range pad {
			pad[i] = ' '
		}
		if state.Flag('-') {
			buf = append(buf, pad...)
		} else {
			buf = append(pad, buf...)
		}
	}

	//nolint:errcheck
	state.Write(buf)
}

// signFlag appends '+' for non-negative values when the '+' flag is set.
func signFlag(state fmt.State, units int64, buf []byte) []byte {
	if units >= 0 && state.Flag('+') {
		buf = append(buf, '+')
	}
	return buf
}
