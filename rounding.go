package money

import (
	"fmt"
	"math"
	"math/big"

	"github.com/govalues/decimal"
)

// RoundingMode specifies how a result that falls between two minor units is
// brought back to a whole number of minor units.
// The zero value is [HalfEven].
type RoundingMode uint8

const (
	// HalfEven rounds to the nearest neighbour, and ties to the even one
	// (banker's rounding). It is the default of every operation in this package.
	HalfEven RoundingMode = iota
	// HalfUp rounds to the nearest neighbour, and ties away from zero.
	HalfUp
	// HalfDown rounds to the nearest neighbour, and ties towards zero.
	HalfDown
	// Up rounds away from zero.
	Up
	// Down rounds towards zero (truncation).
	Down
	// Ceiling rounds towards positive infinity.
	Ceiling
	// Floor rounds towards negative infinity.
	Floor
)

var roundingModeNames = [...]string{
	HalfEven: "HalfEven",
	HalfUp:   "HalfUp",
	HalfDown: "HalfDown",
	Up:       "Up",
	Down:     "Down",
	Ceiling:  "Ceiling",
	Floor:    "Floor",
}

func (m RoundingMode) String() string {
	if int(m) < len(roundingModeNames) {
		return roundingModeNames[m]
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

func (m RoundingMode) valid() bool {
	return int(m) < len(roundingModeNames)
}

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// pow10 returns 10^n as a new big.Int.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// decimalRat returns num and den such that d = num / den and den > 0.
func decimalRat(d decimal.Decimal) (num, den *big.Int) {
	num = new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		num.Neg(num)
	}
	return num, pow10(d.Scale())
}

// quoRound returns num / den rounded to an integer using the given mode.
// The computation is exact: no intermediate result is truncated.
// quoRound returns an error if den is zero or the result does not fit in int64.
func quoRound(num, den *big.Int, mode RoundingMode) (int64, error) {
	if !mode.valid() {
		return 0, fmt.Errorf("%w: rounding mode %v", ErrInvalidArgument, mode)
	}
	if den.Sign() == 0 {
		return 0, ErrDivisionByZero
	}
	n, d := new(big.Int).Set(num), new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	// T-Division, the remainder has the sign of the dividend
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	if r.Sign() != 0 && roundAway(q, r, d, mode) {
		if n.Sign() < 0 {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}

	if !q.IsInt64() || q.Int64() == math.MinInt64 {
		return 0, ErrOverflow
	}
	return q.Int64(), nil
}

// roundAway reports whether the truncated quotient q must be moved one unit
// away from zero, given a non-zero remainder r and a positive divisor d.
func roundAway(q, r, d *big.Int, mode RoundingMode) bool {
	neg := r.Sign() < 0
	switch mode {
	case Up:
		return true
	case Down:
		return false
	case Ceiling:
		return !neg
	case Floor:
		return neg
	}

	// Half modes compare 2|r| against d
	twice := new(big.Int).Abs(r)
	twice.Lsh(twice, 1)
	switch c := twice.Cmp(d); {
	case c > 0:
		return true
	case c < 0:
		return false
	}
	switch mode {
	case HalfUp:
		return true
	case HalfDown:
		return false
	default:
		return q.Bit(0) == 1
	}
}
