package money

import (
	"fmt"
	"math/big"
)

// Split returns a slice of parts amounts that sum up exactly to the original
// amount, ensuring that no two parts differ by more than one minor unit.
// If the amount cannot be divided equally, the first parts of the slice receive
// the larger share, so 200 reais split in 3 gives 66.67, 66.67, 66.66.
// See also methods [Amount.Allocate] and [Amount.Quo].
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	r, err := a.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return r, nil
}

func (a Amount) split(parts int) ([]Amount, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("%w: number of parts must be positive", ErrInvalidArgument)
	}
	n := int64(parts)

	// Floored division keeps 0 <= rem < n for negative amounts too
	low, rem := a.units/n, a.units%n
	if rem < 0 {
		low--
		rem += n
	}
	lo := newAmountUnsafe(a.curr, low)
	hi := newAmountUnsafe(a.curr, low+1)

	res := make([]Amount, parts)
	for i := range res {
		if int64(i) < rem {
			res[i] = hi
		} else {
			res[i] = lo
		}
	}
	return res, nil
}

// Allocate distributes the amount among len(ratios) parts in proportion to the
// ratios and returns parts that sum up exactly to the original amount.
//
// Every part is first set to floor(amount * ratio / total), where total is the
// sum of the ratios. The minor units left over are then handed out one at a
// time starting from the first part, so earlier parts may end up one minor unit
// above their exact proportional share. Allocating 200 reais by 3:3:7 gives
// 46.16, 46.15, 107.69.
//
// Allocate returns an error if ratios is empty, contains a negative value or
// sums to zero.
func (a Amount) Allocate(ratios ...int64) ([]Amount, error) {
	r, err := a.allocate(ratios)
	if err != nil {
		return nil, fmt.Errorf("allocating %v by %v: %w", a, ratios, err)
	}
	return r, nil
}

func (a Amount) allocate(ratios []int64) ([]Amount, error) {
	if len(ratios) == 0 {
		return nil, fmt.Errorf("%w: no ratios", ErrInvalidArgument)
	}
	total := new(big.Int)
	for _, r := range ratios {
		if r < 0 {
			return nil, fmt.Errorf("%w: negative ratio %v", ErrInvalidArgument, r)
		}
		total.Add(total, big.NewInt(r))
	}
	if total.Sign() == 0 {
		return nil, fmt.Errorf("%w: ratios sum to zero", ErrInvalidArgument)
	}

	units := big.NewInt(a.units)
	res := make([]Amount, len(ratios))
	rem := a.units
	for i, r := range ratios {
		// Shares never exceed |amount| in magnitude, so they fit in int64
		share, err := quoRound(new(big.Int).Mul(units, big.NewInt(r)), total, Floor)
		if err != nil {
			return nil, err
		}
		res[i] = newAmountUnsafe(a.curr, share)
		rem -= share
	}

	// Remainder distribution
	for i := 0; rem > 0; i++ {
		res[i].units++
		rem--
	}
	return res, nil
}
