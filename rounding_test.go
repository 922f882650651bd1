package money

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestRoundingMode_String(t *testing.T) {
	tests := []struct {
		mode RoundingMode
		want string
	}{
		{HalfEven, "HalfEven"},
		{HalfUp, "HalfUp"},
		{HalfDown, "HalfDown"},
		{Up, "Up"},
		{Down, "Down"},
		{Ceiling, "Ceiling"},
		{Floor, "Floor"},
		{RoundingMode(9), "RoundingMode(9)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("RoundingMode(%d).String() = %q, want %q", uint8(tt.mode), got, tt.want)
		}
	}
	var zero RoundingMode
	if zero != HalfEven {
		t.Errorf("zero RoundingMode = %v, want %v", zero, HalfEven)
	}
}

func TestQuoRound(t *testing.T) {
	modes := []RoundingMode{HalfEven, HalfUp, HalfDown, Up, Down, Ceiling, Floor}
	tests := []struct {
		num, den int64
		want     [7]int64
	}{
		// Exact
		{6, 3, [7]int64{2, 2, 2, 2, 2, 2, 2}},
		{-6, 3, [7]int64{-2, -2, -2, -2, -2, -2, -2}},
		{0, 7, [7]int64{0, 0, 0, 0, 0, 0, 0}},

		// Ties
		{5, 2, [7]int64{2, 3, 2, 3, 2, 3, 2}},
		{7, 2, [7]int64{4, 4, 3, 4, 3, 4, 3}},
		{-5, 2, [7]int64{-2, -3, -2, -3, -2, -2, -3}},
		{5, -2, [7]int64{-2, -3, -2, -3, -2, -2, -3}},
		{-5, -2, [7]int64{2, 3, 2, 3, 2, 3, 2}},

		// Non-ties
		{10, 3, [7]int64{3, 3, 3, 4, 3, 4, 3}},
		{20, 3, [7]int64{7, 7, 7, 7, 6, 7, 6}},
		{-20, 3, [7]int64{-7, -7, -7, -7, -6, -6, -7}},
		{1, 3, [7]int64{0, 0, 0, 1, 0, 1, 0}},
		{-1, 3, [7]int64{0, 0, 0, -1, 0, 0, -1}},
	}
	for _, tt := range tests {
		for i, mode := range modes {
			got, err := quoRound(big.NewInt(tt.num), big.NewInt(tt.den), mode)
			if err != nil {
				t.Errorf("quoRound(%v, %v, %v) failed: %v", tt.num, tt.den, mode, err)
				continue
			}
			if got != tt.want[i] {
				t.Errorf("quoRound(%v, %v, %v) = %v, want %v", tt.num, tt.den, mode, got, tt.want[i])
			}
		}
	}

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			num, den *big.Int
			mode     RoundingMode
			want     error
		}{
			"zero":     {big.NewInt(1), big.NewInt(0), HalfEven, ErrDivisionByZero},
			"overflow": {new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1), HalfEven, ErrOverflow},
			"min":      {big.NewInt(math.MinInt64), big.NewInt(1), HalfEven, ErrOverflow},
			"mode":     {big.NewInt(1), big.NewInt(1), RoundingMode(7), ErrInvalidArgument},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := quoRound(tt.num, tt.den, tt.mode)
				if !errors.Is(err, tt.want) {
					t.Errorf("quoRound(%v, %v, %v) = %v, want %v", tt.num, tt.den, tt.mode, err, tt.want)
				}
			})
		}
	})
}
