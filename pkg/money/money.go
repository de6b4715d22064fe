// Package money represents currency as integer minor units.
// Conversion to and from decimal major units happens only at the JSON and CSV boundaries.
package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Scale is the number of minor-unit digits.
const Scale = 2

var (
	ErrTooPrecise = errors.New("amount has more than 2 decimal places")
	ErrOutOfRange = errors.New("amount out of range")
)

// Amount is a signed quantity of minor units (cents).
type Amount int64

func FromMajor(units int64) Amount {
	return Amount(units * 100)
}

func FromDecimal(d decimal.Decimal) (Amount, error) {
	minor := d.Shift(Scale)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, ErrTooPrecise
	}
	if minor.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || minor.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return 0, ErrOutOfRange
	}
	return Amount(minor.IntPart()), nil
}

func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return FromDecimal(d)
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -Scale)
}

func (a Amount) String() string {
	return a.Decimal().StringFixed(Scale)
}

func (a Amount) Neg() Amount {
	return -a
}

// Share returns a*num/den, truncated toward zero. It does not overflow for num <= den.
func (a Amount) Share(num, den int64) Amount {
	q, r := int64(a)/den, int64(a)%den
	return Amount(q*num + r*num/den)
}

// Mul returns a*n and false when the product does not fit in an Amount.
func (a Amount) Mul(n int64) (Amount, bool) {
	if a == 0 || n == 0 {
		return 0, true
	}
	if (a == -1 && n == math.MinInt64) || (n == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := int64(a) * n
	if p/n != int64(a) {
		return 0, false
	}
	return Amount(p), true
}

// Add returns a+b and false when the sum does not fit in an Amount.
func (a Amount) Add(b Amount) (Amount, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

func (a Amount) IsPositive() bool {
	return a > 0
}

// MarshalJSON writes the amount as a plain JSON number of major units.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal().String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string in major units.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	v, err := FromDecimal(d)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func Sum(amounts ...Amount) Amount {
	var total Amount
	for _, v := range amounts {
		total += v
	}
	return total
}
