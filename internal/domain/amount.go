package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountScale is the fixed-point scale of Amount (4 fractional digits)
const AmountScale = 10_000

// amountPlaces is the number of fractional digits carried by Amount
const amountPlaces = 4

const (
	// MaxAmount is the largest representable Amount
	MaxAmount Amount = math.MaxInt64
	// MinAmount is the smallest representable Amount
	MinAmount Amount = math.MinInt64
)

// maxAmountOrder is the smallest power of ten above MaxAmount in whole units
const maxAmountOrder = 15

var (
	maxAmountDecimal = decimal.NewFromInt(math.MaxInt64)
	minAmountDecimal = decimal.NewFromInt(math.MinInt64)
)

// Amount represents a monetary value as an integer scaled by AmountScale.
// All arithmetic saturates at MinAmount/MaxAmount instead of wrapping.
type Amount int64

// NewAmountFromDecimal converts a decimal value into an Amount.
// Digits beyond the 4th fractional place are truncated and values outside
// the representable range are clamped to MinAmount/MaxAmount.
func NewAmountFromDecimal(d decimal.Decimal) Amount {
	if d.IsZero() {
		return 0
	}

	// |d| lies in [10^(order-1), 10^order); decide out-of-range values
	// from the order alone so huge exponents are never expanded
	order := int64(d.NumDigits()) + int64(d.Exponent())
	if order > maxAmountOrder+1 {
		if d.Sign() > 0 {
			return MaxAmount
		}
		return MinAmount
	}
	if order <= -amountPlaces {
		return 0
	}

	scaled := d.Shift(amountPlaces).Truncate(0)

	if scaled.GreaterThan(maxAmountDecimal) {
		return MaxAmount
	}
	if scaled.LessThan(minAmountDecimal) {
		return MinAmount
	}

	return Amount(scaled.IntPart())
}

// ParseAmount parses a plain decimal literal such as "1.5" or "-3.0001" into an Amount.
// Exponent notation is rejected.
func ParseAmount(s string) (Amount, error) {
	trimmed := strings.TrimSpace(s)
	if strings.ContainsAny(trimmed, "eE") {
		return 0, fmt.Errorf("%w %q: exponent notation is not allowed", ErrInvalidAmount, s)
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidAmount, s, err)
	}

	return NewAmountFromDecimal(d), nil
}

// Add returns a+b, saturating at the representable bounds
func (a Amount) Add(b Amount) Amount {
	sum := a + b

	// Overflow happened iff both operands share a sign the result does not
	if b > 0 && sum < a {
		return MaxAmount
	}
	if b < 0 && sum > a {
		return MinAmount
	}

	return sum
}

// Sub returns a-b, saturating at the representable bounds
func (a Amount) Sub(b Amount) Amount {
	diff := a - b

	if b > 0 && diff > a {
		return MinAmount
	}
	if b < 0 && diff < a {
		return MaxAmount
	}

	return diff
}

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to or greater than b
func (a Amount) Cmp(b Amount) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// LessThan reports whether a < b
func (a Amount) LessThan(b Amount) bool {
	return a < b
}

// GreaterThanOrEqual reports whether a >= b
func (a Amount) GreaterThanOrEqual(b Amount) bool {
	return a >= b
}

// Sign returns -1, 0 or +1
func (a Amount) Sign() int {
	return a.Cmp(0)
}

// IsPositive reports whether a > 0
func (a Amount) IsPositive() bool {
	return a > 0
}

// IsZero reports whether a == 0
func (a Amount) IsZero() bool {
	return a == 0
}

// String renders the amount with exactly 4 fractional digits
func (a Amount) String() string {
	// Unsigned negation yields the correct magnitude for MinAmount as well
	magnitude := uint64(a)
	sign := ""
	if a < 0 {
		magnitude = -magnitude
		sign = "-"
	}

	return fmt.Sprintf("%s%d.%04d", sign, magnitude/AmountScale, magnitude%AmountScale)
}
