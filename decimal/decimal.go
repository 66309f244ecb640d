package decimal

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// Exponent limits. A number whose adjusted exponent falls outside of these is
// not representable.
const (
	MaxExponent = 100000
	MinExponent = -MaxExponent
)

// Number is a signed, scaled decimal number.
type Number struct {
	d apd.Decimal
}

// Zero returns a canonical zero.
func Zero() *Number {
	return &Number{}
}

// FromInt32 returns the exact decimal value of n.
func FromInt32(n int32) *Number {
	x := &Number{}
	x.d.SetInt64(int64(n))

	return x
}

// FromDigits builds a number from digit values (most significant first).
// Leading zeros are ignored. Digits outside 0..9 are an error.
func FromDigits(digits []uint8, exponent int32, negative bool) (_ *Number, err error) {
	defer Error.WrapP(&err)

	var sb strings.Builder
	for _, v := range digits {
		if v > 9 {
			return nil, Error.New("invalid digit: %d", v)
		}

		if sb.Len() == 0 && v == 0 {
			continue
		}

		sb.WriteByte('0' + v)
	}

	x := &Number{}
	if sb.Len() > 0 {
		_, ok := x.d.Coeff.SetString(sb.String(), 10)
		if !ok {
			return nil, Error.New("invalid coefficient: %q", sb.String())
		}
	}

	x.d.Exponent = exponent
	x.d.Negative = negative

	return x, nil
}

// Parse reads a number in the usual decimal notation (e.g. "-12.5", "3E-2").
func Parse(s string) (_ *Number, err error) {
	defer Error.WrapP(&err)

	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, err
	}

	if d.Form != apd.Finite {
		return nil, Error.New("not finite: %q", s)
	}

	x := &Number{}
	x.d.Set(d)

	return x, nil
}

// Copy returns an independent copy of x.
func (x *Number) Copy() *Number {
	c := &Number{}
	c.d.Set(&x.d)

	return c
}

// Neg returns a copy of x with the sign inverted.
func (x *Number) Neg() *Number {
	c := &Number{}
	c.d.Neg(&x.d)

	return c
}

// Digits returns the number of significant digits. Zero has no digits.
func (x *Number) Digits() int {
	if x.d.Coeff.Sign() == 0 {
		return 0
	}

	return int(x.d.NumDigits())
}

// Exponent returns the power of ten scale.
func (x *Number) Exponent() int32 {
	return x.d.Exponent
}

// SetExponent replaces the exponent without touching the coefficient.
func (x *Number) SetExponent(e int32) {
	x.d.Exponent = e
}

// Negative reports whether the sign bit is set. A zero may be negative.
func (x *Number) Negative() bool {
	return x.d.Negative
}

// SetNegative sets the sign bit.
func (x *Number) SetNegative(neg bool) {
	x.d.Negative = neg
}

// IsZero reports whether the coefficient is zero.
func (x *Number) IsZero() bool {
	return x.d.Coeff.Sign() == 0
}

// Coefficient returns the decimal digits of the coefficient, most significant
// first. Zero returns an empty string.
func (x *Number) Coefficient() string {
	if x.IsZero() {
		return ""
	}

	return x.d.Coeff.String()
}

// String returns the scientific string form of x.
func (x *Number) String() string {
	return x.d.String()
}

// adjusted returns the exponent of the most significant digit.
func (x *Number) adjusted() int64 {
	digits := int64(x.Digits())
	if digits == 0 {
		digits = 1
	}

	return int64(x.d.Exponent) + digits - 1
}

// InRange reports whether the adjusted exponent of x is within the exponent
// limits.
func (x *Number) InRange() bool {
	adj := x.adjusted()

	return adj <= MaxExponent && adj >= MinExponent
}
