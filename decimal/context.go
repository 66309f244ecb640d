package decimal

import (
	"github.com/calebcase/oops"
	"github.com/cockroachdb/apd/v3"
)

// Precision defaults.
const (
	// DefaultPrecision is the working precision of the decimal unit.
	DefaultPrecision = 65

	// RescalePrecision bounds the coefficient a rescale may produce. It is
	// large enough that rescaling a full precision value to any scale factor
	// a descriptor can hold never fails.
	RescalePrecision = 512
)

// Rounding selects how digits are discarded.
type Rounding int

// Rounding modes.
const (
	RoundHalfEven Rounding = iota
	RoundHalfUp
	RoundDown
)

func (r Rounding) rounder() apd.Rounder {
	switch r {
	case RoundHalfUp:
		return apd.RoundHalfUp
	case RoundDown:
		return apd.RoundDown
	default:
		return apd.RoundHalfEven
	}
}

func (r Rounding) String() string {
	switch r {
	case RoundHalfEven:
		return "half_even"
	case RoundHalfUp:
		return "half_up"
	case RoundDown:
		return "down"
	}

	return "unknown"
}

// Context carries the precision and rounding mode used by every operation.
type Context struct {
	precision int
	rounding  Rounding
}

// NewContext returns a context with the default precision and half even
// rounding.
func NewContext() *Context {
	return &Context{
		precision: DefaultPrecision,
		rounding:  RoundHalfEven,
	}
}

// Precision returns the maximum number of digits of a result.
func (c *Context) Precision() int {
	return c.precision
}

// Rounding returns the active rounding mode.
func (c *Context) Rounding() Rounding {
	return c.rounding
}

// SetPrecision replaces the precision. Values below 1 are clamped to 1.
func (c *Context) SetPrecision(p int) {
	if p < 1 {
		p = 1
	}

	c.precision = p
}

// SetRounding replaces the rounding mode.
func (c *Context) SetRounding(r Rounding) {
	c.rounding = r
}

// WithPrecision applies p until the returned func is called.
func (c *Context) WithPrecision(p int) (restore func()) {
	prev := c.precision
	c.SetPrecision(p)

	return func() {
		c.precision = prev
	}
}

// WithRounding applies r until the returned func is called.
func (c *Context) WithRounding(r Rounding) (restore func()) {
	prev := c.rounding
	c.rounding = r

	return func() {
		c.rounding = prev
	}
}

func (c *Context) apd(precision int) *apd.Context {
	return &apd.Context{
		Precision:   uint32(precision),
		MaxExponent: MaxExponent,
		MinExponent: MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    c.rounding.rounder(),
	}
}

type binaryOp func(ac *apd.Context, d, x, y *apd.Decimal) (apd.Condition, error)

func (c *Context) binary(op binaryOp, x, y *Number) (_ *Number, err error) {
	defer Error.WrapP(&err)

	z := &Number{}

	_, err = op(c.apd(c.precision), &z.d, &x.d, &y.d)
	if err != nil {
		return Zero(), oops.Trace(err)
	}

	return z, nil
}

// Add returns x + y.
func (c *Context) Add(x, y *Number) (*Number, error) {
	return c.binary((*apd.Context).Add, x, y)
}

// Sub returns x - y.
func (c *Context) Sub(x, y *Number) (*Number, error) {
	return c.binary((*apd.Context).Sub, x, y)
}

// Mul returns x * y.
func (c *Context) Mul(x, y *Number) (*Number, error) {
	return c.binary((*apd.Context).Mul, x, y)
}

// Quo returns dividend / divisor developed to the context precision. A zero
// divisor is an error.
func (c *Context) Quo(dividend, divisor *Number) (*Number, error) {
	if divisor.IsZero() {
		return Zero(), Error.New("division by zero")
	}

	return c.binary((*apd.Context).Quo, dividend, divisor)
}

// Rescale returns x with the exponent set to exp. Discarded digits follow the
// context rounding mode. The coefficient may grow past the context precision.
func (c *Context) Rescale(x *Number, exp int32) (_ *Number, err error) {
	defer Error.WrapP(&err)

	z := &Number{}

	_, err = c.apd(RescalePrecision).Quantize(&z.d, &x.d, exp)
	if err != nil {
		return Zero(), oops.Trace(err)
	}

	return z, nil
}

// Plus returns x rounded to the context precision. Its exponent increases by
// the number of digits discarded.
func (c *Context) Plus(x *Number) (_ *Number, err error) {
	defer Error.WrapP(&err)

	z := &Number{}

	_, err = c.apd(c.precision).Round(&z.d, &x.d)
	if err != nil {
		return Zero(), oops.Trace(err)
	}

	return z, nil
}

// ToIntegralValue returns x rounded to an integer using the context rounding
// mode.
func (c *Context) ToIntegralValue(x *Number) (_ *Number, err error) {
	defer Error.WrapP(&err)

	z := &Number{}

	_, err = c.apd(RescalePrecision).RoundToIntegralValue(&z.d, &x.d)
	if err != nil {
		return Zero(), oops.Trace(err)
	}

	return z, nil
}

// CompareTotal orders x and y by their representation. Numerically equal
// values with different exponents are ordered by exponent and a negative zero
// sorts before a positive one. It returns -1, 0 or +1.
func CompareTotal(x, y *Number) int {
	return x.d.CmpTotal(&y.d)
}

// CompareTotalMagnitude is CompareTotal on the absolute values.
func CompareTotalMagnitude(x, y *Number) int {
	var ax, ay apd.Decimal

	ax.Abs(&x.d)
	ay.Abs(&y.d)

	return ax.CmpTotal(&ay)
}
