package format

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/eis/bcd"
	"github.com/calebcase/eis/decimal"
	"github.com/calebcase/eis/operand"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("format")

// Destination describes the field receiving a result.
type Destination struct {
	Width bcd.Width
	N     int
	Style operand.SignStyle
	SF    int
	Round bool
}

// FromDescriptor returns the destination described by desc.
func FromDescriptor(desc operand.Descriptor, round bool) Destination {
	return Destination{
		Width: desc.Width,
		N:     desc.N,
		Style: desc.Style,
		SF:    desc.SF,
		Round: round,
	}
}

// AdjustedLength is the number of cells available to digits.
func (d Destination) AdjustedLength() int {
	return d.N - d.Style.Overhead(d.Width)
}

// Result is a formatted result.
type Result struct {
	// Digits holds AdjustedLength ASCII digits.
	Digits string

	Overflow  bool
	Truncated bool

	// LeadingZero is set when a floating quotient was shifted right to make
	// room for a zero leading digit.
	LeadingZero bool

	// Value is the result as written, with the exponent a floating field
	// carries.
	Value *decimal.Number
}

// Format fits r into dst.
func Format(ctx *decimal.Context, r *decimal.Number, dst Destination) (res Result, err error) {
	defer Error.WrapP(&err)

	adjLen := dst.AdjustedLength()
	if adjLen < 1 {
		res.Overflow = true
		res.Value = r.Copy()

		return res, nil
	}

	floating := dst.Style == operand.Floating

	r2 := r.Copy()
	if !floating {
		r2, err = ctx.Rescale(r, int32(dst.SF))
		if err != nil {
			return res, err
		}
	}

	res.Overflow = r2.Digits() > adjLen
	res.Truncated = r.Digits() > r2.Digits()

	if !res.Overflow {
		if floating {
			r2, err = justify(ctx, r2, adjLen)
			if err != nil {
				return res, err
			}
		}

		res.Digits, err = text(dst.Width, r2, adjLen)
		if err != nil {
			return res, err
		}

		res.Value = r2

		return res, nil
	}

	if dst.Round {
		return rounded(ctx, r2, dst, adjLen, res)
	}

	if floating {
		r3, err := truncate(ctx, r2, adjLen)
		if err != nil {
			return res, err
		}

		r3, err = justify(ctx, r3, adjLen)
		if err != nil {
			return res, err
		}

		res.Truncated = true
		res.Overflow = false
		res.Value = r3
		res.Digits, err = text(dst.Width, r3, adjLen)

		return res, err
	}

	r3, err := rescaleDown(ctx, r, dst.SF)
	if err != nil {
		return res, err
	}

	res.Value = r3

	if r3.Digits() <= adjLen {
		res.Truncated = true
		res.Overflow = false
		res.Digits, err = text(dst.Width, r3, adjLen)

		return res, err
	}

	res.Overflow = true
	res.Digits, err = lowOrder(dst.Width, r3, adjLen)

	return res, err
}

// rounded rounds r to adjLen digits. Overflow is never reported. A fixed
// result is not rescaled back to the scale factor: its rounded coefficient is
// written as is.
func rounded(ctx *decimal.Context, r *decimal.Number, dst Destination, adjLen int, res Result) (Result, error) {
	r3, err := plus(ctx, r, adjLen)
	if err != nil {
		return res, err
	}

	if dst.Style == operand.Floating {
		r3, err = justify(ctx, r3, adjLen)
		if err != nil {
			return res, err
		}
	}

	res.Overflow = false
	res.Value = r3
	res.Digits, err = lowOrder(dst.Width, r3, adjLen)

	return res, err
}

// plus rounds r to precision digits with the context rounding mode.
func plus(ctx *decimal.Context, r *decimal.Number, precision int) (*decimal.Number, error) {
	restore := ctx.WithPrecision(precision)
	defer restore()

	return ctx.Plus(r)
}

// truncate discards the digits of r beyond precision.
func truncate(ctx *decimal.Context, r *decimal.Number, precision int) (*decimal.Number, error) {
	restore := ctx.WithRounding(decimal.RoundDown)
	defer restore()

	return plus(ctx, r, precision)
}

func rescaleDown(ctx *decimal.Context, r *decimal.Number, sf int) (*decimal.Number, error) {
	restore := ctx.WithRounding(decimal.RoundDown)
	defer restore()

	return ctx.Rescale(r, int32(sf))
}

// justify widens a nonzero floating value to adjLen digits by lowering its
// exponent. The exponent is not lowered below operand.MinExponent.
func justify(ctx *decimal.Context, r *decimal.Number, adjLen int) (*decimal.Number, error) {
	if r.IsZero() || r.Digits() >= adjLen {
		return r, nil
	}

	widen := int32(adjLen - r.Digits())
	if room := r.Exponent() - operand.MinExponent; room < widen {
		widen = room
	}
	if widen <= 0 {
		return r, nil
	}

	return ctx.Rescale(r, r.Exponent()-widen)
}

// text encodes r into exactly length ASCII digits.
func text(w bcd.Width, r *decimal.Number, length int) (string, error) {
	cells, _, err := bcd.Encode(w, r, length)
	if err != nil {
		return "", err
	}

	return bcd.Text(w, cells), nil
}

// lowOrder encodes r at full size and keeps the last length digits.
func lowOrder(w bcd.Width, r *decimal.Number, length int) (string, error) {
	size := r.Digits()
	if size < length {
		size = length
	}

	s, err := text(w, r, size)
	if err != nil {
		return "", err
	}

	return s[len(s)-length:], nil
}
