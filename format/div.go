package format

import (
	"github.com/calebcase/eis/decimal"
	"github.com/calebcase/eis/operand"
)

// alignDigits is the width both divide operands are aligned to before their
// magnitudes are compared.
const alignDigits = 63

// FormatDiv is Format for a quotient. When the destination is floating and
// the divisor is greater than the dividend after alignment, the quotient loses
// one digit of precision: the digits are shifted right, a zero leads and the
// exponent grows by one.
func FormatDiv(ctx *decimal.Context, q *decimal.Number, dst Destination, dividend, divisor *decimal.Number) (res Result, err error) {
	defer Error.WrapP(&err)

	leading := false
	if dst.Style == operand.Floating {
		leading, err = DivisorExceeds(dividend, divisor)
		if err != nil {
			return res, err
		}
	}

	res, err = Format(ctx, q, dst)
	if err != nil || !leading || len(res.Digits) == 0 {
		return res, err
	}

	shifted := "0" + res.Digits[:len(res.Digits)-1]

	digits := make([]uint8, len(shifted))
	for i := range shifted {
		digits[i] = shifted[i] - '0'
	}

	v, err := decimal.FromDigits(digits, res.Value.Exponent()+1, res.Value.Negative())
	if err != nil {
		return res, err
	}

	res.Digits = shifted
	res.Value = v
	res.LeadingZero = true

	return res, nil
}

// DivisorExceeds reports whether the divisor is greater than the dividend
// once both coefficients are right aligned in alignDigits cells and their
// exponents are dropped.
func DivisorExceeds(dividend, divisor *decimal.Number) (bool, error) {
	a, err := align(dividend)
	if err != nil {
		return false, err
	}

	b, err := align(divisor)
	if err != nil {
		return false, err
	}

	return decimal.CompareTotalMagnitude(b, a) > 0, nil
}

func align(x *decimal.Number) (*decimal.Number, error) {
	coeff := x.Coefficient()
	if len(coeff) > alignDigits {
		coeff = coeff[len(coeff)-alignDigits:]
	}

	digits := make([]uint8, alignDigits)
	pad := alignDigits - len(coeff)
	for i := range coeff {
		digits[pad+i] = coeff[i] - '0'
	}

	return decimal.FromDigits(digits, 0, false)
}
