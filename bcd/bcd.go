package bcd

import (
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/eis/decimal"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("bcd")

// Sentinel failures.
var (
	ErrInvalidDigit  = Error.New("invalid digit")
	ErrExponentRange = Error.New("exponent out of range")
	ErrTooLong       = Error.New("number does not fit")
)

// Width is the size of a digit cell.
type Width uint8

// Cell widths.
const (
	Char   Width = 9
	Nibble Width = 4
)

// TN returns the type number encoding the width in a descriptor.
func (w Width) TN() uint8 {
	if w == Nibble {
		return 1
	}

	return 0
}

// FromTN returns the width selected by a descriptor type number.
func FromTN(tn uint8) Width {
	if tn&1 == 1 {
		return Nibble
	}

	return Char
}

func (w Width) String() string {
	switch w {
	case Nibble:
		return "4-bit"
	case Char:
		return "9-bit"
	}

	return "unknown"
}

// Mask returns the bits a cell of this width can hold.
func (w Width) Mask() uint16 {
	if w == Nibble {
		return 0o17
	}

	return 0o777
}

// Digit extracts the digit held by cell.
func (w Width) Digit(cell uint16) (uint8, error) {
	cell &= w.Mask()

	if w == Char {
		if cell < '0' || cell > '9' {
			return 0, ErrInvalidDigit
		}

		return uint8(cell - '0'), nil
	}

	if cell > 9 {
		return 0, ErrInvalidDigit
	}

	return uint8(cell), nil
}

// Cell returns the cell holding digit d.
func (w Width) Cell(d uint8) uint16 {
	if w == Char {
		return '0' + uint16(d)
	}

	return uint16(d)
}

// Decode reads a field of cells with the given scale. On failure a zero
// number is returned along with the error.
func Decode(w Width, cells []uint16, scale int) (_ *decimal.Number, err error) {
	defer Error.WrapP(&err)

	// Bounded by the last cell so an all zero field never reads past the end.
	first := 0
	for first < len(cells)-1 {
		d, err := w.Digit(cells[first])
		if err != nil {
			return zeroAt(scale), err
		}

		if d != 0 {
			break
		}

		first++
	}

	digits := make([]uint8, 0, len(cells)-first)
	for _, c := range cells[first:] {
		d, err := w.Digit(c)
		if err != nil {
			return zeroAt(scale), err
		}

		digits = append(digits, d)
	}

	exponent := -int64(scale)
	if exponent > decimal.MaxExponent || exponent < decimal.MinExponent {
		return decimal.Zero(), ErrExponentRange
	}

	n, err := decimal.FromDigits(digits, int32(exponent), false)
	if err != nil {
		return zeroAt(scale), err
	}

	if !n.InRange() {
		return zeroAt(scale), ErrExponentRange
	}

	return n, nil
}

func zeroAt(scale int) *decimal.Number {
	z := decimal.Zero()

	exponent := -int64(scale)
	if exponent <= decimal.MaxExponent && exponent >= decimal.MinExponent {
		z.SetExponent(int32(exponent))
	}

	return z
}

// Encode writes n right aligned into length cells and returns the scale of
// the field. The sign of n is not encoded.
func Encode(w Width, n *decimal.Number, length int) (cells []uint16, scale int, err error) {
	defer Error.WrapP(&err)

	coeff := n.Coefficient()
	if len(coeff) > length {
		return nil, 0, ErrTooLong
	}

	cells = make([]uint16, length)
	pad := length - len(coeff)

	for i := range cells {
		var d uint8
		if i >= pad {
			d = coeff[i-pad] - '0'
		}

		cells[i] = w.Cell(d)
	}

	return cells, -int(n.Exponent()), nil
}

// Text renders cells as ASCII digits. Cells that do not hold a digit are
// rendered as '?'.
func Text(w Width, cells []uint16) string {
	var sb strings.Builder

	for _, c := range cells {
		d, err := w.Digit(c)
		if err != nil {
			sb.WriteByte('?')
			continue
		}

		sb.WriteByte('0' + d)
	}

	return sb.String()
}
