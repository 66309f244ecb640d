package operand

import (
	"github.com/calebcase/eis/bcd"
)

// Sign cells.
const (
	NibblePlus      uint16 = 0o014
	NibblePlusAlt   uint16 = 0o013
	NibbleMinus     uint16 = 0o015
	NibbleSignFloor uint16 = 0o012

	CharPlus  uint16 = '+'
	CharMinus uint16 = '-'
)

// Limits of the signed exponent a floating field carries.
const (
	MaxExponent = 127
	MinExponent = -128
)

// Field is a numeric field split into its parts.
type Field struct {
	Desc     Descriptor
	Digits   []uint16
	Negative bool
	Exponent int
}

// Load splits the raw cells of a field. Digit cells are passed through
// unchecked; decoding them is the job of the bcd package.
func Load(desc Descriptor, cells []uint16) (f Field, err error) {
	defer Error.WrapP(&err)

	f.Desc = desc

	if len(cells) < desc.N {
		return f, ErrShortField
	}
	cells = cells[:desc.N]

	n, _ := desc.Classify()
	if n < 1 {
		return f, ErrNoDigits
	}

	switch desc.Style {
	case Floating:
		f.Negative, err = ParseSign(desc.Width, cells[0])
		if err != nil {
			return f, err
		}

		f.Digits = cells[1 : 1+n]
		f.Exponent = ParseExponent(desc.Width, cells[1+n:])
	case LeadingSign:
		f.Negative, err = ParseSign(desc.Width, cells[0])
		if err != nil {
			return f, err
		}

		f.Digits = cells[1:]
	case TrailingSign:
		f.Negative, err = ParseSign(desc.Width, cells[n])
		if err != nil {
			return f, err
		}

		f.Digits = cells[:n]
	default:
		f.Digits = cells
	}

	return f, nil
}

// ParseSign reports whether a sign cell is a minus.
func ParseSign(w bcd.Width, cell uint16) (negative bool, err error) {
	cell &= w.Mask()

	if w == bcd.Nibble {
		if cell < NibbleSignFloor {
			return false, ErrInvalidSign
		}

		return cell == NibbleMinus, nil
	}

	switch cell {
	case CharPlus:
		return false, nil
	case CharMinus:
		return true, nil
	}

	return false, ErrInvalidSign
}

// SignCell returns the sign cell for a result. alt selects the alternate 4-bit
// plus sign.
func SignCell(w bcd.Width, negative bool, alt bool) uint16 {
	if w == bcd.Nibble {
		switch {
		case negative:
			return NibbleMinus
		case alt:
			return NibblePlusAlt
		}

		return NibblePlus
	}

	if negative {
		return CharMinus
	}

	return CharPlus
}

// ParseExponent reads the signed 8-bit exponent of a floating field.
func ParseExponent(w bcd.Width, cells []uint16) int {
	var e uint8

	if w == bcd.Nibble {
		for _, c := range cells {
			e = e<<4 | uint8(c&0o17)
		}
	} else if len(cells) > 0 {
		e = uint8(cells[0])
	}

	return int(int8(e))
}

// ExponentCellsOf returns the cells holding exponent e. Only the low 8 bits of
// e are kept.
func ExponentCellsOf(w bcd.Width, e int) []uint16 {
	v := uint8(e)

	if w == bcd.Nibble {
		return []uint16{uint16(v >> 4), uint16(v & 0o17)}
	}

	return []uint16{uint16(v)}
}
