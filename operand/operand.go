package operand

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/eis/bcd"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("operand")

// Sentinel failures.
var (
	ErrInvalidSign = Error.New("invalid sign")
	ErrShortField  = Error.New("field shorter than descriptor")
	ErrNoDigits    = Error.New("field has no digit cells")
)

// SignStyle is the S field of a numeric descriptor.
type SignStyle uint8

// Sign and decimal types.
const (
	Floating     SignStyle = 0 // CSFL
	LeadingSign  SignStyle = 1 // CSLS
	TrailingSign SignStyle = 2 // CSTS
	Unsigned     SignStyle = 3 // CSNS
)

func (s SignStyle) String() string {
	switch s {
	case Floating:
		return "CSFL"
	case LeadingSign:
		return "CSLS"
	case TrailingSign:
		return "CSTS"
	case Unsigned:
		return "CSNS"
	}

	return "unknown"
}

// ExponentCells is the number of cells holding a floating exponent.
func ExponentCells(w bcd.Width) int {
	if w == bcd.Nibble {
		return 2
	}

	return 1
}

// Overhead is the number of cells used by the sign and the exponent.
func (s SignStyle) Overhead(w bcd.Width) int {
	switch s {
	case Floating:
		return 1 + ExponentCells(w)
	case LeadingSign, TrailingSign:
		return 1
	}

	return 0
}

// Descriptor is a decoded numeric operand descriptor.
type Descriptor struct {
	Address uint32
	CN      uint8
	Width   bcd.Width
	Style   SignStyle
	SF      int
	N       int
}

// Word field layout.
const (
	addressMask = 0o777777
	maxSF       = 31
	minSF       = -32
)

// UnmarshalWord decodes a 36-bit descriptor word.
func (d *Descriptor) UnmarshalWord(word uint64) {
	d.Address = uint32(word>>18) & addressMask
	d.CN = uint8(word>>15) & 0o7
	d.Width = bcd.FromTN(uint8(word>>14) & 1)
	d.Style = SignStyle(word>>12) & 0o3

	sf := int(word>>6) & 0o77
	if sf&0o40 != 0 {
		sf -= 0o100
	}

	d.SF = sf
	d.N = int(word) & 0o77
}

// MarshalWord encodes the descriptor as a 36-bit word.
func (d Descriptor) MarshalWord() (word uint64, err error) {
	defer Error.WrapP(&err)

	switch {
	case d.Address > addressMask:
		return 0, Error.New("address out of range: %o", d.Address)
	case d.CN > 0o7:
		return 0, Error.New("character position out of range: %d", d.CN)
	case d.Style > Unsigned:
		return 0, Error.New("sign style out of range: %d", d.Style)
	case d.SF > maxSF || d.SF < minSF:
		return 0, Error.New("scale factor out of range: %d", d.SF)
	case d.N < 0 || d.N > 0o77:
		return 0, Error.New("length out of range: %d", d.N)
	}

	word = uint64(d.Address) << 18
	word |= uint64(d.CN) << 15
	word |= uint64(d.Width.TN()) << 14
	word |= uint64(d.Style) << 12
	word |= uint64(d.SF&0o77) << 6
	word |= uint64(d.N)

	return word, nil
}

// Classify returns the number of digit cells of the field and its scale. The
// scale of a floating field is 0; its exponent is carried in the field.
func (d Descriptor) Classify() (n int, scale int) {
	n = d.N - d.Style.Overhead(d.Width)

	if d.Style == Floating {
		return n, 0
	}

	return n, -d.SF
}
