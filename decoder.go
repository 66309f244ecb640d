package eis

// Opcode is the 9-bit operation code of a decimal arithmetic instruction.
// All of them use the opcode extension bit.
type Opcode uint16

// Decimal arithmetic opcodes.
const (
	AD2D Opcode = 0o202
	SB2D Opcode = 0o203
	MP2D Opcode = 0o206
	DV2D Opcode = 0o207
	AD3D Opcode = 0o222
	SB3D Opcode = 0o223
	MP3D Opcode = 0o226
	DV3D Opcode = 0o227
)

type operation int

const (
	opInvalid operation = iota
	opAdd
	opSub
	opMul
	opDiv
)

func (op Opcode) operation() operation {
	switch op {
	case AD2D, AD3D:
		return opAdd
	case SB2D, SB3D:
		return opSub
	case MP2D, MP3D:
		return opMul
	case DV2D, DV3D:
		return opDiv
	}

	return opInvalid
}

// Valid reports whether op is a decimal arithmetic opcode.
func (op Opcode) Valid() bool {
	return op.operation() != opInvalid
}

// Operands returns the number of operand descriptors the instruction takes.
func (op Opcode) Operands() int {
	if op&0o20 != 0 {
		return 3
	}

	return 2
}

func (op Opcode) String() string {
	switch op {
	case AD2D:
		return "ad2d"
	case SB2D:
		return "sb2d"
	case MP2D:
		return "mp2d"
	case DV2D:
		return "dv2d"
	case AD3D:
		return "ad3d"
	case SB3D:
		return "sb3d"
	case MP3D:
		return "mp3d"
	case DV3D:
		return "dv3d"
	}

	return "unknown"
}

// Control holds the control bits of the instruction word.
type Control struct {
	// P selects the alternate 4-bit plus sign (0o13).
	P bool

	// T enables the overflow fault on truncation.
	T bool

	// R requests rounding.
	R bool
}

// bit returns bit i of a 36-bit word, numbered from the most significant bit.
func bit(word uint64, i uint) bool {
	return (word>>(35-i))&1 == 1
}

// DecodeInstruction splits an instruction word:
//
//  | 0 | 1 | 2 .. 8 | 9 | 10 | 11 .. 17 | 18 ....... 26 | 27 | 28 | 29 .. 35 |
//  |---|---|--------|---|----|----------|---------------|----|----|----------|
//  | P | 0 | MF2    | T | R  | MF3      | opcode        | 1  | 0  | MF1      |
func DecodeInstruction(word uint64) (op Opcode, ctl Control, err error) {
	op = Opcode((word >> 9) & 0o777)
	if !bit(word, 27) || !op.Valid() {
		return 0, ctl, Error.New("not a decimal arithmetic instruction: %012o", word)
	}

	ctl = Control{
		P: bit(word, 0),
		T: bit(word, 9),
		R: bit(word, 10),
	}

	return op, ctl, nil
}

// EncodeInstruction builds an instruction word with zero modification fields.
func EncodeInstruction(op Opcode, ctl Control) uint64 {
	word := uint64(op&0o777)<<9 | 1<<8

	if ctl.P {
		word |= 1 << 35
	}
	if ctl.T {
		word |= 1 << 26
	}
	if ctl.R {
		word |= 1 << 25
	}

	return word
}
