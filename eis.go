package eis

import (
	"github.com/sirupsen/logrus"
	"github.com/zeebo/errs"

	"github.com/calebcase/eis/decimal"
	"github.com/calebcase/eis/operand"
)

// Error is the class of errors returned by this package that are not faults.
var Error = errs.Class("eis")

// Indicators are the condition indicators touched by the decimal unit. Zero,
// Negative and Truncation are rewritten by every instruction. Overflow and the
// exponent indicators are sticky: an instruction sets them and only the
// caller clears them.
type Indicators struct {
	Zero              bool
	Negative          bool
	Truncation        bool
	Overflow          bool
	ExponentOverflow  bool
	ExponentUnderflow bool

	// OverflowMask suppresses the overflow fault. It is never changed here.
	OverflowMask bool
}

// Operand is one operand of an instruction: its descriptor and the cells of
// its field as fetched from memory. The cells of the destination of a three
// operand instruction are not read.
type Operand struct {
	Desc  operand.Descriptor
	Cells []uint16
}

// Config configures a Processor.
type Config struct {
	// Precision is the number of digits developed by add, subtract and
	// divide.
	Precision int

	// MulPrecision is the number of digits developed by multiply. The
	// default holds the exact product of two 63 digit operands.
	MulPrecision int

	Logger logrus.FieldLogger
}

// Config defaults.
const (
	DefaultPrecision    = decimal.DefaultPrecision
	DefaultMulPrecision = 126
)

// Processor executes decimal arithmetic instructions.
type Processor struct {
	Indicators Indicators

	config Config
	log    logrus.FieldLogger
}

// NewProcessor returns a processor. Zero fields of config take their
// defaults.
func NewProcessor(config Config) *Processor {
	if config.Precision <= 0 {
		config.Precision = DefaultPrecision
	}

	if config.MulPrecision <= 0 {
		config.MulPrecision = DefaultMulPrecision
	}

	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}

	return &Processor{
		config: config,
		log:    config.Logger,
	}
}

// Execute runs a decoded instruction. ops holds two or three operands per
// op.Operands; the result is written to the last one through sink.
func (p *Processor) Execute(op Opcode, ctl Control, ops []Operand, sink Sink) error {
	if !op.Valid() {
		return Error.New("invalid opcode: %o", uint16(op))
	}

	if len(ops) != op.Operands() {
		return Error.New("%s: want %d operands, got %d", op, op.Operands(), len(ops))
	}

	return p.arith(op, ctl, ops, sink)
}

// AD2D adds op1 to op2 and stores the sum in op2.
func (p *Processor) AD2D(ctl Control, op1, op2 Operand, sink Sink) error {
	return p.Execute(AD2D, ctl, []Operand{op1, op2}, sink)
}

// AD3D adds op1 and op2 and stores the sum in op3.
func (p *Processor) AD3D(ctl Control, op1, op2, op3 Operand, sink Sink) error {
	return p.Execute(AD3D, ctl, []Operand{op1, op2, op3}, sink)
}

// SB2D subtracts op1 from op2 and stores the difference in op2.
func (p *Processor) SB2D(ctl Control, op1, op2 Operand, sink Sink) error {
	return p.Execute(SB2D, ctl, []Operand{op1, op2}, sink)
}

// SB3D subtracts op1 from op2 and stores the difference in op3.
func (p *Processor) SB3D(ctl Control, op1, op2, op3 Operand, sink Sink) error {
	return p.Execute(SB3D, ctl, []Operand{op1, op2, op3}, sink)
}

// MP2D multiplies op2 by op1 and stores the product in op2.
func (p *Processor) MP2D(ctl Control, op1, op2 Operand, sink Sink) error {
	return p.Execute(MP2D, ctl, []Operand{op1, op2}, sink)
}

// MP3D multiplies op2 by op1 and stores the product in op3.
func (p *Processor) MP3D(ctl Control, op1, op2, op3 Operand, sink Sink) error {
	return p.Execute(MP3D, ctl, []Operand{op1, op2, op3}, sink)
}

// DV2D divides the dividend op2 by the divisor op1 and stores the quotient in
// op2.
func (p *Processor) DV2D(ctl Control, divisor, dividend Operand, sink Sink) error {
	return p.Execute(DV2D, ctl, []Operand{divisor, dividend}, sink)
}

// DV3D divides the dividend op2 by the divisor op1 and stores the quotient in
// op3.
func (p *Processor) DV3D(ctl Control, divisor, dividend, op3 Operand, sink Sink) error {
	return p.Execute(DV3D, ctl, []Operand{divisor, dividend, op3}, sink)
}
