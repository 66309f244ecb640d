package eis

import (
	"errors"

	"github.com/calebcase/oops"
	"github.com/sirupsen/logrus"

	"github.com/calebcase/eis/bcd"
	"github.com/calebcase/eis/decimal"
	"github.com/calebcase/eis/format"
	"github.com/calebcase/eis/operand"
)

// zeroExponent is the exponent given to a zero sum, difference or product.
const zeroExponent = 127

// context returns the decimal context for one instruction. Without R the
// unit truncates.
func (p *Processor) context(op Opcode, ctl Control) *decimal.Context {
	ctx := decimal.NewContext()
	ctx.SetPrecision(p.config.Precision)

	if op.operation() == opMul {
		ctx.SetPrecision(p.config.MulPrecision)
	}

	if !ctl.R {
		ctx.SetRounding(decimal.RoundDown)
	}

	return ctx
}

// load decodes an operand. Digit cells that do not decode leave the operand
// zero; the instruction goes on with it.
func (p *Processor) load(log logrus.FieldLogger, k int, o Operand) (*decimal.Number, error) {
	f, err := operand.Load(o.Desc, o.Cells)
	if err != nil {
		if errors.Is(err, operand.ErrInvalidSign) {
			return nil, &Fault{
				Kind:    IllegalProcedureFault,
				Subcode: SubIllegalDigit,
				Message: "illegal sign character",
			}
		}

		return nil, Error.Wrap(err)
	}

	_, scale := o.Desc.Classify()

	x, err := bcd.Decode(o.Desc.Width, f.Digits, scale)
	if err != nil {
		log.WithFields(logrus.Fields{
			"operand": k,
			"cells":   bcd.Text(o.Desc.Width, f.Digits),
		}).WithError(err).Warn("operand did not decode, using zero")
	}

	if f.Negative {
		x.SetNegative(true)
	}

	if o.Desc.Style == operand.Floating {
		x.SetExponent(int32(f.Exponent))
	}

	return x, nil
}

func (p *Processor) arith(op Opcode, ctl Control, ops []Operand, sink Sink) error {
	log := p.log.WithFields(logrus.Fields{
		"op": op.String(),
		"P":  ctl.P,
		"T":  ctl.T,
		"R":  ctl.R,
	})

	ctx := p.context(op, ctl)

	x1, err := p.load(log, 1, ops[0])
	if err != nil {
		return err
	}

	x2, err := p.load(log, 2, ops[1])
	if err != nil {
		return err
	}

	var r *decimal.Number

	switch op.operation() {
	case opAdd:
		r, err = ctx.Add(x1, x2)
	case opSub:
		r, err = ctx.Sub(x2, x1)
	case opMul:
		r, err = ctx.Mul(x1, x2)
	case opDiv:
		if x1.IsZero() {
			return &Fault{
				Kind:    DivideFault,
				Subcode: SubNone,
				Message: op.String() + " division by 0",
			}
		}

		r, err = ctx.Quo(x2, x1)
	}
	if err != nil {
		return Error.Wrap(oops.Trace(err))
	}

	if op.operation() != opDiv && r.IsZero() {
		r.SetExponent(zeroExponent)
	}

	dstOp := ops[len(ops)-1]
	dst := format.FromDescriptor(dstOp.Desc, ctl.R)

	var res format.Result
	if op.operation() == opDiv {
		res, err = format.FormatDiv(ctx, r, dst, x2, x1)
	} else {
		res, err = format.Format(ctx, r, dst)
	}
	if err != nil {
		return Error.Wrap(err)
	}

	log.WithFields(logrus.Fields{
		"op1":       x1.String(),
		"op2":       x2.String(),
		"result":    res.Value.String(),
		"digits":    res.Digits,
		"overflow":  res.Overflow,
		"truncated": res.Truncated,
	}).Debug("decimal result")

	err = write(sink, dst, ctl, res)
	if err != nil {
		return Error.Wrap(err)
	}

	return p.conclude(op, ctl, dst, res)
}

// write stores the sign, digit and exponent cells of a result in order.
func write(sink Sink, dst format.Destination, ctl Control, res format.Result) error {
	w := dst.Width
	v := res.Value
	negative := v.Negative() && !v.IsZero()

	switch dst.Style {
	case operand.Floating, operand.LeadingSign:
		err := sink.Put(w, operand.SignCell(w, negative, ctl.P))
		if err != nil {
			return err
		}
	}

	for i := 0; i < len(res.Digits); i++ {
		err := sink.Put(w, w.Cell(res.Digits[i]-'0'))
		if err != nil {
			return err
		}
	}

	switch dst.Style {
	case operand.TrailingSign:
		return sink.Put(w, operand.SignCell(w, negative, ctl.P))
	case operand.Floating:
		for _, c := range operand.ExponentCellsOf(w, int(v.Exponent())) {
			err := sink.Put(w, c)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// conclude sets the indicators and raises the faults a result calls for.
func (p *Processor) conclude(op Opcode, ctl Control, dst format.Destination, res format.Result) error {
	ind := &p.Indicators
	v := res.Value

	ind.Zero = v.IsZero()
	ind.Negative = v.Negative() && !v.IsZero()
	ind.Truncation = res.Truncated

	if res.Overflow {
		ind.Overflow = true
	}

	exponentRange := false
	if dst.Style == operand.Floating {
		if v.Exponent() > operand.MaxExponent {
			ind.ExponentOverflow = true
			exponentRange = true
		}

		if v.Exponent() < operand.MinExponent {
			ind.ExponentUnderflow = true
			exponentRange = true
		}
	}

	if res.Truncated && ctl.T && !ind.OverflowMask {
		ind.Truncation = true

		return &Fault{
			Kind:    OverflowFault,
			Subcode: SubNone,
			Message: op.String() + " truncation (overflow) fault",
		}
	}

	if res.Overflow && !ind.OverflowMask {
		return &Fault{
			Kind:    OverflowFault,
			Subcode: SubNone,
			Message: op.String() + " overflow fault",
		}
	}

	if exponentRange && !ind.OverflowMask {
		return &Fault{
			Kind:    OverflowFault,
			Subcode: SubNone,
			Message: op.String() + " exponent overflow/underflow fault",
		}
	}

	return nil
}
