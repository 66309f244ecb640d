package eis

import (
	"errors"
	"fmt"
)

// FaultKind is the class of a processor fault.
type FaultKind int

// Fault kinds raised by the decimal unit.
const (
	OverflowFault FaultKind = iota
	DivideFault
	IllegalProcedureFault
)

func (k FaultKind) String() string {
	switch k {
	case OverflowFault:
		return "overflow"
	case DivideFault:
		return "divide check"
	case IllegalProcedureFault:
		return "illegal procedure"
	}

	return "unknown"
}

// Fault subcodes.
const (
	SubNone         uint32 = 0
	SubIllegalDigit uint32 = 1
)

// Fault aborts the current instruction. The processor delivers it to the
// program running on the emulated machine.
type Fault struct {
	Kind    FaultKind
	Subcode uint32
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s fault (%d): %s", f.Kind, f.Subcode, f.Message)
}

// AsFault returns the fault carried by err, if any.
func AsFault(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}

	return nil, false
}
